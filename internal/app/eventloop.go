package app

import (
	"context"

	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/input/key"
	"github.com/dshills/gridstorm/internal/input/mouse"
	"github.com/dshills/gridstorm/internal/renderer/backend"
)

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ctx, ev.Key)
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	case backend.EventFocus:
		app.handleFocusEvent(ev)
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

// handleResize processes terminal resize events. A width change re-runs
// autosizing since the size cap follows the data area.
func (app *Application) handleResize(ev backend.Event) {
	widthChanged := ev.Width != app.width
	app.width, app.height = ev.Width, ev.Height
	app.layout()
	if widthChanged && app.cfg.Grid.Autosize {
		app.runAutosize()
	}
}

// handleKeyEvent routes a key to the open editor, a bound action or the
// controller, in that order. Ctrl+C always quits.
func (app *Application) handleKeyEvent(ctx context.Context, ev key.Event) error {
	if ev.Key == key.KeyRune && ev.Modifiers.HasCtrl() && ev.Rune == 'c' {
		return ErrQuit
	}
	if app.editor != nil {
		app.editKey(ev)
		return nil
	}
	if app.jump != nil {
		app.jumpKey(ev)
		return nil
	}
	app.clearStatus()
	if action, ok := app.keys.lookup(ev); ok {
		return app.runAction(ctx, action)
	}
	app.ctl.HandleKey(ev)
	return nil
}

// handleMouseEvent turns terminal button reports into clicks, drags, column
// resizes and wheel scrolling.
func (app *Application) handleMouseEvent(ev backend.Event) {
	if !app.cfg.Mouse.Enabled {
		return
	}
	me := app.tracker.Translate(mouse.Position{X: ev.MouseX, Y: ev.MouseY}, ev.Buttons, ev.Mod, ev.When)

	switch me.Action {
	case mouse.ActionPress:
		if me.Button.IsScroll() {
			dr, dc := me.Button.ScrollDelta()
			if me.Modifiers.HasShift() {
				dr, dc = dc, dr
			}
			n := app.tracker.Config().ScrollLines
			app.ctl.ScrollBy(dr*n, dc*n)
			return
		}
		if me.Button == mouse.ButtonLeft {
			app.pointerDown(me)
		}
	case mouse.ActionDrag:
		if me.Button == mouse.ButtonLeft {
			app.pointerDrag(me)
		}
	case mouse.ActionRelease:
		if me.Button == mouse.ButtonLeft {
			app.pointerUp(me)
		}
	}
}

func (app *Application) pointerDown(me mouse.Event) {
	x, y := me.Position.X, me.Position.Y
	at, ok := selection.CellFromEvent(app.view, x, y)

	if app.jump != nil {
		app.jump = nil
		app.clearStatus()
	}
	if app.editor != nil {
		if ok && at == app.editor.target {
			return
		}
		app.commitEdit()
	}

	if col, onBorder := app.view.HeaderBorderAt(x, y); onBorder {
		if me.Clicks >= 2 {
			app.cols.RemoveSizeOverride(col)
			app.runAutosize()
			return
		}
		app.drag = &columnDrag{col: col, startX: x, startSize: app.cols.GetSizeByRealIndex(col)}
		return
	}

	app.ctl.PointerDown(at, ok)
	if ok && at.Row.Kind == selection.KindFilter && at.Col.IsRegular() {
		app.openFilterEditor(at.Col.Index)
	}
}

func (app *Application) pointerDrag(me mouse.Event) {
	if d := app.drag; d != nil {
		size := max(d.startSize+me.Position.X-d.startX, minColumnWidth)
		app.cols.Resize(d.col, size)
		app.layout()
		return
	}
	at, ok := selection.CellFromEvent(app.view, me.Position.X, me.Position.Y)
	app.ctl.PointerMove(at, ok)
}

func (app *Application) pointerUp(me mouse.Event) {
	if d := app.drag; d != nil {
		app.drag = nil
		app.log.Debug("column resized", "col", d.col, "size", app.cols.GetSizeByRealIndex(d.col))
		return
	}
	at, ok := selection.CellFromEvent(app.view, me.Position.X, me.Position.Y)
	app.ctl.PointerUp(at, ok)
}

// handleFocusEvent abandons drags when the terminal loses focus, since the
// release will never be reported.
func (app *Application) handleFocusEvent(ev backend.Event) {
	if ev.Focused {
		return
	}
	app.tracker.Cancel()
	app.ctl.CancelDrag()
	app.drag = nil
}
