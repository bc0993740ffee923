package app

import (
	"path/filepath"
	"strings"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/renderer/statusline"
)

func (app *Application) setStatus(msg string) {
	app.status.SetMessage(msg, statusline.MessageInfo)
}

func (app *Application) setError(err error) {
	app.log.Warn("action failed", "err", err)
	app.status.SetMessage(err.Error(), statusline.MessageError)
}

func (app *Application) clearStatus() {
	app.status.ClearMessage()
}

// drawStatus refreshes the status line from the current state and draws it
// on the last screen row.
func (app *Application) drawStatus() {
	y := app.height - 1
	if y < 0 {
		return
	}
	s := app.status
	s.Resize(app.width)
	s.SetFilename(filepath.Base(app.source.Path()))
	s.SetModified(app.modified)
	s.SetMode(app.mode())
	s.SetCell(app.cellLabel())
	if app.shown != nil {
		s.SetRows(app.shown.RowCount(), app.base.RowCount())
	}
	s.Render(app.backend, y)
}

func (app *Application) mode() string {
	switch {
	case app.jump != nil:
		return statusline.ModeJump
	case app.editor == nil:
		return statusline.ModeGrid
	case app.editor.isFilter():
		return statusline.ModeFilter
	default:
		return statusline.ModeEdit
	}
}

// cellLabel names the cursor cell as "column:row", using the row numbers of
// the file.
func (app *Application) cellLabel() string {
	cur := app.ctl.CurrentCell()
	if app.shown == nil || !cur.Col.IsRegular() {
		return ""
	}
	label := app.shown.HeaderLabel(app.cols.RealToModel(cur.Col.Index))
	switch {
	case cur.Row.IsRegular():
		return label + ":" + app.shown.RowLabel(app.rows.RealToModel(cur.Row.Index))
	case cur.Row.Kind == selection.KindFilter:
		return label + ":filter"
	default:
		return label
	}
}

// help lists the keys of the most used actions.
func (app *Application) help() string {
	var parts []string
	for _, action := range []string{config.ActionQuit, config.ActionFilter, config.ActionEdit, config.ActionJump, config.ActionExport} {
		if k := app.keys.keyFor(action); k != "" {
			parts = append(parts, k+" "+action)
		}
	}
	return strings.Join(parts, "  ")
}
