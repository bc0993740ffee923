package app

import (
	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/input/fuzzy"
	"github.com/dshills/gridstorm/internal/input/key"
)

// columnJump is the prompt that moves the cursor to the visible column
// whose header best matches the typed text.
type columnJump struct {
	prompt *lineEditor
	// from is restored when the prompt is cancelled or nothing matches.
	from selection.Address
}

func (app *Application) openJump() {
	if app.shown == nil || app.cols.RealCount() == 0 {
		return
	}
	app.jump = &columnJump{
		prompt: newLineEditor(selection.NullCell, -1, -1, ""),
		from:   app.ctl.CurrentCell(),
	}
	app.setStatus("column: ")
}

// jumpKey feeds a key to the jump prompt. The cursor follows the best match
// while typing.
func (app *Application) jumpKey(ev key.Event) {
	j := app.jump
	switch j.prompt.handleKey(ev) {
	case editContinue:
		q := j.prompt.String()
		if col, ok := app.jumpTarget(q); ok {
			app.ctl.Select(selection.Address{Row: j.from.Row, Col: selection.At(col)})
		} else {
			app.ctl.Select(j.from)
		}
		app.setStatus("column: " + q)
	case editCommit:
		app.jump = nil
		q := j.prompt.String()
		if _, ok := app.jumpTarget(q); !ok {
			app.ctl.Select(j.from)
			app.setError(&OperationError{Op: "jump", Target: q, Err: ErrNoMatch})
			return
		}
		app.clearStatus()
	case editCancel:
		app.jump = nil
		app.ctl.Select(j.from)
		app.clearStatus()
	}
}

// jumpTarget returns the real column whose header ranks first for q.
func (app *Application) jumpTarget(q string) (int, bool) {
	labels := make([]string, app.cols.RealCount())
	for i := range labels {
		labels[i] = app.shown.HeaderLabel(app.cols.RealToModel(i))
	}
	ranked := fuzzy.Rank(q, labels)
	if len(ranked) == 0 {
		return 0, false
	}
	return ranked[0].Index, true
}
