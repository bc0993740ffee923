package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/data"
	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/input/key"
)

// runAction performs a bound action.
func (app *Application) runAction(ctx context.Context, action string) error {
	app.log.Debug("action", "name", action)
	switch action {
	case config.ActionQuit:
		return ErrQuit
	case config.ActionReload:
		app.reload(ctx)
	case config.ActionEdit:
		cur := app.ctl.CurrentCell()
		switch {
		case selection.IsRegularCell(cur):
			app.openCellEditor(cur)
		case cur.Row.Kind == selection.KindFilter && cur.Col.IsRegular():
			app.openFilterEditor(cur.Col.Index)
		}
	case config.ActionFilter:
		if cur := app.ctl.CurrentCell(); cur.Col.IsRegular() {
			app.openFilterEditor(cur.Col.Index)
		}
	case config.ActionClearFilters:
		app.clearFilters()
	case config.ActionGrow:
		app.resizeCurrent(1)
	case config.ActionShrink:
		app.resizeCurrent(-1)
	case config.ActionAutosize:
		app.runAutosize()
	case config.ActionHide:
		app.hideCurrent()
	case config.ActionShowAll:
		app.showAll()
	case config.ActionFreeze:
		app.toggleFreeze()
	case config.ActionJump:
		app.openJump()
	case config.ActionExport:
		if err := app.export(); err != nil {
			app.setError(err)
		}
	}
	return nil
}

// openCellEditor opens the line editor over a data cell.
func (app *Application) openCellEditor(at selection.Address) {
	if app.shown == nil || !selection.IsRegularCell(at) {
		return
	}
	row, col := app.rows.RealToModel(at.Row.Index), app.cols.RealToModel(at.Col.Index)
	if row < 0 || col < 0 {
		return
	}
	app.editor = newLineEditor(at, app.shown.OriginRow(row), col, app.shown.CellText(row, col))
	app.view.SetOverlay(app.editor.overlay())
}

// openFilterEditor moves the cursor to the filter cell of a real column and
// opens the line editor over it.
func (app *Application) openFilterEditor(realCol int) {
	col := app.cols.RealToModel(realCol)
	if app.base == nil || col < 0 {
		return
	}
	at := selection.FilterCell(realCol)
	app.ctl.Select(at)
	app.editor = newLineEditor(at, -1, col, app.filters[col])
	app.view.SetOverlay(app.editor.overlay())
}

func (app *Application) closeEditor() *lineEditor {
	e := app.editor
	app.editor = nil
	app.view.SetOverlay(nil)
	return e
}

// editKey feeds a key to the open editor. Up and Down commit a cell edit and
// then move; Tab commits and moves right.
func (app *Application) editKey(ev key.Event) {
	switch app.editor.handleKey(ev) {
	case editContinue:
		app.view.SetOverlay(app.editor.overlay())
	case editCancel:
		e := app.closeEditor()
		if e.isFilter() {
			app.focusGrid(e.target.Col.Index)
		}
	case editCommit:
		filter := app.editor.isFilter()
		app.commitEdit()
		if filter {
			return
		}
		switch ev.Key {
		case key.KeyUp, key.KeyDown:
			app.ctl.HandleKey(key.NewSpecialEvent(ev.Key, 0))
		case key.KeyTab:
			app.ctl.HandleKey(key.NewSpecialEvent(key.KeyRight, 0))
		}
	}
}

// commitEdit closes the editor and applies its text.
func (app *Application) commitEdit() {
	e := app.closeEditor()
	if e == nil {
		return
	}
	if e.isFilter() {
		app.commitFilter(e)
		return
	}

	text := e.String()
	if e.row < 0 || e.row >= app.base.RowCount() || app.base.CellText(e.row, e.col) == text {
		return
	}
	next, err := data.SetCell(app.base, e.row, e.col, text)
	if err != nil {
		app.setError(&OperationError{Op: "edit", Target: app.base.HeaderLabel(e.col), Err: err})
		return
	}
	app.base = next
	app.modified = true
	if err := app.refilter(); err != nil {
		app.setError(err)
		return
	}
	app.setStatus(fmt.Sprintf("edited %s row %s (not saved)", app.base.HeaderLabel(e.col), app.base.RowLabel(e.row)))
}

func (app *Application) commitFilter(e *lineEditor) {
	prev := app.filters[e.col]
	app.filters[e.col] = strings.TrimSpace(e.String())
	if err := app.refilter(); err != nil {
		app.filters[e.col] = prev
		app.setError(&OperationError{Op: "filter", Target: app.base.HeaderLabel(e.col), Err: err})
		return
	}
	app.focusGrid(e.target.Col.Index)
	app.setStatus(fmt.Sprintf("%d of %d rows", app.shown.RowCount(), app.base.RowCount()))
}

// focusGrid moves the cursor from a filter cell to the first row of its
// column.
func (app *Application) focusGrid(realCol int) {
	if app.rows.RealCount() > 0 {
		app.ctl.Select(selection.Cell(0, realCol))
	}
}

func (app *Application) clearFilters() {
	if app.base == nil {
		return
	}
	clear(app.filters)
	if err := app.refilter(); err != nil {
		app.setError(err)
		return
	}
	app.setStatus("filters cleared")
}

// refilter recomputes the shown rows from base and the filter texts.
func (app *Application) refilter() error {
	if app.base == nil {
		return nil
	}
	f, err := data.NewFilter(app.filters)
	if err != nil {
		return err
	}
	defer f.Close()
	ctx, cancel := context.WithTimeout(context.Background(), app.filterTimeout)
	defer cancel()
	shown, err := f.Apply(ctx, app.base)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("filter ran longer than %s: %w", app.filterTimeout, err)
	}
	if err != nil {
		return err
	}
	app.setShown(shown)
	return nil
}

// setShown replaces the rows on screen and re-derives everything that
// depends on the row count.
func (app *Application) setShown(rs *data.RowSet) {
	app.shown = rs
	app.view.SetTable(rs)
	app.view.SetFilters(app.filters)
	app.rows.SetCount(rs.RowCount())
	app.rows.BuildIndex()
	app.layout()
	app.ctl.Reset()
}

// currentColumn returns the real column under the cursor.
func (app *Application) currentColumn() (int, bool) {
	cur := app.ctl.CurrentCell()
	if !cur.Col.IsRegular() || cur.Col.Index >= app.cols.RealCount() {
		return 0, false
	}
	return cur.Col.Index, true
}

func (app *Application) resizeCurrent(delta int) {
	col, ok := app.currentColumn()
	if !ok {
		return
	}
	size := max(app.cols.GetSizeByRealIndex(col)+delta, minColumnWidth)
	app.cols.Resize(col, size)
	app.layout()
}

func (app *Application) hideCurrent() {
	col, ok := app.currentColumn()
	if !ok {
		return
	}
	m := app.cols.RealToModel(col)
	hidden := append(app.cols.HiddenIndexes(), m)
	frozen := slices.DeleteFunc(app.cols.FrozenIndexes(), func(i int) bool { return i == m })
	app.cols.SetExtraordinaryIndexes(hidden, frozen)
	app.ctl.Reset()
	app.setStatus(fmt.Sprintf("hid %s (%s shows all)", app.base.HeaderLabel(m), app.keys.keyFor(config.ActionShowAll)))
}

func (app *Application) showAll() {
	app.cols.SetExtraordinaryIndexes(nil, app.cols.FrozenIndexes())
	app.ctl.Reset()
}

// toggleFreeze freezes or unfreezes the current column and keeps the cursor
// on it at its new position.
func (app *Application) toggleFreeze() {
	col, ok := app.currentColumn()
	if !ok {
		return
	}
	m := app.cols.RealToModel(col)
	frozen := app.cols.FrozenIndexes()
	if i := slices.Index(frozen, m); i >= 0 {
		frozen = slices.Delete(frozen, i, i+1)
	} else {
		frozen = append(frozen, m)
	}
	app.cols.SetExtraordinaryIndexes(app.cols.HiddenIndexes(), frozen)
	app.layout()
	app.ctl.Reset()

	cur := app.ctl.CurrentCell()
	if real := app.cols.ModelToReal(m); real >= 0 {
		app.ctl.Select(selection.Address{Row: cur.Row, Col: selection.At(real)})
	}
}

// runAutosize measures the loaded rows and resizes every column not sized by
// the user, capped against the width of the data area.
func (app *Application) runAutosize() {
	if app.base == nil {
		return
	}
	app.autosize.Run(app.cols, app.base, app.view.Layout().DataWidth, app.measurer)
	app.layout()
	app.ctl.Reset()
}

// export writes the selected cells as JSON next to the source file.
func (app *Application) export() error {
	if app.shown == nil {
		return ErrNothingSelected
	}
	rows, cols := app.selectionIndexes()
	if len(rows) == 0 || len(cols) == 0 {
		return ErrNothingSelected
	}
	out, err := data.ExportJSON(app.shown, rows, cols)
	if err != nil {
		return &OperationError{Op: "export", Err: err}
	}
	path := exportPath(app.source.Path())
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return &OperationError{Op: "export", Target: path, Err: err}
	}
	app.log.Info("exported selection", "path", path, "rows", len(rows), "cols", len(cols))
	app.setStatus(fmt.Sprintf("exported %d rows to %s", len(rows), filepath.Base(path)))
	return nil
}

// exportPath names the export file after the source: data.csv exports to
// data.selection.json.
func exportPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".selection.json"
}

// selectionIndexes returns the model rows and columns covered by the
// selection, in screen order.
func (app *Application) selectionIndexes() (rows, cols []int) {
	nr, nc := app.rows.RealCount(), app.cols.RealCount()
	sel := app.ctl.Selection()

	var r0, r1, c0, c1 int
	switch sel.Kind {
	case selection.RangeCells:
		r0, r1, c0, c1 = sel.Top, sel.Bottom, sel.Left, sel.Right
	case selection.RangeColumnHeaders:
		r0, r1, c0, c1 = 0, nr-1, sel.Left, sel.Right
	case selection.RangeRowHeaders:
		r0, r1, c0, c1 = sel.Top, sel.Bottom, 0, nc-1
	case selection.RangeAll:
		r0, r1, c0, c1 = 0, nr-1, 0, nc-1
	case selection.RangeSingle:
		at := sel.Cells()[0]
		r0, r1 = span(at.Row, nr)
		c0, c1 = span(at.Col, nc)
	default:
		return nil, nil
	}

	for r := max(r0, 0); r <= min(r1, nr-1); r++ {
		rows = append(rows, app.rows.RealToModel(r))
	}
	for c := max(c0, 0); c <= min(c1, nc-1); c++ {
		cols = append(cols, app.cols.RealToModel(c))
	}
	return rows, cols
}

// span returns the real indexes a coordinate covers: itself when regular,
// the whole axis for header and filter coordinates.
func span(c selection.Coord, n int) (int, int) {
	if c.IsRegular() {
		return c.Index, c.Index
	}
	return 0, n - 1
}
