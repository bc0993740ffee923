// Package controller implements the navigation and selection state machine
// of the grid.
//
// The controller owns the current cell, the selected range, the drag and
// shift anchors, and the first visible scroll index of each axis. Cell
// addresses use real (rendered) indexes; the first visible indexes are scroll
// indexes. Pointer handlers are meant to be called at pointer-event frequency
// and do no coalescing.
//
// A Controller is not safe for concurrent use. It shares the two SeriesSizes
// with the view and must be driven from the same goroutine that mutates them.
package controller

import (
	"log/slog"

	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/grid/sizing"
	"github.com/dshills/gridstorm/internal/input/key"
)

// Hooks connect the controller to editors owned by the host.
type Hooks struct {
	// OpenEditor is called when a current data cell is clicked again.
	OpenEditor func(cell selection.Address)

	// FocusFilter is called when Up is pressed on the first row.
	FocusFilter func(col int)

	// IsEditing reports whether an editor is open.
	IsEditing func() bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithHooks sets the editor hooks.
func WithHooks(h Hooks) Option {
	return func(c *Controller) {
		c.hooks = h
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller drives cursor movement and selection over two sizing axes.
type Controller struct {
	cols  *sizing.SeriesSizes
	rows  *sizing.SeriesSizes
	hooks Hooks
	log   *slog.Logger

	currentCell selection.Address
	selected    selection.Range
	dragAnchor  selection.Address
	shiftAnchor selection.Address

	firstVisibleRow int
	firstVisibleCol int

	// Data area in pixels, without header rows and gutter.
	viewWidth  int
	viewHeight int
}

// New creates a controller over the column and row axes.
func New(cols, rows *sizing.SeriesSizes, opts ...Option) *Controller {
	c := &Controller{
		cols:        cols,
		rows:        rows,
		log:         slog.New(slog.DiscardHandler),
		currentCell: selection.UndefinedCell,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// CurrentCell returns the cursor cell.
func (c *Controller) CurrentCell() selection.Address {
	return c.currentCell
}

// Selection returns the selected range.
func (c *Controller) Selection() selection.Range {
	return c.selected
}

// SelectedCells returns the selected addresses.
func (c *Controller) SelectedCells() []selection.Address {
	return c.selected.Cells()
}

// FirstVisibleRow returns the scroll index of the first rendered data row.
func (c *Controller) FirstVisibleRow() int {
	return c.firstVisibleRow
}

// FirstVisibleCol returns the scroll index of the first rendered scrollable
// column.
func (c *Controller) FirstVisibleCol() int {
	return c.firstVisibleCol
}

// Dragging reports whether a pointer drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragAnchor != selection.NullCell
}

// SetViewport sets the size of the data area, excluding header rows and the
// row gutter but including frozen items.
func (c *Controller) SetViewport(width, height int) {
	c.viewWidth = max(width, 0)
	c.viewHeight = max(height, 0)
	c.clampScroll()
}

func (c *Controller) scrollWidth() int {
	return max(c.viewWidth-c.cols.GetFrozenSize(), 0)
}

func (c *Controller) scrollHeight() int {
	return max(c.viewHeight-c.rows.GetFrozenSize(), 0)
}

// VisibleRowCount returns how many scrollable rows the viewport shows.
func (c *Controller) VisibleRowCount() int {
	return max(c.rows.GetVisibleScrollCount(c.firstVisibleRow, c.scrollHeight()), 1)
}

// PointerDown handles a button press over a. Clicking the current data cell
// again opens the editor when none is open.
func (c *Controller) PointerDown(a selection.Address, ok bool) {
	if !ok || !a.Valid() {
		return
	}
	if selection.IsRegularCell(a) && a == c.currentCell && !c.editing() && c.hooks.OpenEditor != nil {
		c.log.Debug("open editor", "cell", a)
		c.hooks.OpenEditor(a)
	}
	c.currentCell = a
	c.dragAnchor = a
	c.shiftAnchor = selection.NullCell
	c.selected = selection.Only(a)
}

// PointerMove extends the drag selection to a.
func (c *Controller) PointerMove(a selection.Address, ok bool) {
	if !c.Dragging() || !ok || !a.Valid() {
		return
	}
	c.currentCell = a
	c.selected = selection.GetCellRange(c.dragAnchor, a)
}

// PointerUp finishes a drag. The drag ends even when the release happens
// outside the grid; the selection is then left as of the last move.
func (c *Controller) PointerUp(a selection.Address, ok bool) {
	if !c.Dragging() {
		return
	}
	c.PointerMove(a, ok)
	c.dragAnchor = selection.NullCell
}

// CancelDrag abandons a drag without changing the selection.
func (c *Controller) CancelDrag() {
	c.dragAnchor = selection.NullCell
}

// SelectAll selects the select-all marker.
func (c *Controller) SelectAll() {
	c.shiftAnchor = selection.NullCell
	c.selected = selection.GetCellRange(selection.SelectAll(), selection.SelectAll())
	c.log.Debug("select all")
}

// Select moves the cursor to a and selects only it, scrolling it into view.
func (c *Controller) Select(a selection.Address) {
	if !a.Valid() {
		return
	}
	c.currentCell = a
	c.dragAnchor = selection.NullCell
	c.shiftAnchor = selection.NullCell
	c.selected = selection.Only(a)
	c.scrollIntoView()
}

// HandleKey applies a navigation key. It reports whether the key was
// consumed. Keys are ignored while an editor is open.
func (c *Controller) HandleKey(ev key.Event) bool {
	if c.editing() {
		return false
	}
	ctrl := ev.Modifiers.HasCtrl()
	if ev.Key == key.KeyRune && ctrl && (ev.Rune == 'a' || ev.Rune == 'A') {
		c.SelectAll()
		return true
	}
	if !ev.Key.IsNavigation() || !selection.IsRegularCell(c.currentCell) {
		return false
	}

	rowCount, colCount := c.rows.RealCount(), c.cols.RealCount()
	row, col := c.currentCell.Row.Index, c.currentCell.Col.Index
	shift := ev.Modifiers.HasShift()

	switch ev.Key {
	case key.KeyUp:
		switch {
		case ctrl:
			row = 0
		case row == 0 && !shift:
			if c.hooks.FocusFilter != nil {
				c.hooks.FocusFilter(col)
			}
			return true
		default:
			row--
		}
	case key.KeyDown:
		if ctrl {
			row = rowCount - 1
		} else {
			row++
		}
	case key.KeyLeft:
		if ctrl {
			col = 0
		} else {
			col--
		}
	case key.KeyRight:
		if ctrl {
			col = colCount - 1
		} else {
			col++
		}
	case key.KeyHome:
		col = 0
		if ctrl {
			row = 0
		}
	case key.KeyEnd:
		col = colCount - 1
		if ctrl {
			row = rowCount - 1
		}
	case key.KeyPageUp:
		row -= c.VisibleRowCount()
	case key.KeyPageDown:
		row += c.VisibleRowCount()
	}

	c.moveTo(row, col, shift)
	return true
}

func (c *Controller) moveTo(row, col int, extend bool) {
	rowCount, colCount := c.rows.RealCount(), c.cols.RealCount()
	if rowCount == 0 || colCount == 0 {
		return
	}
	next := selection.Cell(clamp(row, 0, rowCount-1), clamp(col, 0, colCount-1))
	if extend {
		if c.shiftAnchor == selection.NullCell {
			c.shiftAnchor = c.currentCell
		}
		c.selected = selection.GetCellRange(c.shiftAnchor, next)
	} else {
		c.shiftAnchor = selection.NullCell
		c.selected = selection.Only(next)
	}
	c.currentCell = next
	c.scrollIntoView()
}

// ScrollBy moves the first visible row and column by the given steps.
func (c *Controller) ScrollBy(dRows, dCols int) {
	c.firstVisibleRow += dRows
	c.firstVisibleCol += dCols
	c.clampScroll()
}

// Reset re-derives state after the rows or columns were replaced or
// re-indexed. The current cell is kept when still in range and clamped to the
// closest valid cell otherwise; anchors are dropped.
func (c *Controller) Reset() {
	rowCount, colCount := c.rows.RealCount(), c.cols.RealCount()
	c.dragAnchor = selection.NullCell
	c.shiftAnchor = selection.NullCell

	if rowCount == 0 || colCount == 0 {
		c.currentCell = selection.UndefinedCell
		c.selected = selection.Range{}
		c.firstVisibleRow, c.firstVisibleCol = 0, 0
		return
	}

	cur := c.currentCell
	if !cur.Valid() {
		cur = selection.Cell(0, 0)
	}
	if cur.Row.IsRegular() {
		cur.Row = selection.At(min(cur.Row.Index, rowCount-1))
	}
	if cur.Col.IsRegular() {
		cur.Col = selection.At(min(cur.Col.Index, colCount-1))
	}
	c.currentCell = cur

	c.selected = c.selected.Clamp(rowCount, colCount)
	if c.selected.IsEmpty() {
		c.selected = selection.Only(cur)
	}
	c.clampScroll()
	c.scrollIntoView()
}

func (c *Controller) scrollIntoView() {
	cur := c.currentCell
	if cur.Col.IsRegular() {
		if si := cur.Col.Index - c.cols.FrozenCount(); si >= 0 {
			c.firstVisibleCol = c.cols.ScrollInView(c.firstVisibleCol, si, c.scrollWidth())
		}
	}
	if cur.Row.IsRegular() {
		if si := cur.Row.Index - c.rows.FrozenCount(); si >= 0 {
			c.firstVisibleRow = c.rows.ScrollInView(c.firstVisibleRow, si, c.scrollHeight())
		}
	}
}

func (c *Controller) clampScroll() {
	c.firstVisibleRow = clamp(c.firstVisibleRow, 0, lastFirst(c.rows, c.scrollHeight()))
	c.firstVisibleCol = clamp(c.firstVisibleCol, 0, lastFirst(c.cols, c.scrollWidth()))
}

// lastFirst returns the largest useful first visible index: the one that
// shows the last item whole at the end of the viewport.
func lastFirst(s *sizing.SeriesSizes, viewport int) int {
	sc := s.ScrollCount()
	if sc == 0 {
		return 0
	}
	return s.ScrollInView(0, sc-1, viewport)
}

func (c *Controller) editing() bool {
	return c.hooks.IsEditing != nil && c.hooks.IsEditing()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
