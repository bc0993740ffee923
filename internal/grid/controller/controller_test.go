package controller

import (
	"testing"

	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/grid/sizing"
	"github.com/dshills/gridstorm/internal/input/key"
)

// newGrid builds a controller over colCount columns of width 10 and rowCount
// rows of height 1, with a 30x10 data area.
func newGrid(t *testing.T, colCount, rowCount int, opts ...Option) (*Controller, *sizing.SeriesSizes, *sizing.SeriesSizes) {
	t.Helper()
	cols := sizing.New(10, 100)
	cols.SetCount(colCount)
	cols.BuildIndex()
	rows := sizing.New(1, 1)
	rows.SetCount(rowCount)
	rows.BuildIndex()

	c := New(cols, rows, opts...)
	c.SetViewport(30, 10)
	return c, cols, rows
}

func press(c *Controller, k key.Key, mods key.Modifier) {
	c.HandleKey(key.NewSpecialEvent(k, mods))
}

func TestInitialState(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	if got := c.CurrentCell(); got != selection.Cell(0, 0) {
		t.Errorf("CurrentCell() = %v, want (0,0)", got)
	}
	if got := c.SelectedCells(); len(got) != 1 || got[0] != selection.Cell(0, 0) {
		t.Errorf("SelectedCells() = %v, want [(0,0)]", got)
	}
}

func TestNoScrollBeforeViewport(t *testing.T) {
	cols := sizing.New(10, 100)
	cols.SetCount(5)
	cols.BuildIndex()
	rows := sizing.New(1, 1)
	rows.SetCount(100)
	rows.BuildIndex()

	c := New(cols, rows)
	if c.FirstVisibleRow() != 0 || c.FirstVisibleCol() != 0 {
		t.Errorf("first visible = (%d,%d) before SetViewport, want (0,0)", c.FirstVisibleRow(), c.FirstVisibleCol())
	}
	c.SetViewport(30, 10)
	if c.FirstVisibleRow() != 0 || c.FirstVisibleCol() != 0 {
		t.Errorf("first visible = (%d,%d) after SetViewport, want (0,0)", c.FirstVisibleRow(), c.FirstVisibleCol())
	}
}

func TestEmptyGridIgnoresKeys(t *testing.T) {
	c, _, _ := newGrid(t, 0, 0)
	if c.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone)) {
		t.Error("HandleKey on empty grid should not be consumed")
	}
	if c.CurrentCell() != selection.UndefinedCell {
		t.Errorf("CurrentCell() = %v, want undefined", c.CurrentCell())
	}
}

func TestArrowNavigationClamps(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)

	press(c, key.KeyLeft, key.ModNone)
	if got := c.CurrentCell(); got != selection.Cell(0, 0) {
		t.Errorf("Left at column 0: CurrentCell() = %v, want (0,0)", got)
	}
	press(c, key.KeyRight, key.ModNone)
	press(c, key.KeyDown, key.ModNone)
	press(c, key.KeyDown, key.ModNone)
	if got := c.CurrentCell(); got != selection.Cell(2, 1) {
		t.Errorf("CurrentCell() = %v, want (2,1)", got)
	}
	press(c, key.KeyRight, key.ModCtrl)
	if got := c.CurrentCell(); got != selection.Cell(2, 4) {
		t.Errorf("Ctrl+Right: CurrentCell() = %v, want (2,4)", got)
	}
	press(c, key.KeyRight, key.ModNone)
	if got := c.CurrentCell(); got != selection.Cell(2, 4) {
		t.Errorf("Right at last column: CurrentCell() = %v, want (2,4)", got)
	}
}

func TestHomeEnd(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	c.Select(selection.Cell(10, 2))

	tests := []struct {
		k    key.Key
		mods key.Modifier
		want selection.Address
	}{
		{key.KeyEnd, key.ModNone, selection.Cell(10, 4)},
		{key.KeyHome, key.ModNone, selection.Cell(10, 0)},
		{key.KeyEnd, key.ModCtrl, selection.Cell(99, 4)},
		{key.KeyHome, key.ModCtrl, selection.Cell(0, 0)},
		{key.KeyDown, key.ModCtrl, selection.Cell(99, 0)},
		{key.KeyUp, key.ModCtrl, selection.Cell(0, 0)},
	}
	for _, tt := range tests {
		press(c, tt.k, tt.mods)
		if got := c.CurrentCell(); got != tt.want {
			t.Errorf("after %v: CurrentCell() = %v, want %v", key.NewSpecialEvent(tt.k, tt.mods), got, tt.want)
		}
	}
}

func TestPageDownScrolls(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)

	press(c, key.KeyPageDown, key.ModNone)
	if got := c.CurrentCell(); got != selection.Cell(10, 0) {
		t.Errorf("PageDown: CurrentCell() = %v, want (10,0)", got)
	}
	if got := c.FirstVisibleRow(); got != 1 {
		t.Errorf("PageDown: FirstVisibleRow() = %d, want 1", got)
	}
	press(c, key.KeyPageUp, key.ModNone)
	if got := c.CurrentCell(); got != selection.Cell(0, 0) {
		t.Errorf("PageUp: CurrentCell() = %v, want (0,0)", got)
	}
	if got := c.FirstVisibleRow(); got != 0 {
		t.Errorf("PageUp: FirstVisibleRow() = %d, want 0", got)
	}
}

func TestHorizontalScrollWithFrozenColumn(t *testing.T) {
	c, cols, _ := newGrid(t, 8, 10)
	cols.SetExtraordinaryIndexes(nil, []int{0})
	c.Reset()

	// 30 wide, 10 frozen: two scrollable columns fit.
	press(c, key.KeyRight, key.ModNone)
	press(c, key.KeyRight, key.ModNone)
	if got := c.FirstVisibleCol(); got != 0 {
		t.Errorf("FirstVisibleCol() = %d, want 0", got)
	}
	press(c, key.KeyRight, key.ModNone)
	if got := c.FirstVisibleCol(); got != 1 {
		t.Errorf("FirstVisibleCol() = %d, want 1", got)
	}
	press(c, key.KeyHome, key.ModNone)
	if got := c.FirstVisibleCol(); got != 1 {
		t.Errorf("moving to frozen column scrolled: FirstVisibleCol() = %d, want 1", got)
	}
}

func TestShiftExtendsFromAnchor(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	c.Select(selection.Cell(2, 1))

	press(c, key.KeyDown, key.ModShift)
	press(c, key.KeyRight, key.ModShift)
	sel := c.Selection()
	if sel.Kind != selection.RangeCells || sel.Top != 2 || sel.Bottom != 3 || sel.Left != 1 || sel.Right != 2 {
		t.Errorf("Selection() = %+v, want rows 2..3 cols 1..2", sel)
	}
	if got := len(c.SelectedCells()); got != 4 {
		t.Errorf("len(SelectedCells()) = %d, want 4", got)
	}

	press(c, key.KeyDown, key.ModNone)
	if got := len(c.SelectedCells()); got != 1 {
		t.Errorf("plain move keeps %d cells selected, want 1", got)
	}
	press(c, key.KeyUp, key.ModShift)
	sel = c.Selection()
	if sel.Top != 3 || sel.Bottom != 4 {
		t.Errorf("new shift anchor: rows %d..%d, want 3..4", sel.Top, sel.Bottom)
	}
}

func TestCtrlASelectsAll(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	if !c.HandleKey(key.NewRuneEvent('a', key.ModCtrl)) {
		t.Fatal("Ctrl+A not consumed")
	}
	got := c.SelectedCells()
	if len(got) != 1 || got[0] != selection.SelectAll() {
		t.Errorf("SelectedCells() = %v, want [(header,header)]", got)
	}
}

func TestUpFromFirstRowFocusesFilter(t *testing.T) {
	focused := -1
	c, _, _ := newGrid(t, 5, 100, WithHooks(Hooks{FocusFilter: func(col int) { focused = col }}))
	c.Select(selection.Cell(0, 3))

	press(c, key.KeyUp, key.ModNone)
	if focused != 3 {
		t.Errorf("FocusFilter column = %d, want 3", focused)
	}
	if got := c.CurrentCell(); got != selection.Cell(0, 3) {
		t.Errorf("CurrentCell() = %v, want unchanged (0,3)", got)
	}
}

func TestDragSelection(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)

	c.PointerDown(selection.Cell(1, 1), true)
	if !c.Dragging() {
		t.Fatal("Dragging() = false after PointerDown")
	}
	c.PointerMove(selection.Cell(3, 2), true)
	c.PointerMove(selection.UndefinedCell, false)
	c.PointerUp(selection.Cell(4, 2), true)

	if c.Dragging() {
		t.Error("Dragging() = true after PointerUp")
	}
	if got := c.CurrentCell(); got != selection.Cell(4, 2) {
		t.Errorf("CurrentCell() = %v, want (4,2)", got)
	}
	if got := len(c.SelectedCells()); got != 8 {
		t.Errorf("len(SelectedCells()) = %d, want 8", got)
	}

	c.PointerMove(selection.Cell(9, 4), true)
	if got := c.CurrentCell(); got != selection.Cell(4, 2) {
		t.Errorf("move without drag changed CurrentCell() to %v", got)
	}
}

func TestDragHeaders(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	c.PointerDown(selection.FilterCell(0), true)
	c.PointerUp(selection.HeaderCell(2), true)

	sel := c.Selection()
	if sel.Kind != selection.RangeColumnHeaders || sel.Left != 0 || sel.Right != 2 {
		t.Errorf("Selection() = %+v, want column headers 0..2", sel)
	}
}

func TestPointerUpOutsideEndsDrag(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	c.PointerDown(selection.Cell(1, 1), true)
	c.PointerUp(selection.UndefinedCell, false)
	if c.Dragging() {
		t.Error("Dragging() = true after release outside the grid")
	}
	if got := c.CurrentCell(); got != selection.Cell(1, 1) {
		t.Errorf("CurrentCell() = %v, want (1,1)", got)
	}
}

func TestInvalidPointerTargetIgnored(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	c.PointerDown(selection.UndefinedCell, false)
	if c.Dragging() || c.CurrentCell() != selection.Cell(0, 0) {
		t.Error("invalid pointer target changed state")
	}
}

func TestClickCurrentCellOpensEditor(t *testing.T) {
	var opened []selection.Address
	editing := false
	c, _, _ := newGrid(t, 5, 100, WithHooks(Hooks{
		OpenEditor: func(a selection.Address) { opened = append(opened, a) },
		IsEditing:  func() bool { return editing },
	}))

	c.PointerDown(selection.Cell(2, 2), true)
	c.PointerUp(selection.Cell(2, 2), true)
	if len(opened) != 0 {
		t.Fatalf("first click opened editor: %v", opened)
	}
	c.PointerDown(selection.Cell(2, 2), true)
	c.PointerUp(selection.Cell(2, 2), true)
	if len(opened) != 1 || opened[0] != selection.Cell(2, 2) {
		t.Fatalf("second click opened %v, want [(2,2)]", opened)
	}

	editing = true
	c.PointerDown(selection.Cell(2, 2), true)
	if len(opened) != 1 {
		t.Error("editor reopened while editing")
	}

	editing = false
	c.PointerDown(selection.HeaderCell(1), true)
	c.PointerDown(selection.HeaderCell(1), true)
	if len(opened) != 1 {
		t.Error("clicking a header cell twice opened the editor")
	}
}

func TestKeysIgnoredWhileEditing(t *testing.T) {
	editing := true
	c, _, _ := newGrid(t, 5, 100, WithHooks(Hooks{IsEditing: func() bool { return editing }}))

	for _, ev := range []key.Event{
		key.NewSpecialEvent(key.KeyDown, key.ModNone),
		key.NewSpecialEvent(key.KeyRight, key.ModShift),
		key.NewRuneEvent('a', key.ModCtrl),
	} {
		if c.HandleKey(ev) {
			t.Errorf("HandleKey(%v) consumed while editing", ev)
		}
	}
	if got := c.CurrentCell(); got != selection.Cell(0, 0) {
		t.Errorf("CurrentCell() = %v, want (0,0)", got)
	}
	if got := c.Selection().Kind; got != selection.RangeSingle {
		t.Errorf("Selection().Kind = %v, want single", got)
	}

	editing = false
	if !c.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone)) {
		t.Error("HandleKey(Down) not consumed after editing ended")
	}
	if got := c.CurrentCell(); got != selection.Cell(1, 0) {
		t.Errorf("CurrentCell() = %v, want (1,0)", got)
	}
}

func TestResetClampsCurrentCell(t *testing.T) {
	c, cols, rows := newGrid(t, 5, 100)
	c.Select(selection.Cell(80, 4))
	press(c, key.KeyUp, key.ModShift)

	rows.SetCount(50)
	rows.BuildIndex()
	cols.SetCount(3)
	cols.BuildIndex()
	c.Reset()

	if got := c.CurrentCell(); got != selection.Cell(49, 2) {
		t.Errorf("CurrentCell() = %v, want (49,2)", got)
	}
	if got := c.SelectedCells(); len(got) != 1 || got[0] != selection.Cell(49, 2) {
		t.Errorf("SelectedCells() = %v, want [(49,2)]", got)
	}
	if c.FirstVisibleRow() > 40 {
		t.Errorf("FirstVisibleRow() = %d, want <= 40", c.FirstVisibleRow())
	}

	rows.SetCount(0)
	rows.BuildIndex()
	c.Reset()
	if c.CurrentCell() != selection.UndefinedCell {
		t.Errorf("CurrentCell() on empty data = %v, want undefined", c.CurrentCell())
	}

	rows.SetCount(10)
	rows.BuildIndex()
	c.Reset()
	if got := c.CurrentCell(); got != selection.Cell(0, 0) {
		t.Errorf("CurrentCell() after data returns = %v, want (0,0)", got)
	}
}

func TestResetKeepsInRangeCell(t *testing.T) {
	c, _, rows := newGrid(t, 5, 100)
	c.Select(selection.Cell(7, 3))
	rows.SetCount(200)
	rows.BuildIndex()
	c.Reset()
	if got := c.CurrentCell(); got != selection.Cell(7, 3) {
		t.Errorf("CurrentCell() = %v, want (7,3)", got)
	}
}

func TestScrollByClamps(t *testing.T) {
	c, _, _ := newGrid(t, 5, 100)
	c.ScrollBy(1000, 1000)
	if got := c.FirstVisibleRow(); got != 90 {
		t.Errorf("FirstVisibleRow() = %d, want 90", got)
	}
	if got := c.FirstVisibleCol(); got != 2 {
		t.Errorf("FirstVisibleCol() = %d, want 2", got)
	}
	c.ScrollBy(-5000, -5000)
	if c.FirstVisibleRow() != 0 || c.FirstVisibleCol() != 0 {
		t.Errorf("ScrollBy negative = %d,%d, want 0,0", c.FirstVisibleRow(), c.FirstVisibleCol())
	}
}
