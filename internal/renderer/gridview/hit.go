package gridview

import (
	"strconv"
)

// CellAttrsAt returns the row and column attributes of the cell container
// drawn at (x, y). Gutter cells report "header" as column; the header and
// filter rows report "header" and "filter" as row. The gutter cell of the
// filter row is not addressable.
func (v *View) CellAttrsAt(x, y int) (row, col string, ok bool) {
	l := v.layout
	if !l.Area.Contains(x, y) {
		return "", "", false
	}

	switch {
	case y == l.HeaderY:
		row = "header"
	case y == l.FilterY:
		row = "filter"
	default:
		r, found := slotAt(l.Rows, v.rows, l.FirstRow, y-l.DataY)
		if !found {
			return "", "", false
		}
		row = strconv.Itoa(r.Real)
	}

	if x < l.DataX {
		if row == "filter" {
			return "", "", false
		}
		return row, "header", true
	}
	c, found := slotAt(l.Cols, v.cols, l.FirstCol, x-l.DataX)
	if !found {
		return "", "", false
	}
	return row, strconv.Itoa(c.Real), true
}

// HeaderBorderAt reports the real column whose right border is drawn at
// (x, y) on the header row. Dragging that border resizes the column.
func (v *View) HeaderBorderAt(x, y int) (int, bool) {
	l := v.layout
	if y != l.HeaderY || !l.Area.Contains(x, y) {
		return -1, false
	}
	off := x - l.DataX
	for _, c := range l.Cols {
		if c.End()-1 == off && c.End() <= l.DataWidth {
			return c.Real, true
		}
	}
	return -1, false
}

// ColumnOffset returns the screen x at which a visible real column starts.
func (v *View) ColumnOffset(realCol int) (int, bool) {
	for _, c := range v.layout.Cols {
		if c.Real == realCol {
			return v.layout.DataX + c.Offset, true
		}
	}
	return 0, false
}
