package selection

// RangeKind describes the shape of a Range.
type RangeKind uint8

const (
	// RangeUnsupported is the empty result of combining endpoints that do not
	// form a selectable shape.
	RangeUnsupported RangeKind = iota
	// RangeCells is a rectangle of data cells.
	RangeCells
	// RangeColumnHeaders is a horizontal strip of column header cells.
	RangeColumnHeaders
	// RangeRowHeaders is a vertical strip of row gutter cells.
	RangeRowHeaders
	// RangeAll is the select-all marker.
	RangeAll
	// RangeSingle holds exactly one address of any valid kind.
	RangeSingle
)

// String returns a string representation of the kind.
func (k RangeKind) String() string {
	switch k {
	case RangeCells:
		return "cells"
	case RangeColumnHeaders:
		return "column-headers"
	case RangeRowHeaders:
		return "row-headers"
	case RangeAll:
		return "all"
	case RangeSingle:
		return "single"
	default:
		return "unsupported"
	}
}

// Range is a set of addresses built from two endpoints. Bounds are inclusive
// and only the ones relevant to the kind are set.
type Range struct {
	Kind RangeKind

	Top, Bottom int
	Left, Right int

	single Address
}

// Only returns a range holding just a. Invalid addresses give an unsupported
// range.
func Only(a Address) Range {
	if !a.Valid() {
		return Range{}
	}
	return Range{Kind: RangeSingle, single: a}
}

// GetCellRange combines two endpoints into a range. Filter row endpoints are
// folded into the header row first, so dragging from a filter cell selects
// column headers.
func GetCellRange(a, b Address) Range {
	a, b = foldFilter(a), foldFilter(b)

	switch {
	case IsRegularCell(a) && IsRegularCell(b):
		return Range{
			Kind:   RangeCells,
			Top:    min(a.Row.Index, b.Row.Index),
			Bottom: max(a.Row.Index, b.Row.Index),
			Left:   min(a.Col.Index, b.Col.Index),
			Right:  max(a.Col.Index, b.Col.Index),
		}
	case a.Row.Kind == KindHeader && b.Row.Kind == KindHeader && a.Col.IsRegular() && b.Col.IsRegular():
		return Range{
			Kind:  RangeColumnHeaders,
			Left:  min(a.Col.Index, b.Col.Index),
			Right: max(a.Col.Index, b.Col.Index),
		}
	case a.Col.Kind == KindHeader && b.Col.Kind == KindHeader && a.Row.IsRegular() && b.Row.IsRegular():
		return Range{
			Kind:   RangeRowHeaders,
			Top:    min(a.Row.Index, b.Row.Index),
			Bottom: max(a.Row.Index, b.Row.Index),
		}
	case a.IsSelectAll() && b.IsSelectAll():
		return Range{Kind: RangeAll}
	default:
		return Range{Kind: RangeUnsupported}
	}
}

func foldFilter(a Address) Address {
	if a.Row.Kind == KindFilter {
		a.Row = Header
	}
	return a
}

// IsEmpty reports whether the range selects nothing.
func (r Range) IsEmpty() bool {
	return r.Kind == RangeUnsupported
}

// Len returns the number of addresses in the range.
func (r Range) Len() int {
	switch r.Kind {
	case RangeCells:
		return (r.Bottom - r.Top + 1) * (r.Right - r.Left + 1)
	case RangeColumnHeaders:
		return r.Right - r.Left + 1
	case RangeRowHeaders:
		return r.Bottom - r.Top + 1
	case RangeAll, RangeSingle:
		return 1
	default:
		return 0
	}
}

// Cells materializes the addresses of the range, row by row.
func (r Range) Cells() []Address {
	out := make([]Address, 0, r.Len())
	switch r.Kind {
	case RangeCells:
		for row := r.Top; row <= r.Bottom; row++ {
			for col := r.Left; col <= r.Right; col++ {
				out = append(out, Cell(row, col))
			}
		}
	case RangeColumnHeaders:
		for col := r.Left; col <= r.Right; col++ {
			out = append(out, HeaderCell(col))
		}
	case RangeRowHeaders:
		for row := r.Top; row <= r.Bottom; row++ {
			out = append(out, RowHeaderCell(row))
		}
	case RangeAll:
		out = append(out, SelectAll())
	case RangeSingle:
		out = append(out, r.single)
	}
	return out
}

// Contains reports whether a is one of the range's addresses.
func (r Range) Contains(a Address) bool {
	switch r.Kind {
	case RangeCells:
		return IsRegularCell(a) &&
			a.Row.Index >= r.Top && a.Row.Index <= r.Bottom &&
			a.Col.Index >= r.Left && a.Col.Index <= r.Right
	case RangeColumnHeaders:
		return a.Row.Kind == KindHeader && a.Col.IsRegular() &&
			a.Col.Index >= r.Left && a.Col.Index <= r.Right
	case RangeRowHeaders:
		return a.Col.Kind == KindHeader && a.Row.IsRegular() &&
			a.Row.Index >= r.Top && a.Row.Index <= r.Bottom
	case RangeAll:
		return a.IsSelectAll()
	case RangeSingle:
		return a == r.single
	default:
		return false
	}
}

// Covers reports whether the data cell at (row, col) is highlighted by the
// range: directly, through its column or row header, or by select-all.
func (r Range) Covers(row, col int) bool {
	switch r.Kind {
	case RangeCells:
		return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
	case RangeColumnHeaders:
		return col >= r.Left && col <= r.Right
	case RangeRowHeaders:
		return row >= r.Top && row <= r.Bottom
	case RangeAll:
		return true
	case RangeSingle:
		return r.single == Cell(row, col) ||
			(r.single.Row.Kind == KindHeader && r.single.Col == At(col)) ||
			(r.single.Col.Kind == KindHeader && r.single.Row == At(row))
	default:
		return false
	}
}

// Clamp returns the range restricted to rows below rowCount and columns below
// colCount. A range left with nothing in bounds becomes unsupported.
func (r Range) Clamp(rowCount, colCount int) Range {
	switch r.Kind {
	case RangeCells:
		if r.Top >= rowCount || r.Left >= colCount {
			return Range{}
		}
		r.Bottom = min(r.Bottom, rowCount-1)
		r.Right = min(r.Right, colCount-1)
	case RangeColumnHeaders:
		if r.Left >= colCount {
			return Range{}
		}
		r.Right = min(r.Right, colCount-1)
	case RangeRowHeaders:
		if r.Top >= rowCount {
			return Range{}
		}
		r.Bottom = min(r.Bottom, rowCount-1)
	case RangeSingle:
		a := r.single
		if (a.Row.IsRegular() && a.Row.Index >= rowCount) || (a.Col.IsRegular() && a.Col.Index >= colCount) {
			return Range{}
		}
	}
	return r
}
