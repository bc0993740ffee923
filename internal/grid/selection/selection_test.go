package selection

import (
	"testing"
)

func TestIsRegularCell(t *testing.T) {
	tests := []struct {
		addr Address
		want bool
	}{
		{Cell(0, 0), true},
		{Cell(3, 7), true},
		{HeaderCell(2), false},
		{RowHeaderCell(2), false},
		{FilterCell(1), false},
		{SelectAll(), false},
		{NullCell, false},
		{UndefinedCell, false},
		{Cell(-1, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.addr.String(), func(t *testing.T) {
			if got := IsRegularCell(tt.addr); got != tt.want {
				t.Errorf("IsRegularCell(%v) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestGetCellRangeRectangle(t *testing.T) {
	pairs := [][2]Address{
		{Cell(1, 1), Cell(3, 4)},
		{Cell(3, 4), Cell(1, 1)},
		{Cell(5, 0), Cell(2, 2)},
		{Cell(4, 4), Cell(4, 4)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		r := GetCellRange(a, b)
		if r.Kind != RangeCells {
			t.Fatalf("GetCellRange(%v, %v).Kind = %v, want cells", a, b, r.Kind)
		}

		dr := abs(a.Row.Index-b.Row.Index) + 1
		dc := abs(a.Col.Index-b.Col.Index) + 1
		cells := r.Cells()
		if len(cells) != dr*dc {
			t.Errorf("GetCellRange(%v, %v) has %d cells, want %d", a, b, len(cells), dr*dc)
		}

		seen := map[Address]bool{}
		for _, c := range cells {
			if seen[c] {
				t.Errorf("duplicate cell %v", c)
			}
			seen[c] = true
			if c.Row.Index < min(a.Row.Index, b.Row.Index) || c.Row.Index > max(a.Row.Index, b.Row.Index) ||
				c.Col.Index < min(a.Col.Index, b.Col.Index) || c.Col.Index > max(a.Col.Index, b.Col.Index) {
				t.Errorf("cell %v outside bounding box of %v, %v", c, a, b)
			}
			if !r.Contains(c) {
				t.Errorf("Contains(%v) = false for a materialized cell", c)
			}
		}
	}
}

func TestGetCellRangePseudoCells(t *testing.T) {
	tests := []struct {
		name string
		a, b Address
		kind RangeKind
		want []Address
	}{
		{
			name: "column headers",
			a:    HeaderCell(3),
			b:    HeaderCell(1),
			kind: RangeColumnHeaders,
			want: []Address{HeaderCell(1), HeaderCell(2), HeaderCell(3)},
		},
		{
			name: "filter folds into headers",
			a:    FilterCell(0),
			b:    HeaderCell(1),
			kind: RangeColumnHeaders,
			want: []Address{HeaderCell(0), HeaderCell(1)},
		},
		{
			name: "row headers",
			a:    RowHeaderCell(2),
			b:    RowHeaderCell(4),
			kind: RangeRowHeaders,
			want: []Address{RowHeaderCell(2), RowHeaderCell(3), RowHeaderCell(4)},
		},
		{
			name: "select all",
			a:    SelectAll(),
			b:    SelectAll(),
			kind: RangeAll,
			want: []Address{SelectAll()},
		},
		{
			name: "header and data cell",
			a:    HeaderCell(1),
			b:    Cell(2, 2),
			kind: RangeUnsupported,
		},
		{
			name: "row header and column header",
			a:    RowHeaderCell(1),
			b:    HeaderCell(1),
			kind: RangeUnsupported,
		},
		{
			name: "null endpoint",
			a:    NullCell,
			b:    Cell(0, 0),
			kind: RangeUnsupported,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := GetCellRange(tt.a, tt.b)
			if r.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", r.Kind, tt.kind)
			}
			got := r.Cells()
			if len(got) != len(tt.want) {
				t.Fatalf("Cells() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Cells()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRangeCovers(t *testing.T) {
	cols := GetCellRange(HeaderCell(2), HeaderCell(3))
	if !cols.Covers(100, 2) || cols.Covers(0, 4) {
		t.Error("column header range should cover whole columns 2..3")
	}
	rows := GetCellRange(RowHeaderCell(5), RowHeaderCell(5))
	if !rows.Covers(5, 40) || rows.Covers(6, 0) {
		t.Error("row header range should cover row 5 only")
	}
	if !GetCellRange(SelectAll(), SelectAll()).Covers(9, 9) {
		t.Error("select all should cover every cell")
	}
	if !Only(HeaderCell(1)).Covers(7, 1) {
		t.Error("single header cell should cover its column")
	}
	if Only(Cell(1, 1)).Covers(1, 2) {
		t.Error("single cell should not cover its neighbour")
	}
}

func TestRangeClamp(t *testing.T) {
	r := GetCellRange(Cell(2, 2), Cell(10, 10)).Clamp(5, 4)
	if r.Bottom != 4 || r.Right != 3 {
		t.Errorf("Clamp bounds = (%d,%d), want (4,3)", r.Bottom, r.Right)
	}
	if !GetCellRange(Cell(6, 0), Cell(7, 0)).Clamp(5, 4).IsEmpty() {
		t.Error("range fully out of bounds should clamp to empty")
	}
	if !Only(Cell(9, 0)).Clamp(5, 4).IsEmpty() {
		t.Error("single cell out of bounds should clamp to empty")
	}
}

func TestConvertCellAddress(t *testing.T) {
	tests := []struct {
		row, col string
		want     Address
	}{
		{"3", "4", Cell(3, 4)},
		{"header", "2", HeaderCell(2)},
		{"filter", "0", FilterCell(0)},
		{"7", "header", RowHeaderCell(7)},
		{"header", "header", SelectAll()},
		{" 12 ", "1", Cell(12, 1)},
	}
	for _, tt := range tests {
		if got := ConvertCellAddress(tt.row, tt.col); got != tt.want {
			t.Errorf("ConvertCellAddress(%q, %q) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}

	for _, raw := range [][2]string{{"x", "1"}, {"1", "filter"}, {"-3", "0"}} {
		if a := ConvertCellAddress(raw[0], raw[1]); a.Valid() {
			t.Errorf("ConvertCellAddress(%q, %q) = %v, want invalid", raw[0], raw[1], a)
		}
	}
}

type fakeLocator map[[2]int][2]string

func (f fakeLocator) CellAttrsAt(x, y int) (string, string, bool) {
	v, ok := f[[2]int{x, y}]
	return v[0], v[1], ok
}

func TestCellFromEvent(t *testing.T) {
	loc := fakeLocator{
		{1, 1}: {"4", "2"},
		{2, 0}: {"header", "0"},
		{3, 3}: {"bogus", "1"},
	}

	if a, ok := CellFromEvent(loc, 1, 1); !ok || a != Cell(4, 2) {
		t.Errorf("CellFromEvent(1,1) = %v, %v; want (4,2), true", a, ok)
	}
	if a, ok := CellFromEvent(loc, 2, 0); !ok || a != HeaderCell(0) {
		t.Errorf("CellFromEvent(2,0) = %v, %v; want (header,0), true", a, ok)
	}
	if _, ok := CellFromEvent(loc, 3, 3); ok {
		t.Error("CellFromEvent on malformed attributes should fail")
	}
	if _, ok := CellFromEvent(loc, 9, 9); ok {
		t.Error("CellFromEvent outside any cell should fail")
	}
	if _, ok := CellFromEvent(nil, 0, 0); ok {
		t.Error("CellFromEvent with nil locator should fail")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
