package data

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Column describes one column. Name is unique within a set; Label is what the
// header shows.
type Column struct {
	Name  string
	Label string
}

// RowSet is an immutable table of string cells.
type RowSet struct {
	// ID identifies this generation of the data.
	ID     uuid.UUID
	Source string

	Columns []Column
	// Rows are padded to len(Columns).
	Rows [][]string

	// Origin maps each row to its index in the unfiltered set it was
	// derived from. nil means identity.
	Origin []int
}

// NewRowSet builds a set from header labels and records. Empty and duplicate
// labels get unique names; short records are padded and long ones cut.
func NewRowSet(source string, header []string, records [][]string) *RowSet {
	rs := &RowSet{
		ID:      uuid.New(),
		Source:  source,
		Columns: makeColumns(header),
		Rows:    make([][]string, len(records)),
	}
	n := len(rs.Columns)
	for i, rec := range records {
		switch {
		case len(rec) == n:
			rs.Rows[i] = rec
		case len(rec) > n:
			rs.Rows[i] = rec[:n:n]
		default:
			row := make([]string, n)
			copy(row, rec)
			rs.Rows[i] = row
		}
	}
	return rs
}

func makeColumns(header []string) []Column {
	cols := make([]Column, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		label := strings.TrimSpace(h)
		name := label
		if name == "" {
			name = "column" + strconv.Itoa(i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name]++
		cols[i] = Column{Name: name, Label: label}
	}
	return cols
}

// ColumnCount returns the number of columns.
func (rs *RowSet) ColumnCount() int {
	return len(rs.Columns)
}

// RowCount returns the number of rows.
func (rs *RowSet) RowCount() int {
	return len(rs.Rows)
}

// HeaderLabel returns the label of a column, falling back to its name.
func (rs *RowSet) HeaderLabel(col int) string {
	if col < 0 || col >= len(rs.Columns) {
		return ""
	}
	if c := rs.Columns[col]; c.Label != "" {
		return c.Label
	}
	return rs.Columns[col].Name
}

// CellText returns a cell, or "" when out of range.
func (rs *RowSet) CellText(row, col int) string {
	if row < 0 || row >= len(rs.Rows) || col < 0 || col >= len(rs.Columns) {
		return ""
	}
	return rs.Rows[row][col]
}

// ColumnIndex returns the index of the column with the given name or label,
// or -1.
func (rs *RowSet) ColumnIndex(name string) int {
	return slices.IndexFunc(rs.Columns, func(c Column) bool {
		return c.Name == name || c.Label == name
	})
}

// OriginRow returns the unfiltered index of a row.
func (rs *RowSet) OriginRow(row int) int {
	if rs.Origin == nil || row < 0 || row >= len(rs.Origin) {
		return row
	}
	return rs.Origin[row]
}

// RowLabel returns the 1-based unfiltered row number.
func (rs *RowSet) RowLabel(row int) string {
	return strconv.Itoa(rs.OriginRow(row) + 1)
}

// SetCell returns a copy of rs with one cell replaced. Only the edited row is
// copied; rs itself is unchanged.
func SetCell(rs *RowSet, row, col int, value string) (*RowSet, error) {
	if row < 0 || row >= len(rs.Rows) || col < 0 || col >= len(rs.Columns) {
		return nil, fmt.Errorf("set cell (%d,%d): %w", row, col, ErrOutOfRange)
	}
	out := *rs
	out.ID = uuid.New()
	out.Rows = slices.Clone(rs.Rows)
	edited := slices.Clone(rs.Rows[row])
	edited[col] = value
	out.Rows[row] = edited
	return &out, nil
}
