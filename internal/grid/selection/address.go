// Package selection provides grid cell addresses and rectangular selection
// ranges over data cells and the header, filter and select-all pseudo-cells.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the component of a cell address.
type Kind uint8

const (
	// KindNone marks an absent component (the null cell).
	KindNone Kind = iota
	// KindRegular is a data row or column index.
	KindRegular
	// KindHeader is the column header row, or the row-number gutter when used
	// as a column.
	KindHeader
	// KindFilter is the per-column filter row. Valid as a row component only.
	KindFilter
	// KindUndefined marks a component that could not be resolved.
	KindUndefined
)

// String returns the serialized token for the kind.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindHeader:
		return "header"
	case KindFilter:
		return "filter"
	case KindUndefined:
		return "undefined"
	default:
		return "none"
	}
}

// Coord is one component of an address. Index is meaningful only for
// KindRegular.
type Coord struct {
	Kind  Kind
	Index int
}

// At returns a regular coordinate.
func At(index int) Coord {
	if index < 0 {
		return Coord{Kind: KindUndefined}
	}
	return Coord{Kind: KindRegular, Index: index}
}

// Header is the header coordinate.
var Header = Coord{Kind: KindHeader}

// Filter is the filter row coordinate.
var Filter = Coord{Kind: KindFilter}

// IsRegular reports whether the coordinate is a data index.
func (c Coord) IsRegular() bool {
	return c.Kind == KindRegular
}

// String returns the serialized form used in cell attributes.
func (c Coord) String() string {
	if c.Kind == KindRegular {
		return strconv.Itoa(c.Index)
	}
	return c.Kind.String()
}

// Address identifies a cell or pseudo-cell of the grid by real row and
// column indexes.
type Address struct {
	Row Coord
	Col Coord
}

var (
	// NullCell means "no cell".
	NullCell = Address{}
	// UndefinedCell means the cell could not be resolved.
	UndefinedCell = Address{Row: Coord{Kind: KindUndefined}, Col: Coord{Kind: KindUndefined}}
)

// Cell returns the address of a data cell.
func Cell(row, col int) Address {
	if row < 0 || col < 0 {
		return UndefinedCell
	}
	return Address{Row: At(row), Col: At(col)}
}

// HeaderCell returns the header cell of a column.
func HeaderCell(col int) Address {
	return Address{Row: Header, Col: At(col)}
}

// RowHeaderCell returns the gutter cell of a row.
func RowHeaderCell(row int) Address {
	return Address{Row: At(row), Col: Header}
}

// FilterCell returns the filter cell of a column.
func FilterCell(col int) Address {
	return Address{Row: Filter, Col: At(col)}
}

// SelectAll returns the select-all corner marker.
func SelectAll() Address {
	return Address{Row: Header, Col: Header}
}

// IsRegularCell reports whether both components are data indexes.
func IsRegularCell(a Address) bool {
	return a.Row.IsRegular() && a.Col.IsRegular()
}

// IsSelectAll reports whether a is the select-all marker.
func (a Address) IsSelectAll() bool {
	return a.Row.Kind == KindHeader && a.Col.Kind == KindHeader
}

// Valid reports whether the address can be selected.
func (a Address) Valid() bool {
	switch a.Row.Kind {
	case KindRegular, KindHeader, KindFilter:
	default:
		return false
	}
	switch a.Col.Kind {
	case KindRegular, KindHeader:
		return true
	default:
		return false
	}
}

// String returns "(row,col)" or "null"/"undefined".
func (a Address) String() string {
	switch {
	case a == NullCell:
		return "null"
	case a == UndefinedCell:
		return "undefined"
	default:
		return fmt.Sprintf("(%s,%s)", a.Row, a.Col)
	}
}

// ConvertCellAddress parses serialized row and column attributes. Numeric
// values become regular indexes, "header" and "filter" become the matching
// pseudo coordinates, anything else is undefined.
func ConvertCellAddress(rawRow, rawCol string) Address {
	return Address{Row: parseCoord(rawRow), Col: parseCoord(rawCol)}
}

func parseCoord(raw string) Coord {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "header":
		return Header
	case "filter":
		return Filter
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Coord{Kind: KindUndefined}
	}
	return At(n)
}

// Locator resolves the nearest addressable cell container at a screen
// position and returns its serialized row and column attributes.
type Locator interface {
	CellAttrsAt(x, y int) (row, col string, ok bool)
}

// CellFromEvent resolves the cell under an input event. It returns
// UndefinedCell and false when nothing addressable is under the position.
func CellFromEvent(loc Locator, x, y int) (Address, bool) {
	if loc == nil {
		return UndefinedCell, false
	}
	row, col, ok := loc.CellAttrsAt(x, y)
	if !ok {
		return UndefinedCell, false
	}
	a := ConvertCellAddress(row, col)
	if !a.Valid() {
		return UndefinedCell, false
	}
	return a, true
}
