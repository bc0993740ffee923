package data

import (
	"fmt"
	"strings"

	"github.com/tidwall/sjson"
)

// ExportJSON serializes the given rows and columns of rs as a JSON array of
// objects keyed by column name. Rows and columns are written in the order
// given; out of range indexes are an error.
func ExportJSON(rs *RowSet, rows, cols []int) ([]byte, error) {
	for _, c := range cols {
		if c < 0 || c >= len(rs.Columns) {
			return nil, fmt.Errorf("export column %d: %w", c, ErrOutOfRange)
		}
	}

	paths := make([]string, len(cols))
	for i, c := range cols {
		paths[i] = escapePath(rs.Columns[c].Name)
	}

	out := []byte("[]")
	for _, r := range rows {
		if r < 0 || r >= len(rs.Rows) {
			return nil, fmt.Errorf("export row %d: %w", r, ErrOutOfRange)
		}
		obj := []byte("{}")
		var err error
		for i, c := range cols {
			obj, err = sjson.SetBytes(obj, paths[i], rs.Rows[r][c])
			if err != nil {
				return nil, fmt.Errorf("export %q: %w", rs.Columns[c].Name, err)
			}
		}
		out, err = sjson.SetRawBytes(out, "-1", obj)
		if err != nil {
			return nil, fmt.Errorf("export row %d: %w", r, err)
		}
	}
	return out, nil
}

// escapePath turns a column name into an sjson path naming a single key.
func escapePath(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		switch ch := name[i]; ch {
		case '.', '|', '#', '@', '*', '?', '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case ':', '!':
			if i == 0 {
				b.WriteByte('\\')
			}
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
