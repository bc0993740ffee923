package data

import (
	"context"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads one sheet of a workbook.
type XLSXSource struct {
	path string
	// Sheet is the sheet to read; empty means the first.
	Sheet string
}

// NewXLSXSource creates a source for a workbook.
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, Sheet: sheet}
}

// Path returns the file path.
func (s *XLSXSource) Path() string {
	return s.path
}

// Load reads the sheet's formatted cell values.
func (s *XLSXSource) Load(ctx context.Context) (*RowSet, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	sheet := s.Sheet
	switch {
	case sheet == "" && len(sheets) > 0:
		sheet = sheets[0]
	case !slices.Contains(sheets, sheet):
		return nil, fmt.Errorf("load xlsx %s: %q: %w", s.path, sheet, ErrNoSheet)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("load xlsx %s: %w", s.path, err)
	}
	defer rows.Close()

	var header []string
	var records [][]string
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cols, err := rows.Columns()
		if err != nil {
			return nil, &ParseError{Path: s.path, Line: len(records) + 2, Err: err}
		}
		if header == nil {
			header = cols
			if header == nil {
				header = []string{}
			}
			continue
		}
		records = append(records, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	if len(header) == 0 {
		return nil, &ParseError{Path: s.path, Err: ErrEmpty}
	}
	return NewRowSet(s.path, header, records), nil
}
