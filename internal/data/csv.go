package data

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource reads delimited text.
type CSVSource struct {
	path  string
	Comma rune
}

// NewCSVSource creates a source for a delimited file.
func NewCSVSource(path string, comma rune) *CSVSource {
	return &CSVSource{path: path, Comma: comma}
}

// Path returns the file path.
func (s *CSVSource) Path() string {
	return s.path
}

// Load reads the whole file. The context is checked between records.
func (s *CSVSource) Load(ctx context.Context) (*RowSet, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}
	defer f.Close()
	return s.read(ctx, f)
}

func (s *CSVSource) read(ctx context.Context, r io.Reader) (*RowSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = s.Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: s.path, Err: ErrEmpty}
	}
	if err != nil {
		return nil, s.parseError(err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	var records [][]string
	for {
		if len(records)%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, s.parseError(err)
		}
		records = append(records, rec)
	}
	return NewRowSet(s.path, header, records), nil
}

func (s *CSVSource) parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: s.path, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Path: s.path, Err: err}
}

func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
