package data

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Source loads a row set.
type Source interface {
	Load(ctx context.Context) (*RowSet, error)
	Path() string
}

// Options tune how Open picks and configures a source.
type Options struct {
	// Sheet names the workbook sheet to read. Empty means the first one.
	Sheet string
}

// Open returns the source for path based on its extension.
func Open(path string, opts Options) (Source, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return &CSVSource{path: path, Comma: ','}, nil
	case ".tsv", ".tab":
		return &CSVSource{path: path, Comma: '\t'}, nil
	case ".json":
		return &JSONSource{path: path}, nil
	case ".jsonl", ".ndjson":
		return &JSONSource{path: path, Lines: true}, nil
	case ".xlsx", ".xlsm":
		return &XLSXSource{path: path, Sheet: opts.Sheet}, nil
	default:
		return nil, fmt.Errorf("open %s: %w", path, ErrUnsupportedFormat)
	}
}
