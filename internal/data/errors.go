package data

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a file extension with no source.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmpty indicates a file without a header.
	ErrEmpty = errors.New("no header row")

	// ErrNoSheet indicates a workbook without the requested sheet.
	ErrNoSheet = errors.New("sheet not found")

	// ErrOutOfRange indicates a row or column index outside the set.
	ErrOutOfRange = errors.New("index out of range")

	// ErrBadFilter indicates a filter expression that does not compile.
	ErrBadFilter = errors.New("invalid filter expression")
)

// ParseError describes malformed input at a position in a file.
type ParseError struct {
	Path string
	// Line is 1-based; 0 when unknown.
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
