package data

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// JSONSource reads an array of objects or JSON lines. Columns are the union
// of object keys in first-seen order. Nested values are kept as raw JSON;
// non-object elements go to a column named "value".
type JSONSource struct {
	path string
	// Lines forces JSON lines parsing.
	Lines bool
}

// NewJSONSource creates a source for a JSON file.
func NewJSONSource(path string, lines bool) *JSONSource {
	return &JSONSource{path: path, Lines: lines}
}

// Path returns the file path.
func (s *JSONSource) Path() string {
	return s.path
}

// Load reads the whole file.
func (s *JSONSource) Load(ctx context.Context) (*RowSet, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load json: %w", err)
	}
	return s.parse(ctx, raw)
}

func (s *JSONSource) parse(ctx context.Context, raw []byte) (*RowSet, error) {
	b := newTableBuilder()
	trimmed := bytes.TrimSpace(raw)

	if !s.Lines && len(trimmed) > 0 && trimmed[0] == '[' {
		if !gjson.ValidBytes(trimmed) {
			return nil, &ParseError{Path: s.path, Err: errors.New("malformed JSON array")}
		}
		var cerr error
		gjson.ParseBytes(trimmed).ForEach(func(_, v gjson.Result) bool {
			if cerr = ctx.Err(); cerr != nil {
				return false
			}
			b.add(v)
			return true
		})
		if cerr != nil {
			return nil, cerr
		}
		return b.build(s.path)
	}

	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(text) {
			return nil, &ParseError{Path: s.path, Line: line, Err: errors.New("malformed JSON line")}
		}
		b.add(gjson.ParseBytes(text))
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Path: s.path, Line: line, Err: err}
	}
	return b.build(s.path)
}

type tableBuilder struct {
	keys  []string
	index map[string]int
	rows  []map[int]string
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{index: make(map[string]int)}
}

func (b *tableBuilder) col(key string) int {
	i, ok := b.index[key]
	if !ok {
		i = len(b.keys)
		b.index[key] = i
		b.keys = append(b.keys, key)
	}
	return i
}

func (b *tableBuilder) add(v gjson.Result) {
	row := make(map[int]string)
	if v.IsObject() {
		v.ForEach(func(k, val gjson.Result) bool {
			row[b.col(k.String())] = cellString(val)
			return true
		})
	} else {
		row[b.col("value")] = cellString(v)
	}
	b.rows = append(b.rows, row)
}

func (b *tableBuilder) build(path string) (*RowSet, error) {
	if len(b.keys) == 0 {
		return nil, &ParseError{Path: path, Err: ErrEmpty}
	}
	records := make([][]string, len(b.rows))
	for i, m := range b.rows {
		rec := make([]string, len(b.keys))
		for c, val := range m {
			rec[c] = val
		}
		records[i] = rec
	}
	return NewRowSet(path, b.keys, records), nil
}

func cellString(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.JSON:
		return v.Raw
	default:
		return v.String()
	}
}
