package autosize

import (
	"testing"

	"github.com/dshills/gridstorm/internal/grid/sizing"
)

type table struct {
	headers []string
	rows    [][]string
}

func (t table) ColumnCount() int             { return len(t.headers) }
func (t table) HeaderLabel(col int) string   { return t.headers[col] }
func (t table) RowCount() int                { return len(t.rows) }
func (t table) CellText(row, col int) string { return t.rows[row][col] }

// runeCount measures one unit per byte, bold adds one.
type runeCount struct{}

func (runeCount) Measure(font Font, text string) int {
	if font == FontBold {
		return len(text) + 1
	}
	return len(text)
}

func TestRunMeasuresHeadersAndSample(t *testing.T) {
	tbl := table{
		headers: []string{"id", "name", "description"},
		rows: [][]string{
			{"1", "alice", "short"},
			{"22", "bob", "a much longer description"},
		},
	}
	sizes := sizing.New(4, 1000)
	Pass{Padding: 2}.Run(sizes, tbl, 300, runeCount{})

	tests := []struct {
		col  int
		want int
	}{
		{0, 5},  // "id" bold: 3 + 2
		{1, 7},  // "alice": 5 + 2, header "name" bold 5 + 2
		{2, 27}, // long description: 25 + 2
	}
	for _, tt := range tests {
		if got := sizes.GetSizeByModelIndex(tt.col); got != tt.want {
			t.Errorf("column %d width = %d, want %d", tt.col, got, tt.want)
		}
	}
	if sizes.RealCount() != 3 {
		t.Errorf("RealCount() = %d, want 3 (index rebuilt)", sizes.RealCount())
	}
}

func TestRunCapsAtTwoThirdsOfContainer(t *testing.T) {
	tbl := table{
		headers: []string{"x"},
		rows:    [][]string{{"0123456789012345678901234567890123456789"}},
	}
	sizes := sizing.New(4, 1000)
	Pass{}.Run(sizes, tbl, 30, runeCount{})

	if got := sizes.GetSizeByModelIndex(0); got != 20 {
		t.Errorf("width = %d, want 20 (2/3 of 30)", got)
	}
}

func TestRunCapsAtMaxRatio(t *testing.T) {
	tbl := table{
		headers: []string{"x"},
		rows:    [][]string{{"0123456789012345678901234567890123456789"}},
	}
	tests := []struct {
		ratio float64
		want  int
	}{
		{0.5, 15},
		{1, 30},
		{0.01, 4}, // never below the default size
	}
	for _, tt := range tests {
		sizes := sizing.New(4, 1000)
		Pass{MaxRatio: tt.ratio}.Run(sizes, tbl, 30, runeCount{})
		if got := sizes.GetSizeByModelIndex(0); got != tt.want {
			t.Errorf("MaxRatio %v: width = %d, want %d", tt.ratio, got, tt.want)
		}
	}
}

func TestRunKeepsUserSizes(t *testing.T) {
	tbl := table{
		headers: []string{"a", "b"},
		rows:    [][]string{{"aaaaaaaaaa", "bbbbbbbbbb"}},
	}
	sizes := sizing.New(4, 1000)
	Pass{}.Run(sizes, tbl, 300, runeCount{})
	sizes.Resize(0, 3)

	Pass{}.Run(sizes, tbl, 300, runeCount{})
	if got := sizes.GetSizeByModelIndex(0); got != 3 {
		t.Errorf("user-sized column width = %d, want 3", got)
	}
	if got := sizes.GetSizeByModelIndex(1); got != 10 {
		t.Errorf("auto-sized column width = %d, want 10", got)
	}
}

func TestRunReplacesPreviousAutomaticSizes(t *testing.T) {
	sizes := sizing.New(4, 1000)
	wide := table{headers: []string{"a"}, rows: [][]string{{"wide wide wide"}}}
	narrow := table{headers: []string{"a"}, rows: [][]string{{"tiny"}}}

	Pass{}.Run(sizes, wide, 300, runeCount{})
	Pass{}.Run(sizes, narrow, 300, runeCount{})
	if got := sizes.GetSizeByModelIndex(0); got != 4 {
		t.Errorf("width after narrower sample = %d, want 4", got)
	}
}

func TestRunSamplesOnlyLeadingRows(t *testing.T) {
	rows := make([][]string, 30)
	for i := range rows {
		rows[i] = []string{"x"}
	}
	rows[25] = []string{"this row is not sampled"}
	sizes := sizing.New(1, 1000)
	Pass{}.Run(sizes, table{headers: []string{"h"}, rows: rows}, 300, runeCount{})

	if got := sizes.GetSizeByModelIndex(0); got != 2 {
		t.Errorf("width = %d, want 2", got)
	}
}

func TestTerminalMeasurer(t *testing.T) {
	m := TerminalMeasurer{BoldExtra: 1}
	tests := []struct {
		font Font
		text string
		want int
	}{
		{FontRegular, "hello", 5},
		{FontBold, "hello", 6},
		{FontRegular, "日本", 4},
		{FontRegular, "first\nsecond line", 5},
		{FontRegular, "", 0},
	}
	for _, tt := range tests {
		if got := m.Measure(tt.font, tt.text); got != tt.want {
			t.Errorf("Measure(%d, %q) = %d, want %d", tt.font, tt.text, got, tt.want)
		}
	}
}
