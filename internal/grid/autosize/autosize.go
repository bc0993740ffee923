// Package autosize seeds column widths from measured header labels and a
// sample of loaded rows.
package autosize

import (
	"log/slog"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/gridstorm/internal/grid/sizing"
)

// DefaultSampleRows is the number of leading rows measured per pass.
const DefaultSampleRows = 20

// Font selects the text metric used for a measurement.
type Font uint8

const (
	// FontRegular is used for cell content.
	FontRegular Font = iota
	// FontBold is used for header labels.
	FontBold
)

// Measurer returns the rendered width of text in the given font.
type Measurer interface {
	Measure(font Font, text string) int
}

// Table is the loaded data the pass reads from.
type Table interface {
	ColumnCount() int
	HeaderLabel(col int) string
	RowCount() int
	CellText(row, col int) string
}

// Pass measures a table and stores automatic size overrides.
type Pass struct {
	// SampleRows is how many leading rows are measured. Zero means
	// DefaultSampleRows.
	SampleRows int

	// Padding is added to every measured width.
	Padding int

	// MaxRatio caps automatic sizes to a share of the container width. Zero
	// means two thirds.
	MaxRatio float64

	// Logger receives a debug record per run. Nil disables logging.
	Logger *slog.Logger
}

// Run resets the automatic overrides of sizes, caps new ones at MaxRatio of
// containerWidth, measures every header label in bold and the first sample
// rows in the regular font, then rebuilds the index once. Overrides set by the
// user survive untouched.
func (p Pass) Run(sizes *sizing.SeriesSizes, table Table, containerWidth int, m Measurer) {
	cols := table.ColumnCount()
	sizes.SetCount(cols)
	if containerWidth > 0 {
		if p.MaxRatio > 0 {
			sizes.SetMaxSize(max(int(float64(containerWidth)*p.MaxRatio), 1))
		} else {
			sizes.SetMaxSize(containerWidth * 2 / 3)
		}
	}
	sizes.ResetAutomaticOverrides()

	for c := 0; c < cols; c++ {
		sizes.PutSizeOverride(c, m.Measure(FontBold, table.HeaderLabel(c))+p.Padding, false)
	}

	sample := p.SampleRows
	if sample <= 0 {
		sample = DefaultSampleRows
	}
	sample = min(sample, table.RowCount())
	for r := 0; r < sample; r++ {
		for c := 0; c < cols; c++ {
			sizes.PutSizeOverride(c, m.Measure(FontRegular, table.CellText(r, c))+p.Padding, false)
		}
	}

	sizes.BuildIndex()

	if p.Logger != nil {
		p.Logger.Debug("autosize pass",
			"columns", cols,
			"sampled_rows", sample,
			"max_width", sizes.MaxSize(),
			"scroll_width", sizes.GetPositionByScrollIndex(sizes.ScrollCount()))
	}
}

// TerminalMeasurer measures text in terminal cells using grapheme cluster
// widths. Only the first line of multi-line text is measured.
type TerminalMeasurer struct {
	// BoldExtra is added to bold measurements, for terminals whose bold face
	// needs breathing room.
	BoldExtra int
}

// Measure implements Measurer.
func (tm TerminalMeasurer) Measure(font Font, text string) int {
	line, _, _ := strings.Cut(text, "\n")
	w := uniseg.StringWidth(strings.TrimRight(line, "\r"))
	if font == FontBold {
		w += tm.BoldExtra
	}
	return w
}
