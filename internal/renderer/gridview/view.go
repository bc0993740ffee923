package gridview

import (
	"log/slog"
	"strconv"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/dshills/gridstorm/internal/grid/controller"
	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/grid/sizing"
	"github.com/dshills/gridstorm/internal/renderer/backend"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// Table is the data the view draws. Indexes are model indexes.
type Table interface {
	ColumnCount() int
	HeaderLabel(col int) string
	RowCount() int
	CellText(row, col int) string
}

// RowLabeler is implemented by tables whose gutter labels are not simply
// the 1-based row index.
type RowLabeler interface {
	RowLabel(row int) string
}

// Overlay is an open line editor drawn over a cell or filter cell.
type Overlay struct {
	Target selection.Address
	Text   string
	// Caret is a rune offset into Text.
	Caret int
}

// View renders a grid and resolves hits against what it last drew.
type View struct {
	cols  *sizing.SeriesSizes
	rows  *sizing.SeriesSizes
	ctl   *controller.Controller
	table Table
	theme Theme
	log   *slog.Logger

	filters []string
	overlay *Overlay

	layout Layout
}

// Option configures a View.
type Option func(*View)

// WithTheme sets the theme.
func WithTheme(t Theme) Option {
	return func(v *View) {
		v.theme = t
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		v.log = l
	}
}

// New creates a view over the two axes and the controller that drives them.
func New(cols, rows *sizing.SeriesSizes, ctl *controller.Controller, opts ...Option) *View {
	v := &View{
		cols:  cols,
		rows:  rows,
		ctl:   ctl,
		theme: DefaultTheme(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetTable replaces the data source.
func (v *View) SetTable(t Table) {
	v.table = t
}

// SetFilters sets the filter row texts, indexed by model column.
func (v *View) SetFilters(filters []string) {
	v.filters = filters
}

// SetOverlay shows an editor overlay, or removes it when o is nil.
func (v *View) SetOverlay(o *Overlay) {
	v.overlay = o
}

// Layout returns the layout computed by the last Resize or Draw.
func (v *View) Layout() Layout {
	return v.layout
}

// Resize places the view in area and tells the controller the data area
// size.
func (v *View) Resize(area core.Rect) {
	l := Layout{Area: area}
	gw := gutterWidth(v.rows.Count())
	if n := v.rows.Count(); n > 0 {
		gw = max(gw, runewidth.StringWidth(v.rowLabel(n-1))+1)
	}
	l.GutterWidth = min(gw, area.Width())
	l.HeaderY = area.Top
	l.FilterY = area.Top + 1
	l.DataX = area.Left + l.GutterWidth
	l.DataY = area.Top + headerRows
	l.DataWidth = max(area.Right-l.DataX, 0)
	l.DataHeight = max(area.Bottom-l.DataY, 0)
	v.layout = l
	v.ctl.SetViewport(l.DataWidth, l.DataHeight)
	v.computeSlots()
}

// computeSlots refreshes the visible slots from the controller's scroll
// state.
func (v *View) computeSlots() {
	l := &v.layout
	l.FirstCol, l.FirstRow = v.ctl.FirstVisibleCol(), v.ctl.FirstVisibleRow()
	l.Cols = visibleSlots(v.cols, l.FirstCol, l.DataWidth)
	l.Rows = visibleSlots(v.rows, l.FirstRow, l.DataHeight)
}

// Draw renders the grid into b.
func (v *View) Draw(b backend.Backend) {
	v.computeSlots()
	l := v.layout
	if l.Area.IsEmpty() {
		return
	}
	th := v.theme
	b.Fill(l.Area, core.NewStyledCell(' ', th.Base))

	sel := v.ctl.Selection()
	cur := v.ctl.CurrentCell()

	// Corner: select-all marker over the gutter, filter marker below it.
	corner := th.Header
	if cur.IsSelectAll() || sel.Kind == selection.RangeAll {
		corner = th.selected(corner)
	}
	v.text(b, l.Area.Left, l.HeaderY, l.GutterWidth, "", corner, false)
	v.text(b, l.Area.Left, l.FilterY, l.GutterWidth, "?", th.Filter.Dim(), false)

	for _, c := range l.Cols {
		x, w := l.DataX+c.Offset, v.clipWidth(c)
		if w <= 0 {
			continue
		}
		hs := th.Header
		if c.Frozen {
			hs = th.frozen(hs)
		}
		if sel.Contains(selection.HeaderCell(c.Real)) || sel.Kind == selection.RangeAll {
			hs = th.selected(hs)
		}
		if cur == selection.HeaderCell(c.Real) {
			hs = th.Cursor.Bold()
		}
		v.cell(b, x, l.HeaderY, w, c.Size, v.headerLabel(c.Model), hs, false)

		fs := th.Filter
		if cur == selection.FilterCell(c.Real) {
			fs = th.Cursor
		}
		v.cell(b, x, l.FilterY, w, c.Size, v.filterText(c.Model), fs, false)
	}

	for _, r := range l.Rows {
		y := l.DataY + r.Offset
		h := min(r.Size, l.DataHeight-r.Offset)
		gs := th.Gutter
		if sel.Contains(selection.RowHeaderCell(r.Real)) || sel.Kind == selection.RangeAll {
			gs = th.selected(gs)
		}
		if cur == selection.RowHeaderCell(r.Real) {
			gs = th.Cursor
		}
		for dy := range h {
			label := ""
			if dy == 0 {
				label = v.rowLabel(r.Model)
			}
			v.text(b, l.Area.Left, y+dy, l.GutterWidth, label, gs, true)
		}

		for _, c := range l.Cols {
			x, w := l.DataX+c.Offset, v.clipWidth(c)
			if w <= 0 {
				continue
			}
			s := th.Base
			if c.Frozen || r.Frozen {
				s = th.frozen(s)
			}
			if sel.Covers(r.Real, c.Real) {
				s = th.selected(s)
			}
			if cur == selection.Cell(r.Real, c.Real) {
				s = th.Cursor
			}
			txt := v.cellText(r.Model, c.Model)
			for dy := range h {
				if dy > 0 {
					txt = ""
				}
				v.cell(b, x, y+dy, w, c.Size, txt, s, isNumeric(txt))
			}
		}
	}

	v.drawOverlay(b)
}

// clipWidth returns the drawable width of a column slot.
func (v *View) clipWidth(c Slot) int {
	return min(c.Size, v.layout.DataWidth-c.Offset)
}

// cell draws text into a column slot, reserving the last column of an
// unclipped slot for the border.
func (v *View) cell(b backend.Backend, x, y, w, size int, s string, style core.Style, right bool) {
	textW := w
	if w == size {
		textW = w - 1
		b.SetCell(x+textW, y, core.NewStyledCell('│', v.theme.Border.WithBackground(style.Background)))
	}
	v.text(b, x, y, textW, s, style, right)
}

// text draws s truncated or padded to exactly w columns.
func (v *View) text(b backend.Backend, x, y, w int, s string, style core.Style, right bool) {
	if w <= 0 {
		return
	}
	s = fit(s, w, right)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		b.SetCell(x, y, core.Cell{Rune: r, Width: rw, Style: style})
		if rw == 2 {
			b.SetCell(x+1, y, core.ContinuationCell(style))
		}
		x += max(rw, 1)
	}
}

// fit truncates s to w columns with an ellipsis and pads the rest.
func fit(s string, w int, right bool) string {
	s, _, _ = strings.Cut(s, "\n")
	s = strings.ReplaceAll(s, "\t", " ")
	tail := "…"
	if w < 2 {
		tail = ""
	}
	s = runewidth.Truncate(s, w, tail)
	if right {
		return runewidth.FillLeft(s, w)
	}
	return runewidth.FillRight(s, w)
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func (v *View) headerLabel(col int) string {
	if v.table == nil || col < 0 || col >= v.table.ColumnCount() {
		return ""
	}
	return v.table.HeaderLabel(col)
}

func (v *View) rowLabel(row int) string {
	if rl, ok := v.table.(RowLabeler); ok {
		return rl.RowLabel(row)
	}
	return strconv.Itoa(row + 1)
}

func (v *View) filterText(col int) string {
	if col < 0 || col >= len(v.filters) {
		return ""
	}
	return v.filters[col]
}

func (v *View) cellText(row, col int) string {
	if v.table == nil || row < 0 || row >= v.table.RowCount() || col < 0 || col >= v.table.ColumnCount() {
		return ""
	}
	return v.table.CellText(row, col)
}

func (v *View) drawOverlay(b backend.Backend) {
	o := v.overlay
	if o == nil {
		b.HideCursor()
		return
	}
	rect, ok := v.CellRect(o.Target)
	if !ok {
		b.HideCursor()
		return
	}
	w := rect.Width()
	runes := []rune(o.Text)
	caret := max(0, min(o.Caret, len(runes)))

	// Scroll the text so the caret stays visible.
	start := 0
	for runewidth.StringWidth(string(runes[start:caret])) >= w && start < caret {
		start++
	}
	v.text(b, rect.Left, rect.Top, w, string(runes[start:]), v.theme.Editor, false)
	b.ShowCursor(rect.Left+runewidth.StringWidth(string(runes[start:caret])), rect.Top)
}

// CellRect returns the screen rectangle of a visible cell, header cell or
// filter cell, without its border column.
func (v *View) CellRect(a selection.Address) (core.Rect, bool) {
	l := v.layout
	if !a.Col.IsRegular() {
		return core.Rect{}, false
	}
	var col Slot
	found := false
	for _, c := range l.Cols {
		if c.Real == a.Col.Index {
			col, found = c, true
			break
		}
	}
	if !found {
		return core.Rect{}, false
	}
	w := v.clipWidth(col)
	if w == col.Size && w > 1 {
		w--
	}

	var y int
	switch a.Row.Kind {
	case selection.KindHeader:
		y = l.HeaderY
	case selection.KindFilter:
		y = l.FilterY
	case selection.KindRegular:
		found = false
		for _, r := range l.Rows {
			if r.Real == a.Row.Index {
				y, found = l.DataY+r.Offset, true
				break
			}
		}
		if !found {
			return core.Rect{}, false
		}
	default:
		return core.Rect{}, false
	}
	return core.RectFromSize(l.DataX+col.Offset, y, w, 1), true
}
