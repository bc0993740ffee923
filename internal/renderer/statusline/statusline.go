// Package statusline provides the status line drawn below the grid.
package statusline

import (
	"fmt"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/dshills/gridstorm/internal/renderer/backend"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// Modes shown at the left of the status line.
const (
	ModeGrid   = "GRID"
	ModeEdit   = "EDIT"
	ModeFilter = "FILTER"
	ModeJump   = "JUMP"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusLine renders the bottom status line: mode, file, cursor cell, the
// latest message and the row count.
type StatusLine struct {
	// Display state
	mode     string
	filename string
	modified bool   // Cells were edited since the last load
	cell     string // Cursor cell, e.g. "city:12"
	shown    int    // Rows left by the filters
	total    int    // Rows loaded
	help     string // Shown when there is no message

	// Message display
	message     string
	messageType MessageType

	bar        core.Style
	modeStyles map[string]core.Style

	width int
}

// New creates a status line drawn over bar.
func New(bar core.Style) *StatusLine {
	return &StatusLine{
		mode:       ModeGrid,
		bar:        bar,
		modeStyles: defaultModeStyles(),
	}
}

// defaultModeStyles returns default styles for each mode.
func defaultModeStyles() map[string]core.Style {
	return map[string]core.Style{
		ModeGrid:   core.DefaultStyle().Bold().WithBackground(core.ColorBlue).WithForeground(core.ColorWhite),
		ModeEdit:   core.DefaultStyle().Bold().WithBackground(core.ColorGreen).WithForeground(core.ColorBlack),
		ModeFilter: core.DefaultStyle().Bold().WithBackground(core.ColorYellow).WithForeground(core.ColorBlack),
		ModeJump:   core.DefaultStyle().Bold().WithBackground(core.ColorGray).WithForeground(core.ColorWhite),
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetCell updates the cursor cell label. Empty hides it.
func (s *StatusLine) SetCell(label string) {
	s.cell = label
}

// SetRows updates the row counts.
func (s *StatusLine) SetRows(shown, total int) {
	s.shown, s.total = shown, total
}

// SetHelp sets the text shown while there is no message.
func (s *StatusLine) SetHelp(help string) {
	s.help = help
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Render draws the status line to the backend at the given row. The left
// part wins over the message when space runs out; the row count stays
// right-aligned.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if s.width == 0 {
		return
	}
	b.Fill(core.RectFromSize(0, row, s.width, 1), core.NewStyledCell(' ', s.bar))

	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = s.bar.Bold()
	}

	right := s.formatRows()
	if right != "" {
		right += " "
	}
	rw := runewidth.StringWidth(right)
	avail := max(s.width-rw, 0)

	col := s.put(b, 0, row, avail, " "+s.mode+" ", modeStyle)
	col = s.put(b, col, row, avail-col, " "+s.formatFile(), s.bar)
	if s.cell != "" {
		col = s.put(b, col, row, avail-col, "  "+s.cell, s.bar)
	}

	msg, msgStyle := s.help, s.bar.Dim()
	switch s.messageType {
	case MessageError:
		msg, msgStyle = s.message, s.bar.WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		msg, msgStyle = s.message, s.bar.WithForeground(core.ColorYellow)
	case MessageInfo:
		msg, msgStyle = s.message, s.bar
	}
	if room := avail - col - 2; room > 0 && msg != "" {
		msg = runewidth.Truncate(msg, room, "…")
		s.put(b, avail-runewidth.StringWidth(msg)-1, row, room, msg, msgStyle)
	}

	if rw <= s.width {
		s.put(b, s.width-rw, row, rw, right, s.bar)
	}
}

// put draws text clipped to w columns and returns the column after it.
func (s *StatusLine) put(b backend.Backend, x, y, w int, text string, style core.Style) int {
	if w <= 0 {
		return x
	}
	text = runewidth.Truncate(text, w, "")
	for _, r := range text {
		cw := runewidth.RuneWidth(r)
		b.SetCell(x, y, core.Cell{Rune: r, Width: cw, Style: style})
		if cw == 2 {
			b.SetCell(x+1, y, core.ContinuationCell(style))
		}
		x += max(cw, 1)
	}
	return x
}

func (s *StatusLine) formatFile() string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if s.modified {
		name += " [+]"
	}
	return name
}

// formatRows formats the row counts, e.g. "12 rows" or "3/12 rows".
func (s *StatusLine) formatRows() string {
	switch {
	case s.total == 0 && s.shown == 0:
		return ""
	case s.shown == s.total:
		return fmt.Sprintf("%d rows", s.total)
	default:
		return fmt.Sprintf("%d/%d rows", s.shown, s.total)
	}
}
