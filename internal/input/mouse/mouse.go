package mouse

import (
	"time"

	"github.com/dshills/gridstorm/internal/input/key"
)

// Button identifies a mouse button or wheel direction.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
	ButtonScrollLeft
	ButtonScrollRight
)

var buttonNames = [...]string{
	ButtonNone:        "none",
	ButtonLeft:        "left",
	ButtonMiddle:      "middle",
	ButtonRight:       "right",
	ButtonScrollUp:    "scroll-up",
	ButtonScrollDown:  "scroll-down",
	ButtonScrollLeft:  "scroll-left",
	ButtonScrollRight: "scroll-right",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "none"
}

// IsScroll reports whether b is a wheel direction.
func (b Button) IsScroll() bool {
	return b >= ButtonScrollUp && b <= ButtonScrollRight
}

// ScrollDelta returns the row and column step of a wheel direction, or zero
// for other buttons.
func (b Button) ScrollDelta() (rows, cols int) {
	switch b {
	case ButtonScrollUp:
		rows = -1
	case ButtonScrollDown:
		rows = 1
	case ButtonScrollLeft:
		cols = -1
	case ButtonScrollRight:
		cols = 1
	}
	return rows, cols
}

// Action is what happened to the pointer.
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
	// ActionMove is motion with no button held.
	ActionMove
	// ActionDrag is motion with a button held.
	ActionDrag
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionPress:   "press",
	ActionRelease: "release",
	ActionMove:    "move",
	ActionDrag:    "drag",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}

// Position is a screen cell.
type Position struct {
	X, Y int
}

// Distance returns the Manhattan distance between p and q.
func (p Position) Distance(q Position) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return max(dx, -dx) + max(dy, -dy)
}

// Event is a pointer report after translation.
type Event struct {
	Position  Position
	Modifiers key.Modifier
	Action    Action
	// Button is the pressed button; drags and releases carry the button
	// that started them.
	Button Button
	// Clicks is 1, 2 or 3 for presses of the left button, 0 otherwise.
	Clicks int
}

// Config tunes a Tracker.
type Config struct {
	// DoubleClickTime and DoubleClickDistance bound how far apart presses
	// of one multi-click may be.
	DoubleClickTime     time.Duration
	DoubleClickDistance int

	// ScrollLines is how many rows one wheel tick scrolls.
	ScrollLines int
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 1,
		ScrollLines:         3,
	}
}

// Tracker derives press, drag and release actions from button-state reports.
type Tracker struct {
	config Config
	held   Button
	click  *clickCounter
}

// NewTracker creates a tracker with the given configuration.
func NewTracker(config Config) *Tracker {
	if config.ScrollLines < 1 {
		config.ScrollLines = 1
	}
	return &Tracker{
		config: config,
		click:  newClickCounter(config.DoubleClickTime, config.DoubleClickDistance),
	}
}

// Config returns the tracker configuration.
func (t *Tracker) Config() Config {
	return t.config
}

// Held returns the button currently held, or ButtonNone.
func (t *Tracker) Held() Button {
	return t.held
}

// Translate converts a report of the buttons held at pos into an event.
func (t *Tracker) Translate(pos Position, down Button, mods key.Modifier, ts time.Time) Event {
	ev := Event{Position: pos, Modifiers: mods}

	switch {
	case down.IsScroll():
		ev.Action = ActionPress
		ev.Button = down
	case t.held == ButtonNone && down != ButtonNone:
		t.held = down
		ev.Action = ActionPress
		ev.Button = down
		if down == ButtonLeft {
			ev.Clicks = t.click.press(pos, ts)
		}
	case t.held != ButtonNone && down == ButtonNone:
		ev.Action = ActionRelease
		ev.Button = t.held
		t.held = ButtonNone
	case t.held != ButtonNone:
		ev.Action = ActionDrag
		ev.Button = t.held
	default:
		ev.Action = ActionMove
	}
	return ev
}

// Cancel forgets the held button, e.g. when focus is lost mid-drag.
func (t *Tracker) Cancel() {
	t.held = ButtonNone
	t.click.reset()
}
