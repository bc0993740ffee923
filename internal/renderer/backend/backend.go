// Package backend abstracts the terminal the grid draws on and the events it
// reads from it.
package backend

import (
	"time"

	"github.com/dshills/gridstorm/internal/input/key"
	"github.com/dshills/gridstorm/internal/input/mouse"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
	// EventClosed is returned by PollEvent once the backend is shut down.
	EventClosed
)

// Event is a terminal event.
type Event struct {
	Type EventType
	When time.Time

	// EventKey
	Key key.Event

	// EventMouse. Buttons is the button held (or the wheel direction) at the
	// time of the report; a mouse.Tracker turns reports into actions.
	MouseX, MouseY int
	Buttons        mouse.Button
	Mod            key.Modifier

	// EventResize
	Width, Height int

	// EventFocus
	Focused bool
}

// Backend is a drawing surface plus an event source.
type Backend interface {
	// Init prepares the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal. A blocked
	// PollEvent returns EventClosed.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the surface are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at a position, or an empty cell.
	GetCell(x, y int) core.Cell

	// Fill fills a region with cell.
	Fill(rect core.Rect, cell core.Cell)

	// Clear resets every cell to the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the text cursor.
	ShowCursor(x, y int)

	// HideCursor hides the text cursor.
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event
}
