package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl or Alt.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Modifiers.HasCtrl() && !e.Modifiers.HasAlt()
}

// Equals reports whether two events denote the same key chord. Shift is
// ignored for printable characters since it is already part of the rune.
func (e Event) Equals(other Event) bool {
	if e.Key != other.Key {
		return false
	}
	if e.Key == KeyRune {
		if e.Rune != other.Rune {
			return false
		}
		return e.Modifiers.Without(ModShift) == other.Modifiers.Without(ModShift)
	}
	return e.Modifiers == other.Modifiers
}

// String returns a canonical string representation such as "Ctrl+Up" or "a".
func (e Event) String() string {
	var b strings.Builder
	if mods := e.Modifiers; e.IsRune() {
		mods = mods.Without(ModShift)
		if mods != ModNone {
			b.WriteString(mods.String())
			b.WriteByte('+')
		}
		b.WriteRune(e.Rune)
		return b.String()
	}
	if e.Modifiers != ModNone {
		b.WriteString(e.Modifiers.String())
		b.WriteByte('+')
	}
	b.WriteString(e.Key.String())
	return b.String()
}
