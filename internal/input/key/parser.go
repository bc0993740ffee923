package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", ">", "-"
//   - Special keys: "Enter", "Escape", "PageDown", "F5"
//   - With modifiers: "Ctrl+A", "Shift+Right", "Ctrl+Shift+End"
//   - Vim-style: "<C-r>", "<S-Up>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseChord(spec[1:len(spec)-1], "-")
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseChord(spec, "+")
	}
	return parseKey(spec, ModNone)
}

// MustParse is like Parse but panics on error. Intended for built-in tables.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}

// parseChord parses "mod<sep>mod<sep>key". A trailing separator means the
// separator character itself is the key ("Ctrl++").
func parseChord(spec, sep string) (Event, error) {
	keyPart := ""
	body := spec
	if strings.HasSuffix(body, sep+sep) {
		keyPart = sep
		body = strings.TrimSuffix(body, sep+sep)
	} else {
		i := strings.LastIndex(body, sep)
		if i < 0 {
			return parseKey(body, ModNone)
		}
		keyPart = body[i+1:]
		body = body[:i]
	}

	var mods Modifier
	for _, p := range strings.Split(body, sep) {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(keyPart, mods)
}

func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}
	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, keyPart)
	}
	r := runes[0]
	switch {
	case mods.HasCtrl():
		// Terminals report Ctrl+letter without case.
		r = unicode.ToLower(r)
	case unicode.IsUpper(r):
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods), nil
}
