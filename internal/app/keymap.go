package app

import (
	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/input/key"
)

// keymap resolves key events to action names.
type keymap struct {
	bindings []config.Binding
}

func newKeymap(cfg *config.Config) (*keymap, error) {
	b, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	return &keymap{bindings: b}, nil
}

// lookup returns the action bound to ev.
func (m *keymap) lookup(ev key.Event) (string, bool) {
	for _, b := range m.bindings {
		if b.Key.Equals(ev) {
			return b.Action, true
		}
	}
	return "", false
}

// keyFor returns the key bound to an action, for help text.
func (m *keymap) keyFor(action string) string {
	for _, b := range m.bindings {
		if b.Action == action {
			return b.Key.String()
		}
	}
	return ""
}
