package config

import (
	"fmt"
	"sort"

	"github.com/dshills/gridstorm/internal/input/key"
)

// Actions that can be bound in the [keys] table.
const (
	ActionQuit         = "quit"
	ActionReload       = "reload"
	ActionEdit         = "edit"
	ActionFilter       = "filter"
	ActionClearFilters = "clear_filters"
	ActionGrow         = "grow"
	ActionShrink       = "shrink"
	ActionAutosize     = "autosize"
	ActionHide         = "hide"
	ActionShowAll      = "show_all"
	ActionFreeze       = "freeze"
	ActionExport       = "export"
	ActionJump         = "jump"
)

// DefaultKeys returns the built-in bindings.
func DefaultKeys() map[string]string {
	return map[string]string{
		ActionQuit:         "q",
		ActionReload:       "Ctrl+R",
		ActionEdit:         "Enter",
		ActionFilter:       "/",
		ActionClearFilters: "Ctrl+L",
		ActionGrow:         ">",
		ActionShrink:       "<",
		ActionAutosize:     "=",
		ActionHide:         "-",
		ActionShowAll:      "H",
		ActionFreeze:       "f",
		ActionExport:       "y",
		ActionJump:         "g",
	}
}

// Binding pairs an action with its key.
type Binding struct {
	Action string
	Key    key.Event
}

// Bindings parses the key table, sorted by action name.
func (c *Config) Bindings() ([]Binding, error) {
	out := make([]Binding, 0, len(c.Keys))
	for action, spec := range c.Keys {
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, &ValidationError{Path: "keys." + action, Message: err.Error(), Value: spec}
		}
		out = append(out, Binding{Action: action, Key: ev})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out, nil
}

func (c *Config) validateKeys() []error {
	known := DefaultKeys()
	var errs []error
	seen := make(map[string]string)

	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		spec := c.Keys[action]
		path := "keys." + action
		if _, ok := known[action]; !ok {
			errs = append(errs, &ValidationError{Path: path, Message: "unknown action", Value: spec})
			continue
		}
		ev, err := key.Parse(spec)
		if err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: err.Error(), Value: spec})
			continue
		}
		if other, dup := seen[ev.String()]; dup {
			errs = append(errs, &ValidationError{
				Path:    path,
				Message: fmt.Sprintf("key already bound to %s", other),
				Value:   spec,
			})
			continue
		}
		seen[ev.String()] = action
	}
	return errs
}
