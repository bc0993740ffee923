// Package key provides keyboard key types for the grid.
//
// Events carry a Key, an optional Rune for character keys, and a Modifier
// set. Parse turns textual key specifications from configuration files
// ("Ctrl+A", "Shift+PageDown", "<C-r>", ">") into events that can be compared
// with Event.Equals.
package key
