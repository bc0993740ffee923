package gridview

import (
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// Theme holds the styles the view draws with.
type Theme struct {
	Base      core.Style
	Header    core.Style
	Gutter    core.Style
	Filter    core.Style
	Border    core.Style
	Frozen    core.Color
	Selection core.Color
	Cursor    core.Style
	Editor    core.Style
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	base := core.DefaultStyle().
		WithForeground(core.MustHex("#d0d0d0")).
		WithBackground(core.MustHex("#1c1c1c"))
	return Theme{
		Base:      base,
		Header:    base.WithBackground(core.MustHex("#303030")).Bold(),
		Gutter:    base.WithForeground(core.MustHex("#808080")).WithBackground(core.MustHex("#262626")),
		Filter:    base.WithForeground(core.MustHex("#87afd7")).WithBackground(core.MustHex("#262626")),
		Border:    base.WithForeground(core.MustHex("#444444")),
		Frozen:    core.MustHex("#2a2a3a"),
		Selection: core.MustHex("#264f78"),
		Cursor:    base.WithForeground(core.ColorBlack).WithBackground(core.MustHex("#d7af5f")),
		Editor:    base.WithForeground(core.ColorWhite).WithBackground(core.MustHex("#005f87")).Underline(),
	}
}

// selected tints a style with the selection color.
func (t Theme) selected(s core.Style) core.Style {
	bg := s.Background
	if bg.IsDefault() {
		return s.WithBackground(t.Selection)
	}
	return s.WithBackground(bg.Blend(t.Selection, 0.7))
}

// frozen tints a style with the frozen-area color.
func (t Theme) frozen(s core.Style) core.Style {
	bg := s.Background
	if bg.IsDefault() {
		return s.WithBackground(t.Frozen)
	}
	return s.WithBackground(bg.Blend(t.Frozen, 0.6))
}
