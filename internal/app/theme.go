package app

import (
	"fmt"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/renderer/core"
	"github.com/dshills/gridstorm/internal/renderer/gridview"
)

// buildTheme applies configured colours over the default theme.
func buildTheme(tc config.ThemeConfig) (gridview.Theme, error) {
	th := gridview.DefaultTheme()
	var err error
	color := func(name, hex string, apply func(core.Color)) {
		if hex == "" || err != nil {
			return
		}
		c, cerr := core.ColorFromHex(hex)
		if cerr != nil {
			err = fmt.Errorf("theme.%s: %w", name, cerr)
			return
		}
		apply(c)
	}

	color("background", tc.Background, func(c core.Color) {
		th.Base = th.Base.WithBackground(c)
		th.Border = th.Border.WithBackground(c)
	})
	color("foreground", tc.Foreground, func(c core.Color) {
		th.Base = th.Base.WithForeground(c)
		th.Header = th.Header.WithForeground(c)
	})
	color("header", tc.Header, func(c core.Color) { th.Header = th.Header.WithBackground(c) })
	color("cursor", tc.Cursor, func(c core.Color) { th.Cursor = th.Cursor.WithBackground(c) })
	color("selection", tc.Selection, func(c core.Color) { th.Selection = c })
	color("frozen", tc.Frozen, func(c core.Color) { th.Frozen = c })
	color("filter", tc.Filter, func(c core.Color) { th.Filter = th.Filter.WithForeground(c) })
	color("border", tc.Border, func(c core.Color) { th.Border = th.Border.WithForeground(c) })
	return th, err
}
