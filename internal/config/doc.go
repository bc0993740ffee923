// Package config loads gridstorm settings.
//
// Settings come from three layers, later ones overriding earlier ones:
//
//	1. Built-in defaults (Default)
//	2. A TOML or YAML file, chosen by extension
//	3. GRIDSTORM_* environment variables
//
// Command line flags are applied by the caller on top of the result.
//
// # Configuration Files
//
//	# ~/.config/gridstorm/config.toml
//	[grid]
//	default_column_width = 14
//	frozen = ["id"]
//	hidden = ["internal_notes"]
//
//	[theme]
//	selection = "#2d4f7c"
//
//	[keys]
//	export = "Ctrl+E"
//
// Keys in a file that do not name a setting are parse errors. Values are
// checked by Validate, whose errors wrap ErrValidationFailed.
package config
