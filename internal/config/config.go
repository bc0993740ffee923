package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all settings.
type Config struct {
	Grid    GridConfig        `toml:"grid" yaml:"grid"`
	Theme   ThemeConfig       `toml:"theme" yaml:"theme"`
	Mouse   MouseConfig       `toml:"mouse" yaml:"mouse"`
	Logging LoggingConfig     `toml:"logging" yaml:"logging"`
	Keys    map[string]string `toml:"keys" yaml:"keys"`
}

// GridConfig sizes and arranges the grid.
type GridConfig struct {
	// DefaultColumnWidth is the width of a column before autosizing.
	DefaultColumnWidth int `toml:"default_column_width" yaml:"default_column_width"`
	// RowHeight is the height of every row.
	RowHeight int `toml:"row_height" yaml:"row_height"`
	// MaxWidthRatio caps autosized columns to a share of the screen width.
	MaxWidthRatio float64 `toml:"max_width_ratio" yaml:"max_width_ratio"`
	// SampleRows is how many rows autosizing measures.
	SampleRows int `toml:"sample_rows" yaml:"sample_rows"`
	// Padding is added to measured content widths.
	Padding int `toml:"padding" yaml:"padding"`
	// Autosize measures columns after each load.
	Autosize bool `toml:"autosize" yaml:"autosize"`
	// Frozen and Hidden name columns by name or header label.
	Frozen []string `toml:"frozen" yaml:"frozen"`
	Hidden []string `toml:"hidden" yaml:"hidden"`
}

// ThemeConfig overrides theme colours with "#RRGGBB" strings. Empty values
// keep the built-in colour.
type ThemeConfig struct {
	Background string `toml:"background" yaml:"background"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Header     string `toml:"header" yaml:"header"`
	Cursor     string `toml:"cursor" yaml:"cursor"`
	Selection  string `toml:"selection" yaml:"selection"`
	Frozen     string `toml:"frozen" yaml:"frozen"`
	Filter     string `toml:"filter" yaml:"filter"`
	Border     string `toml:"border" yaml:"border"`
}

// MouseConfig tunes pointer handling.
type MouseConfig struct {
	Enabled           bool `toml:"enabled" yaml:"enabled"`
	DoubleClickMillis int  `toml:"double_click_ms" yaml:"double_click_ms"`
	ScrollLines       int  `toml:"scroll_lines" yaml:"scroll_lines"`
}

// LoggingConfig selects the log level and sink.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File is the log file. Empty means the default state directory.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			DefaultColumnWidth: 12,
			RowHeight:          1,
			MaxWidthRatio:      2.0 / 3.0,
			SampleRows:         20,
			Padding:            2,
			Autosize:           true,
		},
		Mouse: MouseConfig{
			Enabled:           true,
			DoubleClickMillis: 400,
			ScrollLines:       3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keys: DefaultKeys(),
	}
}

// Options control Load.
type Options struct {
	// Path is the file to read. Empty means DefaultPath.
	Path string
	// Required makes a missing file an error.
	Required bool
	// LookupEnv reads environment variables; nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridstorm", "config.toml")
}

// Load reads the configuration file over the defaults, applies environment
// overrides and validates the result.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if opts.Required {
				return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
			}
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	for action, spec := range DefaultKeys() {
		if _, ok := cfg.Keys[action]; !ok {
			cfg.Keys[action] = spec
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses data over the current values. Unknown keys are errors.
func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return tomlParseError(path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if c.Keys == nil {
		c.Keys = make(map[string]string)
	}
	return nil
}

func tomlParseError(path string, err error) error {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		keys := make([]string, len(strict.Errors))
		for i, e := range strict.Errors {
			keys[i] = strings.Join(e.Key(), ".")
		}
		pe.Line, pe.Column = strict.Errors[0].Position()
		pe.Message = "unknown keys: " + strings.Join(keys, ", ")
		return pe
	}

	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return pe
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, path, msg string, v any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
		}
	}

	g := c.Grid
	check(g.DefaultColumnWidth >= 2 && g.DefaultColumnWidth <= 200, "grid.default_column_width", "must be between 2 and 200", g.DefaultColumnWidth)
	check(g.RowHeight >= 1 && g.RowHeight <= 10, "grid.row_height", "must be between 1 and 10", g.RowHeight)
	check(g.MaxWidthRatio > 0 && g.MaxWidthRatio <= 1, "grid.max_width_ratio", "must be in (0, 1]", g.MaxWidthRatio)
	check(g.SampleRows >= 0, "grid.sample_rows", "must not be negative", g.SampleRows)
	check(g.Padding >= 0 && g.Padding <= 20, "grid.padding", "must be between 0 and 20", g.Padding)

	m := c.Mouse
	check(m.DoubleClickMillis >= 0 && m.DoubleClickMillis <= 5000, "mouse.double_click_ms", "must be between 0 and 5000", m.DoubleClickMillis)
	check(m.ScrollLines >= 1 && m.ScrollLines <= 100, "mouse.scroll_lines", "must be between 1 and 100", m.ScrollLines)

	level := strings.ToLower(c.Logging.Level)
	check(slices.Contains(logLevels, level), "logging.level", "must be one of debug, info, warn, error", c.Logging.Level)

	for name, v := range c.Theme.fields() {
		check(v == "" || isHexColor(v), "theme."+name, "must be a #RRGGBB colour", v)
	}

	errs = append(errs, c.validateKeys()...)
	return errors.Join(errs...)
}

func (t ThemeConfig) fields() map[string]string {
	return map[string]string{
		"background": t.Background,
		"foreground": t.Foreground,
		"header":     t.Header,
		"cursor":     t.Cursor,
		"selection":  t.Selection,
		"frozen":     t.Frozen,
		"filter":     t.Filter,
		"border":     t.Border,
	}
}

func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
