package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "GRIDSTORM_"

// envVar maps one environment variable (without prefix) onto a setting.
type envVar struct {
	name string
	path string
	set  func(c *Config, v string) error
}

var envVars = []envVar{
	{"LOG_LEVEL", "logging.level", func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	}},
	{"LOG_FILE", "logging.file", func(c *Config, v string) error {
		c.Logging.File = v
		return nil
	}},
	{"DEFAULT_COLUMN_WIDTH", "grid.default_column_width", intSetter(func(c *Config) *int { return &c.Grid.DefaultColumnWidth })},
	{"ROW_HEIGHT", "grid.row_height", intSetter(func(c *Config) *int { return &c.Grid.RowHeight })},
	{"SAMPLE_ROWS", "grid.sample_rows", intSetter(func(c *Config) *int { return &c.Grid.SampleRows })},
	{"PADDING", "grid.padding", intSetter(func(c *Config) *int { return &c.Grid.Padding })},
	{"MAX_WIDTH_RATIO", "grid.max_width_ratio", func(c *Config, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return err
		}
		c.Grid.MaxWidthRatio = f
		return nil
	}},
	{"AUTOSIZE", "grid.autosize", boolSetter(func(c *Config) *bool { return &c.Grid.Autosize })},
	{"FROZEN", "grid.frozen", listSetter(func(c *Config) *[]string { return &c.Grid.Frozen })},
	{"HIDDEN", "grid.hidden", listSetter(func(c *Config) *[]string { return &c.Grid.Hidden })},
	{"MOUSE", "mouse.enabled", boolSetter(func(c *Config) *bool { return &c.Mouse.Enabled })},
	{"SCROLL_LINES", "mouse.scroll_lines", intSetter(func(c *Config) *int { return &c.Mouse.ScrollLines })},
}

// applyEnv overrides settings from GRIDSTORM_* variables. Empty values are
// treated as set.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, ev := range envVars {
		v, ok := lookup(EnvPrefix + ev.name)
		if !ok {
			continue
		}
		if err := ev.set(c, v); err != nil {
			return &ValidationError{
				Path:    ev.path,
				Message: fmt.Sprintf("invalid %s%s: %v", EnvPrefix, ev.name, err),
				Value:   v,
			}
		}
	}
	return nil
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func listSetter(field func(*Config) *[]string) func(*Config, string) error {
	return func(c *Config, v string) error {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*field(c) = out
		return nil
	}
}

// parseBool accepts the usual spellings of true and false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
