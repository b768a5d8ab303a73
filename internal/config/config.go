package config

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/gridnav/internal/logging"
	"github.com/dshills/gridnav/internal/reference"
)

// Config is the complete set of gridnav settings.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Viewport ViewportConfig `yaml:"viewport"`
	Labels   LabelsConfig   `yaml:"labels"`
	Logging  LoggingConfig  `yaml:"logging"`
	History  HistoryConfig  `yaml:"history"`
	Script   ScriptConfig   `yaml:"script"`
}

// GridConfig sets the sheet geometry used when no fixture overrides it.
type GridConfig struct {
	DefaultColumnWidth float64 `yaml:"defaultColumnWidth"`
	DefaultRowHeight   float64 `yaml:"defaultRowHeight"`
	FrozenColumns      int     `yaml:"frozenColumns"`
	FrozenRows         int     `yaml:"frozenRows"`
	// Sheet is an optional fixture file.
	Sheet string `yaml:"sheet"`
}

// ViewportConfig sets the initial viewport.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Home is a cell or label.
	Home string `yaml:"home"`
}

// LabelsConfig bounds label resolution.
type LabelsConfig struct {
	MaxDepth int `yaml:"maxDepth"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HistoryConfig bounds the navigation journal. Zero keeps every entry.
type HistoryConfig struct {
	MaxEntries int `yaml:"maxEntries"`
}

// ScriptConfig limits navigation scripts.
type ScriptConfig struct {
	InstructionLimit int           `yaml:"instructionLimit"`
	Timeout          time.Duration `yaml:"timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Grid: GridConfig{
			DefaultColumnWidth: 100,
			DefaultRowHeight:   20,
		},
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
			Home:   "A1",
		},
		Labels:  LabelsConfig{MaxDepth: 64},
		Logging: LoggingConfig{Level: "info"},
		History: HistoryConfig{MaxEntries: 1000},
		Script: ScriptConfig{
			InstructionLimit: 1_000_000,
			Timeout:          5 * time.Second,
		},
	}
}

// ToMap renders c as a configuration layer.
func (c Config) ToMap() (map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// Decode converts a merged configuration map into a Config. Keys that name
// no setting are an error.
func Decode(data map[string]any) (Config, error) {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// Validate checks every setting and returns all failures joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(path string, value any, msg string) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: msg})
	}

	if c.Grid.DefaultColumnWidth <= 0 {
		bad("grid.defaultColumnWidth", c.Grid.DefaultColumnWidth, "must be positive")
	}
	if c.Grid.DefaultRowHeight <= 0 {
		bad("grid.defaultRowHeight", c.Grid.DefaultRowHeight, "must be positive")
	}
	if c.Grid.FrozenColumns < 0 || c.Grid.FrozenColumns > reference.MaxColumn {
		bad("grid.frozenColumns", c.Grid.FrozenColumns, "out of range")
	}
	if c.Grid.FrozenRows < 0 || c.Grid.FrozenRows > reference.MaxRow {
		bad("grid.frozenRows", c.Grid.FrozenRows, "out of range")
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		bad("viewport", fmt.Sprintf("%vx%v", c.Viewport.Width, c.Viewport.Height), "size must not be negative")
	}
	if _, err := c.HomeSelection(); err != nil {
		bad("viewport.home", c.Viewport.Home, err.Error())
	}
	if c.Labels.MaxDepth <= 0 {
		bad("labels.maxDepth", c.Labels.MaxDepth, "must be positive")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		bad("logging.level", c.Logging.Level, err.Error())
	}
	if c.History.MaxEntries < 0 {
		bad("history.maxEntries", c.History.MaxEntries, "must not be negative")
	}
	if c.Script.InstructionLimit < 0 {
		bad("script.instructionLimit", c.Script.InstructionLimit, "must not be negative")
	}
	if c.Script.Timeout < 0 {
		bad("script.timeout", c.Script.Timeout, "must not be negative")
	}
	return errors.Join(errs...)
}

// HomeSelection parses Viewport.Home, which must be a cell or a label.
func (c Config) HomeSelection() (reference.Selection, error) {
	sel, err := reference.ParseSelection(c.Viewport.Home)
	if err != nil {
		return nil, err
	}
	switch sel.(type) {
	case reference.Cell, reference.Label:
		return sel, nil
	default:
		return nil, fmt.Errorf("home %s: %w", c.Viewport.Home, reference.ErrUnsupported)
	}
}

// LogLevel returns the parsed logging level, falling back to info.
func (c Config) LogLevel() logging.Level {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
