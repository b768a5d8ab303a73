package grid

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/gridnav/internal/reference"
)

// ErrUnknownFormat indicates a fixture file extension other than .toml,
// .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown fixture format")

// Fixture is the file form of a sheet:
//
//	[columns]
//	defaultSize = 100
//	frozen = 1
//	hidden = ["C"]
//	sizes = { B = 150 }
//
//	[rows]
//	sizes = { "2" = 40 }
//
//	[labels]
//	Total = "D10"
//
//	[cells]
//	A1 = "Name"
type Fixture struct {
	Columns Axis              `toml:"columns" yaml:"columns"`
	Rows    Axis              `toml:"rows" yaml:"rows"`
	Labels  map[string]string `toml:"labels" yaml:"labels"`
	Cells   map[string]string `toml:"cells" yaml:"cells"`
}

// Axis describes the columns or rows of a fixture. Keys of Sizes are column
// letters or row numbers.
type Axis struct {
	DefaultSize float64            `toml:"defaultSize" yaml:"defaultSize"`
	Frozen      int                `toml:"frozen" yaml:"frozen"`
	Hidden      []string           `toml:"hidden" yaml:"hidden"`
	Sizes       map[string]float64 `toml:"sizes" yaml:"sizes"`
}

// FixtureError reports an invalid entry in a fixture.
type FixtureError struct {
	Path    string
	Section string
	Key     string
	Err     error
}

// Error implements the error interface.
func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %s: [%s] %s: %v", e.Path, e.Section, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *FixtureError) Unwrap() error {
	return e.Err
}

// ParseTOML decodes a TOML fixture.
func ParseTOML(data []byte) (*Fixture, error) {
	var f Fixture
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding toml fixture: %w", err)
	}
	return &f, nil
}

// ParseYAML decodes a YAML fixture.
func ParseYAML(data []byte) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding yaml fixture: %w", err)
	}
	return &f, nil
}

// LoadFixture reads a fixture file, choosing the format by extension.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads a fixture file and builds the sheet it describes.
func Load(path string, opts ...Option) (*Sheet, error) {
	f, err := LoadFixture(path)
	if err != nil {
		return nil, err
	}
	s, err := f.Build(opts...)
	if err != nil {
		var fe *FixtureError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Build creates a sheet from the fixture. Sizes from the fixture override
// the defaults given in opts.
func (f *Fixture) Build(opts ...Option) (*Sheet, error) {
	s := New(append(opts, WithDefaultSize(f.Columns.DefaultSize, f.Rows.DefaultSize))...)

	for _, text := range f.Columns.Hidden {
		c, err := reference.ParseColumn(text)
		if err != nil {
			return nil, &FixtureError{Section: "columns", Key: "hidden", Err: err}
		}
		s.SetColumnHidden(c, true)
	}
	for text, width := range f.Columns.Sizes {
		c, err := reference.ParseColumn(text)
		if err != nil {
			return nil, &FixtureError{Section: "columns", Key: text, Err: err}
		}
		s.SetColumnWidth(c, width)
	}
	for _, text := range f.Rows.Hidden {
		r, err := reference.ParseRow(text)
		if err != nil {
			return nil, &FixtureError{Section: "rows", Key: "hidden", Err: err}
		}
		s.SetRowHidden(r, true)
	}
	for text, height := range f.Rows.Sizes {
		r, err := reference.ParseRow(text)
		if err != nil {
			return nil, &FixtureError{Section: "rows", Key: text, Err: err}
		}
		s.SetRowHeight(r, height)
	}
	if err := s.Freeze(f.Columns.Frozen, f.Rows.Frozen); err != nil {
		section := "columns"
		if errors.Is(err, reference.ErrInvalidRow) {
			section = "rows"
		}
		return nil, &FixtureError{Section: section, Key: "frozen", Err: err}
	}

	for name, text := range f.Labels {
		label, err := reference.ParseLabel(name)
		if err != nil {
			return nil, &FixtureError{Section: "labels", Key: name, Err: err}
		}
		target, err := reference.ParseSelection(text)
		if err != nil {
			return nil, &FixtureError{Section: "labels", Key: name, Err: err}
		}
		if err := s.SetLabel(label, target); err != nil {
			return nil, &FixtureError{Section: "labels", Key: name, Err: err}
		}
	}

	for text, value := range f.Cells {
		c, err := reference.ParseCell(text)
		if err != nil {
			return nil, &FixtureError{Section: "cells", Key: text, Err: err}
		}
		s.SetCell(c, value)
	}
	return s, nil
}
