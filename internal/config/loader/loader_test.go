package loader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestForPath(t *testing.T) {
	fsys := fstest.MapFS{
		"gridnav.toml": {Data: []byte("[grid]\nfrozenColumns = 2\n")},
		"gridnav.yaml": {Data: []byte("grid:\n  frozenColumns: 2\n")},
	}

	for _, path := range []string{"gridnav.toml", "gridnav.yaml"} {
		l, err := ForPath(fsys, path)
		if err != nil {
			t.Fatalf("ForPath(%s) failed: %v", path, err)
		}
		got, err := l.Load()
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", path, err)
		}
		grid, ok := got["grid"].(map[string]any)
		if !ok {
			t.Fatalf("%s: grid section missing: %v", path, got)
		}
		switch v := grid["frozenColumns"].(type) {
		case int64, int:
		default:
			t.Errorf("%s: frozenColumns = %T, want an integer", path, v)
		}
	}

	if _, err := ForPath(fsys, "gridnav.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ForPath(json) error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewTOMLLoaderWithFS(fstest.MapFS{}, "absent.toml")
	got, err := l.Load()
	if err != nil || got != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", got, err)
	}
}

func TestParseErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.toml": {Data: []byte("[grid\nfrozen = 1\n")},
		"bad.yaml": {Data: []byte("grid: [1, 2\n")},
	}
	for _, path := range []string{"bad.toml", "bad.yaml"} {
		l, _ := ForPath(fsys, path)
		_, err := l.Load()
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Load(%s) error = %v, want *ParseError", path, err)
		}
		if pe.Path != path {
			t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
		}
	}

	_, err := NewTOMLLoader("x.toml").LoadFromReader(strings.NewReader("a = "))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 1 {
		t.Errorf("LoadFromReader error = %v, want ParseError at line 1", err)
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.environ = func() []string {
		return []string{
			"GRIDNAV_GRID_DEFAULT_COLUMN_WIDTH=72.5",
			"GRIDNAV_GRID_FROZEN_ROWS=1",
			"GRIDNAV_LOG_LEVEL=debug",
			"GRIDNAV_SCRIPT_TIMEOUT=2s",
			"GRIDNAV_HISTORY_ENABLED=off",
			"GRIDNAV_ORPHAN=x",
			"HOME=/root",
		}
	}

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := map[string]any{
		"grid": map[string]any{
			"defaultColumnWidth": 72.5,
			"frozenRows":         int64(1),
		},
		"logging": map[string]any{"level": "debug"},
		"script":  map[string]any{"timeout": "2s"},
		"history": map[string]any{"enabled": false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader("GRIDNAV_")
	tests := []struct {
		env  string
		want string
	}{
		{"GRIDNAV_LABELS_MAX_DEPTH", "labels.maxDepth"},
		{"GRIDNAV_VIEWPORT_WIDTH", "viewport.width"},
		{"GRIDNAV_SCRIPT_INSTRUCTION_LIMIT", "script.instructionLimit"},
		{"GRIDNAV_GRID", ""},
		{"GRIDNAV__WIDTH", ""},
	}
	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	defaults := map[string]any{
		"grid":    map[string]any{"frozenRows": 0, "frozenColumns": 0},
		"logging": map[string]any{"level": "info"},
	}
	file := map[string]any{
		"grid": map[string]any{"frozenRows": 2},
	}
	env := map[string]any{
		"logging": map[string]any{"level": "debug"},
		"viewport": map[string]any{"width": 640},
	}

	got, err := MergeAll(MapLoader(defaults), MapLoader(file), MapLoader(env))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"grid":     map[string]any{"frozenRows": 2, "frozenColumns": 0},
		"logging":  map[string]any{"level": "debug"},
		"viewport": map[string]any{"width": 640},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeAll mismatch (-want +got):\n%s", diff)
	}

	if defaults["grid"].(map[string]any)["frozenRows"] != 0 {
		t.Error("merge mutated the defaults layer")
	}
	env["viewport"].(map[string]any)["width"] = 1
	if got["viewport"].(map[string]any)["width"] != 640 {
		t.Error("merged map shares nested maps with its source")
	}
}
