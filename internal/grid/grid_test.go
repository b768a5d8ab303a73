package grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/selection"
)

const tomlFixture = `
[columns]
defaultSize = 80.0
frozen = 1
hidden = ["C"]
sizes = { B = 150.0 }

[rows]
frozen = 2
hidden = ["4"]
sizes = { "2" = 40.0 }

[labels]
Total = "D10"
GrandTotal = "Total"
Header = "1:2"

[cells]
A1 = "Name"
B1 = "Amount"
D10 = "=SUM(B2:B9)"
`

const yamlFixture = `
columns:
  defaultSize: 80
  frozen: 1
  hidden: [C]
  sizes:
    B: 150
rows:
  frozen: 2
  hidden: ["4"]
  sizes:
    "2": 40
labels:
  Total: D10
  GrandTotal: Total
  Header: "1:2"
cells:
  A1: Name
  B1: Amount
  D10: "=SUM(B2:B9)"
`

func col(text string) reference.Column {
	c, err := reference.ParseColumn(text)
	if err != nil {
		panic(err)
	}
	return c
}

func row(text string) reference.Row {
	r, err := reference.ParseRow(text)
	if err != nil {
		panic(err)
	}
	return r
}

// Fixture Tests

func TestFixtureFormatsAgree(t *testing.T) {
	ft, err := ParseTOML([]byte(tomlFixture))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	fy, err := ParseYAML([]byte(yamlFixture))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if diff := cmp.Diff(ft, fy); diff != "" {
		t.Errorf("TOML and YAML fixtures differ (-toml +yaml):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"sheet.toml": tomlFixture,
		"sheet.yaml": yamlFixture,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
		checkFixtureSheet(t, s)
	}

	path := filepath.Join(dir, "sheet.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(json) error = %v, want ErrUnknownFormat", err)
	}
}

func checkFixtureSheet(t *testing.T, s *Sheet) {
	t.Helper()
	if got := s.ColumnWidth(col("A")); got != 80 {
		t.Errorf("ColumnWidth(A) = %v, want 80", got)
	}
	if got := s.ColumnWidth(col("B")); got != 150 {
		t.Errorf("ColumnWidth(B) = %v, want 150", got)
	}
	if got := s.RowHeight(row("2")); got != 40 {
		t.Errorf("RowHeight(2) = %v, want 40", got)
	}
	if got := s.RowHeight(row("3")); got != DefaultRowHeight {
		t.Errorf("RowHeight(3) = %v, want default", got)
	}
	if !s.IsColumnHidden(col("C")) || s.IsColumnHidden(col("D")) {
		t.Error("hidden columns mismatch")
	}
	if !s.IsRowHidden(row("4")) {
		t.Error("row 4 should be hidden")
	}
	if r, ok := s.FrozenColumns(); !ok || r.String() != "A:A" {
		t.Errorf("FrozenColumns() = %v, %v", r, ok)
	}
	if r, ok := s.FrozenRows(); !ok || r.String() != "1:2" {
		t.Errorf("FrozenRows() = %v, %v", r, ok)
	}

	got, err := s.ResolveLabel(reference.MustLabel("grandtotal"))
	if err != nil || got.String() != "D10" {
		t.Errorf("ResolveLabel(grandtotal) = %v, %v", got, err)
	}
	if s.Value(reference.MustCell("D10")) != "=SUM(B2:B9)" {
		t.Errorf("Value(D10) = %q", s.Value(reference.MustCell("D10")))
	}
}

func TestFixtureErrors(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{"bad hidden column", "[columns]\nhidden = [\"1\"]\n"},
		{"bad row size", "[rows]\nsizes = { B = 10.0 }\n"},
		{"bad label name", "[labels]\nA1 = \"B2\"\n"},
		{"bad label target", "[labels]\nTotal = \"B2:\"\n"},
		{"bad cell", "[cells]\nB = \"x\"\n"},
		{"bad frozen", "[columns]\nfrozen = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseTOML([]byte(tt.fixture))
			if err != nil {
				t.Fatalf("ParseTOML failed: %v", err)
			}
			_, err = f.Build()
			var fe *FixtureError
			if !errors.As(err, &fe) {
				t.Errorf("Build() error = %v, want *FixtureError", err)
			}
		})
	}

	if _, err := ParseTOML([]byte("[columns]\nwidth = 3\n")); err == nil {
		t.Error("unknown TOML field should fail")
	}
	if _, err := ParseYAML([]byte("columns:\n  width: 3\n")); err == nil {
		t.Error("unknown YAML field should fail")
	}
}

// Sheet Tests

func TestSheetDefaults(t *testing.T) {
	s := New(WithDefaultSize(64, 18))
	if s.ColumnWidth(col("Z")) != 64 || s.RowHeight(row("99")) != 18 {
		t.Error("default sizes not applied")
	}
	s.SetColumnWidth(col("B"), 10)
	s.SetColumnWidth(col("B"), 0)
	if s.ColumnWidth(col("B")) != 64 {
		t.Error("zero width should restore the default")
	}
	if _, ok := s.FrozenColumns(); ok {
		t.Error("new sheet should have no frozen columns")
	}
	if err := s.Freeze(reference.MaxColumn+1, 0); !errors.Is(err, reference.ErrInvalidColumn) {
		t.Errorf("Freeze error = %v", err)
	}
}

func TestSheetLabels(t *testing.T) {
	s := New(WithLabelDepth(2))
	a, b, c := reference.MustLabel("Alpha"), reference.MustLabel("Beta"), reference.MustLabel("Gamma")
	_ = s.SetLabel(a, b)
	_ = s.SetLabel(b, c)
	_ = s.SetLabel(c, reference.MustCell("D5"))

	if _, err := s.ResolveLabel(a); !errors.Is(err, selection.ErrCyclicLabel) {
		t.Errorf("depth limited resolve error = %v", err)
	}
	if got, err := s.ResolveLabel(b); err != nil || got.String() != "D5" {
		t.Errorf("ResolveLabel(Beta) = %v, %v", got, err)
	}

	s.DeleteLabel(c)
	if _, err := s.ResolveLabel(b); !errors.Is(err, selection.ErrLabelNotFound) {
		t.Errorf("missing link error = %v", err)
	}
	if err := s.SetLabel(a, nil); !errors.Is(err, reference.ErrNilArgument) {
		t.Errorf("SetLabel(nil) error = %v", err)
	}

	var names []string
	for _, m := range s.Labels() {
		names = append(names, m.Label.Name())
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, names); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetCellLoader(t *testing.T) {
	s := New()
	s.SetCell(reference.MustCell("A1"), "x")
	s.SetCell(reference.MustCell("$B$2"), "y")
	s.SetCell(reference.MustCell("C3"), "z")
	s.SetCell(reference.MustCell("C3"), "")

	var present, absent []string
	err := reference.ForEachCell[Cell](
		reference.CellRangeOf(reference.MustCell("A1"), reference.MustCell("C3")),
		reference.TDLR,
		s,
		func(c Cell) { present = append(present, c.Value) },
		func(c reference.Cell) { absent = append(absent, c.String()) },
	)
	if err != nil {
		t.Fatalf("ForEachCell failed: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, present); diff != "" {
		t.Errorf("present mismatch (-want +got):\n%s", diff)
	}
	if len(absent) != 7 {
		t.Errorf("absent = %v", absent)
	}
	if s.Value(reference.MustCell("B2")) != "y" {
		t.Error("cells are keyed ignoring kind")
	}
}

// Edit Tests

func TestInsertAndDeleteColumns(t *testing.T) {
	s := New()
	s.SetCell(reference.MustCell("B2"), "b")
	s.SetCell(reference.MustCell("D4"), "d")
	s.SetColumnWidth(col("D"), 150)
	s.SetColumnHidden(col("E"), true)
	_ = s.SetLabel(reference.MustLabel("Total"), reference.MustCell("D4"))
	_ = s.SetLabel(reference.MustLabel("Left"), reference.MustCell("B2"))

	if _, err := s.InsertColumns(col("C"), 2); err != nil {
		t.Fatalf("InsertColumns failed: %v", err)
	}
	if s.Value(reference.MustCell("F4")) != "d" || s.Value(reference.MustCell("B2")) != "b" {
		t.Error("cells not shifted by insert")
	}
	if s.ColumnWidth(col("F")) != 150 || !s.IsColumnHidden(col("G")) {
		t.Error("column metadata not shifted by insert")
	}
	if got, _ := s.ResolveLabel(reference.MustLabel("Total")); got.String() != "F4" {
		t.Errorf("label target after insert = %v", got)
	}

	dropped, err := s.DeleteColumns(col("B"), 1)
	if err != nil {
		t.Fatalf("DeleteColumns failed: %v", err)
	}
	if len(dropped) != 1 || dropped[0].Name() != "Left" {
		t.Errorf("dropped = %v", dropped)
	}
	if s.Value(reference.MustCell("E4")) != "d" {
		t.Error("cells not shifted by delete")
	}

	if _, err := s.InsertColumns(col("A"), 0); !errors.Is(err, reference.ErrInvalidColumn) {
		t.Errorf("InsertColumns(0) error = %v", err)
	}
}

func TestInsertAndDeleteRows(t *testing.T) {
	s := New()
	s.SetCell(reference.MustCell("A5"), "five")
	s.SetRowHeight(row("5"), 33)
	_ = s.SetLabel(reference.MustLabel("Block"), reference.RowRangeOf(row("4"), row("6")))

	if _, err := s.InsertRows(row("2"), 3); err != nil {
		t.Fatalf("InsertRows failed: %v", err)
	}
	if s.Value(reference.MustCell("A8")) != "five" || s.RowHeight(row("8")) != 33 {
		t.Error("rows not shifted by insert")
	}
	if got, _ := s.ResolveLabel(reference.MustLabel("Block")); got.String() != "7:9" {
		t.Errorf("label after insert = %v", got)
	}

	dropped, _ := s.DeleteRows(row("8"), 1)
	if len(dropped) != 0 {
		t.Errorf("interior delete dropped %v", dropped)
	}
	if s.Value(reference.MustCell("A8")) != "" {
		t.Error("cell in deleted row survived")
	}
	if got, _ := s.ResolveLabel(reference.MustLabel("Block")); got.String() != "7:8" {
		t.Errorf("label after interior delete = %v", got)
	}

	dropped, _ = s.DeleteRows(row("7"), 1)
	if len(dropped) != 1 || dropped[0].Name() != "Block" {
		t.Errorf("label touching deleted edge should be dropped, got %v", dropped)
	}
}

func TestStructuralEditsKeepOtherAxis(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Sheet) ([]reference.Label, error)
	}{
		{"delete row 1", func(s *Sheet) ([]reference.Label, error) { return s.DeleteRows(row("1"), 1) }},
		{"insert rows", func(s *Sheet) ([]reference.Label, error) { return s.InsertRows(row("1"), 3) }},
		{"delete column A", func(s *Sheet) ([]reference.Label, error) { return s.DeleteColumns(col("A"), 1) }},
		{"insert columns", func(s *Sheet) ([]reference.Label, error) { return s.InsertColumns(col("A"), 3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetColumnWidth(col("C"), 250)
			s.SetColumnHidden(col("D"), true)
			s.SetRowHeight(row("5"), 45)
			s.SetRowHidden(row("6"), true)
			_ = s.SetLabel(reference.MustLabel("Costs"), reference.ColumnRangeOf(col("F"), col("F")))
			_ = s.SetLabel(reference.MustLabel("Body"), reference.RowRangeOf(row("8"), row("9")))

			dropped, err := tt.edit(s)
			if err != nil {
				t.Fatalf("edit failed: %v", err)
			}
			if len(dropped) != 0 {
				t.Errorf("dropped = %v, want none", dropped)
			}

			rowEdit := tt.name == "delete row 1" || tt.name == "insert rows"
			if rowEdit {
				if s.ColumnWidth(col("C")) != 250 || !s.IsColumnHidden(col("D")) {
					t.Error("row edit changed column state")
				}
				if got, _ := s.ResolveLabel(reference.MustLabel("Costs")); got.String() != "F:F" {
					t.Errorf("column label after row edit = %v", got)
				}
			} else {
				if s.RowHeight(row("5")) != 45 || !s.IsRowHidden(row("6")) {
					t.Error("column edit changed row state")
				}
				if got, _ := s.ResolveLabel(reference.MustLabel("Body")); got.String() != "8:9" {
					t.Errorf("row label after column edit = %v", got)
				}
			}
		})
	}
}
