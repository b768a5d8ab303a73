package viewport

import (
	"errors"
	"testing"

	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/selection"
)

// fakeSheet is a uniform grid with optional overrides.
type fakeSheet struct {
	columnWidth float64
	rowHeight   float64
	widths      map[int]float64
	hiddenCols  map[int]bool
	hiddenRows  map[int]bool
	frozenCols  int
	frozenRows  int
}

func newFakeSheet() *fakeSheet {
	return &fakeSheet{
		columnWidth: 100,
		rowHeight:   20,
		widths:      map[int]float64{},
		hiddenCols:  map[int]bool{},
		hiddenRows:  map[int]bool{},
	}
}

func (s *fakeSheet) IsColumnHidden(c reference.Column) bool { return s.hiddenCols[c.Value()] }
func (s *fakeSheet) IsRowHidden(r reference.Row) bool       { return s.hiddenRows[r.Value()] }

func (s *fakeSheet) ColumnWidth(c reference.Column) float64 {
	if w, ok := s.widths[c.Value()]; ok {
		return w
	}
	return s.columnWidth
}

func (s *fakeSheet) RowHeight(reference.Row) float64 { return s.rowHeight }

func (s *fakeSheet) FrozenColumns() (reference.ColumnRange, bool) {
	if s.frozenCols == 0 {
		return reference.ColumnRange{}, false
	}
	return reference.ColumnRangeOf(col(0), col(s.frozenCols-1)), true
}

func (s *fakeSheet) FrozenRows() (reference.RowRange, bool) {
	if s.frozenRows == 0 {
		return reference.RowRange{}, false
	}
	return reference.RowRangeOf(row(0), row(s.frozenRows-1)), true
}

func col(v int) reference.Column { return reference.MustColumn(v, reference.Relative) }
func row(v int) reference.Row    { return reference.MustRow(v, reference.Relative) }

func rect(t *testing.T, home string, x, y, w, h float64) Rectangle {
	t.Helper()
	r, err := NewRectangle(reference.MustCell(home), x, y, w, h)
	if err != nil {
		t.Fatalf("NewRectangle failed: %v", err)
	}
	return r
}

// Rectangle Tests

func TestNewRectangle(t *testing.T) {
	if _, err := NewRectangle(reference.CellRangeOf(reference.MustCell("A1"), reference.MustCell("B2")), 0, 0, 1, 1); !errors.Is(err, ErrInvalidRectangle) {
		t.Errorf("range home error = %v", err)
	}
	if _, err := NewRectangle(reference.MustCell("A1"), 0, 0, -1, 1); !errors.Is(err, ErrInvalidRectangle) {
		t.Errorf("negative width error = %v", err)
	}
	if _, err := NewRectangle(nil, 0, 0, 1, 1); !errors.Is(err, reference.ErrNilArgument) {
		t.Errorf("nil home error = %v", err)
	}
	if _, err := NewRectangle(reference.MustLabel("Start"), 0, 0, 1, 1); err != nil {
		t.Errorf("label home failed: %v", err)
	}

	if got := rect(t, "A1", 0, 0, 800, 600).String(); got != "A1 800x600" {
		t.Errorf("String() = %q", got)
	}
	if got := rect(t, "B3", 10, 4.5, 800, 600).String(); got != "B3+10+4.5 800x600" {
		t.Errorf("String() = %q", got)
	}
}

// Walk Tests

func TestWalkColumnFloor(t *testing.T) {
	s := newFakeSheet()
	tests := []struct {
		from   int
		pixels float64
		want   string
	}{
		{0, 250, "C"},
		{0, 99, "A"},
		{0, 100, "B"},
		{2, -250, "A"},
		{2, -199, "B"},
		{0, -100, "A"},
		{reference.MaxColumn, 1000, "XFD"},
	}
	for _, tt := range tests {
		got := WalkColumn(s, col(tt.from), tt.pixels, false)
		if got.String() != tt.want {
			t.Errorf("WalkColumn(%v, %v) = %v, want %s", col(tt.from), tt.pixels, got, tt.want)
		}
	}
}

func TestWalkSkipsHidden(t *testing.T) {
	s := newFakeSheet()
	s.hiddenCols[1] = true
	s.widths[3] = 0

	if got := WalkColumn(s, col(0), 150, false); got.String() != "C" {
		t.Errorf("walk right over hidden B = %v, want C", got)
	}
	if got := WalkColumn(s, col(2), 200, false); got.String() != "F" {
		t.Errorf("walk right over zero width D = %v, want F", got)
	}
	if got := WalkColumn(s, col(2), -100, false); got.String() != "A" {
		t.Errorf("walk left over hidden B = %v, want A", got)
	}

	next, ok := NextColumn(s, col(0), 1)
	if !ok || next.String() != "C" {
		t.Errorf("NextColumn(A, right) = %v, %v", next, ok)
	}
	if _, ok := NextColumn(s, col(0), -1); ok {
		t.Error("NextColumn(A, left) should fail")
	}
	s.hiddenRows[0] = true
	if _, ok := NextRow(s, row(1), -1); ok {
		t.Error("NextRow(2, up) should fail when row 1 is hidden")
	}
}

func TestWalkStopsAtFrozen(t *testing.T) {
	s := newFakeSheet()
	s.frozenCols = 2
	if got := WalkColumn(s, col(4), -1000, true); got.String() != "C" {
		t.Errorf("walk left with frozen = %v, want C", got)
	}
	if got := WalkColumn(s, col(4), -1000, false); got.String() != "A" {
		t.Errorf("walk left ignoring frozen = %v, want A", got)
	}
}

func TestScrollBy(t *testing.T) {
	s := newFakeSheet()
	r := rect(t, "A1", 30, 5, 800, 600)

	got, ok, err := ScrollBy(r, 250, 0, s)
	if err != nil || !ok {
		t.Fatalf("ScrollBy = %v, %v", ok, err)
	}
	if got.String() != "C1+0+5 800x600" {
		t.Errorf("ScrollBy right 250 = %v", got)
	}

	if _, ok, _ := ScrollBy(r, -50, 0, s); ok {
		t.Error("ScrollBy left from A1 should not move")
	}

	s.frozenCols = 2
	r = rect(t, "C1", 0, 0, 800, 600)
	if _, ok, _ := ScrollBy(r, -500, 0, s); ok {
		t.Error("ScrollBy should not enter frozen columns")
	}

	if _, _, err := ScrollBy(Rectangle{home: reference.MustLabel("Start")}, 1, 0, s); !errors.Is(err, ErrUnresolvedHome) {
		t.Errorf("label home error = %v", err)
	}
}

// Windows Tests

func TestComputeWindows(t *testing.T) {
	s := newFakeSheet()
	w, err := ComputeWindows(rect(t, "A1", 0, 0, 350, 45), true, nil, s)
	if err != nil {
		t.Fatalf("ComputeWindows failed: %v", err)
	}
	if w.String() != "A1:D3" {
		t.Errorf("windows = %q, want A1:D3", w)
	}
	if w.Count() != 12 {
		t.Errorf("Count() = %d", w.Count())
	}

	w, _ = ComputeWindows(rect(t, "A1", 50, 0, 300, 40), true, nil, s)
	if w.String() != "A1:D2" {
		t.Errorf("windows with offset = %q, want A1:D2", w)
	}

	w, _ = ComputeWindows(rect(t, "A1", 0, 0, 0, 45), true, nil, s)
	if !w.IsEmpty() {
		t.Errorf("zero width windows = %q", w)
	}
}

func TestComputeWindowsFrozen(t *testing.T) {
	s := newFakeSheet()
	s.frozenCols = 1
	s.frozenRows = 1
	r := rect(t, "C3", 0, 0, 350, 45)

	w, err := ComputeWindows(r, true, nil, s)
	if err != nil {
		t.Fatalf("ComputeWindows failed: %v", err)
	}
	if w.String() != "A1:A1,C1:E1,A3:A4,C3:E4" {
		t.Errorf("windows = %q", w)
	}
	if w.Test(reference.MustCell("B2")) {
		t.Error("B2 is scrolled away")
	}
	if !w.Test(reference.MustCell("A4")) || !w.Test(col(3)) || !w.Test(row(0)) {
		t.Error("frozen and scrolling parts should be visible")
	}

	w, _ = ComputeWindows(r, false, nil, s)
	if w.String() != "C3:E4" {
		t.Errorf("windows without frozen = %q", w)
	}
	if w.Test(reference.MustCell("A1")) {
		t.Error("frozen corner should not be included")
	}

	// A home inside the frozen panes starts scrolling after them.
	w, _ = ComputeWindows(rect(t, "A1", 0, 0, 350, 45), false, nil, s)
	if w.String() != "B2:D3" {
		t.Errorf("windows from frozen home = %q", w)
	}
}

func TestComputeWindowsHint(t *testing.T) {
	s := newFakeSheet()
	w, err := ComputeWindows(rect(t, "A1", 0, 0, 350, 45), true, reference.MustCell("F1"), s)
	if err != nil {
		t.Fatalf("ComputeWindows failed: %v", err)
	}
	if w.String() != "D1:G3" {
		t.Errorf("windows = %q, want D1:G3", w)
	}

	if _, err := ComputeWindows(Rectangle{home: reference.MustLabel("Start")}, true, nil, s); !errors.Is(err, ErrUnresolvedHome) {
		t.Errorf("label home error = %v", err)
	}
	if _, err := ComputeWindows(rect(t, "A1", 0, 0, 1, 1), true, nil, nil); !errors.Is(err, ErrNoSheet) {
		t.Errorf("nil sheet error = %v", err)
	}
}

// Reveal Tests

func TestReveal(t *testing.T) {
	s := newFakeSheet()
	tests := []struct {
		name    string
		home    string
		sel     string
		want    string
		changed bool
	}{
		{"visible", "A1", "B2", "A1 350x45", false},
		{"right", "A1", "F1", "D1 350x45", true},
		{"left", "D1", "A1", "A1 350x45", true},
		{"down", "A1", "A10", "A9 350x45", true},
		{"column only", "A1", "F", "D1 350x45", true},
		{"row only", "D1", "10", "D9 350x45", true},
		{"wide range", "A1", "F1:M1", "F1 350x45", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := reference.ParseSelection(tt.sel)
			if err != nil {
				t.Fatalf("ParseSelection failed: %v", err)
			}
			got, changed, err := Reveal(rect(t, tt.home, 0, 0, 350, 45), sel, s)
			if err != nil {
				t.Fatalf("Reveal failed: %v", err)
			}
			if changed != tt.changed || got.String() != tt.want {
				t.Errorf("Reveal = %v, %v; want %s, %v", got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestRevealOffsetAndFrozen(t *testing.T) {
	s := newFakeSheet()
	got, changed, _ := Reveal(rect(t, "B2", 30, 0, 350, 45), reference.MustCell("B2"), s)
	if !changed || got.String() != "B2 350x45" {
		t.Errorf("partly scrolled home = %v, %v", got, changed)
	}

	s.frozenCols = 1
	got, changed, _ = Reveal(rect(t, "E1", 0, 0, 350, 45), reference.MustCell("A1"), s)
	if changed {
		t.Errorf("frozen cell should already be visible, got %v", got)
	}
}

// Viewport Tests

func TestViewport(t *testing.T) {
	v := New(rect(t, "A1", 0, 0, 800, 600), selection.Of(reference.MustCell("B2")))
	if !v.HasSelection() {
		t.Fatal("HasSelection() = false")
	}
	if v.String() != "A1 800x600 [B2]" {
		t.Errorf("String() = %q", v)
	}
	cleared := v.ClearSelection()
	if cleared.HasSelection() || cleared.String() != "A1 800x600" {
		t.Errorf("ClearSelection() = %v", cleared)
	}
	if !v.Equal(New(rect(t, "A1", 0, 0, 800, 600), selection.Of(reference.MustCell("B2")))) {
		t.Error("Equal() = false for identical viewports")
	}
}
