package reference

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cellStrings(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

// Range Tests

func TestCellRangeSymmetric(t *testing.T) {
	a := MustCell("D9")
	b := MustCell("B2")
	if CellRangeOf(a, b) != CellRangeOf(b, a) {
		t.Error("CellRangeOf should not depend on argument order")
	}
	r := CellRangeOf(MustCell("D2"), MustCell("B9"))
	if r.String() != "B2:D9" {
		t.Errorf("String() = %q, want B2:D9", r.String())
	}
	if r.TopRight().String() != "D2" || r.BottomLeft().String() != "B9" {
		t.Errorf("corners %v %v", r.TopRight(), r.BottomLeft())
	}
}

func TestNewCellRangeBounds(t *testing.T) {
	a, b := MustCell("A1"), MustCell("C3")

	r, err := NewCellRange(Inclusive(b), Inclusive(a))
	if err != nil {
		t.Fatalf("NewCellRange failed: %v", err)
	}
	if r != CellRangeOf(a, b) {
		t.Errorf("got %v, want A1:C3", r)
	}

	invalid := []struct {
		name         string
		lower, upper Bound[Cell]
	}{
		{"unbounded lower", Unbounded[Cell](), Inclusive(b)},
		{"unbounded upper", Inclusive(a), Unbounded[Cell]()},
		{"exclusive lower", Exclusive(a), Inclusive(b)},
		{"exclusive upper", Inclusive(a), Exclusive(b)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCellRange(tt.lower, tt.upper); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestNewColumnAndRowRangeBounds(t *testing.T) {
	c1, c2 := MustColumn(4, Relative), MustColumn(1, Relative)
	cr, err := NewColumnRange(Inclusive(c1), Inclusive(c2))
	if err != nil {
		t.Fatalf("NewColumnRange failed: %v", err)
	}
	if cr.String() != "B:E" || cr.Count() != 4 {
		t.Errorf("got %v count %d", cr, cr.Count())
	}
	if _, err := NewColumnRange(Exclusive(c1), Inclusive(c2)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("exclusive column bound error = %v", err)
	}
	if _, err := NewRowRange(Inclusive(MustRow(1, Relative)), Unbounded[Row]()); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("unbounded row bound error = %v", err)
	}
}

func TestParseRanges(t *testing.T) {
	r, err := ParseCellRange("$B$2:D9")
	if err != nil {
		t.Fatalf("ParseCellRange failed: %v", err)
	}
	if r.String() != "$B$2:D9" || r.Width() != 3 || r.Height() != 8 {
		t.Errorf("got %v %dx%d", r, r.Width(), r.Height())
	}

	cr, err := ParseColumnRange("C:C")
	if err != nil || !cr.IsSingle() || cr.String() != "C:C" {
		t.Errorf("ParseColumnRange(C:C) = %v, %v", cr, err)
	}

	rr, err := ParseRowRange("3:3")
	if err != nil || !rr.IsSingle() || rr.Begin().Value() != 2 {
		t.Errorf("ParseRowRange(3:3) = %v, %v", rr, err)
	}

	for _, text := range []string{"A1:", ":A1", "A1:B2:C3", "A1:B"} {
		if _, err := ParseCellRange(text); err == nil {
			t.Errorf("ParseCellRange(%q) should fail", text)
		}
	}
}

// Range Path Tests

func TestRangePathsOverTwoByTwo(t *testing.T) {
	r := CellRangeOf(MustCell("A1"), MustCell("B2"))
	want := map[RangePath][]string{
		LRTD: {"A1", "B1", "A2", "B2"},
		RLTD: {"B1", "A1", "B2", "A2"},
		LRBU: {"A2", "B2", "A1", "B1"},
		RLBU: {"B2", "A2", "B1", "A1"},
		TDLR: {"A1", "A2", "B1", "B2"},
		TDRL: {"B1", "B2", "A1", "A2"},
		BULR: {"A2", "A1", "B2", "B1"},
		BURL: {"B2", "B1", "A2", "A1"},
	}
	for _, path := range Paths {
		t.Run(path.String(), func(t *testing.T) {
			got := cellStrings(slices.Collect(r.Cells(path)))
			if diff := cmp.Diff(want[path], got); diff != "" {
				t.Errorf("Cells(%v) mismatch (-want +got):\n%s", path, diff)
			}

			sorted := slices.Collect(r.Cells(LRTD))
			slices.SortFunc(sorted, path.Comparator())
			if diff := cmp.Diff(want[path], cellStrings(sorted)); diff != "" {
				t.Errorf("Comparator(%v) order mismatch (-want +got):\n%s", path, diff)
			}
		})
	}
}

func TestRangePathComparatorStrictTotalOrder(t *testing.T) {
	cells := slices.Collect(CellRangeOf(MustCell("A1"), MustCell("C3")).Cells(LRTD))
	for _, path := range Paths {
		cmpFn := path.Comparator()
		for _, a := range cells {
			if cmpFn(a, a) != 0 {
				t.Fatalf("%v: %v not equal to itself", path, a)
			}
			for _, b := range cells {
				if a != b && cmpFn(a, b) == 0 {
					t.Fatalf("%v: distinct %v and %v compare equal", path, a, b)
				}
				if cmpFn(a, b) != -cmpFn(b, a) {
					t.Fatalf("%v: comparator not antisymmetric for %v %v", path, a, b)
				}
			}
		}
	}
}

func TestPathFor(t *testing.T) {
	for _, p := range Paths {
		got := PathFor(p.ColumnsFirst(), p.ColumnSign() < 0, p.RowSign() < 0)
		if got != p {
			t.Errorf("PathFor(%v params) = %v", p, got)
		}
	}
	if p, err := ParseRangePath("burl"); err != nil || p != BURL {
		t.Errorf("ParseRangePath(burl) = %v, %v", p, err)
	}
}

func TestCellsEarlyStop(t *testing.T) {
	r := CellRangeOf(MustCell("A1"), MustCell("J10"))
	n := 0
	for range r.Cells(TDRL) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d cells, want 3", n)
	}
}
