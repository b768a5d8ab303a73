package viewport

import (
	"strings"

	"github.com/dshills/gridnav/internal/reference"
)

// Windows is the ordered set of cell ranges visible in a rectangle: the
// frozen corner, the frozen rows, the frozen columns, then the scrolling
// area. Empty parts are omitted.
type Windows struct {
	ranges []reference.CellRange
}

// NewWindows builds windows from explicit ranges.
func NewWindows(ranges ...reference.CellRange) Windows {
	return Windows{ranges: append([]reference.CellRange(nil), ranges...)}
}

// Ranges returns a copy of the visible ranges.
func (w Windows) Ranges() []reference.CellRange {
	return append([]reference.CellRange(nil), w.ranges...)
}

// IsEmpty returns true if nothing is visible.
func (w Windows) IsEmpty() bool {
	return len(w.ranges) == 0
}

// Count returns the number of visible cells.
func (w Windows) Count() int {
	n := 0
	for _, r := range w.ranges {
		n += r.Count()
	}
	return n
}

// Test returns true if any part of sel is visible. Labels are never visible.
func (w Windows) Test(sel reference.Selection) bool {
	for _, r := range w.ranges {
		if reference.Test(r, sel) {
			return true
		}
	}
	return false
}

// TestCell returns true if cell is visible.
func (w Windows) TestCell(cell reference.Cell) bool {
	for _, r := range w.ranges {
		if r.Contains(cell) {
			return true
		}
	}
	return false
}

// String joins the ranges with commas, e.g. "A1:B2,C1:H2,A3:B20,C3:H20".
func (w Windows) String() string {
	parts := make([]string, len(w.ranges))
	for i, r := range w.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// ComputeWindows lays out rect over sheet. Frozen panes always take their
// space; their ranges are part of the result only when includeFrozen is set.
// A non-nil hint is revealed first, moving the home as little as possible.
func ComputeWindows(rect Rectangle, includeFrozen bool, hint reference.Selection, sheet Sheet) (Windows, error) {
	if sheet == nil {
		return Windows{}, ErrNoSheet
	}
	if hint != nil {
		revealed, _, err := Reveal(rect, hint, sheet)
		if err != nil {
			return Windows{}, err
		}
		rect = revealed
	}
	home, ok := rect.HomeCell()
	if !ok {
		return Windows{}, ErrUnresolvedHome
	}

	cols := columnAxis(sheet)
	rows := rowAxis(sheet)

	c0 := max(home.Column().Value(), cols.frozen)
	r0 := max(home.Row().Value(), rows.frozen)
	c1, hasCols := cols.span(c0, rect.Width()-cols.frozenSize()+rect.X())
	r1, hasRows := rows.span(r0, rect.Height()-rows.frozenSize()+rect.Y())

	var ranges []reference.CellRange
	if includeFrozen && cols.frozen > 0 && rows.frozen > 0 {
		ranges = append(ranges, cellRange(0, cols.frozen-1, 0, rows.frozen-1))
	}
	if includeFrozen && rows.frozen > 0 && hasCols {
		ranges = append(ranges, cellRange(c0, c1, 0, rows.frozen-1))
	}
	if includeFrozen && cols.frozen > 0 && hasRows {
		ranges = append(ranges, cellRange(0, cols.frozen-1, r0, r1))
	}
	if hasCols && hasRows {
		ranges = append(ranges, cellRange(c0, c1, r0, r1))
	}
	return Windows{ranges: ranges}, nil
}

func cellRange(c0, c1, r0, r1 int) reference.CellRange {
	return reference.CellRangeOf(cell(c0, r0), cell(c1, r1))
}

func cell(column, row int) reference.Cell {
	return reference.NewCell(
		reference.MustColumn(column, reference.Relative),
		reference.MustRow(row, reference.Relative),
	)
}
