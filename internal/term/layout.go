package term

import (
	"math"

	"github.com/rivo/uniseg"

	"github.com/dshills/gridnav/internal/reference"
	"github.com/dshills/gridnav/internal/viewport"
)

// Scale converts sheet pixels to terminal cells.
type Scale struct {
	// PixelsPerColumn is the pixel width of one terminal column.
	PixelsPerColumn float64
	// PixelsPerRow is the pixel height of one terminal row.
	PixelsPerRow float64
}

// DefaultScale maps a default 100x20 cell to 10x1 terminal cells.
var DefaultScale = Scale{PixelsPerColumn: 10, PixelsPerRow: 20}

func (s Scale) columns(px float64) int {
	return max(1, int(math.Round(px/s.PixelsPerColumn)))
}

func (s Scale) rows(px float64) int {
	return max(1, int(math.Round(px/s.PixelsPerRow)))
}

// columnSlot is a sheet column placed on screen.
type columnSlot struct {
	Column reference.Column
	X      int
	Width  int
}

// rowSlot is a sheet row placed on screen.
type rowSlot struct {
	Row    reference.Row
	Y      int
	Height int
}

// layout places the visible columns and rows, frozen ones first.
type layout struct {
	Columns []columnSlot
	Rows    []rowSlot
}

// computeLayout lays out the columns and rows of windows starting at the
// screen position (x0, y0) and clipped to (x1, y1).
func computeLayout(w viewport.Windows, sheet viewport.Sheet, scale Scale, x0, y0, x1, y1 int) layout {
	var l layout
	seenCols := make(map[int]bool)
	seenRows := make(map[int]bool)
	x, y := x0, y0
	for _, r := range w.Ranges() {
		for c := range r.ColumnRange().Columns() {
			if seenCols[c.Value()] || sheet.IsColumnHidden(c) || x >= x1 {
				continue
			}
			seenCols[c.Value()] = true
			width := min(scale.columns(sheet.ColumnWidth(c)), x1-x)
			l.Columns = append(l.Columns, columnSlot{Column: c, X: x, Width: width})
			x += width
		}
		for row := range r.RowRange().Rows() {
			if seenRows[row.Value()] || sheet.IsRowHidden(row) || y >= y1 {
				continue
			}
			seenRows[row.Value()] = true
			height := min(scale.rows(sheet.RowHeight(row)), y1-y)
			l.Rows = append(l.Rows, rowSlot{Row: row, Y: y, Height: height})
			y += height
		}
	}
	return l
}

// cellAt returns the sheet cell drawn at screen position (x, y).
func (l layout) cellAt(x, y int) (reference.Cell, bool) {
	var (
		col    reference.Column
		row    reference.Row
		colHit bool
		rowHit bool
	)
	for _, s := range l.Columns {
		if x >= s.X && x < s.X+s.Width {
			col, colHit = s.Column, true
			break
		}
	}
	for _, s := range l.Rows {
		if y >= s.Y && y < s.Y+s.Height {
			row, rowHit = s.Row, true
			break
		}
	}
	if !colHit || !rowHit {
		return reference.Cell{}, false
	}
	return reference.NewCell(col, row), true
}

// truncate cuts s to at most width terminal columns without splitting a
// grapheme cluster.
func truncate(s string, width int) string {
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			return s[:len(s)-len(rest)-len(cluster)]
		}
		used += w
	}
	return s
}
