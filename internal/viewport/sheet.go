package viewport

import "github.com/dshills/gridnav/internal/reference"

// Hidden reports hidden columns and rows.
type Hidden interface {
	IsColumnHidden(column reference.Column) bool
	IsRowHidden(row reference.Row) bool
}

// Metrics supplies column widths and row heights in pixels.
type Metrics interface {
	ColumnWidth(column reference.Column) float64
	RowHeight(row reference.Row) float64
}

// Panes reports the frozen leading columns and rows. A frozen range always
// starts at column A or row 1.
type Panes interface {
	FrozenColumns() (reference.ColumnRange, bool)
	FrozenRows() (reference.RowRange, bool)
}

// Sheet is everything the viewport needs to lay out a grid.
type Sheet interface {
	Hidden
	Metrics
	Panes
}

// axis flattens columns or rows to integer offsets so that walks are written
// once for both.
type axis struct {
	max    int
	frozen int
	hidden func(int) bool
	size   func(int) float64
}

func columnAxis(s Sheet) axis {
	a := axis{
		max: reference.MaxColumn,
		hidden: func(i int) bool {
			return s.IsColumnHidden(reference.MustColumn(i, reference.Relative))
		},
		size: func(i int) float64 {
			return s.ColumnWidth(reference.MustColumn(i, reference.Relative))
		},
	}
	if r, ok := s.FrozenColumns(); ok {
		a.frozen = r.End().Value() + 1
	}
	return a
}

func rowAxis(s Sheet) axis {
	a := axis{
		max: reference.MaxRow,
		hidden: func(i int) bool {
			return s.IsRowHidden(reference.MustRow(i, reference.Relative))
		},
		size: func(i int) float64 {
			return s.RowHeight(reference.MustRow(i, reference.Relative))
		},
	}
	if r, ok := s.FrozenRows(); ok {
		a.frozen = r.End().Value() + 1
	}
	return a
}

// skip reports offsets that take no space.
func (a axis) skip(i int) bool {
	return a.hidden(i) || a.size(i) <= 0
}

// width returns the space taken by i, zero when skipped.
func (a axis) width(i int) float64 {
	if a.hidden(i) {
		return 0
	}
	return max(a.size(i), 0)
}

// next returns the first visible offset after i in direction dir, staying at
// or above lo.
func (a axis) next(i, dir, lo int) (int, bool) {
	for j := i + dir; j >= lo && j <= a.max; j += dir {
		if !a.skip(j) {
			return j, true
		}
	}
	return i, false
}

// forward crosses whole visible widths starting with start itself.
func (a axis) forward(start int, pixels float64) int {
	cur := start
	for {
		w := a.width(cur)
		if pixels < w {
			return cur
		}
		nxt, ok := a.next(cur, 1, 0)
		if !ok {
			return cur
		}
		pixels -= w
		cur = nxt
	}
}

// backward crosses whole visible widths of the offsets before start, never
// going below lo.
func (a axis) backward(start int, pixels float64, lo int) int {
	cur := start
	for {
		prev, ok := a.next(cur, -1, lo)
		if !ok {
			return cur
		}
		w := a.width(prev)
		if pixels < w {
			return cur
		}
		pixels -= w
		cur = prev
	}
}

// walk moves from start by pixels, forward when positive.
func (a axis) walk(start int, pixels float64, lo int) int {
	if pixels >= 0 {
		return a.forward(start, pixels)
	}
	return a.backward(start, -pixels, lo)
}

// frozenSize sums the visible widths of the frozen offsets.
func (a axis) frozenSize() float64 {
	total := 0.0
	for i := 0; i < a.frozen && i <= a.max; i++ {
		total += a.width(i)
	}
	return total
}

// span returns the last offset needed to cover avail pixels from start. A
// partly covered offset is included.
func (a axis) span(start int, avail float64) (int, bool) {
	if avail <= 0 || start > a.max {
		return 0, false
	}
	cur := start
	if a.skip(cur) {
		nxt, ok := a.next(cur, 1, 0)
		if !ok {
			return 0, false
		}
		cur = nxt
	}
	used := 0.0
	for {
		used += a.width(cur)
		if used >= avail {
			return cur, true
		}
		nxt, ok := a.next(cur, 1, 0)
		if !ok {
			return cur, true
		}
		cur = nxt
	}
}

// reveal returns the home offset that makes [lo, hi] visible in avail pixels
// when the current home is home and offset pixels of it are scrolled away.
func (a axis) reveal(home int, offset float64, lo, hi int, avail float64) (int, bool) {
	if hi < a.frozen {
		return home, false
	}
	lo = max(lo, a.frozen)
	if lo < home || (lo == home && offset > 0) {
		return lo, true
	}

	used := -offset
	for j := home; j <= hi; j++ {
		used += a.width(j)
		if used > avail {
			break
		}
		if j == hi {
			return home, false
		}
	}

	h := hi
	used = a.width(hi)
	for {
		prev, ok := a.next(h, -1, a.frozen)
		if !ok || used+a.width(prev) > avail {
			break
		}
		used += a.width(prev)
		h = prev
	}
	h = min(h, lo)
	return h, h != home || offset > 0
}
