package reference

import (
	"fmt"
	"iter"
	"strings"
)

// RangePath is one of the eight orders for walking the cells of a range.
// The name reads inner direction first: LRTD walks left to right along a
// row, then moves down to the next row.
type RangePath uint8

const (
	LRTD RangePath = iota // left-right, top-down
	RLTD                  // right-left, top-down
	LRBU                  // left-right, bottom-up
	RLBU                  // right-left, bottom-up
	TDLR                  // top-down, left-right
	TDRL                  // top-down, right-left
	BULR                  // bottom-up, left-right
	BURL                  // bottom-up, right-left
)

// Paths lists every range path.
var Paths = []RangePath{LRTD, RLTD, LRBU, RLBU, TDLR, TDRL, BULR, BURL}

var pathNames = [...]string{"LRTD", "RLTD", "LRBU", "RLBU", "TDLR", "TDRL", "BULR", "BURL"}

// String returns the path name, e.g. "LRTD".
func (p RangePath) String() string {
	if int(p) < len(pathNames) {
		return pathNames[p]
	}
	return fmt.Sprintf("RangePath(%d)", p)
}

// ParseRangePath parses a path name, case-insensitively.
func ParseRangePath(text string) (RangePath, error) {
	for i, name := range pathNames {
		if strings.EqualFold(name, text) {
			return RangePath(i), nil
		}
	}
	return 0, parseErrorf(text, -1, "unknown range path")
}

// PathFor returns the path comparing columns first when columnsFirst is set
// (walking down each column), with either axis optionally reversed.
func PathFor(columnsFirst, reverseColumns, reverseRows bool) RangePath {
	for _, p := range Paths {
		if p.ColumnsFirst() == columnsFirst &&
			(p.ColumnSign() < 0) == reverseColumns &&
			(p.RowSign() < 0) == reverseRows {
			return p
		}
	}
	return LRTD
}

// ColumnsFirst returns true when the column is the primary comparison axis,
// i.e. the walk finishes a whole column before moving to the next one.
func (p RangePath) ColumnsFirst() bool {
	return p >= TDLR
}

// ColumnSign is +1 when columns advance left to right, -1 otherwise.
func (p RangePath) ColumnSign() int {
	switch p {
	case RLTD, RLBU, TDRL, BURL:
		return -1
	default:
		return 1
	}
}

// RowSign is +1 when rows advance top to bottom, -1 otherwise.
func (p RangePath) RowSign() int {
	switch p {
	case LRBU, RLBU, BULR, BURL:
		return -1
	default:
		return 1
	}
}

// Comparator returns the strict total order this path imposes on cells.
// Kinds are ignored.
func (p RangePath) Comparator() func(a, b Cell) int {
	return NewComparator(p.ColumnsFirst(), p.ColumnSign(), p.RowSign())
}

// NewComparator orders cells by the primary axis, then the secondary one,
// each natural comparison multiplied by its sign. Signs other than -1 are
// treated as +1.
func NewComparator(columnsFirst bool, columnSign, rowSign int) func(a, b Cell) int {
	if columnSign != -1 {
		columnSign = 1
	}
	if rowSign != -1 {
		rowSign = 1
	}
	return func(a, b Cell) int {
		byColumn := columnSign * a.column.KeyCompare(b.column)
		byRow := rowSign * a.row.KeyCompare(b.row)
		if columnsFirst {
			if byColumn != 0 {
				return byColumn
			}
			return byRow
		}
		if byRow != 0 {
			return byRow
		}
		return byColumn
	}
}

// Cells yields every cell in the range in path order.
func (r CellRange) Cells(path RangePath) iter.Seq[Cell] {
	c0, c1, cstep := r.begin.column.value, r.end.column.value, 1
	if path.ColumnSign() < 0 {
		c0, c1, cstep = c1, c0, -1
	}
	r0, r1, rstep := r.begin.row.value, r.end.row.value, 1
	if path.RowSign() < 0 {
		r0, r1, rstep = r1, r0, -1
	}
	columnKind, rowKind := r.begin.column.kind, r.begin.row.kind
	cell := func(c, rw int) Cell {
		return Cell{column: Column{value: c, kind: columnKind}, row: Row{value: rw, kind: rowKind}}
	}

	return func(yield func(Cell) bool) {
		if path.ColumnsFirst() {
			for c := c0; ; c += cstep {
				for rw := r0; ; rw += rstep {
					if !yield(cell(c, rw)) {
						return
					}
					if rw == r1 {
						break
					}
				}
				if c == c1 {
					return
				}
			}
		}
		for rw := r0; ; rw += rstep {
			for c := c0; ; c += cstep {
				if !yield(cell(c, rw)) {
					return
				}
				if c == c1 {
					break
				}
			}
			if rw == r1 {
				return
			}
		}
	}
}
