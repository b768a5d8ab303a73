package selection

import "github.com/dshills/gridnav/internal/reference"

// ExtendCells builds the selection spanning fixed and moved. A single cell
// collapses to a Cell anchored at None. Otherwise the anchor is the corner
// holding fixed; on an axis where the two agree the side of prev is kept,
// left or top when prev has none.
func ExtendCells(fixed, moved reference.Cell, prev Anchor) AnchoredSelection {
	r := reference.CellRangeOf(fixed, moved)
	if r.IsSingle() {
		return AnchoredSelection{sel: fixed, anchor: None}
	}
	h := prev.horizontal()
	switch fixed.Column().KeyCompare(moved.Column()) {
	case -1:
		h = -1
	case 1:
		h = 1
	}
	v := prev.vertical()
	switch fixed.Row().KeyCompare(moved.Row()) {
	case -1:
		v = -1
	case 1:
		v = 1
	}
	return AnchoredSelection{sel: r, anchor: corner(h, v)}
}

// ExtendColumns builds the column selection spanning fixed and moved.
func ExtendColumns(fixed, moved reference.Column) AnchoredSelection {
	r := reference.ColumnRangeOf(fixed, moved)
	if r.IsSingle() {
		return AnchoredSelection{sel: fixed, anchor: None}
	}
	if fixed.KeyCompare(moved) > 0 {
		return AnchoredSelection{sel: r, anchor: Right}
	}
	return AnchoredSelection{sel: r, anchor: Left}
}

// ExtendRows builds the row selection spanning fixed and moved.
func ExtendRows(fixed, moved reference.Row) AnchoredSelection {
	r := reference.RowRangeOf(fixed, moved)
	if r.IsSingle() {
		return AnchoredSelection{sel: fixed, anchor: None}
	}
	if fixed.KeyCompare(moved) > 0 {
		return AnchoredSelection{sel: r, anchor: Bottom}
	}
	return AnchoredSelection{sel: r, anchor: Top}
}
