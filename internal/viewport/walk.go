package viewport

import "github.com/dshills/gridnav/internal/reference"

// NextColumn returns the nearest visible column after from, to the right
// when dir is positive and to the left otherwise.
func NextColumn(sheet Sheet, from reference.Column, dir int) (reference.Column, bool) {
	i, ok := columnAxis(sheet).next(from.Value(), sign(dir), 0)
	if !ok {
		return from, false
	}
	return reference.MustColumn(i, from.Kind()), true
}

// NextRow returns the nearest visible row after from, downwards when dir is
// positive and upwards otherwise.
func NextRow(sheet Sheet, from reference.Row, dir int) (reference.Row, bool) {
	i, ok := rowAxis(sheet).next(from.Value(), sign(dir), 0)
	if !ok {
		return from, false
	}
	return reference.MustRow(i, from.Kind()), true
}

// WalkColumn crosses whole visible column widths from from, rightwards for
// positive pixels. Moving right the width of from itself is consumed first;
// moving left the widths of the columns passed over. With stopAtFrozen the
// walk never enters the frozen columns.
func WalkColumn(sheet Sheet, from reference.Column, pixels float64, stopAtFrozen bool) reference.Column {
	a := columnAxis(sheet)
	lo := 0
	if stopAtFrozen {
		lo = a.frozen
	}
	return reference.MustColumn(a.walk(from.Value(), pixels, lo), from.Kind())
}

// WalkRow is WalkColumn for rows, downwards for positive pixels.
func WalkRow(sheet Sheet, from reference.Row, pixels float64, stopAtFrozen bool) reference.Row {
	a := rowAxis(sheet)
	lo := 0
	if stopAtFrozen {
		lo = a.frozen
	}
	return reference.MustRow(a.walk(from.Value(), pixels, lo), from.Kind())
}

// ScrollBy moves the home of rect by dx and dy pixels, crossing whole
// visible columns and rows and never entering frozen panes. The offset on a
// moved axis is reset. The result reports whether the home changed.
func ScrollBy(rect Rectangle, dx, dy float64, sheet Sheet) (Rectangle, bool, error) {
	if sheet == nil {
		return rect, false, ErrNoSheet
	}
	home, ok := rect.HomeCell()
	if !ok {
		return rect, false, ErrUnresolvedHome
	}

	column := home.Column()
	row := home.Row()
	x, y := rect.X(), rect.Y()
	if dx != 0 {
		cols := columnAxis(sheet)
		start := max(column.Value(), cols.frozen)
		if start <= cols.max {
			column = reference.MustColumn(cols.walk(start, dx, cols.frozen), column.Kind())
		}
	}
	if dy != 0 {
		rows := rowAxis(sheet)
		start := max(row.Value(), rows.frozen)
		if start <= rows.max {
			row = reference.MustRow(rows.walk(start, dy, rows.frozen), row.Kind())
		}
	}

	moved := reference.NewCell(column, row)
	if moved.KeyCompare(home) == 0 {
		return rect, false, nil
	}
	if moved.Column().Value() != home.Column().Value() {
		x = 0
	}
	if moved.Row().Value() != home.Row().Value() {
		y = 0
	}
	return rect.WithHome(moved).WithOffset(x, y), true, nil
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
