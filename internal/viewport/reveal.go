package viewport

import (
	"fmt"

	"github.com/dshills/gridnav/internal/reference"
)

// Reveal scrolls rect as little as possible so that sel is fully visible,
// or its top left part when it is larger than the rectangle. Columns and
// column ranges only scroll horizontally, rows and row ranges only
// vertically. Parts inside frozen panes are always visible.
func Reveal(rect Rectangle, sel reference.Selection, sheet Sheet) (Rectangle, bool, error) {
	if sheet == nil {
		return rect, false, ErrNoSheet
	}
	home, ok := rect.HomeCell()
	if !ok {
		return rect, false, ErrUnresolvedHome
	}
	if sel == nil {
		return rect, false, fmt.Errorf("selection: %w", reference.ErrNilArgument)
	}
	if _, isLabel := sel.(reference.Label); isLabel {
		return rect, false, fmt.Errorf("reveal %s: %w", sel, ErrUnresolvedHome)
	}

	column, row := home.Column(), home.Row()
	x, y := rect.X(), rect.Y()
	changed := false

	if cr, err := reference.ToColumnRange(sel); err == nil {
		cols := columnAxis(sheet)
		avail := rect.Width() - cols.frozenSize()
		if h, moved := cols.reveal(column.Value(), x, cr.Begin().Value(), cr.End().Value(), avail); moved {
			column = reference.MustColumn(h, column.Kind())
			x = 0
			changed = true
		}
	}
	if rr, err := reference.ToRowRange(sel); err == nil {
		rows := rowAxis(sheet)
		avail := rect.Height() - rows.frozenSize()
		if h, moved := rows.reveal(row.Value(), y, rr.Begin().Value(), rr.End().Value(), avail); moved {
			row = reference.MustRow(h, row.Kind())
			y = 0
			changed = true
		}
	}

	if !changed {
		return rect, false, nil
	}
	return rect.WithHome(reference.NewCell(column, row)).WithOffset(x, y), true, nil
}
