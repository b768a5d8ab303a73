package reference

import (
	"iter"
	"strings"
)

// ColumnRange is an inclusive range of columns, begin <= end.
type ColumnRange struct {
	begin Column
	end   Column
}

// NewColumnRange builds a range from two inclusive bounds, in either order.
func NewColumnRange(lower, upper Bound[Column]) (ColumnRange, error) {
	a, b, err := inclusiveValues(lower, upper)
	if err != nil {
		return ColumnRange{}, err
	}
	return ColumnRangeOf(a, b), nil
}

// ColumnRangeOf returns the range spanning a and b, in either order.
func ColumnRangeOf(a, b Column) ColumnRange {
	if a.value > b.value {
		a, b = b, a
	}
	return ColumnRange{begin: a, end: b}
}

// Begin returns the leftmost column.
func (r ColumnRange) Begin() Column { return r.begin }

// End returns the rightmost column.
func (r ColumnRange) End() Column { return r.end }

// IsSingle returns true if the range holds exactly one column.
func (r ColumnRange) IsSingle() bool { return r.begin.value == r.end.value }

// Count returns the number of columns in the range.
func (r ColumnRange) Count() int { return r.end.value - r.begin.value + 1 }

// Contains returns true if column lies within the range.
func (r ColumnRange) Contains(column Column) bool {
	return column.value >= r.begin.value && column.value <= r.end.value
}

// Columns yields every column from left to right.
func (r ColumnRange) Columns() iter.Seq[Column] {
	return func(yield func(Column) bool) {
		for v := r.begin.value; v <= r.end.value; v++ {
			if !yield(Column{value: v, kind: r.begin.kind}) {
				return
			}
		}
	}
}

// Equal returns true if both ends match, including kinds.
func (r ColumnRange) Equal(other ColumnRange) bool { return r == other }

// Key returns the kind-insensitive form suitable for use as a map key.
func (r ColumnRange) Key() ColumnRange {
	return ColumnRange{begin: r.begin.Key(), end: r.end.Key()}
}

// ToCellRange returns the range covering every row of these columns.
func (r ColumnRange) ToCellRange() CellRange {
	return CellRange{
		begin: Cell{column: r.begin, row: Row{}},
		end:   Cell{column: r.end, row: Row{value: MaxRow}},
	}
}

// String returns "A:C"; a single column prints as "A:A".
func (r ColumnRange) String() string {
	return r.begin.String() + ":" + r.end.String()
}

// RowRange is an inclusive range of rows, begin <= end.
type RowRange struct {
	begin Row
	end   Row
}

// NewRowRange builds a range from two inclusive bounds, in either order.
func NewRowRange(lower, upper Bound[Row]) (RowRange, error) {
	a, b, err := inclusiveValues(lower, upper)
	if err != nil {
		return RowRange{}, err
	}
	return RowRangeOf(a, b), nil
}

// RowRangeOf returns the range spanning a and b, in either order.
func RowRangeOf(a, b Row) RowRange {
	if a.value > b.value {
		a, b = b, a
	}
	return RowRange{begin: a, end: b}
}

// Begin returns the top row.
func (r RowRange) Begin() Row { return r.begin }

// End returns the bottom row.
func (r RowRange) End() Row { return r.end }

// IsSingle returns true if the range holds exactly one row.
func (r RowRange) IsSingle() bool { return r.begin.value == r.end.value }

// Count returns the number of rows in the range.
func (r RowRange) Count() int { return r.end.value - r.begin.value + 1 }

// Contains returns true if row lies within the range.
func (r RowRange) Contains(row Row) bool {
	return row.value >= r.begin.value && row.value <= r.end.value
}

// Rows yields every row from top to bottom.
func (r RowRange) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for v := r.begin.value; v <= r.end.value; v++ {
			if !yield(Row{value: v, kind: r.begin.kind}) {
				return
			}
		}
	}
}

// Equal returns true if both ends match, including kinds.
func (r RowRange) Equal(other RowRange) bool { return r == other }

// Key returns the kind-insensitive form suitable for use as a map key.
func (r RowRange) Key() RowRange {
	return RowRange{begin: r.begin.Key(), end: r.end.Key()}
}

// ToCellRange returns the range covering every column of these rows.
func (r RowRange) ToCellRange() CellRange {
	return CellRange{
		begin: Cell{column: Column{}, row: r.begin},
		end:   Cell{column: Column{value: MaxColumn}, row: r.end},
	}
}

// String returns "1:3"; a single row prints as "3:3".
func (r RowRange) String() string {
	return r.begin.String() + ":" + r.end.String()
}

// CellRange is an inclusive rectangle of cells. Begin is always the
// top-left corner and End the bottom-right corner.
type CellRange struct {
	begin Cell
	end   Cell
}

// NewCellRange builds a range from two inclusive bounds naming opposite corners.
func NewCellRange(lower, upper Bound[Cell]) (CellRange, error) {
	a, b, err := inclusiveValues(lower, upper)
	if err != nil {
		return CellRange{}, err
	}
	return CellRangeOf(a, b), nil
}

// CellRangeOf returns the rectangle with a and b at opposite corners.
// Each axis is normalized separately, keeping the kinds of the chosen parts.
func CellRangeOf(a, b Cell) CellRange {
	return CellRange{
		begin: Cell{column: a.column.Min(b.column), row: a.row.Min(b.row)},
		end:   Cell{column: a.column.Max(b.column), row: a.row.Max(b.row)},
	}
}

// Begin returns the top-left cell.
func (r CellRange) Begin() Cell { return r.begin }

// End returns the bottom-right cell.
func (r CellRange) End() Cell { return r.end }

// TopLeft returns the top-left cell.
func (r CellRange) TopLeft() Cell { return r.begin }

// TopRight returns the top-right cell.
func (r CellRange) TopRight() Cell { return Cell{column: r.end.column, row: r.begin.row} }

// BottomLeft returns the bottom-left cell.
func (r CellRange) BottomLeft() Cell { return Cell{column: r.begin.column, row: r.end.row} }

// BottomRight returns the bottom-right cell.
func (r CellRange) BottomRight() Cell { return r.end }

// ColumnRange returns the columns spanned.
func (r CellRange) ColumnRange() ColumnRange {
	return ColumnRange{begin: r.begin.column, end: r.end.column}
}

// RowRange returns the rows spanned.
func (r CellRange) RowRange() RowRange {
	return RowRange{begin: r.begin.row, end: r.end.row}
}

// Width returns the number of columns.
func (r CellRange) Width() int { return r.end.column.value - r.begin.column.value + 1 }

// Height returns the number of rows.
func (r CellRange) Height() int { return r.end.row.value - r.begin.row.value + 1 }

// Count returns the number of cells.
func (r CellRange) Count() int { return r.Width() * r.Height() }

// IsSingle returns true if the range holds exactly one cell.
func (r CellRange) IsSingle() bool { return r.Width() == 1 && r.Height() == 1 }

// Contains returns true if cell lies within the range.
func (r CellRange) Contains(cell Cell) bool {
	return r.ColumnRange().Contains(cell.column) && r.RowRange().Contains(cell.row)
}

// Intersects returns true if the ranges share at least one cell.
func (r CellRange) Intersects(other CellRange) bool {
	return r.begin.column.value <= other.end.column.value &&
		other.begin.column.value <= r.end.column.value &&
		r.begin.row.value <= other.end.row.value &&
		other.begin.row.value <= r.end.row.value
}

// Equal returns true if both corners match, including kinds.
func (r CellRange) Equal(other CellRange) bool { return r == other }

// Key returns the kind-insensitive form suitable for use as a map key.
func (r CellRange) Key() CellRange {
	return CellRange{begin: r.begin.Key(), end: r.end.Key()}
}

// String returns "B2:D9"; a single cell range prints as "B2:B2".
func (r CellRange) String() string {
	return r.begin.String() + ":" + r.end.String()
}

// splitRange splits "a:b" into its two halves.
func splitRange(text string) (string, string, bool) {
	left, right, ok := strings.Cut(text, ":")
	if !ok || left == "" || right == "" || strings.Contains(right, ":") {
		return "", "", false
	}
	return left, right, true
}

// ParseCellRange parses "B2:D9". A lone cell "B2" parses as B2:B2.
func ParseCellRange(text string) (CellRange, error) {
	left, right, ok := splitRange(text)
	if !ok {
		if strings.Contains(text, ":") {
			return CellRange{}, parseErrorf(text, -1, "expected cell:cell")
		}
		c, err := ParseCell(text)
		if err != nil {
			return CellRange{}, err
		}
		return c.ToRange(), nil
	}
	a, err := ParseCell(left)
	if err != nil {
		return CellRange{}, err
	}
	b, err := ParseCell(right)
	if err != nil {
		return CellRange{}, err
	}
	return CellRangeOf(a, b), nil
}

// ParseColumnRange parses "A:C" or "$B:$B". A lone column "C" parses as C:C.
func ParseColumnRange(text string) (ColumnRange, error) {
	left, right, ok := splitRange(text)
	if !ok {
		if strings.Contains(text, ":") {
			return ColumnRange{}, parseErrorf(text, -1, "expected column:column")
		}
		c, err := ParseColumn(text)
		if err != nil {
			return ColumnRange{}, err
		}
		return c.ToRange(), nil
	}
	a, err := ParseColumn(left)
	if err != nil {
		return ColumnRange{}, err
	}
	b, err := ParseColumn(right)
	if err != nil {
		return ColumnRange{}, err
	}
	return ColumnRangeOf(a, b), nil
}

// ParseRowRange parses "1:3" or "$3:$3". A lone row "3" parses as 3:3.
func ParseRowRange(text string) (RowRange, error) {
	left, right, ok := splitRange(text)
	if !ok {
		if strings.Contains(text, ":") {
			return RowRange{}, parseErrorf(text, -1, "expected row:row")
		}
		r, err := ParseRow(text)
		if err != nil {
			return RowRange{}, err
		}
		return r.ToRange(), nil
	}
	a, err := ParseRow(left)
	if err != nil {
		return RowRange{}, err
	}
	b, err := ParseRow(right)
	if err != nil {
		return RowRange{}, err
	}
	return RowRangeOf(a, b), nil
}
