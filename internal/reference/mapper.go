package reference

import "fmt"

// Mapper re-targets references along each axis. A false result means the
// reference was removed or clipped and the selection holding it becomes void.
type Mapper interface {
	MapCell(cell Cell) (Cell, bool)
	MapColumn(column Column) (Column, bool)
	MapRow(row Row) (Row, bool)
}

// AxisMapper maps columns and rows independently. A nil projection leaves
// its axis unchanged. A cell maps through both projections.
type AxisMapper struct {
	Columns func(Column) (Column, bool)
	Rows    func(Row) (Row, bool)
}

// MapColumn implements Mapper.
func (m AxisMapper) MapColumn(column Column) (Column, bool) {
	if m.Columns == nil {
		return column, true
	}
	return m.Columns(column)
}

// MapRow implements Mapper.
func (m AxisMapper) MapRow(row Row) (Row, bool) {
	if m.Rows == nil {
		return row, true
	}
	return m.Rows(row)
}

// MapCell implements Mapper.
func (m AxisMapper) MapCell(cell Cell) (Cell, bool) {
	column, ok := m.MapColumn(cell.column)
	if !ok {
		return Cell{}, false
	}
	row, ok := m.MapRow(cell.row)
	if !ok {
		return Cell{}, false
	}
	return Cell{column: column, row: row}, true
}

// IdentityMapper returns every reference unchanged.
var IdentityMapper Mapper = AxisMapper{}

// OffsetMapper moves columns by dx and rows by dy. References whose
// saturated position differs from the arithmetic one were pushed against an
// edge; they are reported absent rather than kept at a wrong position.
func OffsetMapper(dx, dy int) Mapper {
	return AxisMapper{Columns: shiftColumns(dx), Rows: shiftRows(dy)}
}

func shiftColumns(delta int) func(Column) (Column, bool) {
	return func(c Column) (Column, bool) {
		moved := c.AddSaturated(delta)
		return moved, moved.value == c.value+delta
	}
}

func shiftRows(delta int) func(Row) (Row, bool) {
	return func(r Row) (Row, bool) {
		moved := r.AddSaturated(delta)
		return moved, moved.value == r.value+delta
	}
}

// InsertColumnsMapper shifts columns at or right of at by count. Rows are
// unchanged.
func InsertColumnsMapper(at Column, count int) Mapper {
	shift := shiftColumns(count)
	return AxisMapper{Columns: func(c Column) (Column, bool) {
		if c.value < at.value {
			return c, true
		}
		return shift(c)
	}}
}

// DeleteColumnsMapper removes count columns starting at at. Columns inside
// the deleted block become absent; columns to its right shift left.
func DeleteColumnsMapper(at Column, count int) Mapper {
	return AxisMapper{Columns: func(c Column) (Column, bool) {
		switch {
		case c.value < at.value:
			return c, true
		case c.value < at.value+count:
			return Column{}, false
		default:
			return c.AddSaturated(-count), true
		}
	}}
}

// InsertRowsMapper shifts rows at or below at by count. Columns are
// unchanged.
func InsertRowsMapper(at Row, count int) Mapper {
	shift := shiftRows(count)
	return AxisMapper{Rows: func(r Row) (Row, bool) {
		if r.value < at.value {
			return r, true
		}
		return shift(r)
	}}
}

// DeleteRowsMapper removes count rows starting at at. Rows inside the
// deleted block become absent; rows below it shift up.
func DeleteRowsMapper(at Row, count int) Mapper {
	return AxisMapper{Rows: func(r Row) (Row, bool) {
		switch {
		case r.value < at.value:
			return r, true
		case r.value < at.value+count:
			return Row{}, false
		default:
			return r.AddSaturated(-count), true
		}
	}}
}

// ReplaceReferences returns a selection of the same variant with every
// reference passed through mapper. Columns and column ranges only consult
// the column projection and rows only the row projection. The result is
// absent (ok false) when any mapped reference is absent. Labels are returned
// as is.
func ReplaceReferences(sel Selection, mapper Mapper) (Selection, bool, error) {
	if mapper == nil {
		return nil, false, fmt.Errorf("mapper: %w", ErrNilArgument)
	}
	if sel == nil {
		return nil, false, fmt.Errorf("selection: %w", ErrNilArgument)
	}

	switch s := sel.(type) {
	case Cell:
		c, ok := mapper.MapCell(s)
		if !ok {
			return nil, false, nil
		}
		return c, true, nil
	case CellRange:
		begin, ok := mapper.MapCell(s.begin)
		if !ok {
			return nil, false, nil
		}
		end, ok := mapper.MapCell(s.end)
		if !ok {
			return nil, false, nil
		}
		return CellRangeOf(begin, end), true, nil
	case Column:
		c, ok := mapper.MapColumn(s)
		if !ok {
			return nil, false, nil
		}
		return c, true, nil
	case ColumnRange:
		begin, ok := mapper.MapColumn(s.begin)
		if !ok {
			return nil, false, nil
		}
		end, ok := mapper.MapColumn(s.end)
		if !ok {
			return nil, false, nil
		}
		return ColumnRangeOf(begin, end), true, nil
	case Row:
		r, ok := mapper.MapRow(s)
		if !ok {
			return nil, false, nil
		}
		return r, true, nil
	case RowRange:
		begin, ok := mapper.MapRow(s.begin)
		if !ok {
			return nil, false, nil
		}
		end, ok := mapper.MapRow(s.end)
		if !ok {
			return nil, false, nil
		}
		return RowRangeOf(begin, end), true, nil
	case Label:
		return s, true, nil
	default:
		return nil, false, fmt.Errorf("replace references in %T: %w", sel, ErrUnsupported)
	}
}
