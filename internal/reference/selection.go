package reference

import (
	"fmt"
	"strings"
)

// Selection is any addressable part of the grid: Cell, CellRange, Column,
// ColumnRange, Row, RowRange or Label. The set is closed; type switches over
// it are exhaustive.
//
// The Test methods report whether the selection shares at least one cell with
// the argument. A Label shares nothing until it has been resolved.
type Selection interface {
	fmt.Stringer

	// TestCell returns true if cell lies inside the selection.
	TestCell(cell Cell) bool
	// TestColumn returns true if the selection touches column.
	TestColumn(column Column) bool
	// TestRow returns true if the selection touches row.
	TestRow(row Row) bool
	// TestCellRange returns true if the selection and r overlap.
	TestCellRange(r CellRange) bool

	// Type returns the variant.
	Type() SelectionType

	selection()
}

// SelectionType identifies a Selection variant.
type SelectionType uint8

// Selection variants, one per concrete type.
const (
	TypeCell        SelectionType = iota // a single Cell
	TypeCellRange                        // a rectangular CellRange
	TypeColumn                           // a whole Column
	TypeColumnRange                      // a ColumnRange of whole columns
	TypeRow                              // a whole Row
	TypeRowRange                         // a RowRange of whole rows
	TypeLabel                            // a named Label, resolved elsewhere
)

// String returns the variant name used in command text.
func (t SelectionType) String() string {
	switch t {
	case TypeCell:
		return "cell"
	case TypeCellRange:
		return "cell-range"
	case TypeColumn:
		return "column"
	case TypeColumnRange:
		return "column-range"
	case TypeRow:
		return "row"
	case TypeRowRange:
		return "row-range"
	case TypeLabel:
		return "label"
	default:
		return "unknown"
	}
}

func (Cell) selection()        {}
func (CellRange) selection()   {}
func (Column) selection()      {}
func (ColumnRange) selection() {}
func (Row) selection()         {}
func (RowRange) selection()    {}
func (Label) selection()       {}

// Type reports the variant of each Selection implementation.
func (Cell) Type() SelectionType        { return TypeCell }
func (CellRange) Type() SelectionType   { return TypeCellRange }
func (Column) Type() SelectionType      { return TypeColumn }
func (ColumnRange) Type() SelectionType { return TypeColumnRange }
func (Row) Type() SelectionType         { return TypeRow }
func (RowRange) Type() SelectionType    { return TypeRowRange }
func (Label) Type() SelectionType       { return TypeLabel }

// The Test methods of the reference variants delegate to Test: true when
// the receiver and the argument share at least one cell.
func (c Cell) TestCell(cell Cell) bool        { return Test(c, cell) }
func (c Cell) TestColumn(column Column) bool  { return Test(c, column) }
func (c Cell) TestRow(row Row) bool           { return Test(c, row) }
func (c Cell) TestCellRange(r CellRange) bool { return Test(c, r) }

func (r CellRange) TestCell(cell Cell) bool            { return Test(r, cell) }
func (r CellRange) TestColumn(column Column) bool      { return Test(r, column) }
func (r CellRange) TestRow(row Row) bool               { return Test(r, row) }
func (r CellRange) TestCellRange(other CellRange) bool { return Test(r, other) }

func (c Column) TestCell(cell Cell) bool        { return Test(c, cell) }
func (c Column) TestColumn(column Column) bool  { return Test(c, column) }
func (c Column) TestRow(row Row) bool           { return Test(c, row) }
func (c Column) TestCellRange(r CellRange) bool { return Test(c, r) }

func (r ColumnRange) TestCell(cell Cell) bool            { return Test(r, cell) }
func (r ColumnRange) TestColumn(column Column) bool      { return Test(r, column) }
func (r ColumnRange) TestRow(row Row) bool               { return Test(r, row) }
func (r ColumnRange) TestCellRange(other CellRange) bool { return Test(r, other) }

func (r Row) TestCell(cell Cell) bool            { return Test(r, cell) }
func (r Row) TestColumn(column Column) bool      { return Test(r, column) }
func (r Row) TestRow(row Row) bool               { return Test(r, row) }
func (r Row) TestCellRange(other CellRange) bool { return Test(r, other) }

func (r RowRange) TestCell(cell Cell) bool            { return Test(r, cell) }
func (r RowRange) TestColumn(column Column) bool      { return Test(r, column) }
func (r RowRange) TestRow(row Row) bool               { return Test(r, row) }
func (r RowRange) TestCellRange(other CellRange) bool { return Test(r, other) }

// A Label names no cells until it is resolved, so it tests false against
// everything.
func (Label) TestCell(Cell) bool           { return false }
func (Label) TestColumn(Column) bool       { return false }
func (Label) TestRow(Row) bool             { return false }
func (Label) TestCellRange(CellRange) bool { return false }

// shape records which axes of a selection span the whole grid.
type shape uint8

const (
	shapeCells shape = iota
	shapeColumns
	shapeRows
)

// box is a selection flattened to inclusive offsets.
type box struct {
	c0, c1 int
	r0, r1 int
	shape  shape
}

func boxOf(sel Selection) (box, bool) {
	switch s := sel.(type) {
	case Cell:
		return box{c0: s.column.value, c1: s.column.value, r0: s.row.value, r1: s.row.value}, true
	case CellRange:
		return box{c0: s.begin.column.value, c1: s.end.column.value, r0: s.begin.row.value, r1: s.end.row.value}, true
	case Column:
		return box{c0: s.value, c1: s.value, r0: 0, r1: MaxRow, shape: shapeColumns}, true
	case ColumnRange:
		return box{c0: s.begin.value, c1: s.end.value, r0: 0, r1: MaxRow, shape: shapeColumns}, true
	case Row:
		return box{c0: 0, c1: MaxColumn, r0: s.value, r1: s.value, shape: shapeRows}, true
	case RowRange:
		return box{c0: 0, c1: MaxColumn, r0: s.begin.value, r1: s.end.value, shape: shapeRows}, true
	default:
		return box{}, false
	}
}

func (b box) overlap(other box) (box, bool) {
	out := box{
		c0: max(b.c0, other.c0),
		c1: min(b.c1, other.c1),
		r0: max(b.r0, other.r0),
		r1: min(b.r1, other.r1),
	}
	if out.c0 > out.c1 || out.r0 > out.r1 {
		return box{}, false
	}
	switch {
	case b.shape == shapeColumns && other.shape == shapeColumns:
		out.shape = shapeColumns
	case b.shape == shapeRows && other.shape == shapeRows:
		out.shape = shapeRows
	}
	return out, true
}

func (b box) selection() Selection {
	switch b.shape {
	case shapeColumns:
		if b.c0 == b.c1 {
			return Column{value: b.c0}
		}
		return ColumnRange{begin: Column{value: b.c0}, end: Column{value: b.c1}}
	case shapeRows:
		if b.r0 == b.r1 {
			return Row{value: b.r0}
		}
		return RowRange{begin: Row{value: b.r0}, end: Row{value: b.r1}}
	default:
		begin := Cell{column: Column{value: b.c0}, row: Row{value: b.r0}}
		if b.c0 == b.c1 && b.r0 == b.r1 {
			return begin
		}
		return CellRange{begin: begin, end: Cell{column: Column{value: b.c1}, row: Row{value: b.r1}}}
	}
}

// Test returns true if sel and target share at least one cell.
// Labels never match; resolve them first.
func Test(sel, target Selection) bool {
	if sel == nil || target == nil {
		return false
	}
	a, ok := boxOf(sel)
	if !ok {
		return false
	}
	b, ok := boxOf(target)
	if !ok {
		return false
	}
	_, ok = a.overlap(b)
	return ok
}

// Intersect returns the cells shared by a and b in the most specific form:
// columns with columns stay columns, rows with rows stay rows, anything else
// becomes a Cell or CellRange. Kinds of the result are Relative.
func Intersect(a, b Selection) (Selection, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	ba, ok := boxOf(a)
	if !ok {
		return nil, false
	}
	bb, ok := boxOf(b)
	if !ok {
		return nil, false
	}
	out, ok := ba.overlap(bb)
	if !ok {
		return nil, false
	}
	return out.selection(), true
}

// ToCellRange converts any non-label selection to the cells it covers.
func ToCellRange(sel Selection) (CellRange, error) {
	switch s := sel.(type) {
	case Cell:
		return s.ToRange(), nil
	case CellRange:
		return s, nil
	case Column:
		return s.ToRange().ToCellRange(), nil
	case ColumnRange:
		return s.ToCellRange(), nil
	case Row:
		return s.ToRange().ToCellRange(), nil
	case RowRange:
		return s.ToCellRange(), nil
	case nil:
		return CellRange{}, ErrNilArgument
	default:
		return CellRange{}, fmt.Errorf("%s to cell range: %w", sel.Type(), ErrUnsupported)
	}
}

// ToColumnRange returns the columns of a cell, cell range or column selection.
// Rows and labels fail with ErrUnsupported.
func ToColumnRange(sel Selection) (ColumnRange, error) {
	switch s := sel.(type) {
	case Cell:
		return s.column.ToRange(), nil
	case CellRange:
		return s.ColumnRange(), nil
	case Column:
		return s.ToRange(), nil
	case ColumnRange:
		return s, nil
	case nil:
		return ColumnRange{}, ErrNilArgument
	default:
		return ColumnRange{}, fmt.Errorf("%s to column range: %w", sel.Type(), ErrUnsupported)
	}
}

// ToRowRange returns the rows of a cell, cell range or row selection.
// Columns and labels fail with ErrUnsupported.
func ToRowRange(sel Selection) (RowRange, error) {
	switch s := sel.(type) {
	case Cell:
		return s.row.ToRange(), nil
	case CellRange:
		return s.RowRange(), nil
	case Row:
		return s.ToRange(), nil
	case RowRange:
		return s, nil
	case nil:
		return RowRange{}, ErrNilArgument
	default:
		return RowRange{}, fmt.Errorf("%s to row range: %w", sel.Type(), ErrUnsupported)
	}
}

// Simplify collapses single-element ranges to their lone cell, column or row.
func Simplify(sel Selection) Selection {
	switch s := sel.(type) {
	case CellRange:
		if s.IsSingle() {
			return s.begin
		}
	case ColumnRange:
		if s.IsSingle() {
			return s.begin
		}
	case RowRange:
		if s.IsSingle() {
			return s.begin
		}
	}
	return sel
}

// Key returns the kind-insensitive form of sel, suitable as a map key.
func Key(sel Selection) Selection {
	switch s := sel.(type) {
	case Cell:
		return s.Key()
	case CellRange:
		return s.Key()
	case Column:
		return s.Key()
	case ColumnRange:
		return s.Key()
	case Row:
		return s.Key()
	case RowRange:
		return s.Key()
	case Label:
		return Label{name: s.Key()}
	default:
		return sel
	}
}

// Equal compares two selections, kinds included. Labels compare
// case-insensitively.
func Equal(a, b Selection) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if la, ok := a.(Label); ok {
		lb, ok := b.(Label)
		return ok && la.Equal(lb)
	}
	return a == b
}

// ParseSelection parses any reference text. Text with a colon must be a
// cell, column or row range; otherwise a cell, column or row is tried before
// falling back to a label.
func ParseSelection(text string) (Selection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, parseErrorf(text, -1, "empty selection")
	}
	if strings.Contains(text, ":") {
		if r, err := ParseCellRange(text); err == nil {
			return r, nil
		}
		if r, err := ParseColumnRange(text); err == nil {
			return r, nil
		}
		if r, err := ParseRowRange(text); err == nil {
			return r, nil
		}
		return nil, parseErrorf(text, -1, "expected cell, column or row range")
	}
	if c, err := ParseCell(text); err == nil {
		return c, nil
	}
	if c, err := ParseColumn(text); err == nil {
		return c, nil
	}
	if r, err := ParseRow(text); err == nil {
		return r, nil
	} else if isDigits(strings.TrimPrefix(text, "$")) {
		return nil, err
	}
	l, err := ParseLabel(text)
	if err != nil {
		return nil, &ParseError{Text: text, Pos: -1, Message: "not a reference or label", Err: err}
	}
	return l, nil
}
