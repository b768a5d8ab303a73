package reference

// Cell is a reference to a single cell: a column and a row.
// Cell is an immutable value type; the zero value is A1.
type Cell struct {
	column Column
	row    Row
}

// NewCell creates a cell reference from its column and row.
func NewCell(column Column, row Row) Cell {
	return Cell{column: column, row: row}
}

// CellAt creates a relative cell reference from zero-based offsets.
func CellAt(column, row int) (Cell, error) {
	c, err := NewColumn(column, Relative)
	if err != nil {
		return Cell{}, err
	}
	r, err := NewRow(row, Relative)
	if err != nil {
		return Cell{}, err
	}
	return Cell{column: c, row: r}, nil
}

// MustCell parses text as a cell reference and panics on failure.
func MustCell(text string) Cell {
	c, err := ParseCell(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Column returns the column part.
func (c Cell) Column() Column {
	return c.column
}

// Row returns the row part.
func (c Cell) Row() Row {
	return c.row
}

// SetColumn returns the cell with its column replaced.
func (c Cell) SetColumn(column Column) Cell {
	return Cell{column: column, row: c.row}
}

// SetRow returns the cell with its row replaced.
func (c Cell) SetRow(row Row) Cell {
	return Cell{column: c.column, row: row}
}

// Add returns the cell moved by (dx, dy), failing if it leaves the grid.
func (c Cell) Add(dx, dy int) (Cell, error) {
	column, err := c.column.Add(dx)
	if err != nil {
		return Cell{}, err
	}
	row, err := c.row.Add(dy)
	if err != nil {
		return Cell{}, err
	}
	return Cell{column: column, row: row}, nil
}

// AddSaturated returns the cell moved by (dx, dy), clamped to the grid edges.
func (c Cell) AddSaturated(dx, dy int) Cell {
	return Cell{column: c.column.AddSaturated(dx), row: c.row.AddSaturated(dy)}
}

// Equal returns true if column and row match, including kinds.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// Compare orders by column, then row, honoring kinds.
func (c Cell) Compare(other Cell) int {
	if r := c.column.Compare(other.column); r != 0 {
		return r
	}
	return c.row.Compare(other.row)
}

// KeyCompare orders by column value, then row value, ignoring kinds.
func (c Cell) KeyCompare(other Cell) int {
	if r := c.column.KeyCompare(other.column); r != 0 {
		return r
	}
	return c.row.KeyCompare(other.row)
}

// Key returns the kind-insensitive form suitable for use as a map key.
func (c Cell) Key() Cell {
	return Cell{column: c.column.Key(), row: c.row.Key()}
}

// ToRange returns the single cell range c:c.
func (c Cell) ToRange() CellRange {
	return CellRange{begin: c, end: c}
}

// String returns the A1 form, e.g. "B7" or "$B$7".
func (c Cell) String() string {
	return c.column.String() + c.row.String()
}

// ParseCell parses "A1", "$A1", "A$1" or "$A$1".
func ParseCell(text string) (Cell, error) {
	i := 0
	columnKind := Relative
	if i < len(text) && text[i] == '$' {
		columnKind = Absolute
		i++
	}
	start := i
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	if i == start {
		return Cell{}, parseErrorf(text, i, "expected column letters")
	}
	letters := text[start:i]

	rowKind := Relative
	if i < len(text) && text[i] == '$' {
		rowKind = Absolute
		i++
	}
	digits := text[i:]
	if !isDigits(digits) {
		return Cell{}, parseErrorf(text, i, "expected row digits")
	}

	value := lettersValue(letters)
	if value < 0 {
		return Cell{}, &ParseError{Text: text, Pos: start, Message: "column out of range", Err: newInvalidColumnError(lettersOverflowValue(letters))}
	}
	row, err := parseRowDigits(text, digits, rowKind)
	if err != nil {
		return Cell{}, err
	}
	return Cell{column: Column{value: value, kind: columnKind}, row: row}, nil
}
