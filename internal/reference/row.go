package reference

import "strconv"

// MaxRow is the largest row offset (row 1048576 in text).
const MaxRow = 1048575

// Row is a reference to a single row.
// Row is an immutable value type; the zero value is relative row 1.
type Row struct {
	value int
	kind  Kind
}

// NewRow creates a row reference, failing with *InvalidRowError
// when value is outside [0, MaxRow].
func NewRow(value int, kind Kind) (Row, error) {
	if value < 0 || value > MaxRow {
		return Row{}, newInvalidRowError(value)
	}
	return Row{value: value, kind: kind}, nil
}

// MustRow is like NewRow but panics on an invalid value.
func MustRow(value int, kind Kind) Row {
	r, err := NewRow(value, kind)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns the zero-based row offset.
func (r Row) Value() int {
	return r.value
}

// Kind returns the reference kind.
func (r Row) Kind() Kind {
	return r.kind
}

// SetKind returns the same row with the given kind.
func (r Row) SetKind(kind Kind) Row {
	return Row{value: r.value, kind: kind}
}

// Add returns the row delta rows away, failing if it leaves the grid.
func (r Row) Add(delta int) (Row, error) {
	return NewRow(r.value+delta, r.kind)
}

// AddSaturated returns the row delta rows away, clamped to the grid.
func (r Row) AddSaturated(delta int) Row {
	return Row{value: clamp(r.value+delta, 0, MaxRow), kind: r.kind}
}

// Next returns the row below, if any.
func (r Row) Next() (Row, bool) {
	if r.value >= MaxRow {
		return r, false
	}
	return Row{value: r.value + 1, kind: r.kind}, true
}

// Prev returns the row above, if any.
func (r Row) Prev() (Row, bool) {
	if r.value <= 0 {
		return r, false
	}
	return Row{value: r.value - 1, kind: r.kind}, true
}

// IsFirst returns true for row 1.
func (r Row) IsFirst() bool {
	return r.value == 0
}

// IsLast returns true for the last row of the grid.
func (r Row) IsLast() bool {
	return r.value == MaxRow
}

// Equal returns true if both value and kind match.
func (r Row) Equal(other Row) bool {
	return r == other
}

// Compare orders by value, then Relative before Absolute.
func (r Row) Compare(other Row) int {
	if c := compareInts(r.value, other.value); c != 0 {
		return c
	}
	return compareInts(int(r.kind), int(other.kind))
}

// KeyCompare orders by value only, ignoring kind.
func (r Row) KeyCompare(other Row) int {
	return compareInts(r.value, other.value)
}

// Key returns the kind-insensitive form suitable for use as a map key.
func (r Row) Key() Row {
	return Row{value: r.value}
}

// Max returns the larger of two rows by value.
func (r Row) Max(other Row) Row {
	if other.value > r.value {
		return other
	}
	return r
}

// Min returns the smaller of two rows by value.
func (r Row) Min(other Row) Row {
	if other.value < r.value {
		return other
	}
	return r
}

// SetColumn returns the cell at the given column and this row.
func (r Row) SetColumn(column Column) Cell {
	return Cell{column: column, row: r}
}

// ToRange returns the single row range r:r.
func (r Row) ToRange() RowRange {
	return RowRange{begin: r, end: r}
}

// String returns the one-based row number, "$" prefixed when absolute.
func (r Row) String() string {
	return r.kind.prefix() + strconv.Itoa(r.value+1)
}

// ParseRow parses "1", "$12" (one-based text).
func ParseRow(text string) (Row, error) {
	kind, body := splitKind(text)
	if !isDigits(body) {
		return Row{}, parseErrorf(text, -1, "expected row digits")
	}
	return parseRowDigits(text, body, kind)
}

func parseRowDigits(text, digits string, kind Kind) (Row, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxRow+1 {
		return Row{}, &ParseError{Text: text, Pos: -1, Message: "row out of range", Err: newInvalidRowError(n - 1)}
	}
	if n < 1 {
		return Row{}, &ParseError{Text: text, Pos: -1, Message: "row numbers start at 1", Err: newInvalidRowError(n - 1)}
	}
	return Row{value: n - 1, kind: kind}, nil
}
