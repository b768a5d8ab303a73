package reference

import "strings"

// MaxColumn is the largest column offset (column XFD).
const MaxColumn = 16383

// Column is a reference to a single column.
// Column is an immutable value type; the zero value is relative column A.
type Column struct {
	value int
	kind  Kind
}

// NewColumn creates a column reference, failing with *InvalidColumnError
// when value is outside [0, MaxColumn].
func NewColumn(value int, kind Kind) (Column, error) {
	if value < 0 || value > MaxColumn {
		return Column{}, newInvalidColumnError(value)
	}
	return Column{value: value, kind: kind}, nil
}

// MustColumn is like NewColumn but panics on an invalid value.
func MustColumn(value int, kind Kind) Column {
	c, err := NewColumn(value, kind)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the zero-based column offset.
func (c Column) Value() int {
	return c.value
}

// Kind returns the reference kind.
func (c Column) Kind() Kind {
	return c.kind
}

// SetKind returns the same column with the given kind.
func (c Column) SetKind(kind Kind) Column {
	return Column{value: c.value, kind: kind}
}

// Add returns the column delta columns away, failing if it leaves the grid.
func (c Column) Add(delta int) (Column, error) {
	return NewColumn(c.value+delta, c.kind)
}

// AddSaturated returns the column delta columns away, clamped to the grid.
func (c Column) AddSaturated(delta int) Column {
	return Column{value: clamp(c.value+delta, 0, MaxColumn), kind: c.kind}
}

// Next returns the column to the right, if any.
func (c Column) Next() (Column, bool) {
	if c.value >= MaxColumn {
		return c, false
	}
	return Column{value: c.value + 1, kind: c.kind}, true
}

// Prev returns the column to the left, if any.
func (c Column) Prev() (Column, bool) {
	if c.value <= 0 {
		return c, false
	}
	return Column{value: c.value - 1, kind: c.kind}, true
}

// IsFirst returns true for column A.
func (c Column) IsFirst() bool {
	return c.value == 0
}

// IsLast returns true for the last column of the grid.
func (c Column) IsLast() bool {
	return c.value == MaxColumn
}

// Equal returns true if both value and kind match.
func (c Column) Equal(other Column) bool {
	return c == other
}

// Compare orders by value, then Relative before Absolute.
// Returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Column) Compare(other Column) int {
	if r := compareInts(c.value, other.value); r != 0 {
		return r
	}
	return compareInts(int(c.kind), int(other.kind))
}

// KeyCompare orders by value only, ignoring kind.
func (c Column) KeyCompare(other Column) int {
	return compareInts(c.value, other.value)
}

// Key returns the kind-insensitive form suitable for use as a map key.
func (c Column) Key() Column {
	return Column{value: c.value}
}

// Max returns the larger of two columns by value.
func (c Column) Max(other Column) Column {
	if other.value > c.value {
		return other
	}
	return c
}

// Min returns the smaller of two columns by value.
func (c Column) Min(other Column) Column {
	if other.value < c.value {
		return other
	}
	return c
}

// SetRow returns the cell at this column and the given row.
func (c Column) SetRow(row Row) Cell {
	return Cell{column: c, row: row}
}

// ToRange returns the single column range c:c.
func (c Column) ToRange() ColumnRange {
	return ColumnRange{begin: c, end: c}
}

// String returns the column letters, "$" prefixed when absolute.
func (c Column) String() string {
	return c.kind.prefix() + columnLetters(c.value)
}

// columnLetters converts an offset to bijective base-26 letters (0=A, 26=AA).
func columnLetters(value int) string {
	var buf [4]byte
	i := len(buf)
	n := value + 1
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// lettersValue converts column letters to an offset.
// Returns -1 when the letters exceed MaxColumn.
func lettersValue(letters string) int {
	value := 0
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		value = value*26 + int(ch-'A') + 1
		if value > MaxColumn+1 {
			return -1
		}
	}
	return value - 1
}

// ParseColumn parses "A", "$XFD" or "ab" (letters are case-insensitive).
func ParseColumn(text string) (Column, error) {
	kind, body := splitKind(text)
	if body == "" || !isLetters(body) {
		return Column{}, parseErrorf(text, -1, "expected column letters")
	}
	value := lettersValue(body)
	if value < 0 {
		return Column{}, &ParseError{
			Text:    text,
			Pos:     -1,
			Message: "column out of range",
			Err:     newInvalidColumnError(lettersOverflowValue(body)),
		}
	}
	return Column{value: value, kind: kind}, nil
}

// lettersOverflowValue reports a best-effort offset for error messages.
func lettersOverflowValue(letters string) int {
	value := 0
	for i := 0; i < len(letters) && value <= 1<<30; i++ {
		value = value*26 + int(strings.ToUpper(letters[i:i+1])[0]-'A') + 1
	}
	return value - 1
}

func splitKind(text string) (Kind, string) {
	if strings.HasPrefix(text, "$") {
		return Absolute, text[1:]
	}
	return Relative, text
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
