package navigation

import (
	"fmt"
	"strconv"

	"github.com/dshills/gridnav/internal/reference"
)

// Direction is the way a navigation moves.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction word used in navigation text.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Horizontal returns true for Left and Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Sign is 1 for Right and Down, -1 for Left and Up.
func (d Direction) Sign() int {
	if d == Right || d == Down {
		return 1
	}
	return -1
}

// unit returns the unit word for the axis of d.
func (d Direction) unit() string {
	if d.Horizontal() {
		return "column"
	}
	return "row"
}

// Navigation is one user gesture. The set is closed: Unit, Pixels and
// Select.
type Navigation interface {
	fmt.Stringer

	// Text returns the command in the navigation vocabulary; Parse(Text())
	// returns an equal value.
	Text() string

	navigation()
}

// Unit moves or extends the selection by one visible column or row.
type Unit struct {
	dir    Direction
	extend bool
}

// NewUnit creates a unit navigation.
func NewUnit(dir Direction, extend bool) Unit {
	return Unit{dir: dir, extend: extend}
}

// Direction returns the direction of travel.
func (u Unit) Direction() Direction { return u.dir }

// Extend returns true for an extend gesture.
func (u Unit) Extend() bool { return u.extend }

// Opposite returns the unit navigation that undoes u.
func (u Unit) Opposite() Unit { return Unit{dir: u.dir.Opposite(), extend: u.extend} }

// Text returns e.g. "left column" or "extend-down row".
func (u Unit) Text() string { return verb(u.dir, u.extend) + " " + u.dir.unit() }

func (u Unit) String() string { return u.Text() }

// Pixels scrolls the viewport, or extends the selection, by a pixel amount.
// A negative amount moves the other way.
type Pixels struct {
	dir    Direction
	amount int
	extend bool
}

// NewPixels creates a pixel navigation.
func NewPixels(dir Direction, amount int, extend bool) Pixels {
	return Pixels{dir: dir, amount: amount, extend: extend}
}

// Direction returns the direction word of the command.
func (p Pixels) Direction() Direction { return p.dir }

// Amount returns the pixel count as written, possibly negative.
func (p Pixels) Amount() int { return p.amount }

// Extend returns true for an extend gesture.
func (p Pixels) Extend() bool { return p.extend }

// Delta returns the signed pixel movement along the axis: positive is right
// or down.
func (p Pixels) Delta() int { return p.amount * p.dir.Sign() }

// Opposite returns the pixel navigation that undoes p.
func (p Pixels) Opposite() Pixels { return Pixels{dir: p.dir.Opposite(), amount: p.amount, extend: p.extend} }

// Text returns e.g. "right 250px" or "extend-up -20px".
func (p Pixels) Text() string { return verb(p.dir, p.extend) + " " + strconv.Itoa(p.amount) + "px" }

func (p Pixels) String() string { return p.Text() }

// Select replaces the selection with a cell, column or row.
type Select struct {
	target reference.Selection
}

// NewSelect creates a select navigation. Only cells, columns and rows can be
// selected this way.
func NewSelect(target reference.Selection) (Select, error) {
	switch target.(type) {
	case reference.Cell, reference.Column, reference.Row:
		return Select{target: target}, nil
	case nil:
		return Select{}, fmt.Errorf("select target: %w", reference.ErrNilArgument)
	default:
		return Select{}, fmt.Errorf("select %s: %w", target.Type(), reference.ErrUnsupported)
	}
}

// Target returns the selected cell, column or row.
func (s Select) Target() reference.Selection { return s.target }

// Text returns e.g. "select cell A1", "select column B" or "select row 3".
func (s Select) Text() string {
	if s.target == nil {
		return "select"
	}
	return "select " + s.target.Type().String() + " " + s.target.String()
}

func (s Select) String() string { return s.Text() }

func (Unit) navigation()   {}
func (Pixels) navigation() {}
func (Select) navigation() {}

func verb(dir Direction, extend bool) string {
	if extend {
		return "extend-" + dir.String()
	}
	return dir.String()
}
