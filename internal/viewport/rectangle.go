package viewport

import (
	"fmt"
	"strconv"

	"github.com/dshills/gridnav/internal/reference"
)

// Rectangle is the pixel area of the grid on screen. Home is the first
// scrolling cell at the top left, after any frozen panes; X and Y are the
// pixels of the home cell scrolled out of view.
type Rectangle struct {
	home   reference.Selection
	x, y   float64
	width  float64
	height float64
}

// NewRectangle validates home (a Cell or Label) and the dimensions.
func NewRectangle(home reference.Selection, x, y, width, height float64) (Rectangle, error) {
	switch home.(type) {
	case reference.Cell, reference.Label:
	case nil:
		return Rectangle{}, fmt.Errorf("home: %w", reference.ErrNilArgument)
	default:
		return Rectangle{}, fmt.Errorf("%w: home %s is a %s", ErrInvalidRectangle, home, home.Type())
	}
	if x < 0 || y < 0 || width < 0 || height < 0 {
		return Rectangle{}, fmt.Errorf("%w: negative offset or size", ErrInvalidRectangle)
	}
	return Rectangle{home: home, x: x, y: y, width: width, height: height}, nil
}

// Home returns the home cell or label.
func (r Rectangle) Home() reference.Selection { return r.home }

// HomeCell returns the home when it is a cell.
func (r Rectangle) HomeCell() (reference.Cell, bool) {
	c, ok := r.home.(reference.Cell)
	return c, ok
}

// X returns the horizontal pixel offset into the home cell.
func (r Rectangle) X() float64 { return r.x }

// Y returns the vertical pixel offset into the home cell.
func (r Rectangle) Y() float64 { return r.y }

// Width returns the width in pixels.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the height in pixels.
func (r Rectangle) Height() float64 { return r.height }

// WithHome returns a copy with a different home and the same offsets.
func (r Rectangle) WithHome(home reference.Cell) Rectangle {
	r.home = home
	return r
}

// WithOffset returns a copy with different offsets. Negative values clamp
// to zero.
func (r Rectangle) WithOffset(x, y float64) Rectangle {
	r.x = max(x, 0)
	r.y = max(y, 0)
	return r
}

// WithSize returns a copy with different dimensions. Negative values clamp
// to zero.
func (r Rectangle) WithSize(width, height float64) Rectangle {
	r.width = max(width, 0)
	r.height = max(height, 0)
	return r
}

// Equal compares every field; homes compare with reference.Equal.
func (r Rectangle) Equal(other Rectangle) bool {
	return reference.Equal(r.home, other.home) &&
		r.x == other.x && r.y == other.y &&
		r.width == other.width && r.height == other.height
}

// String returns e.g. "A1 800x600" or "B3+10+4 800x600" when offset.
func (r Rectangle) String() string {
	home := "?"
	if r.home != nil {
		home = r.home.String()
	}
	if r.x != 0 || r.y != 0 {
		home += "+" + formatPixels(r.x) + "+" + formatPixels(r.y)
	}
	return home + " " + formatPixels(r.width) + "x" + formatPixels(r.height)
}

func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
