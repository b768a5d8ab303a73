package selection

import (
	"fmt"
	"strings"

	"github.com/dshills/gridnav/internal/reference"
)

// Anchor names the corner or edge of a selection that stays fixed while the
// opposite end moves during an extend gesture.
type Anchor uint8

const (
	None Anchor = iota
	Left
	Right
	Top
	Bottom
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var anchorNames = [...]string{
	None:        "none",
	Left:        "left",
	Right:       "right",
	Top:         "top",
	Bottom:      "bottom",
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

// String returns the anchor name, e.g. "top-left".
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", a)
}

// ParseAnchor parses an anchor name. Matching ignores case; an empty string
// is None.
func ParseAnchor(text string) (Anchor, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return None, nil
	}
	for a, name := range anchorNames {
		if name == text {
			return Anchor(a), nil
		}
	}
	return None, fmt.Errorf("%w: unknown anchor %q", ErrInvalidAnchor, text)
}

// Opposite returns the anchor on the other side of the selection. None is its
// own opposite.
func (a Anchor) Opposite() Anchor {
	switch a {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	case Bottom:
		return Top
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	default:
		return None
	}
}

// horizontal returns -1 for a left anchor, 1 for right and 0 otherwise.
func (a Anchor) horizontal() int {
	switch a {
	case Left, TopLeft, BottomLeft:
		return -1
	case Right, TopRight, BottomRight:
		return 1
	default:
		return 0
	}
}

// vertical returns -1 for a top anchor, 1 for bottom and 0 otherwise.
func (a Anchor) vertical() int {
	switch a {
	case Top, TopLeft, TopRight:
		return -1
	case Bottom, BottomLeft, BottomRight:
		return 1
	default:
		return 0
	}
}

// corner builds the cell range anchor for the given horizontal and vertical
// sides. Zero on an axis means left or top.
func corner(horizontal, vertical int) Anchor {
	switch {
	case horizontal > 0 && vertical > 0:
		return BottomRight
	case horizontal > 0:
		return TopRight
	case vertical > 0:
		return BottomLeft
	default:
		return TopLeft
	}
}

// DefaultAnchor returns the anchor a fresh selection of this kind gets.
func DefaultAnchor(sel reference.Selection) Anchor {
	switch sel.(type) {
	case reference.CellRange:
		return TopLeft
	case reference.ColumnRange:
		return Left
	case reference.RowRange:
		return Top
	default:
		return None
	}
}

// Allowed returns true if anchor is valid for the kind of sel.
func Allowed(sel reference.Selection, anchor Anchor) bool {
	switch sel.(type) {
	case reference.Cell, reference.Column, reference.Row:
		return anchor == None
	case reference.CellRange:
		return anchor == TopLeft || anchor == TopRight || anchor == BottomLeft || anchor == BottomRight
	case reference.ColumnRange:
		return anchor == Left || anchor == Right
	case reference.RowRange:
		return anchor == Top || anchor == Bottom
	case reference.Label:
		return int(anchor) < len(anchorNames)
	default:
		return false
	}
}
