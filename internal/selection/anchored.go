package selection

import (
	"fmt"
	"strings"

	"github.com/dshills/gridnav/internal/reference"
)

// AnchoredSelection is a selection paired with the anchor that stays fixed
// while it is extended. The zero value is the empty selection.
type AnchoredSelection struct {
	sel    reference.Selection
	anchor Anchor
}

// New validates anchor against the kind of sel.
func New(sel reference.Selection, anchor Anchor) (AnchoredSelection, error) {
	if sel == nil {
		return AnchoredSelection{}, fmt.Errorf("selection: %w", reference.ErrNilArgument)
	}
	if !Allowed(sel, anchor) {
		return AnchoredSelection{}, &InvalidAnchorError{Type: sel.Type(), Anchor: anchor}
	}
	return AnchoredSelection{sel: sel, anchor: anchor}, nil
}

// Of anchors sel at its default anchor. A nil selection gives the empty value.
func Of(sel reference.Selection) AnchoredSelection {
	if sel == nil {
		return AnchoredSelection{}
	}
	return AnchoredSelection{sel: sel, anchor: DefaultAnchor(sel)}
}

// Parse reads "<selection> [anchor]", e.g. "B2:D9 bottom-right" or "C".
func Parse(text string) (AnchoredSelection, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields) > 2 {
		return AnchoredSelection{}, fmt.Errorf("anchored selection %q: %w", text, reference.ErrParse)
	}
	sel, err := reference.ParseSelection(fields[0])
	if err != nil {
		return AnchoredSelection{}, err
	}
	if len(fields) == 1 {
		return Of(sel), nil
	}
	anchor, err := ParseAnchor(fields[1])
	if err != nil {
		return AnchoredSelection{}, err
	}
	return New(sel, anchor)
}

// Selection returns the selection, nil when empty.
func (a AnchoredSelection) Selection() reference.Selection {
	return a.sel
}

// Anchor returns the fixed corner or edge.
func (a AnchoredSelection) Anchor() Anchor {
	return a.anchor
}

// IsEmpty returns true if no selection is held.
func (a AnchoredSelection) IsEmpty() bool {
	return a.sel == nil
}

// Equal compares selections, kinds included, and anchors.
func (a AnchoredSelection) Equal(other AnchoredSelection) bool {
	return a.anchor == other.anchor && reference.Equal(a.sel, other.sel)
}

// String returns the text accepted by Parse. The anchor is omitted when it
// is the default for the selection kind.
func (a AnchoredSelection) String() string {
	if a.sel == nil {
		return ""
	}
	if a.anchor == DefaultAnchor(a.sel) {
		return a.sel.String()
	}
	return a.sel.String() + " " + a.anchor.String()
}

// WithSelection replaces the selection, keeping the anchor when the new kind
// allows it and falling back to the default anchor otherwise.
func (a AnchoredSelection) WithSelection(sel reference.Selection) AnchoredSelection {
	if sel == nil {
		return AnchoredSelection{}
	}
	if Allowed(sel, a.anchor) && a.sel != nil && sel.Type() == a.sel.Type() {
		return AnchoredSelection{sel: sel, anchor: a.anchor}
	}
	return Of(sel)
}

// CellEnds returns the fixed and moving corners of a cell or cell range.
func (a AnchoredSelection) CellEnds() (fixed, moving reference.Cell, ok bool) {
	switch s := a.sel.(type) {
	case reference.Cell:
		return s, s, true
	case reference.CellRange:
		fixed = cornerCell(s, a.anchor)
		return fixed, cornerCell(s, a.anchor.Opposite()), true
	default:
		return reference.Cell{}, reference.Cell{}, false
	}
}

// ColumnEnds returns the fixed and moving ends of a column or column range.
func (a AnchoredSelection) ColumnEnds() (fixed, moving reference.Column, ok bool) {
	switch s := a.sel.(type) {
	case reference.Column:
		return s, s, true
	case reference.ColumnRange:
		if a.anchor == Right {
			return s.End(), s.Begin(), true
		}
		return s.Begin(), s.End(), true
	default:
		return reference.Column{}, reference.Column{}, false
	}
}

// RowEnds returns the fixed and moving ends of a row or row range.
func (a AnchoredSelection) RowEnds() (fixed, moving reference.Row, ok bool) {
	switch s := a.sel.(type) {
	case reference.Row:
		return s, s, true
	case reference.RowRange:
		if a.anchor == Bottom {
			return s.End(), s.Begin(), true
		}
		return s.Begin(), s.End(), true
	default:
		return reference.Row{}, reference.Row{}, false
	}
}

// cornerCell returns the corner of r named by anchor; None and edge anchors
// give the top-left corner.
func cornerCell(r reference.CellRange, anchor Anchor) reference.Cell {
	switch anchor {
	case TopRight:
		return r.TopRight()
	case BottomLeft:
		return r.BottomLeft()
	case BottomRight:
		return r.BottomRight()
	default:
		return r.TopLeft()
	}
}

// ReplaceReferences maps the selection through mapper. The anchor survives
// when the mapped selection keeps its kind.
func (a AnchoredSelection) ReplaceReferences(mapper reference.Mapper) (AnchoredSelection, bool, error) {
	if a.sel == nil {
		return AnchoredSelection{}, false, nil
	}
	sel, ok, err := reference.ReplaceReferences(a.sel, mapper)
	if err != nil || !ok {
		return AnchoredSelection{}, false, err
	}
	return a.WithSelection(sel), true, nil
}
