package viewport

import "github.com/dshills/gridnav/internal/selection"

// Viewport is the navigation state: a rectangle and an optional anchored
// selection. Values are immutable; the With methods return copies.
type Viewport struct {
	rect Rectangle
	sel  selection.AnchoredSelection
}

// New creates a viewport. An empty sel means nothing is selected.
func New(rect Rectangle, sel selection.AnchoredSelection) Viewport {
	return Viewport{rect: rect, sel: sel}
}

// Rectangle returns the pixel rectangle.
func (v Viewport) Rectangle() Rectangle { return v.rect }

// Selection returns the anchored selection, empty when nothing is selected.
func (v Viewport) Selection() selection.AnchoredSelection { return v.sel }

// HasSelection returns true if something is selected.
func (v Viewport) HasSelection() bool { return !v.sel.IsEmpty() }

// WithRectangle returns a copy with a different rectangle.
func (v Viewport) WithRectangle(rect Rectangle) Viewport {
	v.rect = rect
	return v
}

// WithSelection returns a copy with a different selection.
func (v Viewport) WithSelection(sel selection.AnchoredSelection) Viewport {
	v.sel = sel
	return v
}

// ClearSelection returns a copy with nothing selected.
func (v Viewport) ClearSelection() Viewport {
	v.sel = selection.AnchoredSelection{}
	return v
}

// Equal compares rectangles and selections.
func (v Viewport) Equal(other Viewport) bool {
	return v.rect.Equal(other.rect) && v.sel.Equal(other.sel)
}

// String returns the rectangle followed by the selection, if any.
func (v Viewport) String() string {
	if v.sel.IsEmpty() {
		return v.rect.String()
	}
	return v.rect.String() + " [" + v.sel.String() + "]"
}
