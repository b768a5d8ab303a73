package navigation

import (
	"iter"
	"strings"
)

// List is an immutable sequence of navigations, replayed in order.
type List struct {
	items []Navigation
}

// NewList creates a list holding items.
func NewList(items ...Navigation) List {
	return List{items: append([]Navigation(nil), items...)}
}

// Len returns the number of navigations.
func (l List) Len() int { return len(l.items) }

// At returns the navigation at index i.
func (l List) At(i int) Navigation { return l.items[i] }

// All yields the navigations in order.
func (l List) All() iter.Seq2[int, Navigation] {
	return func(yield func(int, Navigation) bool) {
		for i, n := range l.items {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Items returns a copy of the navigations.
func (l List) Items() []Navigation {
	return append([]Navigation(nil), l.items...)
}

// Append returns a new list with items added at the end.
func (l List) Append(items ...Navigation) List {
	out := make([]Navigation, 0, len(l.items)+len(items))
	out = append(out, l.items...)
	out = append(out, items...)
	return List{items: out}
}

// Text joins the commands with commas; ParseList(Text()) is an equal list.
func (l List) Text() string {
	parts := make([]string, len(l.items))
	for i, n := range l.items {
		parts[i] = n.Text()
	}
	return strings.Join(parts, ",")
}

func (l List) String() string { return l.Text() }

// Compact removes adjacent navigations that are exact opposites:
//
//   - unit navigations in opposite directions, both moving or both extending
//   - pixel navigations on the same axis, both moving or both extending,
//     whose signed amounts sum to zero
//
// Cancellation cascades, so "left column,up row,down row,right column"
// compacts to nothing. Everything else is kept as written: pixel walks
// floor to whole columns and rows, and a select keeps the home on the axis
// it does not name, so merging those would change the replayed result.
//
// Cancellation is lossy where the first command of a pair is ignored, e.g.
// "left column,right column" on column A replays to column B but compacts to
// nothing.
func (l List) Compact() List {
	out := make([]Navigation, 0, len(l.items))
	for _, n := range l.items {
		if len(out) > 0 && cancels(out[len(out)-1], n) {
			out = out[:len(out)-1]
			continue
		}
		out = append(out, n)
	}
	return List{items: out}
}

// cancels reports whether b undoes a.
func cancels(a, b Navigation) bool {
	switch cur := b.(type) {
	case Unit:
		prev, ok := a.(Unit)
		return ok && prev.extend == cur.extend && prev.dir == cur.dir.Opposite()
	case Pixels:
		prev, ok := a.(Pixels)
		return ok && prev.extend == cur.extend &&
			prev.dir.Horizontal() == cur.dir.Horizontal() &&
			prev.Delta()+cur.Delta() == 0
	default:
		return false
	}
}
