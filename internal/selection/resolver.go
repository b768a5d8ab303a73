package selection

import (
	"fmt"

	"github.com/dshills/gridnav/internal/reference"
)

// DefaultMaxDepth bounds the number of labels followed by a Resolver.
const DefaultMaxDepth = 64

// Mapping is a stored label definition.
type Mapping struct {
	Label  reference.Label
	Target reference.Selection
}

// LabelStore loads label definitions.
type LabelStore interface {
	// LoadLabelMapping returns the mapping for label, if one exists.
	LoadLabelMapping(label reference.Label) (Mapping, bool)
}

// LabelStoreFunc adapts a function to LabelStore.
type LabelStoreFunc func(label reference.Label) (Mapping, bool)

// LoadLabelMapping calls f(label).
func (f LabelStoreFunc) LoadLabelMapping(label reference.Label) (Mapping, bool) {
	return f(label)
}

// Resolver follows label chains to their first non-label target.
type Resolver struct {
	store    LabelStore
	maxDepth int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth sets the maximum number of labels followed. Values below one
// are ignored.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// NewResolver creates a resolver reading from store. A nil store fails with
// reference.ErrNilArgument.
func NewResolver(store LabelStore, opts ...Option) (*Resolver, error) {
	if store == nil {
		return nil, fmt.Errorf("label store: %w", reference.ErrNilArgument)
	}
	r := &Resolver{
		store:    store,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MaxDepth returns the configured depth limit.
func (r *Resolver) MaxDepth() int {
	return r.maxDepth
}

// Resolve follows label until a mapping targets something other than a
// label. A missing link fails with *LabelNotFoundError; a repeated label or
// a chain longer than the depth limit fails with *CyclicLabelError.
func (r *Resolver) Resolve(label reference.Label) (reference.Selection, error) {
	if r.store == nil {
		return nil, fmt.Errorf("label store: %w", reference.ErrNilArgument)
	}

	visited := make(map[string]struct{})
	var chain []reference.Label
	current := label
	for {
		if _, seen := visited[current.Key()]; seen {
			return nil, &CyclicLabelError{Chain: append(chain, current)}
		}
		if len(chain) >= r.maxDepth {
			return nil, &CyclicLabelError{Chain: append(chain, current)}
		}
		visited[current.Key()] = struct{}{}

		mapping, ok := r.store.LoadLabelMapping(current)
		if !ok || mapping.Target == nil {
			return nil, &LabelNotFoundError{Label: current, Chain: chain}
		}
		chain = append(chain, current)

		next, isLabel := mapping.Target.(reference.Label)
		if !isLabel {
			return mapping.Target, nil
		}
		current = next
	}
}

// ResolveSelection returns sel unchanged unless it is a label, in which case
// the label is resolved.
func (r *Resolver) ResolveSelection(sel reference.Selection) (reference.Selection, error) {
	if sel == nil {
		return nil, fmt.Errorf("selection: %w", reference.ErrNilArgument)
	}
	if l, ok := sel.(reference.Label); ok {
		return r.Resolve(l)
	}
	return sel, nil
}

// ResolveAnchored resolves a label selection, keeping the anchor when the
// resolved kind allows it.
func (r *Resolver) ResolveAnchored(a AnchoredSelection) (AnchoredSelection, error) {
	if a.IsEmpty() {
		return a, nil
	}
	l, ok := a.sel.(reference.Label)
	if !ok {
		return a, nil
	}
	sel, err := r.Resolve(l)
	if err != nil {
		return AnchoredSelection{}, err
	}
	if Allowed(sel, a.anchor) {
		return AnchoredSelection{sel: sel, anchor: a.anchor}, nil
	}
	return Of(sel), nil
}
