package selection

import (
	"errors"
	"testing"

	"github.com/dshills/gridnav/internal/reference"
)

type mapStore map[string]string

func (m mapStore) LoadLabelMapping(label reference.Label) (Mapping, bool) {
	text, ok := m[label.Key()]
	if !ok {
		return Mapping{}, false
	}
	target, err := reference.ParseSelection(text)
	if err != nil {
		return Mapping{}, false
	}
	return Mapping{Label: label, Target: target}, true
}

func mustResolver(t *testing.T, store LabelStore, opts ...Option) *Resolver {
	t.Helper()
	r, err := NewResolver(store, opts...)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	return r
}

func TestNewResolverNilStore(t *testing.T) {
	r, err := NewResolver(nil)
	if !errors.Is(err, reference.ErrNilArgument) || r != nil {
		t.Errorf("NewResolver(nil) = %v, %v; want ErrNilArgument", r, err)
	}
	if _, err := (&Resolver{}).Resolve(reference.MustLabel("Alpha")); !errors.Is(err, reference.ErrNilArgument) {
		t.Errorf("zero Resolver error = %v, want ErrNilArgument", err)
	}
}

func TestResolveChain(t *testing.T) {
	// Single letters read as columns, so the chain uses longer names.
	store := mapStore{"alpha": "Beta", "beta": "Gamma", "gamma": "D5"}

	got, err := mustResolver(t, store).Resolve(reference.MustLabel("Alpha"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.String() != "D5" {
		t.Errorf("Resolve(Alpha) = %v, want D5", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := mustResolver(t, mapStore{}).Resolve(reference.MustLabel("Alpha"))
	if !errors.Is(err, ErrLabelNotFound) {
		t.Fatalf("error = %v, want ErrLabelNotFound", err)
	}
	var nf *LabelNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error %T is not *LabelNotFoundError", err)
	}
	if nf.Label.Name() != "Alpha" {
		t.Errorf("Label = %v, want Alpha", nf.Label)
	}
	if got := nf.NotFound().Reference; got != "Alpha" {
		t.Errorf("NotFound().Reference = %q", got)
	}
}

func TestResolveMissingLink(t *testing.T) {
	store := mapStore{"alpha": "Beta"}
	_, err := mustResolver(t, store).Resolve(reference.MustLabel("Alpha"))
	var nf *LabelNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *LabelNotFoundError", err)
	}
	if nf.Label.Name() != "Beta" || len(nf.Chain) != 1 {
		t.Errorf("missing link = %v via %v", nf.Label, nf.Chain)
	}
}

func TestResolveCycle(t *testing.T) {
	tests := []struct {
		name  string
		store mapStore
	}{
		{"self", mapStore{"alpha": "Alpha"}},
		{"mutual", mapStore{"alpha": "Beta", "beta": "alpha"}},
		{"long", mapStore{"alpha": "Beta", "beta": "Gamma", "gamma": "Beta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustResolver(t, tt.store).Resolve(reference.MustLabel("Alpha"))
			if !errors.Is(err, ErrCyclicLabel) {
				t.Errorf("error = %v, want ErrCyclicLabel", err)
			}
		})
	}
}

func TestResolveDepthLimit(t *testing.T) {
	store := mapStore{"alpha": "Beta", "beta": "Gamma", "gamma": "D5"}
	_, err := mustResolver(t, store, WithMaxDepth(2)).Resolve(reference.MustLabel("Alpha"))
	if !errors.Is(err, ErrCyclicLabel) {
		t.Errorf("error = %v, want ErrCyclicLabel", err)
	}

	r := mustResolver(t, store, WithMaxDepth(0))
	if r.MaxDepth() != DefaultMaxDepth {
		t.Errorf("MaxDepth() = %d, want %d", r.MaxDepth(), DefaultMaxDepth)
	}
}

func TestResolveSelection(t *testing.T) {
	store := LabelStoreFunc(func(label reference.Label) (Mapping, bool) {
		return Mapping{Label: label, Target: reference.MustCell("B2")}, true
	})
	r := mustResolver(t, store)

	got, err := r.ResolveSelection(reference.MustCell("Z9"))
	if err != nil || got.String() != "Z9" {
		t.Errorf("ResolveSelection(Z9) = %v, %v", got, err)
	}
	got, err = r.ResolveSelection(reference.MustLabel("Home"))
	if err != nil || got.String() != "B2" {
		t.Errorf("ResolveSelection(Home) = %v, %v", got, err)
	}

	a, err := r.ResolveAnchored(Of(reference.MustLabel("Home")))
	if err != nil || a.String() != "B2" || a.Anchor() != None {
		t.Errorf("ResolveAnchored(Home) = %v, %v", a, err)
	}
}
