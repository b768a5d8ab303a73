package reference

// BoundKind describes one end of a range.
type BoundKind uint8

const (
	// BoundUnbounded has no value.
	BoundUnbounded BoundKind = iota
	// BoundInclusive includes its value.
	BoundInclusive
	// BoundExclusive excludes its value.
	BoundExclusive
)

// String returns the bound kind name.
func (k BoundKind) String() string {
	switch k {
	case BoundUnbounded:
		return "unbounded"
	case BoundInclusive:
		return "inclusive"
	case BoundExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Bound is one end of a range. Only inclusive bounds build a valid range;
// the other kinds exist so callers translating from open intervals fail
// loudly instead of being silently coerced.
type Bound[T any] struct {
	kind  BoundKind
	value T
}

// Inclusive returns an inclusive bound at v.
func Inclusive[T any](v T) Bound[T] {
	return Bound[T]{kind: BoundInclusive, value: v}
}

// Exclusive returns an exclusive bound at v.
func Exclusive[T any](v T) Bound[T] {
	return Bound[T]{kind: BoundExclusive, value: v}
}

// Unbounded returns a bound with no value.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

// Kind returns the bound kind.
func (b Bound[T]) Kind() BoundKind {
	return b.kind
}

// Value returns the bound value; ok is false for an unbounded bound.
func (b Bound[T]) Value() (v T, ok bool) {
	return b.value, b.kind != BoundUnbounded
}

// inclusiveValues extracts both values or fails with ErrInvalidRange.
func inclusiveValues[T any](lower, upper Bound[T]) (T, T, error) {
	if lower.kind != BoundInclusive || upper.kind != BoundInclusive {
		var zero T
		return zero, zero, &RangeError{Lower: lower.kind, Upper: upper.kind}
	}
	return lower.value, upper.value, nil
}

// RangeError reports bounds that cannot build an inclusive range.
type RangeError struct {
	Lower BoundKind
	Upper BoundKind
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return "invalid range: bounds must both be inclusive, got " + e.Lower.String() + " and " + e.Upper.String()
}

// Is implements error matching for RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
