package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/gridnav/internal/reference"
)

// Errors returned by anchored selections and the label resolver.
var (
	// ErrInvalidAnchor indicates an anchor the selection kind does not allow.
	ErrInvalidAnchor = errors.New("invalid anchor")

	// ErrLabelNotFound indicates a label with no mapping in the store.
	ErrLabelNotFound = errors.New("label not found")

	// ErrCyclicLabel indicates a label chain that revisits a label or
	// exceeds the resolver depth limit.
	ErrCyclicLabel = errors.New("cyclic label")
)

// InvalidAnchorError reports an anchor rejected for a selection kind.
type InvalidAnchorError struct {
	Type   reference.SelectionType
	Anchor Anchor
}

// Error implements the error interface.
func (e *InvalidAnchorError) Error() string {
	return fmt.Sprintf("anchor %s not allowed for %s", e.Anchor, e.Type)
}

// Is implements error matching for InvalidAnchorError.
func (e *InvalidAnchorError) Is(target error) bool {
	return target == ErrInvalidAnchor
}

// ReferenceNotFound is the user facing description of a missing reference.
type ReferenceNotFound struct {
	// Reference is the text of the missing reference.
	Reference string
	// Message is a sentence suitable for display.
	Message string
}

// Error implements the error interface.
func (r ReferenceNotFound) Error() string {
	return r.Message
}

// LabelNotFoundError reports a label link missing from the store.
type LabelNotFoundError struct {
	// Label is the label that had no mapping.
	Label reference.Label
	// Chain holds the labels followed before the missing one, if any.
	Chain []reference.Label
}

// Error implements the error interface.
func (e *LabelNotFoundError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("label not found: %s", e.Label)
	}
	return fmt.Sprintf("label not found: %s (via %s)", e.Label, joinLabels(e.Chain))
}

// Is implements error matching for LabelNotFoundError.
func (e *LabelNotFoundError) Is(target error) bool {
	return target == ErrLabelNotFound
}

// NotFound returns the structured form of the error.
func (e *LabelNotFoundError) NotFound() ReferenceNotFound {
	return ReferenceNotFound{
		Reference: e.Label.String(),
		Message:   fmt.Sprintf("Label %q not found", e.Label.String()),
	}
}

// CyclicLabelError reports a label chain that does not terminate.
type CyclicLabelError struct {
	// Chain is the sequence of labels followed, ending with the repeated
	// label or the label at which the depth limit was hit.
	Chain []reference.Label
}

// Error implements the error interface.
func (e *CyclicLabelError) Error() string {
	return "cyclic label: " + joinLabels(e.Chain)
}

// Is implements error matching for CyclicLabelError.
func (e *CyclicLabelError) Is(target error) bool {
	return target == ErrCyclicLabel
}

func joinLabels(chain []reference.Label) string {
	names := make([]string, len(chain))
	for i, l := range chain {
		names[i] = l.String()
	}
	return strings.Join(names, " -> ")
}
