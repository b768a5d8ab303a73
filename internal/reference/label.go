package reference

import (
	"fmt"
	"strings"
)

// MaxLabelLength is the longest accepted label name.
const MaxLabelLength = 255

// Label is a named indirection to another selection.
// Names compare case-insensitively.
type Label struct {
	name string
}

// InvalidLabelError describes why a name cannot be a label.
type InvalidLabelError struct {
	Name    string
	Message string
}

// Error implements the error interface.
func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("invalid label %q: %s", e.Name, e.Message)
}

// Is implements error matching for InvalidLabelError.
func (e *InvalidLabelError) Is(target error) bool {
	return target == ErrInvalidLabel
}

// ParseLabel validates name and returns the label.
// A name starts with a letter or underscore, continues with letters, digits,
// underscores or dots, and must not itself read as a cell, column or row.
func ParseLabel(name string) (Label, error) {
	if name == "" {
		return Label{}, &InvalidLabelError{Name: name, Message: "empty"}
	}
	if len(name) > MaxLabelLength {
		return Label{}, &InvalidLabelError{Name: name, Message: fmt.Sprintf("longer than %d characters", MaxLabelLength)}
	}
	if first := name[0]; !isLetter(first) && first != '_' {
		return Label{}, &InvalidLabelError{Name: name, Message: "must start with a letter or underscore"}
	}
	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' && ch != '.' {
			return Label{}, &InvalidLabelError{Name: name, Message: fmt.Sprintf("invalid character %q", ch)}
		}
	}
	if looksLikeReference(name) {
		return Label{}, &InvalidLabelError{Name: name, Message: "reads as a cell or column reference"}
	}
	return Label{name: name}, nil
}

// MustLabel is like ParseLabel but panics on an invalid name.
func MustLabel(name string) Label {
	l, err := ParseLabel(name)
	if err != nil {
		panic(err)
	}
	return l
}

// looksLikeReference reports names the reference grammar would claim.
func looksLikeReference(name string) bool {
	if _, err := ParseCell(name); err == nil {
		return true
	}
	if _, err := ParseColumn(name); err == nil {
		return true
	}
	return false
}

// Name returns the label name as written.
func (l Label) Name() string {
	return l.name
}

// Equal compares names case-insensitively.
func (l Label) Equal(other Label) bool {
	return strings.EqualFold(l.name, other.name)
}

// KeyCompare orders names case-insensitively.
func (l Label) KeyCompare(other Label) int {
	return strings.Compare(strings.ToLower(l.name), strings.ToLower(other.name))
}

// Key returns the case-folded name suitable for use as a map key.
func (l Label) Key() string {
	return strings.ToLower(l.name)
}

// String returns the label name.
func (l Label) String() string {
	return l.name
}
