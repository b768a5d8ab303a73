package reference

import (
	"errors"
	"fmt"
)

// Errors returned by reference operations.
var (
	// ErrInvalidColumn indicates a column offset outside [0, MaxColumn].
	ErrInvalidColumn = errors.New("invalid column")

	// ErrInvalidRow indicates a row offset outside [0, MaxRow].
	ErrInvalidRow = errors.New("invalid row")

	// ErrInvalidRange indicates a range built from an unbounded or exclusive bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidLabel indicates a malformed label name.
	ErrInvalidLabel = errors.New("invalid label")

	// ErrParse indicates text that does not match the reference grammar.
	ErrParse = errors.New("parse error")

	// ErrNilArgument indicates a required argument was nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrUnsupported indicates a conversion the selection kind cannot perform,
	// such as asking a row for its columns.
	ErrUnsupported = errors.New("unsupported conversion")
)

// InvalidColumnError reports a column offset outside the grid.
type InvalidColumnError struct {
	// Value is the rejected offset.
	Value int
	// Message is the human readable description.
	Message string
}

// Error implements the error interface.
func (e *InvalidColumnError) Error() string {
	return e.Message
}

// Is implements error matching for InvalidColumnError.
func (e *InvalidColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}

// WithMessage returns a copy carrying a different message but the same value.
func (e *InvalidColumnError) WithMessage(message string) *InvalidColumnError {
	return &InvalidColumnError{Value: e.Value, Message: message}
}

func newInvalidColumnError(value int) *InvalidColumnError {
	return &InvalidColumnError{
		Value:   value,
		Message: fmt.Sprintf("invalid column %d not in 0..%d", value, MaxColumn),
	}
}

// InvalidRowError reports a row offset outside the grid.
type InvalidRowError struct {
	// Value is the rejected offset.
	Value int
	// Message is the human readable description.
	Message string
}

// Error implements the error interface.
func (e *InvalidRowError) Error() string {
	return e.Message
}

// Is implements error matching for InvalidRowError.
func (e *InvalidRowError) Is(target error) bool {
	return target == ErrInvalidRow
}

// WithMessage returns a copy carrying a different message but the same value.
func (e *InvalidRowError) WithMessage(message string) *InvalidRowError {
	return &InvalidRowError{Value: e.Value, Message: message}
}

func newInvalidRowError(value int) *InvalidRowError {
	return &InvalidRowError{
		Value:   value,
		Message: fmt.Sprintf("invalid row %d not in 0..%d", value, MaxRow),
	}
}

// ParseError represents text that could not be parsed as a reference.
type ParseError struct {
	// Text is the input that failed to parse.
	Text string
	// Pos is the byte offset of the offending character, or -1.
	Pos int
	// Message describes the problem.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("parse %q at %d: %s", e.Text, e.Pos, e.Message)
	}
	return fmt.Sprintf("parse %q: %s", e.Text, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func parseErrorf(text string, pos int, format string, args ...any) *ParseError {
	return &ParseError{Text: text, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
