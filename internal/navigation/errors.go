package navigation

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand indicates navigation text outside the vocabulary.
var ErrUnknownCommand = errors.New("unknown navigation")

// CommandError reports navigation text that could not be parsed.
type CommandError struct {
	// Text is the offending command.
	Text string
	// Message describes what was expected.
	Message string
	// Err is the underlying reference error, if any.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navigation %q: %s: %v", e.Text, e.Message, e.Err)
	}
	return fmt.Sprintf("navigation %q: %s", e.Text, e.Message)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is implements error matching for CommandError.
func (e *CommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}
