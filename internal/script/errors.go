package script

import (
	"errors"
	"fmt"
)

// Errors for script execution.
var (
	// ErrStateClosed is returned when running on a closed state.
	ErrStateClosed = errors.New("script state is closed")

	// ErrTimeout is returned when a script runs past its timeout.
	ErrTimeout = errors.New("script timeout")

	// ErrInstructionLimit is returned when a script makes more API calls
	// than allowed.
	ErrInstructionLimit = errors.New("script instruction limit exceeded")
)

// ScriptError is a Lua error raised while running a script.
type ScriptError struct {
	// Source is the file name, or "<script>" for inline code.
	Source string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
