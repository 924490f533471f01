package lua

import "errors"

// Transform and state errors.
var (
	// ErrStateClosed is returned by every call on a closed State.
	ErrStateClosed = errors.New("lua: state closed")

	// ErrExecutionTimeout is returned when a script runs past the
	// configured execution timeout.
	ErrExecutionTimeout = errors.New("lua: execution timed out")

	// ErrFunctionNotFound is returned when the named global is not a function.
	ErrFunctionNotFound = errors.New("lua: function not defined")

	// ErrBadResult is returned when transform yields something other than
	// nil, a string, a number or a String.
	ErrBadResult = errors.New("lua: unsupported transform result")
)
