package script

import (
	"errors"
	"fmt"
)

// Pipeline errors.
var (
	// ErrInvalidPipeline indicates the document is not valid JSON or has no
	// steps array.
	ErrInvalidPipeline = errors.New("invalid pipeline")

	// ErrUnknownOp indicates a step names an operation that does not exist.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrMissingField indicates a step lacks a field its operation needs.
	ErrMissingField = errors.New("missing field")

	// ErrFieldType indicates a step field has the wrong JSON type.
	ErrFieldType = errors.New("wrong field type")
)

// StepError describes a problem with a single step.
type StepError struct {
	Index int
	Op    Op
	Field string
	Err   error
}

func (e *StepError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("step %d (%s): %s: %v", e.Index, e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
