// Package errors provides standardized error types for Series operations.
// This package defines SeriesError for consistent error handling across
// all public APIs, with operation context and error wrapping support.
//
// Absence (an out-of-range position, or a typed read of the wrong type) is
// never an error; accessors report it with a false second return value.
// The errors here cover contract violations and invalid inputs.
package errors

import (
	"fmt"
)

// SeriesError represents standardized errors across all Series operations
type SeriesError struct {
	Op      string // Operation name (e.g., "Update", "ToArrow", "Handle.Set")
	Label   string // Rendered label of the affected entry, if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *SeriesError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s operation failed on entry %s: %s", e.Op, e.Label, e.Message)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *SeriesError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *SeriesError) Is(target error) bool {
	if se, ok := target.(*SeriesError); ok {
		return e.Op == se.Op && e.Label == se.Label && e.Message == se.Message
	}
	return false
}

// WithLabel returns a copy of the error annotated with the rendered label.
func (e *SeriesError) WithLabel(label string) *SeriesError {
	c := *e
	c.Label = label
	return &c
}

// Predefined sentinel errors. Constructed errors wrap one of these as Cause,
// so callers can match the category with errors.Is.
var (
	// ErrIndexOutOfBounds indicates a logical position outside the order sequence
	ErrIndexOutOfBounds = &SeriesError{
		Op:      "indexing",
		Message: "index out of bounds",
	}

	// ErrTypeMismatch indicates a typed write against a slot holding another type
	ErrTypeMismatch = &SeriesError{
		Op:      "typecheck",
		Message: "stored type does not match requested type",
	}

	// ErrStaleHandle indicates use of a mutable handle after a structural mutation
	ErrStaleHandle = &SeriesError{
		Op:      "borrow",
		Message: "handle used after the series was mutated",
	}

	// ErrEmptySeries indicates operations that require at least one entry
	ErrEmptySeries = &SeriesError{
		Op:      "validation",
		Message: "operation not supported on empty Series",
	}

	// ErrUnsupportedType indicates a value type the operation cannot handle
	ErrUnsupportedType = &SeriesError{
		Op:      "validation",
		Message: "unsupported type",
	}

	// ErrMismatchedLength indicates the order sequence and storage maps disagree
	ErrMismatchedLength = &SeriesError{
		Op:      "validation",
		Message: "order sequence and storage must have the same length",
	}
)

// Common error constructors for consistent error creation

// NewIndexOutOfBoundsError creates an error for positions outside [0, length)
func NewIndexOutOfBoundsError(op string, index, length int) *SeriesError {
	return &SeriesError{
		Op:      op,
		Message: fmt.Sprintf("index %d out of bounds [0, %d)", index, length),
		Cause:   ErrIndexOutOfBounds,
	}
}

// NewTypeMismatchError creates an error for a typed access against another stored type
func NewTypeMismatchError(op, want, got string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Message: fmt.Sprintf("requested type %s, slot holds %s", want, got),
		Cause:   ErrTypeMismatch,
	}
}

// NewStaleHandleError creates an error for handles that outlived a mutation
func NewStaleHandleError(op string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Message: "handle is stale",
		Cause:   ErrStaleHandle,
	}
}

// NewUnsupportedTypeError creates an error for unsupported data types
func NewUnsupportedTypeError(op, typeName string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Message: fmt.Sprintf("unsupported type: %s", typeName),
		Cause:   ErrUnsupportedType,
	}
}

// NewValidationError creates an error for input validation failures
func NewValidationError(op, label, message string) *SeriesError {
	return &SeriesError{
		Op:      op,
		Label:   label,
		Message: message,
	}
}

// NewInternalError creates an error for internal operation failures
func NewInternalError(op string, cause error) *SeriesError {
	return &SeriesError{
		Op:      op,
		Message: "internal error occurred",
		Cause:   cause,
	}
}
