package models

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel every field validation failure matches via
// [errors.Is]. The concrete error is always a *[ValidationError].
var ErrValidation = errors.New("validation failed")

// ValidationError describes a single field that failed a structural
// invariant (length, range, format or presence).
type ValidationError struct {
	// Field is the JSON name of the offending field (e.g. "rating").
	Field string
	// Reason is a short human readable explanation.
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is reports whether target is [ErrValidation], so callers can branch on the
// error kind without knowing the field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
