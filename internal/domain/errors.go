// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every field-level error below wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrUnauthorized is returned when no authenticated identity is present.
	ErrUnauthorized = errors.New("unauthorized operation")

	// ErrForbidden is returned when the authenticated identity may not act
	// on the target resource.
	ErrForbidden = errors.New("forbidden operation")
)

// ValidationError describes a single invalid field. It unwraps to the
// specific sentinel it was built from, which in turn wraps ErrValidation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
