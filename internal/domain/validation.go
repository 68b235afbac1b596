package domain

import (
	"errors"
	"fmt"
)

// ValidationError describes a single validation failure with enough
// detail for the caller to correct the input: the field that failed and
// the constraint it violated.
type ValidationError struct {
	Field   string // The field that failed validation (e.g., "title")
	Message string // The constraint violated (e.g., "must be at least 3 characters")
	Err     error  // Wrapped sentinel, usually ErrValidation
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field and
// constraint message. If err is nil, the error wraps ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is (or wraps) a validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrValidation)
}
