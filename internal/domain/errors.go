package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Errors reported by the AI and dictionary collaborators.
var (
	ErrRateLimited       = errors.New("API rate limit exceeded. Please try again in a few minutes.")
	ErrQuotaExceeded     = errors.New("OpenAI API quota exceeded. Please check your API key.")
	ErrUpstream          = errors.New("upstream service failure")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrLookupFailed      = errors.New("failed to get word information")
)

// ErrNothingToLookup is returned when a clicked token has no letters left
// after normalization. It is a validation error: no collaborator is called.
var ErrNothingToLookup = &ValidationError{
	Errors: []FieldError{{Field: "word", Message: "nothing to look up"}},
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
