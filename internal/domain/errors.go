package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	// ErrUnselectable means a display value does not resolve to a visible entity.
	ErrUnselectable = errors.New("unselectable value")
	// ErrCatalogUnavailable means the remote catalog rejected or failed a call.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
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

// UnselectableError lists display values that could not be resolved to ids.
type UnselectableError struct {
	Kind   EntityKind
	Values []string
}

func (e *UnselectableError) Error() string {
	return fmt.Sprintf("%s: unselectable %s: %s", e.Kind, pluralValue(len(e.Values)), strings.Join(e.Values, ", "))
}

func (e *UnselectableError) Unwrap() error { return ErrUnselectable }

func pluralValue(n int) string {
	if n == 1 {
		return "value"
	}
	return "values"
}
