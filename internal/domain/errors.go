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
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrStorage       = errors.New("storage error")
)

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

// ConflictReason names why an operation conflicts with the current state.
type ConflictReason string

const (
	ConflictHasTools          ConflictReason = "HAS_TOOLS"
	ConflictHasSubcategories  ConflictReason = "HAS_SUBCATEGORIES"
	ConflictInvalidTransition ConflictReason = "INVALID_TRANSITION"
	ConflictDuplicate         ConflictReason = "DUPLICATE"
)

func (r ConflictReason) String() string { return string(r) }

// ConflictError carries the reason for a CONFLICT and, where it applies,
// how many live rows block the operation.
type ConflictError struct {
	Reason  ConflictReason
	Count   int
	Message string
}

func (e *ConflictError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Reason)
	}
	if e.Count > 0 {
		return fmt.Sprintf("conflict: %s (%d)", msg, e.Count)
	}
	return "conflict: " + msg
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError.
func NewConflictError(reason ConflictReason, count int, message string) *ConflictError {
	return &ConflictError{Reason: reason, Count: count, Message: message}
}
