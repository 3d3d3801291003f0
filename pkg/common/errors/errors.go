package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the dagflow library

var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrDraining indicates that a queue no longer accepts new items but is
	// still serving the ones it holds
	ErrDraining = errors.New("queue is draining")

	// ErrShutdown indicates that a queue has been hard-stopped and will
	// neither accept nor serve items
	ErrShutdown = errors.New("queue is shut down")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsTerminal returns true if the error indicates that the resource has been
// terminated and no retry of the operation can ever succeed
func IsTerminal(err error) bool {
	return errors.Is(err, ErrShutdown) || errors.Is(err, ErrClosed)
}

// ValidationError describes a configuration value that failed validation.
// It wraps ErrInvalidConfiguration so callers can match with errors.Is.
type ValidationError struct {
	// Module is the component that rejected the value (e.g. "handshake")
	Module string

	// Field is the configuration field name
	Field string

	// Value is the rejected value
	Value interface{}

	// Reason explains why the value was rejected
	Reason string

	// Hint optionally suggests a fix
	Hint string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a suggestion to the error and returns the same instance.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration so that
// errors.Is(err, ErrInvalidConfiguration) holds for all validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
