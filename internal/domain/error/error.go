package error

import (
	"errors"
	"fmt"
)

// Domain error kinds. Every consumer above the repository layer dispatches
// on kind, never on the wrapped cause.

// ValidationError represents bad input shape or format. User-correctable.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError represents a referenced entity that is absent.
type NotFoundError struct {
	Message  string
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" && e.ID != "" {
		return fmt.Sprintf("%s with ID '%s' not found", e.Resource, e.ID)
	}
	if e.Message != "" {
		return e.Message
	}
	return "resource not found"
}

// ConflictError represents a uniqueness violation.
type ConflictError struct {
	Message  string
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	if e.Resource != "" && e.Field != "" {
		return fmt.Sprintf("%s with %s '%s' already exists", e.Resource, e.Field, e.Value)
	}
	if e.Message != "" {
		return e.Message
	}
	return "resource conflict"
}

// OperationError wraps an unexpected lower-layer failure. The original cause
// is carried for diagnostics only; callers see a stable kind.
type OperationError struct {
	Message string
	Cause   error
}

func (e *OperationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "operation failed"
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// Helper constructors

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewFieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func NewConflictError(resource, field, value string) *ConflictError {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

func NewOperationError(message string, cause error) *OperationError {
	return &OperationError{Message: message, Cause: cause}
}

// Error checking helpers

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNotFoundError checks if error is a not found error
func IsNotFoundError(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflictError checks if error is a conflict error
func IsConflictError(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsOperationError checks if error is an operation error
func IsOperationError(err error) bool {
	var operationErr *OperationError
	return errors.As(err, &operationErr)
}

// IsDomainError reports whether err is any of the known domain kinds.
func IsDomainError(err error) bool {
	return IsValidationError(err) ||
		IsNotFoundError(err) ||
		IsConflictError(err) ||
		IsOperationError(err)
}
