package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to HTTP
// status codes.
var (
	// ErrUserExists indicates registration collided with an existing email or username.
	// Both cases share this error so the response does not reveal which field clashed.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates a failed login. Unknown email, wrong
	// password and missing fields all map to this single error.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ServiceError is a custom error type for unexpected service failures.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "register", "update_book")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
