// Package domain defines the core domain models for UserHub.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "UH-USER-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// User errors (USER).
var (
	// ErrUserNotFound indicates the requested user was not found.
	ErrUserNotFound = NewDomainError("UH-USER-4040", "user not found")

	// ErrUserExists indicates a user with the same phone already exists.
	ErrUserExists = NewDomainError("UH-USER-4090", "a user with this phone already exists")
)

// Token errors (TOKN).
var (
	// ErrTokenNotFound indicates the requested token was not found.
	ErrTokenNotFound = NewDomainError("UH-TOKN-4040", "token not found")

	// ErrTokenExpired indicates the token has already expired and cannot be extended.
	ErrTokenExpired = NewDomainError("UH-TOKN-4011", "token has already expired and cannot be extended")
)

// Authentication errors (AUTH).
var (
	// ErrPasswordMismatch indicates the supplied password does not match the stored hash.
	ErrPasswordMismatch = NewDomainError("UH-AUTH-4001", "password did not match the specified user's stored password")

	// ErrTokenInvalid indicates a missing or invalid authorization token.
	ErrTokenInvalid = NewDomainError("UH-AUTH-4030", "missing required token in header, or token is invalid")
)

// Argument errors (ARG).
var (
	// ErrValidation indicates malformed or missing input fields.
	ErrValidation = NewDomainError("UH-ARG-1001", "missing required fields")
)

// System errors (SYS).
var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("UH-SYS-5000", "internal server error")

	// ErrStorage indicates a storage layer error.
	ErrStorage = NewDomainError("UH-SYS-5001", "storage error")
)
