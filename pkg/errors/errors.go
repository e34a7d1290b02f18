// Package errors provides typed errors for gitshape
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrGit indicates a git invocation error
	ErrGit
	// ErrProvider indicates a text-generation provider error
	ErrProvider
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrTimeout indicates a timeout occurred
	ErrTimeout
	// ErrBudget indicates a character or token budget was exceeded
	ErrBudget
)

// Error is the base error type for all gitshape errors
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var gsErr *Error
	if err == nil {
		return false
	}
	if errors.As(err, &gsErr) {
		return gsErr.Type == errType
	}
	return false
}

// IsRetryable returns true if the error is transient and retryable
func IsRetryable(err error) bool {
	var gsErr *Error
	if !errors.As(err, &gsErr) {
		return false
	}

	switch gsErr.Type {
	case ErrProvider, ErrTimeout:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrGit:
		return "GIT"
	case ErrProvider:
		return "PROVIDER"
	case ErrValidation:
		return "VALIDATION"
	case ErrTimeout:
		return "TIMEOUT"
	case ErrBudget:
		return "BUDGET"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *Error {
	return New(ErrConfig, message, cause)
}

// GitError creates a git invocation error
func GitError(message string, cause error) *Error {
	return New(ErrGit, message, cause)
}

// ProviderError creates a provider error
func ProviderError(message string, cause error) *Error {
	return New(ErrProvider, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *Error {
	return New(ErrValidation, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *Error {
	return New(ErrTimeout, message, cause)
}

// BudgetError creates a budget exceeded error
func BudgetError(message string, cause error) *Error {
	return New(ErrBudget, message, cause)
}
