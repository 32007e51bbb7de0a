// Package errors provides structured error types for toplangs.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly messages, including the hint shown on error cards
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_* / MISSING_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - NETWORK_*, RATE_LIMITED, GRAPHQL_ERROR: Upstream failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParam, "Invalid layout: must be one of %s", allowed)
//	if errors.Is(err, errors.ErrCodeInvalidParam) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
//
// Error cards show [UserMessage] as the headline and [SecondaryMessage] as
// the hint below it.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidUsername Code = "INVALID_USERNAME"
	ErrCodeInvalidParam    Code = "INVALID_PARAM"
	ErrCodeMissingParam    Code = "MISSING_PARAM"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeUserNotFound Code = "USER_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Upstream errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"
	ErrCodeGraphQL     Code = "GRAPHQL_ERROR"

	// Authentication errors
	ErrCodeNoTokens     Code = "NO_TOKENS"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// secondary holds the hint printed below the message on error cards.
var secondary = map[Code]string{
	ErrCodeRateLimited:  "You can deploy own instance or wait until public will be no longer limited",
	ErrCodeNoTokens:     "Please add an env variable called PAT_1 with your GitHub API token",
	ErrCodeUserNotFound: "Make sure the provided username is not an organization",
	ErrCodeGraphQL:      "Please try again later",
	ErrCodeNetwork:      "Please try again later",
	ErrCodeTimeout:      "Please try again later",
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// SecondaryMessage returns the hint shown below the message on an error
// card, or "" when the error's code has none.
func SecondaryMessage(err error) string {
	return secondary[GetCode(err)]
}

// MissingParam returns the error for absent required query parameters.
func MissingParam(names ...string) *Error {
	quoted := ""
	for i, n := range names {
		if i > 0 {
			quoted += ", "
		}
		quoted += fmt.Sprintf("%q", n)
	}
	return New(ErrCodeMissingParam, "Missing params %s make sure you pass the parameters in URL", quoted)
}
