// Package errors provides structured error types for the reaction layout
// engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, HTTP API, and MCP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Malformed input is a caller-surfaced precondition failure, while
// unknown compartments and degenerate text are recovered internally and
// never reach this package.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedInput, "reaction is required")
//	if errors.Is(err, errors.ErrCodeMalformedInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "compact grid: row %d vanished", row)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the layout engine's failure taxonomy.
const (
	// ErrCodeMalformedInput covers a missing reaction, an empty
	// participant list, or any other precondition the caller must fix
	// before compute() can run.
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"

	// ErrCodeInvalidRole is the sole fatal geometric-input condition:
	// a role with stoichiometry < 1.
	ErrCodeInvalidRole Code = "INVALID_ROLE"

	// ErrCodeInvalidVizType marks a request to render a layout in a viz
	// type this module does not produce. No code in this module returns it.
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"

	// ErrCodeNotFound covers a cache miss surfaced as an error by a
	// strict caller, or an unknown accession requested directly instead
	// of through the tolerant ontology lookup path.
	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeInternal marks an invariant the algorithm itself is
	// expected to maintain (e.g. a compacted grid losing a live cell).
	// Seeing this in production means the algorithm has a bug, not that
	// the caller supplied bad data.
	ErrCodeInternal Code = "INTERNAL_ERROR"

	// ErrCodeUnsupported marks a request the engine deliberately does not
	// implement. No code in this module returns it.
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

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
