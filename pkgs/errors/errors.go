package errors

import (
	"fmt"
)

// Error types for the failure categories the nitro tool reports
const (
	// Input/File errors
	ErrInputRead    = "INPUT_READ_ERROR"
	ErrFileParse    = "FILE_PARSE_ERROR"
	ErrFileNotFound = "FILE_NOT_FOUND"

	// Tool errors
	ErrConfig = "CONFIG_ERROR"
	ErrRender = "RENDER_ERROR"
	ErrWatch  = "WATCH_ERROR"
)

// NitroError represents a structured error with type and context
type NitroError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *NitroError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *NitroError) Unwrap() error {
	return e.Cause
}

// New creates a new NitroError
func New(errorType, message string) *NitroError {
	return &NitroError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap creates a new NitroError wrapping an existing error
func Wrap(errorType, message string, cause error) *NitroError {
	return &NitroError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error
func (e *NitroError) WithContext(key string, value any) *NitroError {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *NitroError) GetContext(key string) (any, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// NewInputError creates an error for unreadable source input
func NewInputError(path string, cause error) *NitroError {
	return Wrap(ErrInputRead, fmt.Sprintf("cannot read '%s'", path), cause).
		WithContext("path", path)
}

// NewParseError wraps the count diagnostics of a failed parse
func NewParseError(path string, count int, cause error) *NitroError {
	return Wrap(ErrFileParse, fmt.Sprintf("%d syntax error(s) in '%s'", count, path), cause).
		WithContext("path", path).
		WithContext("errors", count)
}

// IsErrorType checks if err, or any error it wraps, is a NitroError of the
// given type
func IsErrorType(err error, errorType string) bool {
	for err != nil {
		if nitroErr, ok := err.(*NitroError); ok && nitroErr.Type == errorType {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
