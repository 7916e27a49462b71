// Package errors provides the coded error taxonomy shared by every stage of
// package generation and review.
//
// All errors are fatal: callers wrap the underlying cause with a code and
// return it up to the command, which prints it and exits non-zero.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// ErrCodeFileNotFound indicates a missing resume, jobs, template or output path.
	ErrCodeFileNotFound ErrorCode = "FILE_NOT_FOUND"
	// ErrCodeMalformedInput indicates an unreadable CSV or JSON document.
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"
	// ErrCodeTemplate indicates a cover letter template that cannot be rendered.
	ErrCodeTemplate ErrorCode = "TEMPLATE_ERROR"
	// ErrCodeIO indicates a failed filesystem write.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeInvalidRequest indicates invalid command input, such as a bad candidate field.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// StructuredError carries a code, a human-readable message, the underlying
// cause and optional context for logging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
