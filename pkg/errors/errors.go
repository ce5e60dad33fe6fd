package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrUnexpected   ErrorCode = "UNEXPECTED"
	ErrCancelled    ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileClose  ErrorCode = "FILE_CLOSE"
)

// ioCodes are the codes reported as I/O failures.
var ioCodes = map[ErrorCode]bool{
	ErrDirCreate:  true,
	ErrFileCreate: true,
	ErrFileWrite:  true,
	ErrFileClose:  true,
}

// WordstormError represents a structured error with code and details
type WordstormError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WordstormError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WordstormError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WordstormError) Is(target error) bool {
	var targetErr *WordstormError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WordstormError with the given code and message
func New(code ErrorCode, message string) *WordstormError {
	return &WordstormError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WordstormError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WordstormError {
	return &WordstormError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WordstormError
func Wrap(err error, code ErrorCode, message string) *WordstormError {
	if err == nil {
		return nil
	}
	return &WordstormError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WordstormError {
	if err == nil {
		return nil
	}
	return &WordstormError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WordstormError) WithDetail(key string, value interface{}) *WordstormError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wsErr *WordstormError
	if errors.As(err, &wsErr) {
		return wsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WordstormError
func GetErrorCode(err error) ErrorCode {
	var wsErr *WordstormError
	if errors.As(err, &wsErr) {
		return wsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WordstormError
func GetErrorDetails(err error) map[string]interface{} {
	var wsErr *WordstormError
	if errors.As(err, &wsErr) {
		return wsErr.Details
	}
	return nil
}

// IsIO reports whether err is an output failure: the sink could not be
// opened, written, or closed.
func IsIO(err error) bool {
	return ioCodes[GetErrorCode(err)]
}
