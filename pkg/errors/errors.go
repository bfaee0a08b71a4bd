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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileDelete ErrorCode = "FILE_DELETE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrConflict   ErrorCode = "CONFLICT"

	// Retry errors
	ErrRetryExhausted ErrorCode = "RETRY_EXHAUSTED"

	// Disk errors
	ErrDiskSpace ErrorCode = "DISK_SPACE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// DurafsError represents a structured error with code and details
type DurafsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DurafsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DurafsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DurafsError) Is(target error) bool {
	var targetErr *DurafsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DurafsError with the given code and message
func New(code ErrorCode, message string) *DurafsError {
	return &DurafsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DurafsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DurafsError {
	return &DurafsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DurafsError
func Wrap(err error, code ErrorCode, message string) *DurafsError {
	if err == nil {
		return nil
	}
	return &DurafsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DurafsError {
	if err == nil {
		return nil
	}
	return &DurafsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DurafsError) WithDetail(key string, value interface{}) *DurafsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DurafsError) WithDetails(details map[string]interface{}) *DurafsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var durafsErr *DurafsError
	if errors.As(err, &durafsErr) {
		return durafsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DurafsError
func GetErrorCode(err error) ErrorCode {
	var durafsErr *DurafsError
	if errors.As(err, &durafsErr) {
		return durafsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DurafsError
func GetErrorDetails(err error) map[string]interface{} {
	var durafsErr *DurafsError
	if errors.As(err, &durafsErr) {
		return durafsErr.Details
	}
	return nil
}
