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

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"

	// Statistics source errors
	ErrSourceFetch   ErrorCode = "SOURCE_FETCH"
	ErrSnapshotParse ErrorCode = "SNAPSHOT_PARSE"
	ErrStoreOpen     ErrorCode = "STORE_OPEN"
	ErrStoreQuery    ErrorCode = "STORE_QUERY"

	// Rendering errors
	ErrTemplateLoad  ErrorCode = "TEMPLATE_LOAD"
	ErrRenderInvalid ErrorCode = "RENDER_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// BadgeError represents a structured error with code and details
type BadgeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BadgeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BadgeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two BadgeErrors match when their codes match.
func (e *BadgeError) Is(target error) bool {
	var targetErr *BadgeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BadgeError with the given code and message
func New(code ErrorCode, message string) *BadgeError {
	return &BadgeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BadgeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BadgeError {
	return &BadgeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BadgeError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *BadgeError {
	if err == nil {
		return nil
	}
	return &BadgeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BadgeError {
	if err == nil {
		return nil
	}
	return &BadgeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BadgeError) WithDetail(key string, value interface{}) *BadgeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var badgeErr *BadgeError
	if errors.As(err, &badgeErr) {
		return badgeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BadgeError
func GetErrorCode(err error) ErrorCode {
	var badgeErr *BadgeError
	if errors.As(err, &badgeErr) {
		return badgeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BadgeError
func GetErrorDetails(err error) map[string]interface{} {
	var badgeErr *BadgeError
	if errors.As(err, &badgeErr) {
		return badgeErr.Details
	}
	return nil
}
