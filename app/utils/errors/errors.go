package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	// Profile resolution errors
	ErrCodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeQueryFailed     ErrorCode = "QUERY_FAILED"

	// Payload errors
	ErrCodeDecodeFailed     ErrorCode = "DECODE_FAILED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// System errors
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrCodeStoreError         ErrorCode = "STORE_ERROR"
	ErrCodeConfigError        ErrorCode = "CONFIG_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case ErrCodeProfileNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidationFailed, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeInternalError, ErrCodeStoreError, ErrCodeQueryFailed,
		ErrCodeDecodeFailed, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

// Authentication errors
var (
	ErrUnauthorized    = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "invalid token")
	ErrSessionNotFound = New(ErrCodeSessionNotFound, "session not found")
)

// Resolution errors
var (
	ErrProfileNotFound  = New(ErrCodeProfileNotFound, "profile not found")
	ErrQueryFailed      = New(ErrCodeQueryFailed, "error while retrieving the profile")
	ErrDecodeFailed     = New(ErrCodeDecodeFailed, "stored payload decode failed")
	ErrValidationFailed = New(ErrCodeValidationFailed, "validation failed")
)

// System errors
var (
	ErrInternalError      = New(ErrCodeInternalError, "internal server error")
	ErrStoreError         = New(ErrCodeStoreError, "session store error")
	ErrConfigError        = New(ErrCodeConfigError, "configuration error")
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "service temporarily unavailable")
	ErrRateLimitExceeded  = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// Helper functions for creating contextual errors

// NewUnauthorized creates an unauthorized error with context
func NewUnauthorized(details string) *AppError {
	return New(ErrCodeUnauthorized, "authentication required").WithDetails(details)
}

// NewNotFound creates a not found error with context
func NewNotFound(resource string) *AppError {
	return Newf(ErrCodeNotFound, "%s not found", resource)
}

// NewValidationError creates a validation error with details
func NewValidationError(details string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithDetails(details)
}

// NewQueryError creates a profile query error with cause
func NewQueryError(cause error) *AppError {
	return Wrap(ErrCodeQueryFailed, "error while retrieving the profile", cause)
}

// NewStoreError creates a session store error with cause
func NewStoreError(cause error) *AppError {
	return Wrap(ErrCodeStoreError, "session store operation failed", cause)
}
