package errors

import (
	"net/http"
	"sort"
	"strings"

	"backoffice/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Auth-related errors
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Please enter both email and password.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Invalid or expired session.",
		"",
	)

	// Collection-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found.",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found.",
		"",
	)

	// Status workflow errors
	ErrInvalidStatusTransition = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_STATUS_TRANSITION",
		"The requested status change is not allowed.",
		"",
	)

	ErrUnknownStatus = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_STATUS",
		"Unknown order status.",
		"",
	)

	// General errors
	ErrBackendUnreachable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNREACHABLE",
		"The backend service could not be reached.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// ValidationError reports presence-check failures with one message per
// missing field, implementing the AppError interface.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from a field -> message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Please fill in all the required fields."
}

// Details returns the per-field messages joined in field order.
func (e *ValidationError) Details() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return strings.Join(parts, "; ")
}

// Fields returns the field -> message map.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// BackendError represents a non-2xx response from the remote backend,
// carrying the backend's own message when one was present in the body.
type BackendError struct {
	statusCode int
	message    string
}

// NewBackendError creates a backend response error.
func NewBackendError(statusCode int, message string) *BackendError {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &BackendError{statusCode: statusCode, message: message}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return e.message
}

// HTTPCode returns the backend's HTTP status code
func (e *BackendError) HTTPCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the backend-provided message
func (e *BackendError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return ""
}

// Response is the unified API response envelope.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries detailed error information in the envelope.
type ErrorInfo struct {
	Code    string            `json:"code"`             // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Details string            `json:"details"`          // Detailed error description
	Fields  map[string]string `json:"fields,omitempty"` // Per-field validation messages
}
