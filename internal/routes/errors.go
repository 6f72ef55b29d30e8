package routes

import (
	"errors"
	"net/http"

	"bay-sanitation/internal/auth"
	"bay-sanitation/internal/sanitation"
	"bay-sanitation/internal/storage"
)

// HTTPError represents an error with an associated HTTP status code and user message
type HTTPError struct {
	Err        error  // The underlying error
	StatusCode int    // HTTP status code
	Message    string // User-friendly message
	Internal   bool   // Whether this is an internal error (hide details from user)
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(statusCode int, err error, message string) *HTTPError {
	return &HTTPError{
		Err:        err,
		StatusCode: statusCode,
		Message:    message,
		Internal:   statusCode >= 500,
	}
}

// Routes-specific errors (that don't conflict with other packages)
var (
	// Authentication errors
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Internal errors
	ErrInternalServer = errors.New("internal server error")
	ErrDatabaseError  = errors.New("database error")
)

// errorStatusMap maps errors to HTTP status codes
var errorStatusMap = map[error]int{
	// 400 Bad Request
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrInvalidParameter:      http.StatusBadRequest,
	sanitation.ErrValidation: http.StatusBadRequest,

	// 401 Unauthorized
	ErrUnauthorized:            http.StatusUnauthorized,
	auth.ErrInvalidCredentials: http.StatusUnauthorized,
	auth.ErrNonValidToken:      http.StatusUnauthorized,
	auth.ErrInvalidToken:       http.StatusUnauthorized,

	// 403 Forbidden
	auth.ErrLoginDisabled: http.StatusForbidden,

	// 404 Not Found
	storage.ErrNotFound: http.StatusNotFound,

	// 500 Internal Server Error
	ErrInternalServer: http.StatusInternalServerError,
	ErrDatabaseError:  http.StatusInternalServerError,
}

// errorMessageMap maps errors to user-friendly messages
var errorMessageMap = map[error]string{
	ErrUnauthorized:            "Authentication required",
	auth.ErrInvalidCredentials: "Invalid credentials provided",
	auth.ErrNonValidToken:      "Invalid or expired session",
	auth.ErrInvalidToken:       "Invalid or expired session",
	auth.ErrLoginDisabled:      "Login is not configured on this server",

	storage.ErrNotFound: "Record not found",

	ErrInternalServer: "An internal error occurred",
	ErrDatabaseError:  "Database operation failed",
}

// GetErrorStatus returns the HTTP status code for an error
func GetErrorStatus(err error) int {
	// Check if it's already an HTTPError
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	// Check direct match
	if status, ok := errorStatusMap[err]; ok {
		return status
	}

	// Check if error wraps a known error
	for knownErr, status := range errorStatusMap {
		if errors.Is(err, knownErr) {
			return status
		}
	}

	// Default to 500 Internal Server Error
	return http.StatusInternalServerError
}

// GetErrorMessage returns a user-friendly message for an error
func GetErrorMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}

	if msg, ok := errorMessageMap[err]; ok {
		return msg
	}

	for knownErr, msg := range errorMessageMap {
		if errors.Is(err, knownErr) {
			return msg
		}
	}

	// For unknown errors, return a generic message for 5xx, specific for others
	if GetErrorStatus(err) >= 500 {
		return "An internal error occurred"
	}
	return err.Error()
}
