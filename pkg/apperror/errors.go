package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for callers that react differently to each
type Kind string

const (
	KindConnectivity Kind = "connectivity" // lead store unreachable on read
	KindWrite        Kind = "write"        // create/update rejected by the store
	KindDelete       Kind = "delete"       // delete rejected by the store
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindConflict     Kind = "conflict"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Cause   error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError of the same kind, so errors.Is(err, ErrNotFound) works
// for any not-found error regardless of its message
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Common errors
var (
	ErrNotFound        = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrTooManyRequests = &AppError{Code: http.StatusTooManyRequests, Kind: KindRateLimited, Message: "Too many requests"}
	ErrConnectivity    = &AppError{Code: http.StatusServiceUnavailable, Kind: KindConnectivity, Message: "Could not connect to the lead store"}
	ErrWrite           = &AppError{Code: http.StatusBadGateway, Kind: KindWrite, Message: "Could not save the lead"}
	ErrDelete          = &AppError{Code: http.StatusBadGateway, Kind: KindDelete, Message: "Could not delete the lead"}
)

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewUnauthorizedError creates an unauthorized error with a custom message
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NewConnectivityError wraps a failed read of the lead store
func NewConnectivityError(cause error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindConnectivity,
		Message: ErrConnectivity.Message,
		Cause:   cause,
	}
}

// NewWriteError wraps a failed create or update against the lead store
func NewWriteError(message string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindWrite,
		Message: message,
		Cause:   cause,
	}
}

// NewDeleteError wraps a failed delete against the lead store
func NewDeleteError(cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindDelete,
		Message: ErrDelete.Message,
		Cause:   cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
