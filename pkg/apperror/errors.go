package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies errors raised by the reporting engine.
type Kind string

const (
	KindGeneric      Kind = ""
	KindStoreQuery   Kind = "store_query"
	KindInvalidRange Kind = "invalid_range"
	KindRendering    Kind = "rendering"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Kind    Kind         `json:"kind,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidPIN     = &AppError{Code: http.StatusUnauthorized, Message: "Invalid PIN"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewStoreQueryError wraps a failed or malformed store query. No partial
// results accompany it.
func NewStoreQueryError(operation string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Store query failed (" + operation + ")",
		Kind:    KindStoreQuery,
		Err:     err,
	}
}

// NewInvalidRangeError reports malformed date input before any query runs.
func NewInvalidRangeError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Kind:    KindInvalidRange,
	}
}

// NewRenderingError wraps a document rendering surface failure.
func NewRenderingError(err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: "Document rendering failed",
		Kind:    KindRendering,
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsStoreQuery reports whether err is a StoreQueryError.
func IsStoreQuery(err error) bool { return IsKind(err, KindStoreQuery) }

// IsInvalidRange reports whether err is an InvalidRangeError.
func IsInvalidRange(err error) bool { return IsKind(err, KindInvalidRange) }

// IsRendering reports whether err is a RenderingError.
func IsRendering(err error) bool { return IsKind(err, KindRendering) }

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
