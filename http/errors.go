package http

import (
	"errors"
	"fmt"
	"net/http"

	"smokyhost/service"
)

// AppError is the error body returned to clients.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
	}
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func BadRequestError(message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", "", message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError("ERR_NOT_FOUND", "", message, http.StatusNotFound)
}

func ConflictError(message string) *AppError {
	return NewAppError("ERR_CONFLICT", "", message, http.StatusConflict)
}

func TooManyRequestsError() *AppError {
	return NewAppError("ERR_RATE_LIMITED", "", "rate limit exceeded", http.StatusTooManyRequests)
}

func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", "", message, http.StatusInternalServerError)
}

// toAppError maps service errors onto HTTP errors. Unknown errors become 500s.
func toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var assumptionErr *service.AssumptionError
	if errors.As(err, &assumptionErr) {
		return NewAppError("ERR_INVALID_ASSUMPTIONS", assumptionErr.Field, err.Error(), http.StatusBadRequest).WithError(err)
	}

	switch {
	case errors.Is(err, service.ErrInvalidAssumptions):
		return NewAppError("ERR_INVALID_ASSUMPTIONS", "", err.Error(), http.StatusBadRequest).WithError(err)
	case errors.Is(err, service.ErrInvalidInput):
		return BadRequestError(err.Error()).WithError(err)
	case errors.Is(err, service.ErrNotFound):
		return NotFoundError(err.Error()).WithError(err)
	case errors.Is(err, service.ErrConflict):
		return ConflictError(err.Error()).WithError(err)
	default:
		return InternalError("Something went wrong").WithError(err)
	}
}
