package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrSessionNotFound   = errors.New("onboarding session not found")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrIncompleteOTP     = errors.New("verification code incomplete")
	ErrInvalidOTP        = errors.New("invalid verification code")
	ErrUpstreamFailure   = errors.New("marketplace api request failed")
	ErrUpstreamRejected  = errors.New("marketplace api rejected the request")
)

// AppError represents an application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func BadGateway(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// DecodeError classifies a malformed upstream response body. Callers
// that list transactions treat it as an empty result set rather than a
// hard failure, so a bad page never breaks the dashboard render path.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed upstream response: field %q %s", e.Field, e.Reason)
}

// IsDecodeError reports whether err wraps a DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
