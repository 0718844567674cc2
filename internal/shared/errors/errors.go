// Package errors is the error taxonomy shared by every layer. Each kind maps
// to exactly one HTTP status.
package errors

import (
	"errors"
	"net/http"
	"strings"
)

// ErrorType is the machine readable kind carried in the response envelope.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
)

var statusByType = map[ErrorType]int{
	ErrorTypeValidation:   http.StatusBadRequest,
	ErrorTypeBadRequest:   http.StatusBadRequest,
	ErrorTypeNotFound:     http.StatusNotFound,
	ErrorTypeUnauthorized: http.StatusUnauthorized,
	ErrorTypeForbidden:    http.StatusForbidden,
	ErrorTypeInternal:     http.StatusInternalServerError,
}

// Status returns the HTTP status for t. Unknown kinds are internal errors.
func (t ErrorType) Status() int {
	if code, ok := statusByType[t]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// AppError is returned by use cases and repositories. Message is fixed text
// that may be shown to clients. Details and the wrapped cause only reach
// the logs.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"-"`
	cause   error
}

func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Type))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString(" (")
		b.WriteString(e.Details)
		b.WriteString(")")
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Wrap records the underlying cause. Its text becomes Details unless
// Details was already set.
func (e *AppError) Wrap(cause error) *AppError {
	e.cause = cause
	if cause != nil && e.Details == "" {
		e.Details = cause.Error()
	}
	return e
}

// New builds an AppError of kind t. At most one detail string is kept.
func New(t ErrorType, message string, details ...string) *AppError {
	e := &AppError{Type: t, Message: message, Code: t.Status()}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func NewValidationError(message string, details ...string) *AppError {
	return New(ErrorTypeValidation, message, details...)
}

func NewBadRequestError(message string, details ...string) *AppError {
	return New(ErrorTypeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return New(ErrorTypeNotFound, message, details...)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return New(ErrorTypeUnauthorized, message, details...)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return New(ErrorTypeForbidden, message, details...)
}

func NewInternalError(message string, details ...string) *AppError {
	return New(ErrorTypeInternal, message, details...)
}

// GetAppError finds the first AppError in err's chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// TypeOf reports the kind of err, or "" when err carries no AppError.
func TypeOf(err error) ErrorType {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Type
	}
	return ""
}

func IsNotFoundError(err error) bool     { return TypeOf(err) == ErrorTypeNotFound }
func IsValidationError(err error) bool   { return TypeOf(err) == ErrorTypeValidation }
func IsForbiddenError(err error) bool    { return TypeOf(err) == ErrorTypeForbidden }
func IsUnauthorizedError(err error) bool { return TypeOf(err) == ErrorTypeUnauthorized }
func IsInternalError(err error) bool     { return TypeOf(err) == ErrorTypeInternal }
