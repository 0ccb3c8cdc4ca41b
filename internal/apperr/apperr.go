// Package apperr defines the error taxonomy the HTTP layer translates into
// responses. Handlers attach an *Error to the Gin context; the centralized
// translator middleware turns it into the canonical error envelope.
package apperr

import (
	"net/http"
	"runtime/debug"
)

// Machine-readable error codes carried in the error envelope.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeTimeout         = "REQUEST_TIMEOUT"
	CodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
	CodeDatabase        = "DATABASE_ERROR"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// Error is an HTTP-mappable application error.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
	// Stack is set for internal errors and exposed only outside production.
	Stack string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, CodeValidation, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, CodeForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Timeout(message string) *Error {
	return New(http.StatusRequestTimeout, CodeTimeout, message)
}

func RateLimited(message string) *Error {
	return New(http.StatusTooManyRequests, CodeRateLimited, message)
}

func PayloadTooLarge(message string) *Error {
	return New(http.StatusRequestEntityTooLarge, CodePayloadTooLarge, message)
}

// Internal wraps an unexpected failure. The client sees a generic message;
// the wrapped error and stack go to server-side logs only.
func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
		Stack:   string(debug.Stack()),
	}
}

func Unavailable(message string) *Error {
	return New(http.StatusServiceUnavailable, CodeDatabase, message)
}
