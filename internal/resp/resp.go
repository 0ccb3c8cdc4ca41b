// Package resp writes the uniform response envelope. Every success leaves
// through OK/Created here; every failure leaves through WriteError, either
// directly or via the centralized error translator.
package resp

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todoback/internal/apperr"
)

// SuccessEnvelope wraps every successful payload.
type SuccessEnvelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ErrorBody is the inner object of the error envelope.
type ErrorBody struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Stack      string `json:"stack,omitempty"`
}

// ErrorEnvelope wraps every failure.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, SuccessEnvelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, SuccessEnvelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

// WriteError writes the canonical error envelope for e. The stack is included
// only when includeStack is set (non-production builds).
func WriteError(c *gin.Context, e *apperr.Error, includeStack bool) {
	body := ErrorBody{
		Message:    e.Message,
		Code:       e.Code,
		StatusCode: e.Status,
		Timestamp:  now(),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
	}
	if includeStack {
		body.Stack = e.Stack
	}
	c.JSON(e.Status, ErrorEnvelope{Success: false, Error: body})
}
