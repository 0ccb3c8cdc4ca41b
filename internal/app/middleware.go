package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todoback/internal/apperr"
	"todoback/internal/resp"
)

// ErrorTranslator turns errors recorded on the context into the canonical
// error envelope. Anything that is not an *apperr.Error is treated as an
// unexpected internal failure: generic message out, full detail to the log.
func ErrorTranslator(log zerolog.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		var e *apperr.Error
		if !errors.As(c.Errors.Last().Err, &e) {
			e = apperr.Internal(c.Errors.Last().Err)
		}

		ev := log.Warn()
		if e.Status >= http.StatusInternalServerError {
			ev = log.Error().Str("stack", e.Stack)
		}
		ev.Err(e).
			Int("status", e.Status).
			Str("code", e.Code).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")

		if c.Writer.Written() {
			return
		}
		resp.WriteError(c, e, !production)
	}
}

// Recovery converts panics into internal errors for the translator.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				_ = c.Error(apperr.Internal(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// BodyLimit caps request body size; oversized bodies fail JSON binding with
// a 400 instead of exhausting memory.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
