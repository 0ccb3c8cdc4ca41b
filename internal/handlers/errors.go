package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"todoback/internal/apperr"
	"todoback/internal/resp"
)

// Error-simulation endpoints. Test scaffolding for the deployment pipeline,
// not product behavior: each one exercises a branch of the error taxonomy
// end to end through the centralized translator.

// ErrorStatus godoc
// @Summary      Show available error-simulation endpoints
// @Tags         errors
// @Produce      json
// @Success      200  {object}  resp.SuccessEnvelope
// @Router       /error/status [get]
func ErrorStatus(c *gin.Context) {
	resp.OK(c, gin.H{
		"message": "Error handling is active",
		"availableErrorEndpoints": []string{
			"GET /error/500 - Triggers a 500 internal server error",
			"GET /error/400 - Triggers a 400 validation error",
			"GET /error/401 - Triggers a 401 unauthorized error",
			"GET /error/403 - Triggers a 403 forbidden error",
			"GET /error/408 - Triggers a 408 timeout error",
			"GET /error/async - Triggers an async error",
			"GET /error/database - Triggers a database error",
			"GET /error/status - Shows this status message",
		},
	}, "")
}

func TriggerError(c *gin.Context) {
	fail(c, apperr.Internal(errors.New("this is a test error endpoint")))
}

func TriggerValidationError(c *gin.Context) {
	fail(c, apperr.Validation("Invalid request parameters"))
}

func TriggerUnauthorizedError(c *gin.Context) {
	fail(c, apperr.Unauthorized("Unauthorized access"))
}

func TriggerForbiddenError(c *gin.Context) {
	fail(c, apperr.Forbidden("Forbidden resource"))
}

// TriggerTimeoutError simulates a long operation that times out.
func TriggerTimeoutError(c *gin.Context) {
	select {
	case <-time.After(100 * time.Millisecond):
		fail(c, apperr.Timeout("Request timeout"))
	case <-c.Request.Context().Done():
	}
}

// TriggerAsyncError surfaces a failure produced off the request goroutine.
func TriggerAsyncError(c *gin.Context) {
	errc := make(chan error, 1)
	go func() {
		time.Sleep(50 * time.Millisecond)
		errc <- errors.New("async operation failed")
	}()
	fail(c, apperr.Internal(<-errc))
}

func TriggerDatabaseError(c *gin.Context) {
	fail(c, apperr.Unavailable("Database connection failed"))
}
