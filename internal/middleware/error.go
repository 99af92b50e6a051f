package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

// ErrorHandler writes the last handler error in the error envelope. Responses
// already written by an inner middleware are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		requestID := c.GetString(ContextRequestID)
		lastErr := c.Errors.Last()

		status := http.StatusInternalServerError
		message := "Internal server error"
		if appErr, ok := errors.As(lastErr.Err); ok {
			status = appErr.StatusCode()
			if status != http.StatusInternalServerError {
				message = appErr.Message
			}
		} else if lastErr.IsType(gin.ErrorTypeBind) {
			status = http.StatusBadRequest
			message = "Invalid request body"
		}

		event := log.Debug()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(lastErr.Err).
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request error")

		c.JSON(status, httputil.NewErrorResponse(message))
	}
}
