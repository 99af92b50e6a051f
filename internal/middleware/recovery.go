package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/pkg/httputil"
)

// Recovery turns a handler panic into a 500 that carries the request id so
// the caller can quote it. http.ErrAbortHandler is re-raised for net/http.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			rid := c.GetString(ContextRequestID)
			requestLogger(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Msg("recovered from panic")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, &httputil.Response{
				Status:  httputil.StatusError,
				Message: "Internal server error",
				Data:    gin.H{"request_id": rid},
			})
		}()
		c.Next()
	}
}
