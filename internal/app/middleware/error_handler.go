package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/logs/sink"
	"auth_backend/internal/shared/apierr"
	"auth_backend/internal/shared/apiview"
)

// genericInternalMessage replaces 500-level messages in production so internal
// details never reach the client.
const genericInternalMessage = "internal server error"

// ErrorHandler is the single terminal point for failures. It recovers panics,
// converts errors attached to the context into an envelope, logs every failure
// to the error store and masks 500 messages in production. No handler writes
// an error response directly.
func ErrorHandler(logs *sink.Sink, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logs.Error(fmt.Sprintf("%s %s - panic: %v", c.Request.Method, c.Request.URL.Path, r), map[string]any{
					"ip":         c.ClientIP(),
					"request_id": c.GetString(ContextRequestID),
					"stack":      string(debug.Stack()),
				})
				msg := genericInternalMessage
				if !production {
					msg = fmt.Sprintf("panic: %v", r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, apiview.Error(msg, nil))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := err.Error()
		var fields map[string]string
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			status = apiErr.Status
			message = apiErr.Message
			fields = apiErr.Fields
		}

		logs.Error(fmt.Sprintf("%s %s - %d - %s", c.Request.Method, c.Request.URL.Path, status, err.Error()), map[string]any{
			"ip":         c.ClientIP(),
			"status":     status,
			"request_id": c.GetString(ContextRequestID),
		})

		if production && status == http.StatusInternalServerError {
			message = genericInternalMessage
		}

		var errs any
		if len(fields) > 0 {
			errs = fields
		}
		c.JSON(status, apiview.Error(message, errs))
	}
}
