package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/logs/sink"
)

// AccessLogger appends one entry to the access store per completed request:
// method, path, status, latency, client IP and request ID.
func AccessLogger(logs *sink.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logs.Access(c.Request.Method+" "+c.Request.URL.Path, map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"ip":         c.ClientIP(),
			"request_id": c.GetString(ContextRequestID),
		})
	}
}
