// Package handler provides the HTTP handler for the health feature.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/health/metrics"
	"auth_backend/internal/shared/apiview"
)

// Collector supplies health metric snapshots. The interface is defined here,
// by the consumer; metrics provides the runtime-backed implementation.
type Collector interface {
	Snapshot() metrics.Snapshot
	StartTime() time.Time
}

// CheckLogger records health checks through the sink.
type CheckLogger interface {
	Info(message string, meta map[string]any)
}

// HealthHandler handles the unauthenticated GET /health endpoint.
type HealthHandler struct {
	collector Collector
	logs      CheckLogger
}

// NewHealthHandler creates a HealthHandler with its dependencies injected.
func NewHealthHandler(collector Collector, logs CheckLogger) *HealthHandler {
	return &HealthHandler{collector: collector, logs: logs}
}

// Check returns service status plus process and system metrics.
func (h *HealthHandler) Check(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	h.logs.Info("health check performed", map[string]any{"ip": c.ClientIP()})

	c.JSON(http.StatusOK, apiview.Success("service is running normally", gin.H{
		"status":          "OK",
		"timestamp":       time.Now(),
		"serverStartTime": h.collector.StartTime(),
		"metrics":         h.collector.Snapshot(),
	}))
}
