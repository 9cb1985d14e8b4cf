// Package handler provides the HTTP handler for the logs feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/logs/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/shared/apierr"
	"auth_backend/internal/shared/apiview"
)

// LogQueryUsecase defines the log query operation consumed by the handler.
type LogQueryUsecase interface {
	Query(ctx context.Context, logType string, limit int) (*usecase.QueryResult, error)
}

// QueryLogger records log consultations through the sink.
type QueryLogger interface {
	Info(message string, meta map[string]any)
}

// LogHandler handles GET /logs. The route is wired admin-only in the router.
type LogHandler struct {
	logs  LogQueryUsecase
	audit QueryLogger
}

// NewLogHandler creates a LogHandler with its dependencies injected.
func NewLogHandler(logs LogQueryUsecase, audit QueryLogger) *LogHandler {
	return &LogHandler{logs: logs, audit: audit}
}

// GetLogs handles GET /logs?type={combined|error|access}&limit=N.
// - 404 when the type is unknown or its store has not been written yet
// - 200 with {logType, count, logs} otherwise, newest entry first
// A non-numeric limit falls back to the default rather than failing.
func (h *LogHandler) GetLogs(c *gin.Context) {
	logType := c.Query("type")
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}

	result, err := h.logs.Query(c.Request.Context(), logType, limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownCategory), errors.Is(err, usecase.ErrLogNotFound):
			_ = c.Error(apierr.NotFound(usecase.ErrLogNotFound.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}

	var actor any = "anonymous"
	if claims, ok := jwtmw.ClaimsFromContext(c); ok {
		actor = claims.UserID
	}
	h.audit.Info("logs queried", map[string]any{
		"type":  result.LogType,
		"limit": limit,
		"user":  actor,
	})

	c.JSON(http.StatusOK, apiview.Success("logs retrieved successfully", gin.H{
		"logType": result.LogType,
		"count":   result.Count,
		"logs":    result.Logs,
	}))
}
