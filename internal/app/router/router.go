// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/app/config"
	"auth_backend/internal/app/middleware"
	"auth_backend/internal/feature/auth/domain/entity"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	healthhandler "auth_backend/internal/feature/health/transport/handler"
	"auth_backend/internal/feature/logs/sink"
	loghandler "auth_backend/internal/feature/logs/transport/handler"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/shared/apiview"
)

// New builds the gin engine. The middleware order matters: the access logger
// wraps the error handler so it records the final status of failed requests.
func New(cfg config.Config, logs *sink.Sink, verifier jwtmw.Verifier,
	authH *authhandler.AuthHandler, logH *loghandler.LogHandler, healthH *healthhandler.HealthHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.AccessLogger(logs),
		middleware.ErrorHandler(logs, cfg.Production()),
	)

	// Unauthenticated routes
	r.GET("/health", healthH.Check)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)
	}

	// Admin-only: the auth gate must run before the role check.
	logGroup := r.Group("/logs")
	logGroup.Use(
		jwtmw.AuthRequired(verifier, logs),
		jwtmw.RequireRoles(logs, entity.RoleAdmin),
	)
	{
		logGroup.GET("", logH.GetLogs)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apiview.Error("route not found", nil))
	})

	return r
}
