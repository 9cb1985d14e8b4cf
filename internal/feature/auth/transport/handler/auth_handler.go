// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/shared/apierr"
	"auth_backend/internal/shared/apiview"
)

// AuthUsecase defines the authentication operations consumed by the handler.
type AuthUsecase interface {
	// Register creates a new user with the given name, email and password.
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login authenticates a user and returns a token plus the user record.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// EventLogger records auth events through the log sink.
type EventLogger interface {
	Info(message string, meta map[string]any)
	Warn(message string, meta map[string]any)
}

// AuthHandler handles the /auth endpoints. Terminal success responses go
// through the envelope; failures are attached to the context for the central
// error handler.
type AuthHandler struct {
	auth AuthUsecase
	logs EventLogger
}

// NewAuthHandler creates an AuthHandler with its dependencies injected.
func NewAuthHandler(auth AuthUsecase, logs EventLogger) *AuthHandler {
	return &AuthHandler{auth: auth, logs: logs}
}

// Login handles POST /auth/login.
// - 400 when fields are missing or malformed
// - 401 on invalid credentials (identical for unknown email and wrong password)
// - 429 when throttled
// - 200 with {token, user} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logs.Warn("login attempt with incomplete fields", map[string]any{"ip": c.ClientIP()})
		_ = c.Error(apierr.Validation("email and password are required", nil).WithCause(err))
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			h.logs.Warn("failed login attempt", map[string]any{"email": req.Email, "ip": c.ClientIP()})
			_ = c.Error(apierr.Unauthorized(usecase.ErrInvalidCredentials.Error()))
		case errors.Is(err, usecase.ErrTooManyAttempts):
			h.logs.Warn("login throttled", map[string]any{"email": req.Email, "ip": c.ClientIP()})
			_ = c.Error(apierr.TooManyRequests(usecase.ErrTooManyAttempts.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}

	h.logs.Info("login successful", map[string]any{"user": user.ID, "email": user.Email})
	c.JSON(http.StatusOK, apiview.Success("login successful", gin.H{
		"token": token,
		"user":  dto.NewUserResponse(user),
	}))
}

// Register handles POST /auth/register.
// - 400 when fields are missing or malformed
// - 409 when the email is already registered
// - 201 with the created user (without the credential hash) on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierr.Validation(usecase.ErrMissingFields.Error(), nil).WithCause(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			_ = c.Error(apierr.Validation(usecase.ErrMissingFields.Error(), nil))
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			h.logs.Warn("registration with existing email", map[string]any{"email": req.Email, "ip": c.ClientIP()})
			_ = c.Error(apierr.Conflict(usecase.ErrEmailAlreadyExists.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}

	h.logs.Info("user registered", map[string]any{"user": user.ID, "email": user.Email})
	c.JSON(http.StatusCreated, apiview.Success("user registered successfully", gin.H{
		"user": dto.NewUserResponse(user),
	}))
}
