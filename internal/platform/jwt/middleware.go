package jwtmw

import (
	"errors"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/shared/apierr"
)

// ContextClaims is the gin context key holding the authenticated *Claims.
const ContextClaims = "authClaims"

// Verifier validates a token string into claims.
// Following Go convention, the interface is defined by the consumer (middleware),
// not the provider (tokenService).
type Verifier interface {
	Verify(tokenString string) (*Claims, error)
}

// AccessLogger records authenticated and rejected accesses. Satisfied by the
// log sink.
type AccessLogger interface {
	Info(message string, meta map[string]any)
	Warn(message string, meta map[string]any)
}

// ClaimsFromContext returns the claims attached by AuthRequired, if any.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// AuthRequired returns middleware that validates the Authorization bearer
// token, attaches the decoded claims to the request context and logs the
// authenticated access. Failures are routed through the central error handler.
func AuthRequired(verifier Verifier, logs AccessLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			logs.Warn("access attempt without token", map[string]any{"path": c.Request.URL.Path})
			abortWith(c, apierr.Unauthorized("authentication token not provided"))
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			logs.Warn("authentication failed", map[string]any{"path": c.Request.URL.Path, "reason": err.Error()})
			if errors.Is(err, ErrTokenExpired) {
				abortWith(c, apierr.Unauthorized(ErrTokenExpired.Error()))
			} else {
				abortWith(c, apierr.Unauthorized(ErrTokenInvalid.Error()))
			}
			return
		}

		c.Set(ContextClaims, claims)
		logs.Info("authenticated access", map[string]any{
			"user": claims.UserID,
			"path": c.Request.URL.Path,
		})
		c.Next()
	}
}

// RequireRoles returns middleware that restricts a route to the given role set.
// It must run after AuthRequired; being invoked without claims in the context
// signals a wiring bug and fails with 500 rather than a client error.
func RequireRoles(logs AccessLogger, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			abortWith(c, apierr.Internal("server misconfigured: authentication must run before authorization"))
			return
		}

		if !slices.Contains(roles, claims.Role) {
			logs.Warn("unauthorized access attempt", map[string]any{
				"user": claims.UserID,
				"role": claims.Role,
				"path": c.Request.URL.Path,
			})
			abortWith(c, apierr.Forbidden("you do not have permission to access this resource"))
			return
		}
		c.Next()
	}
}

// abortWith hands the failure to the central error handler and stops the chain.
func abortWith(c *gin.Context, err *apierr.Error) {
	_ = c.Error(err)
	c.Abort()
}
