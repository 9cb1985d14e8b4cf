// Package jwtmw provides signed-token issuance and verification plus the gin
// middleware that gates protected routes on those tokens.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned by Verify when the token's expiry has passed.
	ErrTokenExpired = errors.New("authentication token expired")

	// ErrTokenInvalid is returned by Verify when the signature check fails or
	// the token is structurally malformed.
	ErrTokenInvalid = errors.New("invalid authentication token")
)

// Claims is the payload carried by every issued token.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bounded identity tokens.
type TokenService interface {
	// Issue creates a signed token for the given identity.
	Issue(userID uint, email, role string) (string, error)
	// Verify checks signature and expiry and returns the decoded claims.
	// It is pure and performs no I/O.
	Verify(tokenString string) (*Claims, error)
}

// tokenService implements TokenService with HS256 and a process-wide secret.
type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the provided secret and token
// lifetime. A non-positive ttl defaults to one hour.
func NewTokenService(secret string, ttl time.Duration) TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token carrying id, email and role with iat/exp set.
func (s *tokenService) Issue(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, distinguishing expiry from every
// other failure mode.
func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		// Only HMAC is accepted; rejects alg=none and key-confusion attempts.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
