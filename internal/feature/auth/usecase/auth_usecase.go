package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/domain/entity"
)

// dummyHash is compared against when the user does not exist so that login
// always performs one bcrypt comparison regardless of which check fails.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the credential store.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a user
	// with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given (normalized) email.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenIssuer creates a signed identity token for an authenticated user.
type TokenIssuer interface {
	Issue(userID uint, email, role string) (string, error)
}

// LoginThrottle limits repeated failed logins per key. Implementations must be
// best-effort: an unavailable backend means no throttling, never an error.
type LoginThrottle interface {
	// TooManyFailures reports whether the key has exceeded the failure budget.
	TooManyFailures(ctx context.Context, key string) bool
	// RecordFailure counts one failed attempt for the key.
	RecordFailure(ctx context.Context, key string)
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, key string)
}

// authUsecase implements the login and registration flows.
type authUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	throttle LoginThrottle
}

// NewAuthUsecase creates an authUsecase. throttle may be nil to disable login
// throttling.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, throttle LoginThrottle) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		throttle: throttle,
	}
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with role "user" and a bcrypt-hashed credential.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed token with the user record.
// Unknown email and wrong password are indistinguishable to the caller: both
// return ErrInvalidCredentials after exactly one bcrypt comparison.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = NormalizeEmail(email)

	if u.throttle != nil && u.throttle.TooManyFailures(ctx, email) {
		return "", nil, ErrTooManyAttempts
	}

	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		if u.throttle != nil {
			u.throttle.RecordFailure(ctx, email)
		}
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.ID, user.Email, user.Role)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	if u.throttle != nil {
		u.throttle.Reset(ctx, email)
	}
	return token, user, nil
}
