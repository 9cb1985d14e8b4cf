// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with
	// an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password produce this same error so that the response never leaks
	// which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when a required registration field is empty.
	ErrMissingFields = errors.New("name, email and password are required")

	// ErrTooManyAttempts is returned when login is throttled after repeated
	// failures for the same email.
	ErrTooManyAttempts = errors.New("too many failed login attempts, try again later")
)
