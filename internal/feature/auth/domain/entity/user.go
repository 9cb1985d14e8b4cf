// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles assignable to a user. The role check is a flat set-membership test;
// there is no role hierarchy.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted.
	Password string `gorm:"size:255;not null"`

	// Role is either RoleAdmin or RoleUser.
	Role string `gorm:"size:32;not null;default:user"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
