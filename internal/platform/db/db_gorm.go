// Package db opens the gorm connection backing the credential store.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
)

// Open connects to postgres when databaseURL is set, falling back to a local
// sqlite file otherwise. Connection attempts are retried for up to a minute so
// the server survives a database that comes up slightly later.
// TranslateError lets adapters detect duplicate keys portably across dialects.
func Open(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if databaseURL != "" {
		dial = postgres.Open(databaseURL)
	} else {
		dial = sqlite.Open(sqlitePath)
	}

	var (
		db  *gorm.DB
		err error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after 60s: %w", err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate creates or updates the schema for the credential store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{})
}

// SeedAdmin creates a bootstrap admin account when the store is empty and
// seed credentials are configured. The password is stored hashed, like any
// other credential.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := &entity.User{
		Name:     "Administrator",
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}
	slog.Info("seeded bootstrap admin user", "email", admin.Email)
	return nil
}
