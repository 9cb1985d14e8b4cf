package adapters

import (
	"context"
	"sync"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// userMemory is an in-memory implementation of usecase.UserRepository,
// used by tests and database-less runs. The mutex makes email uniqueness
// safe under concurrent registrations.
type userMemory struct {
	mu     sync.Mutex
	byMail map[string]*entity.User
	nextID uint
}

var _ usecase.UserRepository = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory user repository.
func NewUserMemory() *userMemory {
	return &userMemory{
		byMail: make(map[string]*entity.User),
		nextID: 1,
	}
}

// Create stores a user, assigning the next sequential ID.
func (r *userMemory) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byMail[u.Email]; exists {
		return usecase.ErrEmailAlreadyExists
	}
	u.ID = r.nextID
	r.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.byMail[u.Email] = &stored
	return nil
}

// FindByEmail retrieves a user by normalized email.
func (r *userMemory) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byMail[email]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	found := *u
	return &found, nil
}
