package adapters

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"auth_backend/internal/feature/auth/usecase"
)

func TestUserMemory_CreateAndFindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemory()

	u := testUser("ana@x.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected first ID to be 1, got %d", u.ID)
	}

	found, err := repo.FindByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("unexpected find error: %v", err)
	}
	if found.Email != "ana@x.com" {
		t.Errorf("unexpected user: %+v", found)
	}

	if _, err := repo.FindByEmail(ctx, "missing@x.com"); !errors.Is(err, usecase.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserMemory_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemory()

	if err := repo.Create(ctx, testUser("dup@x.com")); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if err := repo.Create(ctx, testUser("dup@x.com")); !errors.Is(err, usecase.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

// Concurrent registrations with distinct emails must all succeed with unique IDs.
func TestUserMemory_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemory()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Create(ctx, testUser(fmt.Sprintf("user%d@x.com", i))); err != nil {
				t.Errorf("unexpected create error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[uint]bool)
	for i := 0; i < n; i++ {
		u, err := repo.FindByEmail(ctx, fmt.Sprintf("user%d@x.com", i))
		if err != nil {
			t.Fatalf("unexpected find error: %v", err)
		}
		if seen[u.ID] {
			t.Errorf("duplicate ID assigned: %d", u.ID)
		}
		seen[u.ID] = true
	}
}
