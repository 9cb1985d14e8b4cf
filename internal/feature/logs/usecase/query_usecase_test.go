package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"auth_backend/internal/feature/logs/sink"
)

// mockLogRepository is a mock implementation of the LogRepository interface.
type mockLogRepository struct {
	ReadAllFunc func(ctx context.Context, category sink.Category) ([]byte, error)
}

func (m *mockLogRepository) ReadAll(ctx context.Context, category sink.Category) ([]byte, error) {
	if m.ReadAllFunc != nil {
		return m.ReadAllFunc(ctx, category)
	}
	return nil, ErrLogNotFound
}

// entryLines serializes n entries as the sink would, oldest first.
func entryLines(n int) []byte {
	var b strings.Builder
	for i := 0; i < n; i++ {
		line, _ := json.Marshal(map[string]any{"level": "info", "message": fmt.Sprintf("entry-%d", i)})
		b.Write(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func TestLogQuery_NewestFirst(t *testing.T) {
	repo := &mockLogRepository{
		ReadAllFunc: func(ctx context.Context, category sink.Category) ([]byte, error) {
			return entryLines(5), nil
		},
	}
	uc := NewLogQueryUsecase(repo)

	result, err := uc.Query(context.Background(), "combined", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 5 {
		t.Fatalf("expected 5 entries, got %d", result.Count)
	}
	if result.Logs[0]["message"] != "entry-4" {
		t.Errorf("expected the newest entry first, got %v", result.Logs[0]["message"])
	}
	if result.Logs[4]["message"] != "entry-0" {
		t.Errorf("expected the oldest entry last, got %v", result.Logs[4]["message"])
	}
}

func TestLogQuery_LimitAndClamp(t *testing.T) {
	tests := []struct {
		name          string
		stored        int
		limit         int
		expectedCount int
		expectedFirst string
	}{
		{"zero limit defaults to 100", 150, 0, 100, "entry-149"},
		{"negative limit defaults to 100", 150, -5, 100, "entry-149"},
		{"explicit limit respected", 50, 10, 10, "entry-49"},
		{"limit above maximum is clamped", 1200, 5000, 1000, "entry-1199"},
		{"limit larger than store returns all", 3, 100, 3, "entry-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockLogRepository{
				ReadAllFunc: func(ctx context.Context, category sink.Category) ([]byte, error) {
					return entryLines(tt.stored), nil
				},
			}
			uc := NewLogQueryUsecase(repo)

			result, err := uc.Query(context.Background(), "combined", tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Count != tt.expectedCount {
				t.Errorf("expected %d entries, got %d", tt.expectedCount, result.Count)
			}
			if result.Logs[0]["message"] != tt.expectedFirst {
				t.Errorf("expected first entry %q, got %v", tt.expectedFirst, result.Logs[0]["message"])
			}
		})
	}
}

func TestLogQuery_MalformedLinesFallBackToRawText(t *testing.T) {
	raw := `{"level":"info","message":"good"}
this line is not json
{"level":"error","message":"also good"}

`
	repo := &mockLogRepository{
		ReadAllFunc: func(ctx context.Context, category sink.Category) ([]byte, error) {
			return []byte(raw), nil
		},
	}
	uc := NewLogQueryUsecase(repo)

	result, err := uc.Query(context.Background(), "combined", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 3 {
		t.Fatalf("expected 3 entries (blank lines dropped), got %d", result.Count)
	}
	// Newest first: the malformed line sits in the middle.
	if result.Logs[1]["message"] != "this line is not json" {
		t.Errorf("expected raw-text fallback, got %v", result.Logs[1])
	}
}

func TestLogQuery_CategoryResolution(t *testing.T) {
	var requested sink.Category
	repo := &mockLogRepository{
		ReadAllFunc: func(ctx context.Context, category sink.Category) ([]byte, error) {
			requested = category
			return entryLines(1), nil
		},
	}
	uc := NewLogQueryUsecase(repo)

	tests := []struct {
		logType  string
		expected sink.Category
	}{
		{"", sink.CategoryCombined},
		{"combined", sink.CategoryCombined},
		{"error", sink.CategoryError},
		{"access", sink.CategoryAccess},
	}
	for _, tt := range tests {
		t.Run("type="+tt.logType, func(t *testing.T) {
			if _, err := uc.Query(context.Background(), tt.logType, 0); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if requested != tt.expected {
				t.Errorf("expected category %q, got %q", tt.expected, requested)
			}
		})
	}
}

func TestLogQuery_UnknownCategory(t *testing.T) {
	repo := &mockLogRepository{
		ReadAllFunc: func(ctx context.Context, category sink.Category) ([]byte, error) {
			t.Error("repository must not be consulted for an unknown type")
			return nil, nil
		},
	}
	uc := NewLogQueryUsecase(repo)

	if _, err := uc.Query(context.Background(), "bogus", 0); err != ErrUnknownCategory {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLogQuery_MissingStore(t *testing.T) {
	uc := NewLogQueryUsecase(&mockLogRepository{})

	if _, err := uc.Query(context.Background(), "access", 0); err != ErrLogNotFound {
		t.Errorf("expected ErrLogNotFound, got %v", err)
	}
}
