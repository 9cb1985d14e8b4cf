package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"auth_backend/internal/feature/logs/sink"
)

const (
	// DefaultLimit is applied when the caller requests no (or a non-positive)
	// number of entries.
	DefaultLimit = 100

	// MaxLimit caps the number of entries a single query may return.
	MaxLimit = 1000
)

// LogRepository reads the full persisted content of a category's store.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type LogRepository interface {
	// ReadAll returns the raw bytes of the category's store, or ErrLogNotFound
	// when it does not exist yet.
	ReadAll(ctx context.Context, category sink.Category) ([]byte, error)
}

// QueryResult is the outcome of a log query: parsed entries, newest first.
type QueryResult struct {
	LogType string
	Count   int
	Logs    []map[string]any
}

// logQueryUsecase implements the log query service.
type logQueryUsecase struct {
	logs LogRepository
}

// NewLogQueryUsecase creates a logQueryUsecase reading from the given repository.
func NewLogQueryUsecase(logs LogRepository) *logQueryUsecase {
	return &logQueryUsecase{logs: logs}
}

// Query reads the requested category and returns up to limit entries, newest
// first. An empty logType defaults to combined; unknown values fail with
// ErrUnknownCategory rather than silently falling back. Malformed lines are
// wrapped as raw-text entries instead of aborting the whole read.
func (u *logQueryUsecase) Query(ctx context.Context, logType string, limit int) (*QueryResult, error) {
	category, ok := sink.ParseCategory(logType)
	if !ok {
		return nil, ErrUnknownCategory
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	raw, err := u.logs.ReadAll(ctx, category)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(raw), "\n")
	entries := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e map[string]any
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			e = map[string]any{"message": line}
		}
		entries = append(entries, e)
	}

	// Keep the most recent entries, then reverse so the newest comes first.
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return &QueryResult{
		LogType: string(category),
		Count:   len(entries),
		Logs:    entries,
	}, nil
}
