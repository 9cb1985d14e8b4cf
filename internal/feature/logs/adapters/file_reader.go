// Package adapters provides the file-backed log repository for the logs feature.
package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"auth_backend/internal/feature/logs/sink"
	"auth_backend/internal/feature/logs/usecase"
)

// logFileReader reads category stores from the sink's directory. Each read is
// an independent file read, so a slow query never stalls concurrent appends
// beyond the sink's own per-append lock.
type logFileReader struct {
	dir string
}

var _ usecase.LogRepository = (*logFileReader)(nil)

// NewLogFileReader creates a reader over the given log directory.
func NewLogFileReader(dir string) *logFileReader {
	return &logFileReader{dir: dir}
}

// ReadAll returns the full content of the category's store.
func (r *logFileReader) ReadAll(ctx context.Context, category sink.Category) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(r.dir, sink.Filename(category)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, usecase.ErrLogNotFound
		}
		return nil, err
	}
	return b, nil
}
