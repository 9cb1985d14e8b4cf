// Package sink implements the append-only, categorized log store.
// Every component logs through a single injected *Sink instance whose
// lifecycle spans process start to shutdown.
package sink

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level is the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Category names one of the fixed log partitions, each backed by its own file.
type Category string

const (
	CategoryCombined Category = "combined"
	CategoryError    Category = "error"
	CategoryAccess   Category = "access"
)

// ParseCategory resolves a query-string log type to a Category.
// An empty value defaults to combined; unknown values are rejected rather than
// silently mapped onto combined.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "":
		return CategoryCombined, true
	case string(CategoryCombined):
		return CategoryCombined, true
	case string(CategoryError):
		return CategoryError, true
	case string(CategoryAccess):
		return CategoryAccess, true
	}
	return "", false
}

// Filename returns the file name backing a category.
func Filename(c Category) string {
	return string(c) + ".log"
}

// Entry is one immutable log record, serialized as a single JSON line.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// logFile guards one category file. Appends hold the mutex for a single Write
// call only, so one entry is never interleaved with another.
type logFile struct {
	mu sync.Mutex
	f  *os.File
}

// Sink writes categorized JSON-line log entries under a directory.
// Files are created lazily on first append, so a category store that has never
// been written to does not exist on disk.
type Sink struct {
	dir   string
	files map[Category]*logFile
}

// New creates a Sink rooted at dir, creating the directory if needed.
func New(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Sink{
		dir: dir,
		files: map[Category]*logFile{
			CategoryCombined: {},
			CategoryError:    {},
			CategoryAccess:   {},
		},
	}, nil
}

// Dir returns the directory holding the category files.
func (s *Sink) Dir() string { return s.dir }

// Write appends one entry to the category's store. Every entry is fanned into
// combined, and error-level entries are fanned into the error store as well.
// Failures are swallowed: a broken log store must never abort a request.
func (s *Sink) Write(category Category, level Level, message string, meta map[string]any) {
	e := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Meta:      meta,
	}
	line, err := json.Marshal(e)
	if err != nil {
		slog.Warn("log entry not serializable, dropping", "error", err)
		return
	}
	line = append(line, '\n')

	s.append(category, line)
	if category != CategoryCombined {
		s.append(CategoryCombined, line)
	}
	if level == LevelError && category != CategoryError {
		s.append(CategoryError, line)
	}
}

// Info writes an info entry to the combined store.
func (s *Sink) Info(message string, meta map[string]any) {
	s.Write(CategoryCombined, LevelInfo, message, meta)
}

// Warn writes a warn entry to the combined store.
func (s *Sink) Warn(message string, meta map[string]any) {
	s.Write(CategoryCombined, LevelWarn, message, meta)
}

// Error writes an error entry to the error store (and, by fan-in, to combined).
func (s *Sink) Error(message string, meta map[string]any) {
	s.Write(CategoryError, LevelError, message, meta)
}

// Access records one completed request in the access store.
func (s *Sink) Access(message string, meta map[string]any) {
	s.Write(CategoryAccess, LevelInfo, message, meta)
}

// append writes one serialized line to a category file as a single atomic
// operation. The file is opened in append mode on first use.
func (s *Sink) append(c Category, line []byte) {
	lf, ok := s.files[c]
	if !ok {
		return
	}
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.f == nil {
		f, err := os.OpenFile(filepath.Join(s.dir, Filename(c)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Warn("log store unavailable, dropping entry", "category", string(c), "error", err)
			return
		}
		lf.f = f
	}
	if _, err := lf.f.Write(line); err != nil {
		slog.Warn("log append failed, dropping entry", "category", string(c), "error", err)
	}
}

// Close flushes and closes all open category files. Called on shutdown.
func (s *Sink) Close() error {
	var firstErr error
	for _, lf := range s.files {
		lf.mu.Lock()
		if lf.f != nil {
			if err := lf.f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
			lf.f = nil
		}
		lf.mu.Unlock()
	}
	return firstErr
}
