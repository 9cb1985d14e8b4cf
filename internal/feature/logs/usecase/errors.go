// Package usecase implements the log query service.
package usecase

import "errors"

var (
	// ErrUnknownCategory is returned when the requested log type is not one of
	// combined, error or access.
	ErrUnknownCategory = errors.New("unknown log type")

	// ErrLogNotFound is returned when the requested category's store has not
	// been written yet and therefore does not exist.
	ErrLogNotFound = errors.New("log file not found")
)
