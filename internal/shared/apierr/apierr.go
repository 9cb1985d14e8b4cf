// Package apierr defines the typed errors that the central error handler maps
// to HTTP responses. Any error reaching the handler without a type resolves to 500.
package apierr

import "net/http"

// Error is a failure with a known HTTP status and user-facing message.
// Fields holds optional per-field validation details.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// WithCause attaches the underlying error without changing the client-visible message.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// Validation reports bad or missing input (400).
func Validation(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// Unauthorized reports a missing, invalid or expired credential (401).
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden reports a role mismatch (403).
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports a missing resource (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a uniqueness violation such as a duplicate email (409).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// TooManyRequests reports a throttled operation (429).
func TooManyRequests(message string) *Error {
	return &Error{Status: http.StatusTooManyRequests, Message: message}
}

// Internal reports a server-side failure (500). The message is masked in
// production by the central error handler.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}
