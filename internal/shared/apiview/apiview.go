// Package apiview provides the uniform response envelope used by every endpoint.
package apiview

// Response is the envelope wrapping every API reply.
// Exactly one of Data/Errors is populated depending on Success.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success wraps a successful result. Pure formatting, no side effects.
func Success(message string, data any) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Error wraps a failure. errs carries optional per-field details and may be nil.
func Error(message string, errs any) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}
