// Package apierror provides the error response envelopes for the API.
// All errors returned to clients go through this package so the wire shape
// stays consistent and no internal detail (stack traces, SQL state) leaks.
package apierror

// APIError is the canonical `{message}` envelope for 4xx/5xx responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError adds per-field reasons to the envelope for 422 responses.
type ValidationError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func NewValidation(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: msg, Errors: fields}
}
