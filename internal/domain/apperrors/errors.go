package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors let the transport layer map internal failures to status
// codes without string matching.
var (
	ErrUnauthorized = errors.New("invalid or missing API Key")
	ErrNotFound     = errors.New("record not found")
	ErrStorage      = errors.New("storage operation failed")
)

// FieldError reports a malformed or missing request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// NewFieldError builds a validation failure for one field.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// NotFound wraps ErrNotFound with the identity that failed to resolve.
func NotFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}

// Storage wraps a driver error so callers can test errors.Is(err, ErrStorage)
// while the original cause stays in the chain for logging.
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorage, err)
}
