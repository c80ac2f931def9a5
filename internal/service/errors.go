package service

import (
	"errors"
	"fmt"

	"home_relay/internal/models"
)

// ErrNotFound is returned by point lookups when no row exists.
var ErrNotFound = errors.New("not found")

// BadRequestError rejects a report request before any job starts.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

// ValidationError rejects malformed record input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func validateRelay(relay int) error {
	if !models.ValidRelayID(relay) {
		return invalid("relay_id", "must be between %d and %d, got %d", models.MinRelayID, models.MaxRelayID, relay)
	}
	return nil
}
