package domain

import (
	"errors"
	"fmt"
)

// Errors raised before any remote call is issued.
var (
	// ErrDuplicateTeamSlot is returned when a match draft names the same
	// team for both slots.
	ErrDuplicateTeamSlot = errors.New("home and away teams must differ")
	// ErrEmptyQuery is returned when a tournament search string is blank.
	ErrEmptyQuery = errors.New("search query must not be empty")
	// ErrEmptyRange is returned when a date-range search has neither bound.
	ErrEmptyRange = errors.New("date range requires at least one bound")
)

// MissingFieldError reports a draft field that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidValueError reports a draft field that was supplied but out of range.
type InvalidValueError struct {
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %s", e.Field, e.Reason)
}

// RemoteOpError wraps a failure reported by the remote collaborator. The
// operation already validated locally; the collaborator's message is kept so
// it can be surfaced to the user.
type RemoteOpError struct {
	Op     string // "create", "update", "delete"
	Entity string // "arena", "team", "player", "match"
	Err    error
}

func (e *RemoteOpError) Error() string {
	return fmt.Sprintf("remote %s of %s failed: %v", e.Op, e.Entity, e.Err)
}

func (e *RemoteOpError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was raised by local draft validation
// and therefore never reached the collaborator.
func IsValidationError(err error) bool {
	var missing *MissingFieldError
	var invalid *InvalidValueError
	return errors.Is(err, ErrDuplicateTeamSlot) ||
		errors.As(err, &missing) ||
		errors.As(err, &invalid)
}
