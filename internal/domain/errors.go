package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the API surfaces to callers.
var (
	// ErrNotFound marks a missing product, vendor, or other referenced entity.
	ErrNotFound = errors.New("not found")

	// ErrOracleUnavailable marks a failed or timed-out oracle call. The run
	// aborts; callers may retry or use the local forecast instead. Never
	// auto-retried and never substituted with fabricated numbers.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrMalformedResponse marks oracle output that does not parse into a
	// valid decision.
	ErrMalformedResponse = errors.New("malformed oracle response")

	// ErrValidation marks an input constraint violation.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientStock marks an outbound movement larger than the
	// stock on hand at write time.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrConflict marks a lost update: the row changed between read and
	// write, so the requested transition no longer applies.
	ErrConflict = errors.New("conflict")
)

// MalformedResponseError carries the raw oracle text for diagnostics.
type MalformedResponseError struct {
	Reason string
	Raw    string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed oracle response: %s", e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// ValidationError describes a rejected input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
