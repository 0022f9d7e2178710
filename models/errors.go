package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoSlotSelected   = errors.New("no time slot selected")
	ErrNoTableSelected  = errors.New("no table selected")
	ErrTableUnavailable = errors.New("table is not available")
	ErrNoReservation    = errors.New("no reservation held")
	ErrTokenExpired     = errors.New("access token has expired")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSnapshotMissing  = errors.New("snapshot entry not found")
)

// APIError is an HTTP-level failure from the canteen API. Detail carries the
// server's own message when one was present in the response body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// AvailabilityFetchError wraps a failed table or reservation listing.
// Callers fall back to an empty list and show Detail to the user; there is
// no retry policy, a new fetch needs an explicit user action.
type AvailabilityFetchError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *AvailabilityFetchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *AvailabilityFetchError) Unwrap() error { return e.Err }

// NewAvailabilityFetchError lifts any client error into the fetch error,
// pulling status and detail out of an underlying APIError when present.
func NewAvailabilityFetchError(op string, err error) *AvailabilityFetchError {
	fe := &AvailabilityFetchError{Op: op, Err: err}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		fe.Status = apiErr.Status
		fe.Detail = apiErr.Detail
	}
	return fe
}

// ReservationConflictError means the server rejected a create because the
// window is no longer free. The client's own overlap check is advisory and
// stale by submission time, so Detail is surfaced to the user verbatim.
type ReservationConflictError struct {
	Detail string
}

func (e *ReservationConflictError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "time slot already reserved"
}

// ValidationError is a user-facing rejection of a state transition, e.g.
// confirming a window with no slot chosen. The state machine stays put.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "invalid input"
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }
