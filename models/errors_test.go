package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{"message wins", ValidationError{Message: "pick a table first", Err: ErrNoTableSelected}, "pick a table first"},
		{"falls back to cause", ValidationError{Err: ErrNoSlotSelected}, "no time slot selected"},
		{"zero value", ValidationError{}, "invalid input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := &ValidationError{Message: "table 5 is occupied", Err: ErrTableUnavailable}
	assert.ErrorIs(t, err, ErrTableUnavailable)
}

func TestReservationConflictErrorVerbatim(t *testing.T) {
	err := &ReservationConflictError{Detail: "Time slot already reserved"}
	assert.Equal(t, "Time slot already reserved", err.Error())
	assert.Equal(t, "time slot already reserved", (&ReservationConflictError{}).Error())
}

func TestNewAvailabilityFetchError(t *testing.T) {
	apiErr := &APIError{Status: 503, Detail: "database unavailable"}
	fetchErr := NewAvailabilityFetchError("list tables", apiErr)
	assert.Equal(t, 503, fetchErr.Status)
	assert.Equal(t, "database unavailable", fetchErr.Detail)
	assert.Equal(t, "list tables failed: database unavailable", fetchErr.Error())

	var unwrapped *APIError
	require.True(t, errors.As(fetchErr, &unwrapped))

	plain := NewAvailabilityFetchError("list tables", errors.New("connection refused"))
	assert.Zero(t, plain.Status)
	assert.Equal(t, "list tables failed: connection refused", plain.Error())
}
