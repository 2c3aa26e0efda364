package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusPaid.IsTerminal())
}

func TestNoTransitionOutOfTerminal(t *testing.T) {
	targets := []BookingStatus{StatusPending, StatusConfirmed, StatusPaid, StatusCancelled, StatusRefunded}

	for _, from := range []BookingStatus{StatusCancelled, StatusRefunded} {
		for _, to := range targets {
			assert.Falsef(t, from.CanTransitionTo(to), "%v -> %v must be rejected", from, to)
		}
	}
}

func TestPendingTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusPaid))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusPending.CanTransitionTo(StatusRefunded))
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("Confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("Archived")
	assert.Error(t, err)

	assert.False(t, BookingStatus("confirmed").IsValid(), "status values are case sensitive")
}
