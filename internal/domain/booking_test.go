package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Transitions(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
		StatusConfirmed:           {StatusCompleted, StatusCancelled},
	}
	all := []BookingStatus{StatusPendingConfirmation, StatusConfirmed, StatusCancelled, StatusCompleted, StatusBlocked}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, a := range allowed[from] {
				if a == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusBlocked.IsTerminal())
	assert.False(t, StatusPendingConfirmation.IsTerminal())
}

func TestBooking_Transition(t *testing.T) {
	b := &Booking{Status: StatusPendingConfirmation}

	require.NoError(t, b.Transition(StatusConfirmed))
	assert.Equal(t, StatusConfirmed, b.Status)

	err := b.Transition(StatusPendingConfirmation)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusConfirmed, b.Status)
}

func TestBookingStatus_IsOccupying(t *testing.T) {
	assert.True(t, StatusPendingConfirmation.IsOccupying())
	assert.True(t, StatusConfirmed.IsOccupying())
	assert.True(t, StatusBlocked.IsOccupying())
	assert.False(t, StatusCancelled.IsOccupying())
	assert.False(t, StatusCompleted.IsOccupying())
}

func TestParseBookingStatus(t *testing.T) {
	st, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseBookingStatus("in_progress")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
