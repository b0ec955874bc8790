package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
		StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
		StatusCheckedOut: {},
		StatusCancelled:  {},
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := containsStatus(allowed[from], to)
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)

			_, err := Transition(from, to)
			if want {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
		assert.Equal(t, allowed[from], from.NextStatuses(), "next of %s", from)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
}

func TestCapacityGuardedTransitions(t *testing.T) {
	for _, pair := range [][2]BookingStatus{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusCheckedIn},
	} {
		rule, err := Transition(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, rule.CapacityGuard, "%s -> %s", pair[0], pair[1])
	}

	for _, pair := range [][2]BookingStatus{
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusCheckedIn, StatusCheckedOut},
		{StatusCheckedIn, StatusCancelled},
	} {
		rule, err := Transition(pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, rule.CapacityGuard, "%s -> %s", pair[0], pair[1])
	}
}

func TestTransitionRule_Stamps(t *testing.T) {
	now := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

	rule, _ := Transition(StatusConfirmed, StatusCheckedIn)
	ts := rule.Stamps(now)
	require.NotNil(t, ts.CheckedInAt)
	assert.Equal(t, now, *ts.CheckedInAt)
	assert.Nil(t, ts.CheckedOutAt)
	assert.Nil(t, ts.CancelledAt)

	rule, _ = Transition(StatusCheckedIn, StatusCheckedOut)
	ts = rule.Stamps(now)
	assert.NotNil(t, ts.CheckedOutAt)

	rule, _ = Transition(StatusPending, StatusCancelled)
	ts = rule.Stamps(now)
	assert.NotNil(t, ts.CancelledAt)

	rule, _ = Transition(StatusPending, StatusConfirmed)
	assert.Equal(t, StatusTimestamps{}, rule.Stamps(now))
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("Checked_In")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, status)

	_, err = ParseBookingStatus("no_show")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
