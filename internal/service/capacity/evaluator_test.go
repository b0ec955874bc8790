package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

func TestRemainingForStay_MinimumAcrossNights(t *testing.T) {
	room := &domain.Room{ID: 1, SmallCapacity: 3, MediumCapacity: 2}
	bookings := []*domain.Booking{
		newBooking(1, 1, "2025-02-21", "2025-02-22", domain.StatusConfirmed, smallPet(1), smallPet(2)),
		newBooking(2, 1, "2025-02-22", "2025-02-23", domain.StatusConfirmed, mediumPet(3)),
	}

	table, err := BuildTable(room, d("2025-02-01"), d("2025-02-28"), bookings, HeldOccupancy)
	require.NoError(t, err)

	remaining, err := RemainingForStay(table, d("2025-02-20"), d("2025-02-23"))
	require.NoError(t, err)
	assert.Equal(t, domain.Remaining{Small: 1, Medium: 1}, remaining)

	// выезд 21-го: считается только ночь 20-го
	remaining, err = RemainingForStay(table, d("2025-02-20"), d("2025-02-21"))
	require.NoError(t, err)
	assert.Equal(t, domain.Remaining{Small: 3, Medium: 2}, remaining)
}

func TestRemainingForStay_MissingRow(t *testing.T) {
	room := &domain.Room{ID: 1, SmallCapacity: 3, MediumCapacity: 2}

	table, err := BuildTable(room, d("2025-02-01"), d("2025-02-28"), nil, HeldOccupancy)
	require.NoError(t, err)

	_, err = RemainingForStay(table, d("2025-02-27"), d("2025-03-02"))
	assert.ErrorIs(t, err, domain.ErrIncompleteData)

	_, err = RemainingForStay(table, d("2025-02-27"), d("2025-02-27"))
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
}

func TestRemainingForStay_NotClamped(t *testing.T) {
	room := &domain.Room{ID: 1, SmallCapacity: 1}
	bookings := []*domain.Booking{
		newBooking(1, 1, "2025-02-20", "2025-02-21", domain.StatusConfirmed, smallPet(1), smallPet(2), smallPet(3)),
	}

	table, err := BuildTable(room, d("2025-02-20"), d("2025-02-20"), bookings, HeldOccupancy)
	require.NoError(t, err)

	remaining, err := RemainingForStay(table, d("2025-02-20"), d("2025-02-21"))
	require.NoError(t, err)
	assert.Equal(t, -2, remaining.Small)
}

func TestCanAdmit(t *testing.T) {
	remaining := domain.Remaining{Small: 1, Medium: 0}

	assert.True(t, CanAdmit(domain.SizeCounts{}, remaining))
	assert.True(t, CanAdmit(domain.SizeCounts{Small: 1}, remaining))
	assert.False(t, CanAdmit(domain.SizeCounts{Small: 2}, remaining))
	assert.False(t, CanAdmit(domain.SizeCounts{Medium: 1}, remaining))
	assert.False(t, CanAdmit(domain.SizeCounts{Small: 1}, domain.Remaining{Small: -1}))
}

func TestCheckStay(t *testing.T) {
	room := &domain.Room{ID: 1, SmallCapacity: 1, MediumCapacity: 1}
	table, err := BuildTable(room, d("2025-02-20"), d("2025-02-22"), nil, CommittedOccupancy)
	require.NoError(t, err)

	_, err = CheckStay(table, d("2025-02-20"), d("2025-02-23"), domain.SizeCounts{Small: 1, Medium: 1})
	assert.NoError(t, err)

	remaining, err := CheckStay(table, d("2025-02-20"), d("2025-02-23"), domain.SizeCounts{Medium: 2})
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 1, remaining.Medium)
}
