package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/pkg/ptr"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

func date(s string) types.Date {
	return types.MustParseDate(s)
}

func TestValidateStay(t *testing.T) {
	assert.NoError(t, ValidateStay(date("2025-02-20"), date("2025-02-21"), 1))

	assert.ErrorIs(t, ValidateStay(date("2025-02-20"), date("2025-02-20"), 1), ErrInvalidStay)
	assert.ErrorIs(t, ValidateStay(date("2025-02-21"), date("2025-02-20"), 1), ErrInvalidStay)
	assert.ErrorIs(t, ValidateStay(date("2025-02-20"), date("2025-02-22"), 0), ErrInvalidStay)
	assert.ErrorIs(t, ValidateStay(types.Date{}, date("2025-02-22"), 1), ErrInvalidStay)
}

func TestBooking_Nights(t *testing.T) {
	b := &Booking{CheckIn: date("2025-02-20"), CheckOut: date("2025-02-23")}

	assert.Equal(t, 3, b.NightCount())
	assert.Len(t, b.Nights(), 3)
	assert.Equal(t, date("2025-02-22"), b.LastNight())
	assert.True(t, b.OccupiesNight(date("2025-02-20")))
	assert.True(t, b.OccupiesNight(date("2025-02-22")))
	assert.False(t, b.OccupiesNight(date("2025-02-23")))
	assert.False(t, b.OccupiesNight(date("2025-02-19")))
}

func TestBooking_OverlapsWindow(t *testing.T) {
	b := &Booking{CheckIn: date("2025-02-20"), CheckOut: date("2025-02-23")}

	assert.True(t, b.OverlapsWindow(date("2025-02-22"), date("2025-02-28")))
	assert.True(t, b.OverlapsWindow(date("2025-02-01"), date("2025-02-20")))
	// день выезда не занят
	assert.False(t, b.OverlapsWindow(date("2025-02-23"), date("2025-02-28")))
	assert.False(t, b.OverlapsWindow(date("2025-02-01"), date("2025-02-19")))
}

func TestBooking_SizeCounts(t *testing.T) {
	b := &Booking{
		ID: 1,
		Pets: []Pet{
			{ID: 1, Weight: 3},
			{ID: 2, Weight: 6, Size: SizeSmall},
			{ID: 3, Weight: 11},
		},
	}

	counts, err := b.SizeCounts()
	require.NoError(t, err)
	assert.Equal(t, SizeCounts{Small: 2, Medium: 1}, counts)
	assert.Equal(t, 3, counts.Total())
	assert.Equal(t, []int64{1, 2, 3}, b.PetIDs())

	b.Pets = append(b.Pets, Pet{ID: 4, Weight: 30})
	_, err = b.SizeCounts()
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestBookingFilter_Matches(t *testing.T) {
	b := &Booking{
		ID:       7,
		OwnerID:  1,
		RoomID:   2,
		CheckIn:  date("2025-02-20"),
		CheckOut: date("2025-02-23"),
		Status:   StatusConfirmed,
	}

	assert.True(t, BookingFilter{}.Matches(b))
	assert.True(t, BookingFilter{RoomID: ptr.Of(int64(2)), From: ptr.Of(date("2025-02-22")), To: ptr.Of(date("2025-02-22"))}.Matches(b))
	assert.False(t, BookingFilter{From: ptr.Of(date("2025-02-23"))}.Matches(b))
	assert.False(t, BookingFilter{To: ptr.Of(date("2025-02-19"))}.Matches(b))
	assert.False(t, BookingFilter{OwnerID: ptr.Of(int64(5))}.Matches(b))
	assert.False(t, BookingFilter{ExcludeBookingID: ptr.Of(int64(7))}.Matches(b))
	assert.False(t, BookingFilter{Statuses: []BookingStatus{StatusPending}}.Matches(b))
	assert.False(t, BookingFilter{ExcludeStatuses: []BookingStatus{StatusConfirmed}}.Matches(b))
}

func TestRoom_StayPrice(t *testing.T) {
	room := &Room{NightlyPrice: 1500}

	assert.Equal(t, 9000.0, room.StayPrice(3, 2))
	assert.Equal(t, 1500.0, room.StayPrice(1, 0))
	assert.Equal(t, 0.0, room.StayPrice(0, 2))
}

func TestNewCapacityRow(t *testing.T) {
	room := &Room{SmallCapacity: 3, MediumCapacity: 2}

	row := NewCapacityRow(date("2025-02-20"), room, SizeCounts{Small: 3, Medium: 1})
	assert.Equal(t, 0, row.SmallRemaining)
	assert.Equal(t, 1, row.MediumRemaining)
	assert.Equal(t, 1, row.TotalRemaining)
	assert.True(t, row.Available)
	assert.InDelta(t, 80.0, row.OccupancyRate(), 0.001)

	full := NewCapacityRow(date("2025-02-20"), room, SizeCounts{Small: 4, Medium: 2})
	assert.Equal(t, -1, full.SmallRemaining)
	assert.False(t, full.Available)
}

func TestValidatePetIDs(t *testing.T) {
	assert.NoError(t, ValidatePetIDs([]int64{1, 2, 3}))
	assert.ErrorIs(t, ValidatePetIDs([]int64{1, 2, 1}), ErrInvalidPetIDs)
	assert.ErrorIs(t, ValidatePetIDs([]int64{0}), ErrInvalidPetIDs)
	assert.ErrorIs(t, ValidatePetIDs([]int64{-4}), ErrInvalidPetIDs)
}
