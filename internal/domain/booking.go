package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// Booking represents a reservation of a room for one or more pets over a date range.
// The stay occupies the nights [CheckIn, CheckOut); the checkout day is free.
type Booking struct {
	ID         int64
	OwnerID    int64
	RoomID     int64
	CheckIn    types.Date
	CheckOut   types.Date
	Status     BookingStatus
	TotalPrice float64
	Notes      *string

	// Pets are the guests of the stay, loaded together with the booking
	Pets []Pet

	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the dates the booking occupies
func (b *Booking) Nights() []types.Date {
	return types.NightsOf(b.CheckIn, b.CheckOut)
}

// NightCount returns the number of nights of the stay
func (b *Booking) NightCount() int {
	n := types.DaysBetween(b.CheckIn, b.CheckOut)
	if n < 0 {
		return 0
	}
	return n
}

// LastNight returns the last occupied date (the day before checkout)
func (b *Booking) LastNight() types.Date {
	return b.CheckOut.AddDays(-1)
}

// OccupiesNight returns true if the pets stay over the given date
func (b *Booking) OccupiesNight(d types.Date) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}

// OverlapsWindow returns true if any night of the stay falls into the inclusive window [start, end]
func (b *Booking) OverlapsWindow(start, end types.Date) bool {
	return !b.CheckIn.After(end) && b.CheckOut.After(start)
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true while the booking can still change
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// SizeCounts returns how many pets of each size class the booking holds
func (b *Booking) SizeCounts() (SizeCounts, error) {
	counts, err := CountSizes(b.Pets)
	if err != nil {
		return SizeCounts{}, fmt.Errorf("booking id=%d: %w", b.ID, err)
	}
	return counts, nil
}

// PetIDs returns IDs of the booked pets
func (b *Booking) PetIDs() []int64 {
	ids := make([]int64, 0, len(b.Pets))
	for _, p := range b.Pets {
		ids = append(ids, p.ID)
	}
	return ids
}

// ApplyStatus sets the status and the lifecycle timestamps of a transition
func (b *Booking) ApplyStatus(status BookingStatus, ts StatusTimestamps) {
	b.Status = status
	if ts.CheckedInAt != nil {
		b.CheckedInAt = ts.CheckedInAt
	}
	if ts.CheckedOutAt != nil {
		b.CheckedOutAt = ts.CheckedOutAt
	}
	if ts.CancelledAt != nil {
		b.CancelledAt = ts.CancelledAt
	}
}

// ValidateStay checks the stay dates and the number of pets
func ValidateStay(checkIn, checkOut types.Date, petCount int) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidStay)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out %s must be after check-in %s", ErrInvalidStay, checkOut, checkIn)
	}
	if petCount < 1 {
		return fmt.Errorf("%w: at least one pet is required", ErrInvalidStay)
	}
	return nil
}

// ValidatePetIDs checks that pet IDs are positive and not repeated
func ValidatePetIDs(ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: pet id must be positive", ErrInvalidPetIDs)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: pet id=%d listed twice", ErrInvalidPetIDs, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// BookingFilter selects bookings; nil fields do not restrict
type BookingFilter struct {
	OwnerID *int64
	RoomID  *int64

	// From and To form an inclusive window; a booking matches if any of its nights falls inside
	From *types.Date
	To   *types.Date

	Statuses         []BookingStatus
	ExcludeStatuses  []BookingStatus
	ExcludeBookingID *int64

	// ForUpdate locks matched rows when the query runs inside a transaction
	ForUpdate bool
}

// Matches applies the filter to a booking in memory
func (f BookingFilter) Matches(b *Booking) bool {
	if f.OwnerID != nil && b.OwnerID != *f.OwnerID {
		return false
	}
	if f.RoomID != nil && b.RoomID != *f.RoomID {
		return false
	}
	if f.From != nil && !b.CheckOut.After(*f.From) {
		return false
	}
	if f.To != nil && b.CheckIn.After(*f.To) {
		return false
	}
	if f.ExcludeBookingID != nil && b.ID == *f.ExcludeBookingID {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, b.Status) {
		return false
	}
	if containsStatus(f.ExcludeStatuses, b.Status) {
		return false
	}
	return true
}

func containsStatus(list []BookingStatus, s BookingStatus) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
