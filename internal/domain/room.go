package domain

import "time"

// Room represents a lodging unit with independent small and medium pet pools
type Room struct {
	ID             int64
	Name           string
	Description    *string
	NightlyPrice   float64
	SmallCapacity  int
	MediumCapacity int

	CreatedAt time.Time
}

// Capacity returns the nightly pool size for a size class
func (r *Room) Capacity(size SizeClass) int {
	switch size {
	case SizeSmall:
		return r.SmallCapacity
	case SizeMedium:
		return r.MediumCapacity
	default:
		return 0
	}
}

// TotalCapacity returns the number of pets the room can host per night
func (r *Room) TotalCapacity() int {
	return r.SmallCapacity + r.MediumCapacity
}

// Fits returns true if the requested pets fit into an empty room
func (r *Room) Fits(requested SizeCounts) bool {
	return requested.Small <= r.SmallCapacity && requested.Medium <= r.MediumCapacity
}

// StayPrice returns the price of a stay: nightly price per pet, at least one pet charged
func (r *Room) StayPrice(nights, petCount int) float64 {
	if nights <= 0 {
		return 0
	}
	if petCount < 1 {
		petCount = 1
	}
	return r.NightlyPrice * float64(nights) * float64(petCount)
}
