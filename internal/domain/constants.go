package domain

// Pet size thresholds, kilograms
const (
	// SmallMaxWeight is the inclusive upper bound of the small class
	SmallMaxWeight = 7.0

	// HardWeightLimit is the inclusive upper bound of any pet the hotel accepts
	HardWeightLimit = 15.0
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxPetNameLength     = 100
	MaxPetsPerBooking    = 10
	DefaultMaxStayNights = 60
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
