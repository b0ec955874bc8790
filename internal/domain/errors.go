package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeight is returned for a non-positive, non-numeric or over-limit weight
	ErrInvalidWeight = errors.New("domain: invalid pet weight")

	// ErrSizeMismatch is returned when a declared size class contradicts the weight
	ErrSizeMismatch = fmt.Errorf("%w: declared size does not match weight", ErrInvalidWeight)

	// ErrInvalidSize is returned for an unknown size class value
	ErrInvalidSize = errors.New("domain: invalid size class")

	// ErrInvalidStay is returned when checkOut is not after checkIn or no pets are requested
	ErrInvalidStay = errors.New("domain: invalid stay")

	// ErrInvalidPetIDs is returned for a non-positive or repeated pet id in a request
	ErrInvalidPetIDs = errors.New("domain: invalid pet ids")

	// ErrIncompleteData is returned when a capacity table has no row for a stay night
	ErrIncompleteData = errors.New("domain: capacity table does not cover the stay")

	// ErrCapacityExceeded is returned when a night of the stay has no room for a requested size class
	ErrCapacityExceeded = errors.New("domain: capacity exceeded")

	// ErrInvalidTransition is returned for a status change outside the transition table
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("domain: invalid booking status")
)
