package domain

import "time"

// Pet represents a guest animal registered by an owner
type Pet struct {
	ID      int64
	OwnerID int64
	Name    string
	Species string
	Breed   *string
	Weight  float64
	Size    SizeClass
	Notes   *string

	CreatedAt time.Time
}

// SizeClass returns the capacity pool of the pet.
// The stored class wins; a pet without one is classified by weight.
func (p *Pet) SizeClass() (SizeClass, error) {
	if p.Size.IsValid() {
		return p.Size, nil
	}
	return Classify(p.Weight)
}
