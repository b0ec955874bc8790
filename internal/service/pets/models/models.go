package models

import (
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

// RegisterPetRequest запрос на регистрацию питомца
type RegisterPetRequest struct {
	OwnerID int64   `json:"ownerId"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed,omitempty"`
	Weight  float64 `json:"weight"`         // кг
	Size    *string `json:"size,omitempty"` // small | medium, если не указан - по весу
	Notes   *string `json:"notes,omitempty"`
}

// PetResponse ответ с данными питомца
type PetResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed,omitempty"`
	Weight    float64   `json:"weight"`
	Size      string    `json:"size"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PetListResponse ответ со списком питомцев
type PetListResponse struct {
	Pets []PetResponse `json:"pets"`
}

// FromDomainPet конвертирует domain модель в DTO
func FromDomainPet(p *domain.Pet) *PetResponse {
	if p == nil {
		return nil
	}
	size, _ := p.SizeClass()
	return &PetResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Weight:    p.Weight,
		Size:      string(size),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// FromDomainPetList конвертирует список domain моделей в DTO
func FromDomainPetList(pets []domain.Pet) *PetListResponse {
	resp := &PetListResponse{Pets: make([]PetResponse, 0, len(pets))}
	for i := range pets {
		resp.Pets = append(resp.Pets, *FromDomainPet(&pets[i]))
	}
	return resp
}
