package register_pet

import "github.com/m04kA/SMC-PetHotelService/internal/service/pets/models"

// RegisterPetRequest HTTP request model
type RegisterPetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed,omitempty"`
	Weight  float64 `json:"weight"`
	Size    *string `json:"size,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RegisterPetRequest) ToServiceRequest(ownerID int64) *models.RegisterPetRequest {
	return &models.RegisterPetRequest{
		OwnerID: ownerID,
		Name:    r.Name,
		Species: r.Species,
		Breed:   r.Breed,
		Weight:  r.Weight,
		Size:    r.Size,
		Notes:   r.Notes,
	}
}
