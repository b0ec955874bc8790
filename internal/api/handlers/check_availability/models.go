package check_availability

import (
	"fmt"

	checkAvailability "github.com/m04kA/SMC-PetHotelService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// AvailabilityRequest HTTP request model.
// Питомцы передаются списком petIds либо числом по классам.
type AvailabilityRequest struct {
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	PetIDs   []int64 `json:"petIds,omitempty"`
	Small    int     `json:"small,omitempty"`
	Medium   int     `json:"medium,omitempty"`
}

// SizeCountsResponse число мест по классам
type SizeCountsResponse struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID     int64              `json:"roomId"`
	CheckIn    string             `json:"checkIn"`
	CheckOut   string             `json:"checkOut"`
	Nights     int                `json:"nights"`
	Requested  SizeCountsResponse `json:"requested"`
	Remaining  SizeCountsResponse `json:"remaining"`
	Admissible bool               `json:"admissible"`
	TotalPrice float64            `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest(roomID, ownerID int64) (*checkAvailability.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	return &checkAvailability.Request{
		OwnerID:  ownerID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		PetIDs:   r.PetIDs,
		Small:    r.Small,
		Medium:   r.Medium,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:     resp.RoomID,
		CheckIn:    resp.CheckIn.String(),
		CheckOut:   resp.CheckOut.String(),
		Nights:     resp.Nights,
		Requested:  SizeCountsResponse{Small: resp.Requested.Small, Medium: resp.Requested.Medium},
		Remaining:  SizeCountsResponse{Small: resp.Remaining.Small, Medium: resp.Remaining.Medium},
		Admissible: resp.Admissible,
		TotalPrice: resp.TotalPrice,
	}
}
