package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-PetHotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID   int64   `json:"roomId"`
	CheckIn  string  `json:"checkIn"`  // "2025-02-20"
	CheckOut string  `json:"checkOut"` // "2025-02-23"
	PetIDs   []int64 `json:"petIds"`
	Notes    *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`

	// NeedsReview заявка не подтвердилась автоматически и ждёт администратора
	NeedsReview bool `json:"needsReview"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID int64) (*createBooking.Request, error) {
	checkIn, err := types.ParseDate(r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := types.ParseDate(r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	return &createBooking.Request{
		OwnerID:  ownerID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		PetIDs:   r.PetIDs,
		Notes:    r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:     models.FromDomainBooking(resp.Booking),
		NeedsReview: resp.NeedsReview,
	}
}
