package models

import (
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

// CreateRoomRequest запрос на заведение номера
type CreateRoomRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	NightlyPrice   float64 `json:"nightlyPrice"`
	SmallCapacity  int     `json:"smallCapacity"`
	MediumCapacity int     `json:"mediumCapacity"`
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	NightlyPrice   float64   `json:"nightlyPrice"`
	SmallCapacity  int       `json:"smallCapacity"`
	MediumCapacity int       `json:"mediumCapacity"`
	TotalCapacity  int       `json:"totalCapacity"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		NightlyPrice:   r.NightlyPrice,
		SmallCapacity:  r.SmallCapacity,
		MediumCapacity: r.MediumCapacity,
		TotalCapacity:  r.TotalCapacity(),
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		if r := FromDomainRoom(room); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}
	return resp
}
