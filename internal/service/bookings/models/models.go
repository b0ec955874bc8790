package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на смену статуса администратором
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований владельца
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAdminBookingsRequest запрос администратора с фильтрами
type GetAdminBookingsRequest struct {
	UserID int64       `json:"userId"`
	RoomID *int64      `json:"roomId,omitempty"` // Фильтр по номеру (опционально)
	From   *types.Date `json:"from,omitempty"`   // Начало периода, ночи включительно (опционально)
	To     *types.Date `json:"to,omitempty"`     // Конец периода, ночи включительно (опционально)
	Status []string    `json:"status,omitempty"` // Фильтр по статусам (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAdminBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		RoomID: r.RoomID,
		From:   r.From,
		To:     r.To,
	}

	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return filter, fmt.Errorf("period %s..%s is reversed", r.From, r.To)
	}

	statuses, err := ToDomainBookingStatuses(r.Status)
	if err != nil {
		return filter, err
	}
	filter.Statuses = statuses

	return filter, nil
}

// Response модели

// PetSummary питомец в составе бронирования
type PetSummary struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Weight  float64 `json:"weight"`
	Size    string  `json:"size"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64        `json:"id"`
	OwnerID    int64        `json:"ownerId"`
	RoomID     int64        `json:"roomId"`
	CheckIn    string       `json:"checkIn"`  // "2025-02-20"
	CheckOut   string       `json:"checkOut"` // "2025-02-23", ночь выезда не занята
	Nights     int          `json:"nights"`
	Status     string       `json:"status"`
	TotalPrice float64      `json:"totalPrice"`
	Notes      *string      `json:"notes,omitempty"`
	Pets       []PetSummary `json:"pets"`

	NextStatuses []string `json:"nextStatuses"`

	CheckedInAt  *string `json:"checkedInAt,omitempty"`  // ISO 8601 format
	CheckedOutAt *string `json:"checkedOutAt,omitempty"` // ISO 8601 format
	CancelledAt  *string `json:"cancelledAt,omitempty"`  // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		RoomID:       b.RoomID,
		CheckIn:      b.CheckIn.String(),
		CheckOut:     b.CheckOut.String(),
		Nights:       b.NightCount(),
		Status:       string(b.Status),
		TotalPrice:   b.TotalPrice,
		Notes:        b.Notes,
		Pets:         make([]PetSummary, 0, len(b.Pets)),
		NextStatuses: make([]string, 0, 2),
		CheckedInAt:  formatTime(b.CheckedInAt),
		CheckedOutAt: formatTime(b.CheckedOutAt),
		CancelledAt:  formatTime(b.CancelledAt),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	for _, p := range b.Pets {
		size, _ := p.SizeClass()
		resp.Pets = append(resp.Pets, PetSummary{
			ID:      p.ID,
			Name:    p.Name,
			Species: p.Species,
			Weight:  p.Weight,
			Size:    string(size),
		})
	}

	for _, next := range b.Status.NextStatuses() {
		resp.NextStatuses = append(resp.NextStatuses, string(next))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatuses конвертирует строки в статусы с валидацией.
// Одна строка может содержать несколько статусов через запятую.
func ToDomainBookingStatuses(raw []string) ([]domain.BookingStatus, error) {
	statuses := make([]domain.BookingStatus, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			status, err := domain.ParseBookingStatus(part)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
