package app

import (
	"context"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

// RoomStore хранилище номеров (PostgreSQL или память)
type RoomStore interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}

// PetStore хранилище питомцев
type PetStore interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Pet, error)
}

// BookingStore хранилище бронирований
type BookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	LinkPets(ctx context.Context, bookingID int64, petIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, ts domain.StatusTimestamps) error
}

// TxManager менеджер транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
