package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	LinkPets(ctx context.Context, bookingID int64, petIDs []int64) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Pet, error)
}

// CapacityService интерфейс расчёта вместимости (предварительная проверка и кэш)
type CapacityService interface {
	StayRemaining(ctx context.Context, room *domain.Room, checkIn, checkOut types.Date) (domain.Remaining, error)
	Invalidate(roomID int64)
}

// Approver смена статуса через общий workflow (автоподтверждение)
type Approver interface {
	Execute(ctx context.Context, req *transition_booking.Request) (*transition_booking.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
