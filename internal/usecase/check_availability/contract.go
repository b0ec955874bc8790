package check_availability

import (
	"context"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// CapacityService интерфейс сервиса вместимости
type CapacityService interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	StayRemaining(ctx context.Context, room *domain.Room, checkIn, checkOut types.Date) (domain.Remaining, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Pet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
