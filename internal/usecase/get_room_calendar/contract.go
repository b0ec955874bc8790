package get_room_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

// CapacityService интерфейс сервиса вместимости
type CapacityService interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	MonthTable(ctx context.Context, room *domain.Room, year int, month time.Month) (*domain.CapacityTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
