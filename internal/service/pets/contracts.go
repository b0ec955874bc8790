package pets

import (
	"context"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Pet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
