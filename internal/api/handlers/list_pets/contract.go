package list_pets

import (
	"context"

	"github.com/m04kA/SMC-PetHotelService/internal/service/pets/models"
)

type PetService interface {
	List(ctx context.Context, ownerID int64) (*models.PetListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
