package register_pet

import (
	"context"

	"github.com/m04kA/SMC-PetHotelService/internal/service/pets/models"
)

type PetService interface {
	Register(ctx context.Context, req *models.RegisterPetRequest) (*models.PetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
