package register_pet

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/pets"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = handlers.MsgMissingUserID
	msgInvalidInput       = "некорректные данные питомца"
	msgInvalidWeight      = "вес должен быть больше 0 и не больше 15 кг"
	msgSizeMismatch       = "заявленный размер не соответствует весу"
	msgInvalidSize        = "некорректный размер, допустимо small или medium"
)

type Handler struct {
	service PetService
	logger  Logger
}

func NewHandler(service PetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/pets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /pets - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RegisterPetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pet, err := h.service.Register(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSizeMismatch):
			h.logger.Warn("POST /pets - Size mismatch: user_id=%d, weight=%v, size=%v", userID, req.Weight, req.Size)
			handlers.RespondBadRequest(w, msgSizeMismatch)

		case errors.Is(err, domain.ErrInvalidWeight):
			h.logger.Warn("POST /pets - Invalid weight: user_id=%d, weight=%v", userID, req.Weight)
			handlers.RespondBadRequest(w, msgInvalidWeight)

		case errors.Is(err, domain.ErrInvalidSize):
			h.logger.Warn("POST /pets - Invalid size: user_id=%d, size=%v", userID, req.Size)
			handlers.RespondBadRequest(w, msgInvalidSize)

		case errors.Is(err, pets.ErrInvalidInput):
			h.logger.Warn("POST /pets - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /pets - Failed to register pet: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pets - Pet registered successfully: pet_id=%d, user_id=%d, size=%s", pet.ID, userID, pet.Size)
	handlers.RespondJSON(w, http.StatusCreated, pet)
}
