package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-PetHotelService/internal/usecase/check_availability"
)

const (
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStay        = "дата выезда должна быть позже даты заезда, нужен хотя бы один питомец"
	msgInvalidWeight      = "некорректный вес питомца"
	msgInvalidInput       = "некорректные параметры запроса"
	msgRoomNotFound       = "номер не найден"
	msgPetNotFound        = "питомец не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/availability
// Ответ всегда 200: недостаток мест выражается полем admissible
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Владелец необязателен; если известен, питомцы проверяются на принадлежность
	ownerID, _ := middleware.GetUserID(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(roomID, ownerID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStay):
			h.logger.Warn("POST /rooms/{id}/availability - Invalid stay: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, domain.ErrInvalidWeight):
			h.logger.Warn("POST /rooms/{id}/availability - Invalid pet weight: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeight)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAvailability.ErrPetNotFound):
			h.logger.Warn("POST /rooms/{id}/availability - Pet not found: pet_ids=%v", req.PetIDs)
			handlers.RespondNotFound(w, msgPetNotFound)

		default:
			h.logger.Error("POST /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/availability - Checked: room_id=%d, stay=%s..%s, admissible=%t",
		roomID, req.CheckIn, req.CheckOut, result.Admissible)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
