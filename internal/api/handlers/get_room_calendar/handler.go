package get_room_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
	getRoomCalendar "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgMissingMonth  = "месяц обязателен"
	msgInvalidMonth  = "некорректный формат месяца, ожидается YYYY-MM"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	useCase GetRoomCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/calendar
// Query params: month (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /rooms/{id}/calendar - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	year, month, err := types.ParseMonth(monthStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomCalendar.Request{RoomID: roomID, Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/calendar - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomCalendar.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /rooms/{id}/calendar - Failed to build calendar: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/calendar - Calendar retrieved successfully: room_id=%d, month=%s, days=%d",
		roomID, monthStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
