package list_pets

import (
	"net/http"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
)

const msgMissingUserID = handlers.MsgMissingUserID

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

// Handle GET /api/v1/pets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /pets - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /pets - Failed to list pets: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pets - Pets retrieved successfully: user_id=%d, count=%d", userID, len(result.Pets))
	handlers.RespondJSON(w, http.StatusOK, result.Pets)
}
