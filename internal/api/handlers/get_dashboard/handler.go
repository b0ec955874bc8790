package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	getDashboard "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

const (
	msgMissingUserID = handlers.MsgMissingUserID
	msgForbidden     = handlers.MsgForbidden
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDashboardUseCase
	access  AccessChecker
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		access:  access,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
// Query params: date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/dashboard - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !h.access.IsAdmin(userID) {
		h.logger.Warn("GET /admin/dashboard - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &getDashboard.Request{}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := types.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/dashboard - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Dashboard built: date=%s, check_ins=%d, check_outs=%d, active=%d",
		result.Date, result.CheckIns, result.CheckOuts, result.ActiveGuests)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
