package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-PetHotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = handlers.MsgMissingUserID
	msgInvalidStay        = "дата выезда должна быть позже даты заезда, нужен хотя бы один питомец"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgInvalidWeight      = "некорректный вес питомца"
	msgCheckInInPast      = "дата заезда уже прошла"
	msgStayTooLong        = "слишком длинное проживание"
	msgRoomNotFound       = "номер не найден"
	msgPetNotFound        = "питомец не найден"
	msgPetNotOwned        = "питомец принадлежит другому владельцу"
	msgRoomTooSmall       = "питомцы не помещаются в этот номер"
	msgCapacityExceeded   = "на выбранные даты нет свободных мест"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStay):
			h.logger.Warn("POST /bookings - Invalid stay: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, domain.ErrInvalidWeight):
			h.logger.Warn("POST /bookings - Invalid pet weight: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidWeight)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrCheckInInPast):
			h.logger.Warn("POST /bookings - Check-in in the past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, createBooking.ErrStayTooLong):
			h.logger.Warn("POST /bookings - Stay too long: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /bookings - Pet not found: user_id=%d, pet_ids=%v", userID, req.PetIDs)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrPetNotOwned):
			h.logger.Warn("POST /bookings - Pet not owned: user_id=%d, pet_ids=%v", userID, req.PetIDs)
			handlers.RespondForbidden(w, msgPetNotOwned)

		case errors.Is(err, createBooking.ErrRoomTooSmall):
			h.logger.Warn("POST /bookings - Room too small: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomTooSmall)

		case errors.Is(err, domain.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%d, stay=%s..%s", req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, status=%s, needs_review=%t",
		result.Booking.ID, userID, result.Booking.Status, result.NeedsReview)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
