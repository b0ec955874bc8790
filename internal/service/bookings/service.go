package bookings

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetHotelService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PetHotelService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	workflow     StatusWorkflow
	access       AccessChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	workflow StatusWorkflow,
	access AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		workflow:     workflow,
		access:       access,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Видеть бронирование может владелец или администратор
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.OwnerID != userID && !s.access.IsAdmin(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования владельца
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingFilter{OwnerID: &req.UserID}
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAdminBookings получает бронирования всех гостей с фильтрацией
// Доступно только администраторам
func (s *Service) GetAdminBookings(ctx context.Context, req *models.GetAdminBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAdminBookings: user=%d, room=%v, from=%v, to=%v, status=%v",
		req.UserID, req.RoomID, req.From, req.To, req.Status)

	if !s.access.IsAdmin(req.UserID) {
		s.logger.Warn("GetAdminBookings: user=%d is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAdminBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAdminBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAdminBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Владелец может отменить pending или confirmed бронирование, заезд которого не в прошлом.
// Администратор может отменить любое незавершённое бронирование.
// Повторная отмена уже отменённого бронирования не является ошибкой.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.get(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	isAdmin := s.access.IsAdmin(req.UserID)
	if booking.OwnerID != req.UserID && !isAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d is already cancelled", bookingID)
		return models.FromDomainBooking(booking), nil
	}

	workflowReq := &transition_booking.Request{
		BookingID: bookingID,
		Status:    domain.StatusCancelled,
		ActorID:   req.UserID,
	}
	if !isAdmin {
		if err := s.checkOwnerCanCancel(booking); err != nil {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled by owner: %v", bookingID, err)
			return nil, err
		}
		// статус мог измениться после чтения, поэтому он проверяется ещё раз в транзакции
		workflowReq.AllowedFrom = ownerCancellable
	}

	resp, err := s.workflow.Execute(ctx, workflowReq)
	if err != nil {
		// параллельная отмена уже прошла
		if errors.Is(err, domain.ErrInvalidTransition) {
			if current, getErr := s.get(ctx, "Cancel", bookingID); getErr == nil && current.IsCancelled() {
				s.logger.Info("Cancel: booking id=%d was cancelled concurrently", bookingID)
				return models.FromDomainBooking(current), nil
			}
		}
		if errors.Is(err, transition_booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, transition_booking.ErrSourceNotAllowed) {
			s.logger.Warn("Cancel: booking id=%d changed status before owner cancel: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrCannotCancel, err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(resp.Booking), nil
}

// UpdateStatus меняет статус бронирования через workflow
// Доступно только администраторам
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	if !s.access.IsAdmin(req.UserID) {
		s.logger.Warn("UpdateStatus: user=%d is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp, err := s.workflow.Execute(ctx, &transition_booking.Request{
		BookingID: bookingID,
		Status:    status,
		ActorID:   req.UserID,
	})
	if err != nil {
		if errors.Is(err, transition_booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d moved %s", bookingID, domain.TransitionLabel(resp.PreviousStatus, resp.Booking.Status))
	return models.FromDomainBooking(resp.Booking), nil
}

// Вспомогательные методы

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// ownerCancellable статусы, из которых владелец может отменить бронирование
var ownerCancellable = []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}

// checkOwnerCanCancel проверяет ограничения отмены для владельца
func (s *Service) checkOwnerCanCancel(booking *domain.Booking) error {
	if !slices.Contains(ownerCancellable, booking.Status) {
		return fmt.Errorf("%w: status %s", ErrCannotCancel, booking.Status)
	}

	today := types.DateOf(s.timeProvider.Now())
	if booking.CheckIn.Before(today) {
		return fmt.Errorf("%w: check-in %s already passed", ErrCannotCancel, booking.CheckIn)
	}
	return nil
}
