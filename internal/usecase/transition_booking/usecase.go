package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-PetHotelService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-PetHotelService/internal/service/capacity"
)

// UseCase единственный путь смены статуса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	cache        CacheInvalidator
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier может быть nil, если сервис уведомлений не настроен.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	cache CacheInvalidator,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		cache:        cache,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет смену статуса.
// Чтение, проверка вместимости и запись идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%d, status=%s, actor=%d", req.BookingID, req.Status, req.ActorID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: booking_id must be positive", ErrInvalidInput)
	}
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, req.Status)
	}

	var (
		result   *domain.Booking
		previous domain.BookingStatus
	)

	// 2. Читаем, проверяем и пишем в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrPersistence, err)
		}
		previous = booking.Status

		// 2.2. Проверяем переход по таблице
		rule, err := domain.Transition(booking.Status, req.Status)
		if err != nil {
			return err
		}

		if len(req.AllowedFrom) > 0 && !slices.Contains(req.AllowedFrom, booking.Status) {
			return fmt.Errorf("%w: status %s", ErrSourceNotAllowed, booking.Status)
		}

		// 2.3. Проверяем вместимость по текущему состоянию журнала
		if rule.CapacityGuard {
			if err := uc.guard(txCtx, booking); err != nil {
				return err
			}
		}

		// 2.4. Пишем статус и отметки времени
		now := uc.timeProvider.Now()
		ts := rule.Stamps(now)
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, req.Status, ts); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update status: %w", ErrPersistence, err)
		}

		booking.ApplyStatus(req.Status, ts)
		booking.UpdatedAt = now
		result = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCapacityExceeded):
			uc.metrics.IncCapacityRejection(domain.TransitionLabel(previous, req.Status))
			uc.logger.Warn("TransitionBooking: booking=%d rejected: %v", req.BookingID, err)
		case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrSourceNotAllowed):
			uc.logger.Warn("TransitionBooking: booking=%d: %v", req.BookingID, err)
		default:
			uc.logger.Error("TransitionBooking: booking=%d failed: %v", req.BookingID, err)
		}
		return nil, err
	}

	// 3. После коммита: кэш, метрики, уведомление
	uc.cache.Invalidate(result.RoomID)
	uc.metrics.IncTransition(string(previous), string(result.Status))
	uc.notify(ctx, result, previous)

	uc.logger.Info("TransitionBooking: booking=%d %s", result.ID, domain.TransitionLabel(previous, result.Status))

	return &Response{
		Booking:        result,
		PreviousStatus: previous,
	}, nil
}

// guard строит таблицу по подтверждённым бронированиям на ночи проживания
// (без самого бронирования) и проверяет, что питомцы помещаются каждую ночь
func (uc *UseCase) guard(ctx context.Context, booking *domain.Booking) error {
	requested, err := booking.SizeCounts()
	if err != nil {
		return fmt.Errorf("%w: booking id=%d: %w", ErrPersistence, booking.ID, err)
	}

	room, err := uc.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("%w: failed to get room: %w", ErrPersistence, err)
	}

	from, to := booking.CheckIn, booking.LastNight()
	others, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingFilter{
		RoomID:           &booking.RoomID,
		From:             &from,
		To:               &to,
		Statuses:         capacity.CommittedStatuses,
		ExcludeBookingID: &booking.ID,
		ForUpdate:        true,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get overlapping bookings: %w", ErrPersistence, err)
	}

	table, err := capacity.BuildTable(room, from, to, others, capacity.CommittedOccupancy)
	if err != nil {
		return fmt.Errorf("%w: failed to build capacity table: %w", ErrPersistence, err)
	}

	remaining, err := capacity.CheckStay(table, booking.CheckIn, booking.CheckOut, requested)
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			return fmt.Errorf("%w: booking id=%d needs small=%d medium=%d, remaining small=%d medium=%d",
				domain.ErrCapacityExceeded, booking.ID, requested.Small, requested.Medium, remaining.Small, remaining.Medium)
		}
		return err
	}

	uc.logger.Info("TransitionBooking: booking=%d fits, remaining small=%d medium=%d",
		booking.ID, remaining.Small, remaining.Medium)
	return nil
}

// notify отправляет событие владельцу, ошибка не откатывает смену статуса
func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking, previous domain.BookingStatus) {
	if uc.notifier == nil {
		return
	}

	event := notifyservice.StatusChange{
		BookingID:      booking.ID,
		OwnerID:        booking.OwnerID,
		RoomID:         booking.RoomID,
		PreviousStatus: string(previous),
		Status:         string(booking.Status),
		CheckIn:        booking.CheckIn.String(),
		CheckOut:       booking.CheckOut.String(),
		ChangedAt:      booking.UpdatedAt,
	}
	if err := uc.notifier.NotifyStatusChange(ctx, event); err != nil {
		uc.logger.Warn("TransitionBooking: notification for booking=%d not delivered: %v", booking.ID, err)
	}
}
