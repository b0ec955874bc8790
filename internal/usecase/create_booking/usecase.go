package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-PetHotelService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	petRepo      PetRepository
	capacity     CapacityService
	approver     Approver
	txManager    TransactionManager
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	petRepo PetRepository,
	capacity CapacityService,
	approver Approver,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	if policy.MaxStayNights == 0 {
		policy.MaxStayNights = domain.DefaultMaxStayNights
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		petRepo:      petRepo,
		capacity:     capacity,
		approver:     approver,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Создание не ограничено вместимостью: решение принимается при подтверждении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, room=%d, stay=%s..%s, pets=%v",
		req.OwnerID, req.RoomID, req.CheckIn, req.CheckOut, req.PetIDs)

	// 1. Валидация входных данных
	today := types.DateOf(uc.timeProvider.Now())
	if err := validateRequest(req, today, uc.policy.MaxStayNights); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrPersistence, err)
	}

	// 3. Получаем питомцев и проверяем владельца
	pets, err := uc.petRepo.GetByIDs(ctx, req.PetIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pets: %v", err)
		return nil, fmt.Errorf("%w: failed to get pets: %v", ErrPersistence, err)
	}
	if err := validatePets(req.OwnerID, req.PetIDs, pets); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Размерные классы питомцев
	requested, err := domain.CountSizes(pets)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to classify pets: %v", err)
		return nil, err
	}

	// 5. Питомцы должны помещаться хотя бы в пустой номер
	if !room.Fits(requested) {
		uc.logger.Warn("CreateBooking: room id=%d holds small=%d medium=%d, requested small=%d medium=%d",
			room.ID, room.SmallCapacity, room.MediumCapacity, requested.Small, requested.Medium)
		return nil, fmt.Errorf("%w: room holds small=%d medium=%d", ErrRoomTooSmall, room.SmallCapacity, room.MediumCapacity)
	}

	// 6. Предварительная проверка по календарю (подсказка, не гарантия)
	if uc.policy.Precheck {
		remaining, err := uc.capacity.StayRemaining(ctx, room, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute remaining capacity: %v", err)
			return nil, fmt.Errorf("%w: failed to compute remaining capacity: %v", ErrPersistence, err)
		}
		if !remaining.Admits(requested) {
			uc.logger.Warn("CreateBooking: precheck failed, remaining small=%d medium=%d", remaining.Small, remaining.Medium)
			return nil, fmt.Errorf("%w: remaining small=%d medium=%d", domain.ErrCapacityExceeded, remaining.Small, remaining.Medium)
		}
	}

	// 7. Бронирование и связи с питомцами пишутся в одной транзакции
	booking := &domain.Booking{
		OwnerID:    req.OwnerID,
		RoomID:     room.ID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     domain.StatusPending,
		TotalPrice: room.StayPrice(types.DaysBetween(req.CheckIn, req.CheckOut), len(pets)),
		Notes:      req.Notes,
	}

	var result *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrPersistence, err)
		}

		if err := uc.bookingRepo.LinkPets(txCtx, created.ID, req.PetIDs); err != nil {
			return fmt.Errorf("%w: failed to link pets: %w", ErrPersistence, err)
		}

		created.Pets = pets
		result = created
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateBooking: %v", err)
		return nil, err
	}

	uc.capacity.Invalidate(result.RoomID)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.TotalPrice)

	response := &Response{Booking: result}

	// 8. Автоподтверждение через тот же guard, что и у администратора
	if uc.policy.AutoApprove && uc.approver != nil {
		approved, err := uc.approver.Execute(ctx, &transition_booking.Request{
			BookingID: result.ID,
			Status:    domain.StatusConfirmed,
			ActorID:   req.OwnerID,
		})
		switch {
		case err == nil:
			response.Booking = approved.Booking
		case errors.Is(err, domain.ErrCapacityExceeded):
			uc.logger.Warn("CreateBooking: booking id=%d left pending for review: %v", result.ID, err)
			response.NeedsReview = true
		default:
			uc.logger.Error("CreateBooking: auto-approve of booking id=%d failed: %v", result.ID, err)
			response.NeedsReview = true
		}
	}

	return response, nil
}
