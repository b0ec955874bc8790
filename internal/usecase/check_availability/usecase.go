package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/capacity"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// UseCase use case для предварительной проверки мест на даты проживания
type UseCase struct {
	capacity CapacityService
	petRepo  PetRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(capacity CapacityService, petRepo PetRepository, logger Logger) *UseCase {
	return &UseCase{
		capacity: capacity,
		petRepo:  petRepo,
		logger:   logger,
	}
}

// Execute считает остаток мест на каждую ночь проживания и решает, поместятся ли питомцы.
// Результат - подсказка: окончательная проверка выполняется при подтверждении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, stay=%s..%s, pets=%v, small=%d, medium=%d",
		req.RoomID, req.CheckIn, req.CheckOut, req.PetIDs, req.Small, req.Medium)

	// 1. Валидация входных данных
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Small < 0 || req.Medium < 0 {
		return nil, fmt.Errorf("%w: pet counts must not be negative", ErrInvalidInput)
	}

	// 2. Считаем питомцев по классам
	requested, err := uc.requested(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateStay(req.CheckIn, req.CheckOut, requested.Total()); err != nil {
		uc.logger.Warn("CheckAvailability: %v", err)
		return nil, err
	}

	// 3. Получаем номер
	room, err := uc.capacity.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, capacity.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Минимум свободных мест по ночам
	remaining, err := uc.capacity.StayRemaining(ctx, room, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to compute remaining for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to compute remaining: %v", ErrInternal, err)
	}

	nights := types.DaysBetween(req.CheckIn, req.CheckOut)
	return &Response{
		RoomID:     room.ID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Nights:     nights,
		Requested:  requested,
		Remaining:  remaining,
		Admissible: capacity.CanAdmit(requested, remaining),
		TotalPrice: room.StayPrice(nights, requested.Total()),
	}, nil
}

// requested классифицирует питомцев из запроса или берёт готовые числа
func (uc *UseCase) requested(ctx context.Context, req *Request) (domain.SizeCounts, error) {
	if len(req.PetIDs) == 0 {
		return domain.SizeCounts{Small: req.Small, Medium: req.Medium}, nil
	}
	if err := domain.ValidatePetIDs(req.PetIDs); err != nil {
		uc.logger.Warn("CheckAvailability: %v", err)
		return domain.SizeCounts{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	pets, err := uc.petRepo.GetByIDs(ctx, req.PetIDs)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get pets: %v", err)
		return domain.SizeCounts{}, fmt.Errorf("%w: failed to get pets: %v", ErrInternal, err)
	}

	found := make(map[int64]bool, len(pets))
	for _, pet := range pets {
		if req.OwnerID > 0 && pet.OwnerID != req.OwnerID {
			continue
		}
		found[pet.ID] = true
	}
	for _, id := range req.PetIDs {
		if !found[id] {
			uc.logger.Warn("CheckAvailability: pet id=%d not found for owner=%d", id, req.OwnerID)
			return domain.SizeCounts{}, fmt.Errorf("%w: id=%d", ErrPetNotFound, id)
		}
	}

	counts, err := domain.CountSizes(pets)
	if err != nil {
		return domain.SizeCounts{}, err
	}
	return counts, nil
}
