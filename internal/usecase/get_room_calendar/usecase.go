package get_room_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/service/capacity"
)

// UseCase use case для календаря свободных мест номера
type UseCase struct {
	capacity CapacityService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(capacity CapacityService, logger Logger) *UseCase {
	return &UseCase{
		capacity: capacity,
		logger:   logger,
	}
}

// Execute возвращает таблицу вместимости номера на месяц.
// Таблица - подсказка для выбора дат, решение принимается при подтверждении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomCalendar: room=%d, month=%04d-%02d", req.RoomID, req.Year, req.Month)

	// 1. Валидация входных данных
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Year < 1 || req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: invalid month %d-%d", ErrInvalidInput, req.Year, req.Month)
	}

	// 2. Получаем номер
	room, err := uc.capacity.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, capacity.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomCalendar: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomCalendar: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Строим (или берём из кэша) таблицу на месяц
	table, err := uc.capacity.MonthTable(ctx, room, req.Year, req.Month)
	if err != nil {
		uc.logger.Error("GetRoomCalendar: failed to build table for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to build capacity table: %v", ErrInternal, err)
	}

	return &Response{
		Room:  room,
		Year:  req.Year,
		Month: req.Month,
		Days:  table.Rows(),
	}, nil
}
