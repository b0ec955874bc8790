package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

const (
	cacheHit  = "hit"
	cacheMiss = "miss"
)

// Service строит таблицы вместимости для календаря и подсказок.
// Месячные таблицы кэшируются, кэш сбрасывается при изменении бронирований номера.
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	cache       *Cache
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает сервис вместимости
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	cache *Cache,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetRoom загружает номер
func (s *Service) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: GetRoom - repository error: %w", ErrInternal, err)
	}
	return room, nil
}

// MonthTable возвращает таблицу вместимости номера на календарный месяц
func (s *Service) MonthTable(ctx context.Context, room *domain.Room, year int, month time.Month) (*domain.CapacityTable, error) {
	start, end := types.MonthWindow(year, month)

	if table, ok := s.cache.Get(room.ID, start, end); ok {
		s.metrics.IncCacheResult(cacheHit)
		return table, nil
	}
	s.metrics.IncCacheResult(cacheMiss)

	gen := s.cache.Generation(room.ID)
	table, err := s.WindowTable(ctx, room, start, end)
	if err != nil {
		return nil, err
	}

	if !s.cache.PutIfCurrent(table, gen) {
		s.logger.Info("MonthTable: room=%d invalidated during read, table not cached", room.ID)
	}
	return table, nil
}

// WindowTable строит таблицу на произвольное окно, без кэша
func (s *Service) WindowTable(ctx context.Context, room *domain.Room, start, end types.Date) (*domain.CapacityTable, error) {
	bookings, err := s.bookingRepo.GetByFilter(ctx, domain.BookingFilter{
		RoomID:          &room.ID,
		From:            &start,
		To:              &end,
		ExcludeStatuses: []domain.BookingStatus{domain.StatusCancelled},
	})
	if err != nil {
		s.logger.Error("WindowTable: failed to load bookings for room=%d %s..%s: %v", room.ID, start, end, err)
		return nil, fmt.Errorf("%w: WindowTable - repository error: %w", ErrInternal, err)
	}

	table, err := BuildTable(room, start, end, bookings, HeldOccupancy)
	if err != nil {
		s.logger.Error("WindowTable: failed to build table for room=%d: %v", room.ID, err)
		return nil, err
	}

	return table, nil
}

// StayRemaining возвращает свободные места на всё проживание.
// Сначала используется месячная таблица месяца заезда; если проживание
// выходит за месяц (ErrIncompleteData), таблица строится ровно на ночи проживания.
func (s *Service) StayRemaining(ctx context.Context, room *domain.Room, checkIn, checkOut types.Date) (domain.Remaining, error) {
	if err := domain.ValidateStay(checkIn, checkOut, 1); err != nil {
		return domain.Remaining{}, err
	}

	table, err := s.MonthTable(ctx, room, checkIn.Year(), checkIn.Month())
	if err != nil {
		return domain.Remaining{}, err
	}

	remaining, err := RemainingForStay(table, checkIn, checkOut)
	if !errors.Is(err, domain.ErrIncompleteData) {
		return remaining, err
	}

	s.logger.Info("StayRemaining: stay %s..%s crosses month window of room=%d, building stay table", checkIn, checkOut, room.ID)

	table, err = s.WindowTable(ctx, room, checkIn, checkOut.AddDays(-1))
	if err != nil {
		return domain.Remaining{}, err
	}
	return RemainingForStay(table, checkIn, checkOut)
}

// Invalidate сбрасывает кэш номера
func (s *Service) Invalidate(roomID int64) {
	s.cache.Invalidate(roomID)
}

// InvalidateAll сбрасывает весь кэш
func (s *Service) InvalidateAll() {
	s.cache.InvalidateAll()
}
