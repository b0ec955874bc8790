package get_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/capacity"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// UseCase use case для дневной сводки администратора
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute собирает заезды, выезды и загрузку номеров на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day := req.Date
	if day.IsZero() {
		day = types.DateOf(uc.timeProvider.Now())
	}
	uc.logger.Info("GetDashboard: date=%s", day)

	var (
		rooms    []*domain.Room
		bookings []*domain.Booking
	)

	// 1. Номера и бронирования читаем из одного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		rooms, err = uc.roomRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
		}

		// окно с предыдущего дня захватывает бронирования, выезжающие сегодня
		from := day.AddDays(-1)
		bookings, err = uc.bookingRepo.GetByFilter(txCtx, domain.BookingFilter{
			From:            &from,
			To:              &day,
			ExcludeStatuses: []domain.BookingStatus{domain.StatusCancelled},
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GetDashboard: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:   day,
		Events: make([]Event, 0, len(bookings)),
		Rooms:  make([]RoomDay, 0, len(rooms)),
	}

	// 2. Классифицируем события дня
	byRoom := make(map[int64][]Event, len(rooms))
	for _, b := range bookings {
		event := Event{Type: eventType(b, day), Booking: b}
		resp.Events = append(resp.Events, event)
		byRoom[b.RoomID] = append(byRoom[b.RoomID], event)

		switch event.Type {
		case EventCheckIn:
			resp.CheckIns++
		case EventCheckOut:
			resp.CheckOuts++
		default:
			resp.Stays++
		}
		if b.Status == domain.StatusPending {
			resp.Pending++
		}
	}

	// 3. Загрузка каждого номера на ночь выбранного дня
	for _, room := range rooms {
		table, err := capacity.BuildTable(room, day, day, bookings, capacity.HeldOccupancy)
		if err != nil {
			uc.logger.Error("GetDashboard: failed to build table for room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: room id=%d: %v", ErrInternal, room.ID, err)
		}
		row, _ := table.Row(day)

		resp.Rooms = append(resp.Rooms, RoomDay{
			Room:  room,
			State: roomState(byRoom[room.ID], day),
			Row:   row,
		})
		resp.TotalCapacity += room.TotalCapacity()
		resp.ActiveGuests += row.SmallOccupied + row.MediumOccupied
	}

	if resp.TotalCapacity > 0 {
		resp.OccupancyRate = float64(resp.ActiveGuests) / float64(resp.TotalCapacity)
	}

	uc.logger.Info("GetDashboard: date=%s checkins=%d checkouts=%d stays=%d pending=%d occupancy=%.2f",
		day, resp.CheckIns, resp.CheckOuts, resp.Stays, resp.Pending, resp.OccupancyRate)

	return resp, nil
}

func eventType(b *domain.Booking, day types.Date) EventType {
	switch {
	case b.CheckIn.Equal(day):
		return EventCheckIn
	case b.CheckOut.Equal(day):
		return EventCheckOut
	default:
		return EventStay
	}
}

// roomState определяет состояние номера по событиям дня
func roomState(events []Event, day types.Date) RoomState {
	state := RoomVacant
	tomorrow := day.AddDays(1)
	for _, e := range events {
		switch {
		case e.Type == EventCheckOut:
			if state == RoomVacant {
				state = RoomCheckout
			}
		case e.Booking.CheckOut.After(tomorrow):
			return RoomOccupied
		default:
			state = RoomDeparting
		}
	}
	return state
}
