package capacity

import (
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// OccupancyPolicy определяет, какие бронирования занимают места
type OccupancyPolicy int

const (
	// HeldOccupancy все бронирования, кроме отменённых.
	// Используется для календаря и подсказок гостю.
	HeldOccupancy OccupancyPolicy = iota

	// CommittedOccupancy только подтверждённые и заселённые.
	// Используется проверкой при подтверждении заявки: ожидающие заявки
	// ещё не обещаны, выехавшие уже освободили место.
	CommittedOccupancy
)

// CommittedStatuses статусы, занимающие места при CommittedOccupancy
var CommittedStatuses = []domain.BookingStatus{
	domain.StatusConfirmed,
	domain.StatusCheckedIn,
}

// Counts проверяет, занимает ли бронирование с таким статусом место
func (p OccupancyPolicy) Counts(status domain.BookingStatus) bool {
	switch p {
	case CommittedOccupancy:
		return status == domain.StatusConfirmed || status == domain.StatusCheckedIn
	default:
		return status != domain.StatusCancelled
	}
}

func (p OccupancyPolicy) String() string {
	if p == CommittedOccupancy {
		return "committed"
	}
	return "held"
}

// BuildTable строит таблицу вместимости номера на закрытое окно [start, end].
// Строка есть для каждой даты окна, даже если бронирований нет.
// Бронирования других номеров и статусы, не входящие в политику, пропускаются.
func BuildTable(room *domain.Room, start, end types.Date, bookings []*domain.Booking, policy OccupancyPolicy) (*domain.CapacityTable, error) {
	if room == nil {
		return nil, fmt.Errorf("%w: room is required", ErrInvalidWindow)
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidWindow, start, end)
	}

	occupied := make(map[types.Date]domain.SizeCounts, types.DaysBetween(start, end)+1)

	for _, b := range bookings {
		if b.RoomID != room.ID || !policy.Counts(b.Status) {
			continue
		}
		if !b.OverlapsWindow(start, end) {
			continue
		}

		counts, err := b.SizeCounts()
		if err != nil {
			return nil, err
		}

		// пересечение ночей бронирования с окном
		from, to := b.CheckIn, b.LastNight()
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		for _, d := range types.EachDay(from, to) {
			occupied[d] = occupied[d].Plus(counts)
		}
	}

	table := domain.NewCapacityTable(room.ID, start, end)
	for _, d := range types.EachDay(start, end) {
		table.Set(domain.NewCapacityRow(d, room, occupied[d]))
	}

	return table, nil
}
