package get_dashboard

import (
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// EventType роль бронирования в выбранном дне
type EventType string

const (
	EventCheckIn  EventType = "checkin"
	EventCheckOut EventType = "checkout"
	EventStay     EventType = "stay"
)

// RoomState состояние номера на день
type RoomState string

const (
	RoomVacant    RoomState = "vacant"    // Никого нет
	RoomOccupied  RoomState = "occupied"  // Гости проживают
	RoomDeparting RoomState = "departing" // Гости выезжают завтра
	RoomCheckout  RoomState = "checkout"  // Сегодня только выезд
)

// Request модель запроса сводки (нулевая дата - сегодня)
type Request struct {
	Date types.Date
}

// Event бронирование, затрагивающее день
type Event struct {
	Type    EventType
	Booking *domain.Booking
}

// RoomDay состояние номера на день
type RoomDay struct {
	Room  *domain.Room
	State RoomState
	Row   domain.CapacityRow
}

// Response сводка администратора за день
type Response struct {
	Date          types.Date
	CheckIns      int
	CheckOuts     int
	Stays         int
	Pending       int
	ActiveGuests  int     // Питомцы, занимающие места в эту ночь
	TotalCapacity int     // Сумма мест всех номеров
	OccupancyRate float64 // ActiveGuests / TotalCapacity, 0..1 (может превысить 1 при овербукинге)
	Events        []Event
	Rooms         []RoomDay
}
