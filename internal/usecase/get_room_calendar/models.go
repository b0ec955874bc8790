package get_room_calendar

import (
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

// Request модель запроса календаря номера
type Request struct {
	RoomID int64      // ID номера
	Year   int        // Год
	Month  time.Month // Месяц
}

// Response модель ответа: по строке на каждый день месяца
type Response struct {
	Room  *domain.Room
	Year  int
	Month time.Month
	Days  []domain.CapacityRow
}
