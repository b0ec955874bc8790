package check_availability

import (
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// Request модель запроса проверки свободных мест.
// Питомцы задаются списком PetIDs либо напрямую числом по классам.
type Request struct {
	OwnerID  int64      // Владелец питомцев (0 - без проверки владельца)
	RoomID   int64      // ID номера
	CheckIn  types.Date // Дата заезда
	CheckOut types.Date // Дата выезда
	PetIDs   []int64    // Питомцы
	Small    int        // Число маленьких питомцев, если PetIDs пуст
	Medium   int        // Число средних питомцев, если PetIDs пуст
}

// Response модель ответа проверки
type Response struct {
	RoomID     int64
	CheckIn    types.Date
	CheckOut   types.Date
	Nights     int
	Requested  domain.SizeCounts
	Remaining  domain.Remaining // Минимум свободных мест по ночам проживания
	Admissible bool
	TotalPrice float64
}
