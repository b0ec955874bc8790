package create_booking

import (
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// Policy настройки создания бронирований
type Policy struct {
	AutoApprove   bool // Сразу подтверждать через workflow
	Precheck      bool // Отклонять заявку, если по календарю мест уже нет
	MaxStayNights int  // Максимум ночей (0 - по умолчанию)
}

// Request модель запроса на создание бронирования
type Request struct {
	OwnerID  int64      // ID владельца
	RoomID   int64      // ID номера
	CheckIn  types.Date // Дата заезда (включительно)
	CheckOut types.Date // Дата выезда (не включительно)
	PetIDs   []int64    // Питомцы владельца
	Notes    *string    // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking // Созданное бронирование

	// NeedsReview выставляется, если автоподтверждение не прошло
	// и бронирование осталось в pending до решения администратора
	NeedsReview bool
}
