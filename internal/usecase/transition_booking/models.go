package transition_booking

import "github.com/m04kA/SMC-PetHotelService/internal/domain"

// Request модель запроса на смену статуса
type Request struct {
	BookingID int64                // ID бронирования
	Status    domain.BookingStatus // Целевой статус
	ActorID   int64                // Кто меняет статус (для логов)

	// AllowedFrom статусы, из которых инициатору разрешён переход.
	// Проверяется внутри транзакции; пусто - без ограничений.
	AllowedFrom []domain.BookingStatus
}

// Response модель ответа со сменой статуса
type Response struct {
	Booking        *domain.Booking      // Бронирование после смены статуса
	PreviousStatus domain.BookingStatus // Статус до смены
}
