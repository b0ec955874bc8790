package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrRoomNotFound возвращается, когда номер бронирования не найден
	ErrRoomNotFound = errors.New("transition_booking: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrSourceNotAllowed возвращается, когда текущий статус не входит в допустимые для инициатора
	ErrSourceNotAllowed = errors.New("transition_booking: current status not allowed for actor")

	// ErrPersistence возвращается при ошибках хранилища, состояние не изменено
	ErrPersistence = errors.New("transition_booking: persistence error")
)
