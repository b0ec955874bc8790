package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrPetNotFound возвращается, когда питомец из запроса не найден
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrPetNotOwned возвращается, когда питомец принадлежит другому владельцу
	ErrPetNotOwned = errors.New("create_booking: pet belongs to another owner")

	// ErrCheckInInPast возвращается, когда дата заезда в прошлом
	ErrCheckInInPast = errors.New("create_booking: check-in date is in the past")

	// ErrStayTooLong возвращается, когда проживание длиннее допустимого
	ErrStayTooLong = errors.New("create_booking: stay is too long")

	// ErrRoomTooSmall возвращается, когда питомцы не помещаются даже в пустой номер
	ErrRoomTooSmall = errors.New("create_booking: pets do not fit into the room")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPersistence возвращается при ошибках хранилища, бронирование не создано
	ErrPersistence = errors.New("create_booking: persistence error")
)
