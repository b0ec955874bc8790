package check_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrPetNotFound возвращается, когда питомец не найден или принадлежит другому владельцу
	ErrPetNotFound = errors.New("check_availability: pet not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
