package rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах номера
	ErrInvalidInput = errors.New("rooms.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms.service: internal error")
)
