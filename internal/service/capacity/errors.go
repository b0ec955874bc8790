package capacity

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("capacity: room not found")

	// ErrInvalidWindow возвращается при пустом или перевёрнутом окне дат
	ErrInvalidWindow = errors.New("capacity: invalid date window")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("capacity: internal error")
)
