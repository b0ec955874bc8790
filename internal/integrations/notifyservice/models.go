package notifyservice

import "time"

// StatusChange событие смены статуса бронирования
type StatusChange struct {
	BookingID      int64     `json:"booking_id"`
	OwnerID        int64     `json:"owner_id"`
	RoomID         int64     `json:"room_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	ChangedAt      time.Time `json:"changed_at"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
