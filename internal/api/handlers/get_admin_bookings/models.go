package get_admin_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-PetHotelService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// roomId, from, to (YYYY-MM-DD), status (можно несколько или через запятую)
func ToServiceRequest(userID int64, query url.Values) (*models.GetAdminBookingsRequest, error) {
	req := &models.GetAdminBookingsRequest{
		UserID: userID,
		Status: query["status"],
	}

	if roomIDStr := query.Get("roomId"); roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := types.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
