package get_room_calendar

import (
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	getRoomCalendar "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	RoomID         int64         `json:"roomId"`
	RoomName       string        `json:"roomName"`
	Month          string        `json:"month"` // "2025-02"
	SmallCapacity  int           `json:"smallCapacity"`
	MediumCapacity int           `json:"mediumCapacity"`
	Days           []CalendarDay `json:"days"`
}

// CalendarDay строка календаря на одну ночь
type CalendarDay struct {
	Date            string `json:"date"`
	SmallOccupied   int    `json:"smallOccupied"`
	MediumOccupied  int    `json:"mediumOccupied"`
	SmallRemaining  int    `json:"smallRemaining"`
	MediumRemaining int    `json:"mediumRemaining"`
	TotalRemaining  int    `json:"totalRemaining"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, row := range resp.Days {
		days[i] = fromRow(row)
	}

	return &CalendarResponse{
		RoomID:         resp.Room.ID,
		RoomName:       resp.Room.Name,
		Month:          types.NewDate(resp.Year, resp.Month, 1).Time().Format(domain.MonthFormat),
		SmallCapacity:  resp.Room.SmallCapacity,
		MediumCapacity: resp.Room.MediumCapacity,
		Days:           days,
	}
}

func fromRow(row domain.CapacityRow) CalendarDay {
	return CalendarDay{
		Date:            row.Date.String(),
		SmallOccupied:   row.SmallOccupied,
		MediumOccupied:  row.MediumOccupied,
		SmallRemaining:  row.SmallRemaining,
		MediumRemaining: row.MediumRemaining,
		TotalRemaining:  row.TotalRemaining,
		Available:       row.Available,
	}
}
