package get_dashboard

import (
	"github.com/m04kA/SMC-PetHotelService/internal/service/bookings/models"
	getDashboard "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_dashboard"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Date          string    `json:"date"`
	CheckIns      int       `json:"checkIns"`
	CheckOuts     int       `json:"checkOuts"`
	Stays         int       `json:"stays"`
	Pending       int       `json:"pending"`
	ActiveGuests  int       `json:"activeGuests"`
	TotalCapacity int       `json:"totalCapacity"`
	OccupancyRate float64   `json:"occupancyRate"`
	Events        []Event   `json:"events"`
	Rooms         []RoomDay `json:"rooms"`
}

// Event бронирование, затрагивающее день
type Event struct {
	Type    string                 `json:"type"` // checkin | checkout | stay
	Booking models.BookingResponse `json:"booking"`
}

// RoomDay загрузка номера на день
type RoomDay struct {
	RoomID          int64  `json:"roomId"`
	RoomName        string `json:"roomName"`
	State           string `json:"state"`
	SmallOccupied   int    `json:"smallOccupied"`
	MediumOccupied  int    `json:"mediumOccupied"`
	SmallRemaining  int    `json:"smallRemaining"`
	MediumRemaining int    `json:"mediumRemaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	out := &DashboardResponse{
		Date:          resp.Date.String(),
		CheckIns:      resp.CheckIns,
		CheckOuts:     resp.CheckOuts,
		Stays:         resp.Stays,
		Pending:       resp.Pending,
		ActiveGuests:  resp.ActiveGuests,
		TotalCapacity: resp.TotalCapacity,
		OccupancyRate: resp.OccupancyRate,
		Events:        make([]Event, 0, len(resp.Events)),
		Rooms:         make([]RoomDay, 0, len(resp.Rooms)),
	}

	for _, e := range resp.Events {
		if b := models.FromDomainBooking(e.Booking); b != nil {
			out.Events = append(out.Events, Event{Type: string(e.Type), Booking: *b})
		}
	}

	for _, rd := range resp.Rooms {
		out.Rooms = append(out.Rooms, RoomDay{
			RoomID:          rd.Room.ID,
			RoomName:        rd.Room.Name,
			State:           string(rd.State),
			SmallOccupied:   rd.Row.SmallOccupied,
			MediumOccupied:  rd.Row.MediumOccupied,
			SmallRemaining:  rd.Row.SmallRemaining,
			MediumRemaining: rd.Row.MediumRemaining,
		})
	}

	return out
}
