package get_room_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	getRoomCalendar "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *getRoomCalendar.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getRoomCalendar.Request) (*getRoomCalendar.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getRoomCalendar.Response{
		Room:  &domain.Room{ID: req.RoomID, Name: "Den", SmallCapacity: 2, MediumCapacity: 1},
		Year:  req.Year,
		Month: req.Month,
		Days: []domain.CapacityRow{
			{Date: types.NewDate(req.Year, req.Month, 1), SmallCapacity: 2, MediumCapacity: 1, SmallOccupied: 2, MediumRemaining: 1, TotalRemaining: 1, Available: true},
		},
	}, nil
}

func serve(uc *fakeUseCase, roomID, month string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+roomID+"/calendar?month="+month, nil)
	req = mux.SetURLVars(req, map[string]string{"roomId": roomID})
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "5", "2024-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2024, uc.got.Year)
	assert.Equal(t, time.February, uc.got.Month)

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-02", resp.Month)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2024-02-01", resp.Days[0].Date)
	assert.Equal(t, 0, resp.Days[0].SmallRemaining)
	assert.True(t, resp.Days[0].Available)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "x", "2024-02").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "5", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "5", "2024-13").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: getRoomCalendar.ErrRoomNotFound}, "5", "2024-02").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: getRoomCalendar.ErrInternal}, "5", "2024-02").Code)
}
