package cancel_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/bookings"
	"github.com/m04kA/SMC-PetHotelService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f fakeService) Cancel(_ context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: bookingID, OwnerID: req.UserID, Status: "cancelled"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		err      error
		wantCode int
	}{
		{"ok", "4", nil, http.StatusOK},
		{"bad id", "x", nil, http.StatusBadRequest},
		{"not found", "4", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"stranger", "4", bookings.ErrAccessDenied, http.StatusForbidden},
		{"too late", "4", fmt.Errorf("%w: check-in passed", bookings.ErrCannotCancel), http.StatusBadRequest},
		{"checked out", "4", fmt.Errorf("%w: checked_out -> cancelled", domain.ErrInvalidTransition), http.StatusConflict},
		{"internal", "4", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+tt.id+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": tt.id})
			req = req.WithContext(middleware.WithUserID(req.Context(), 9))
			rec := httptest.NewRecorder()

			NewHandler(fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
