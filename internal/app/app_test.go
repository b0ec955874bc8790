package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/config"
	roomModels "github.com/m04kA/SMC-PetHotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-PetHotelService/pkg/metrics"
)

const adminID = 900

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type client struct {
	t      *testing.T
	server *httptest.Server
}

func (c *client) do(method, path string, userID int64, body string) (int, map[string]interface{}) {
	c.t.Helper()
	req, err := http.NewRequest(method, c.server.URL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	if userID > 0 {
		req.Header.Set("X-User-ID", fmt.Sprint(userID))
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp.StatusCode, payload
}

func (c *client) registerPet(ownerID int64, weight float64) int64 {
	c.t.Helper()
	code, pet := c.do(http.MethodPost, "/api/v1/pets", ownerID, fmt.Sprintf(`{"name":"pet","species":"cat","weight":%v}`, weight))
	require.Equal(c.t, http.StatusCreated, code)
	return int64(pet["id"].(float64))
}

func newClient(t *testing.T, cfg *config.Config) (*client, *App) {
	t.Helper()
	cfg.Admin.UserIDs = []int64{adminID}

	m := metrics.NewWithRegistry("pethotel_test", prometheus.NewRegistry())
	a := New(cfg, InMemory(), m, nopLogger{})
	server := httptest.NewServer(NewRouter(a, m, "/metrics", nopLogger{}))
	t.Cleanup(server.Close)

	return &client{t: t, server: server}, a
}

func TestRouter_BookingLifecycle(t *testing.T) {
	c, a := newClient(t, config.Default())

	room, err := a.Rooms.Create(context.Background(), &roomModels.CreateRoomRequest{Name: "Den", NightlyPrice: 20, SmallCapacity: 1, MediumCapacity: 1})
	require.NoError(t, err)

	checkIn := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 1, 3).Format("2006-01-02")
	booking := func(petID int64) string {
		return fmt.Sprintf(`{"roomId":%d,"checkIn":%q,"checkOut":%q,"petIds":[%d]}`, room.ID, checkIn, checkOut, petID)
	}

	first := c.registerPet(1, 4)
	second := c.registerPet(2, 5)

	code, created := c.do(http.MethodPost, "/api/v1/bookings", 1, booking(first))
	require.Equal(t, http.StatusCreated, code)
	firstID := int64(created["booking"].(map[string]interface{})["id"].(float64))

	code, created = c.do(http.MethodPost, "/api/v1/bookings", 2, booking(second))
	require.Equal(t, http.StatusCreated, code)
	secondID := int64(created["booking"].(map[string]interface{})["id"].(float64))

	// чужого питомца забронировать нельзя
	code, _ = c.do(http.MethodPost, "/api/v1/bookings", 2, booking(first))
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d/status", firstID), adminID, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d/status", secondID), adminID, `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusConflict, code)

	// после отмены первого второе подтверждается
	code, cancelled := c.do(http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d/cancel", firstID), 1, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cancelled", cancelled["status"])

	code, confirmed := c.do(http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d/status", secondID), adminID, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "confirmed", confirmed["status"])

	code, _ = c.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", secondID), 1, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = c.do(http.MethodGet, "/api/v1/admin/dashboard", 1, "")
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = c.do(http.MethodGet, "/api/v1/admin/dashboard", adminID, "")
	assert.Equal(t, http.StatusOK, code)

	code, calendar := c.do(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d/calendar?month=%s", room.ID, checkIn[:7]), 0, "")
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, calendar["days"])

	code, _ = c.do(http.MethodGet, "/api/v1/pets", 0, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	resp, err := c.server.Client().Get(c.server.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AutoApprove(t *testing.T) {
	cfg := config.Default()
	cfg.Booking.AutoApprove = true
	c, a := newClient(t, cfg)

	room, err := a.Rooms.Create(context.Background(), &roomModels.CreateRoomRequest{Name: "Nook", SmallCapacity: 1})
	require.NoError(t, err)

	checkIn := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 12).Format("2006-01-02")

	for i, want := range []struct {
		status      string
		needsReview bool
	}{
		{"confirmed", false},
		{"pending", true},
	} {
		ownerID := int64(i + 1)
		petID := c.registerPet(ownerID, 3)
		code, created := c.do(http.MethodPost, "/api/v1/bookings", ownerID,
			fmt.Sprintf(`{"roomId":%d,"checkIn":%q,"checkOut":%q,"petIds":[%d]}`, room.ID, checkIn, checkOut, petID))
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, want.status, created["booking"].(map[string]interface{})["status"])
		assert.Equal(t, want.needsReview, created["needsReview"])
	}
}
