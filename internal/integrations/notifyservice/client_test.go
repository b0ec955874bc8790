package notifyservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_SendStatusChange(t *testing.T) {
	var received StatusChange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/events/booking-status", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})
	err := client.NotifyStatusChange(context.Background(), StatusChange{
		BookingID:      10,
		PreviousStatus: "pending",
		Status:         "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), received.BookingID)
	assert.Equal(t, "confirmed", received.Status)
}

func TestClient_GracefulDegradation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":503,"message":"queue is full"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	err := client.SendStatusChange(context.Background(), StatusChange{BookingID: 1})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "queue is full")

	err = client.NotifyStatusChange(context.Background(), StatusChange{BookingID: 1})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	err := client.NotifyStatusChange(context.Background(), StatusChange{BookingID: 1})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
