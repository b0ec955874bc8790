package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/api/handlers"
)

func TestAuth(t *testing.T) {
	var gotID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantID   int64
	}{
		{"valid", "42", http.StatusNoContent, 42},
		{"missing", "", http.StatusUnauthorized, 0},
		{"not a number", "abc", http.StatusUnauthorized, 0},
		{"negative", "-1", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func TestIdentify(t *testing.T) {
	var gotID int64
	var found bool
	handler := Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, found = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "8")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.True(t, found)
	assert.Equal(t, int64(8), gotID)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, found)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, incoming, seen)
}

type metricsSpy struct {
	method, path, status string
}

func (m *metricsSpy) ObserveHTTPRequest(method, path, status string, _ float64) {
	m.method, m.path, m.status = method, path, status
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	spy := &metricsSpy{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(spy))
	r.HandleFunc("/rooms/{roomId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms/17", nil))

	assert.Equal(t, http.MethodGet, spy.method)
	assert.Equal(t, "/rooms/{roomId}", spy.path)
	assert.Equal(t, "418", spy.status)
}

func TestRequireUserID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithUserID(req.Context(), 7))
		rec := httptest.NewRecorder()

		id, ok := RequireUserID(rec, req)

		require.True(t, ok)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		_, ok := RequireUserID(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgMissingUserID)
	})
}
