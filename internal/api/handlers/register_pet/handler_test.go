package register_pet

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PetHotelService/internal/service/pets"
	"github.com/m04kA/SMC-PetHotelService/internal/service/pets/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	handler := NewHandler(pets.NewService(memory.NewStore().Pets(), nopLogger{}), nopLogger{})

	tests := []struct {
		name     string
		userID   int64
		body     string
		wantCode int
		wantSize string
	}{
		{"small cat", 3, `{"name":"Mia","species":"cat","weight":4.5}`, http.StatusCreated, "small"},
		{"medium declared", 3, `{"name":"Rex","species":"dog","weight":11,"size":"medium"}`, http.StatusCreated, "medium"},
		{"size mismatch", 3, `{"name":"Rex","species":"dog","weight":3,"size":"medium"}`, http.StatusBadRequest, ""},
		{"too heavy", 3, `{"name":"Rex","species":"dog","weight":40}`, http.StatusBadRequest, ""},
		{"unknown size", 3, `{"name":"Rex","species":"dog","weight":3,"size":"huge"}`, http.StatusBadRequest, ""},
		{"no name", 3, `{"species":"dog","weight":3}`, http.StatusBadRequest, ""},
		{"bad json", 3, `{"name":`, http.StatusBadRequest, ""},
		{"anonymous", 0, `{"name":"Mia","species":"cat","weight":4.5}`, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/pets", strings.NewReader(tt.body))
			if tt.userID > 0 {
				req = req.WithContext(middleware.WithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantSize == "" {
				return
			}
			var pet models.PetResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pet))
			assert.Equal(t, tt.wantSize, pet.Size)
			assert.Equal(t, tt.userID, pet.OwnerID)
		})
	}
}
