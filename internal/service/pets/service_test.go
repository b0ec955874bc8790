package pets

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PetHotelService/internal/service/pets/models"
	"github.com/m04kA/SMC-PetHotelService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	service := NewService(memory.NewStore().Pets(), nopLogger{})

	tests := []struct {
		name     string
		req      models.RegisterPetRequest
		wantSize string
		wantErr  error
	}{
		{"small by weight", models.RegisterPetRequest{OwnerID: 1, Name: "Mia", Species: "cat", Weight: 7}, "small", nil},
		{"medium by weight", models.RegisterPetRequest{OwnerID: 1, Name: "Rex", Species: "dog", Weight: 7.01}, "medium", nil},
		{"declared size matches", models.RegisterPetRequest{OwnerID: 1, Name: "Bo", Species: "dog", Weight: 15, Size: ptr.Of("Medium")}, "medium", nil},
		{"declared size mismatch", models.RegisterPetRequest{OwnerID: 1, Name: "Bo", Species: "dog", Weight: 5, Size: ptr.Of("medium")}, "", domain.ErrSizeMismatch},
		{"unknown size", models.RegisterPetRequest{OwnerID: 1, Name: "Bo", Species: "dog", Weight: 5, Size: ptr.Of("large")}, "", domain.ErrInvalidSize},
		{"over the limit", models.RegisterPetRequest{OwnerID: 1, Name: "Max", Species: "dog", Weight: 15.5}, "", domain.ErrInvalidWeight},
		{"zero weight", models.RegisterPetRequest{OwnerID: 1, Name: "Max", Species: "dog", Weight: 0}, "", domain.ErrInvalidWeight},
		{"NaN weight", models.RegisterPetRequest{OwnerID: 1, Name: "Max", Species: "dog", Weight: math.NaN()}, "", domain.ErrInvalidWeight},
		{"rounds down into small", models.RegisterPetRequest{OwnerID: 1, Name: "Kit", Species: "cat", Weight: 7.004}, "small", nil},
		{"rounds to zero", models.RegisterPetRequest{OwnerID: 1, Name: "Ant", Species: "cat", Weight: 0.001}, "", domain.ErrInvalidWeight},
		{"declared small after rounding", models.RegisterPetRequest{OwnerID: 1, Name: "Kit", Species: "cat", Weight: 7.004, Size: ptr.Of("small")}, "small", nil},
		{"blank name", models.RegisterPetRequest{OwnerID: 1, Name: "  ", Species: "dog", Weight: 3}, "", ErrInvalidInput},
		{"no species", models.RegisterPetRequest{OwnerID: 1, Name: "Max", Weight: 3}, "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Register(ctx, &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, resp.Size)
			assert.NotZero(t, resp.ID)
		})
	}
}

func TestService_Register_StoresRoundedWeight(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewService(store.Pets(), nopLogger{})

	resp, err := service.Register(ctx, &models.RegisterPetRequest{OwnerID: 1, Name: "Kit", Species: "cat", Weight: 7.004})
	require.NoError(t, err)
	assert.Equal(t, 7.0, resp.Weight)

	stored, err := store.Pets().GetByIDs(ctx, []int64{resp.ID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 7.0, stored[0].Weight)
	assert.Equal(t, domain.SizeSmall, stored[0].Size)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	service := NewService(memory.NewStore().Pets(), nopLogger{})

	_, err := service.Register(ctx, &models.RegisterPetRequest{OwnerID: 1, Name: "Mia", Species: "cat", Weight: 3})
	require.NoError(t, err)
	_, err = service.Register(ctx, &models.RegisterPetRequest{OwnerID: 2, Name: "Rex", Species: "dog", Weight: 12})
	require.NoError(t, err)

	list, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Pets, 1)
	assert.Equal(t, "Mia", list.Pets[0].Name)

	empty, err := service.List(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, empty.Pets)
	assert.Empty(t, empty.Pets)
}
