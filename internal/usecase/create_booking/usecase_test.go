package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-PetHotelService/internal/service/capacity"
	"github.com/m04kA/SMC-PetHotelService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-PetHotelService/pkg/metrics"
	"github.com/m04kA/SMC-PetHotelService/pkg/ptr"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixture struct {
	ctx   context.Context
	store *memory.Store
	room  *domain.Room
	clock fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	room, err := store.Rooms().Create(ctx, &domain.Room{Name: "Cozy", SmallCapacity: 1, MediumCapacity: 1, NightlyPrice: 50})
	require.NoError(t, err)

	return &fixture{
		ctx:   ctx,
		store: store,
		room:  room,
		clock: fixedClock{now: time.Date(2025, 2, 18, 9, 0, 0, 0, time.Local)},
	}
}

func (f *fixture) useCase(policy Policy) *UseCase {
	var m *metrics.Metrics
	capacityService := capacity.NewService(f.store.Rooms(), f.store.Bookings(), capacity.NewCache(time.Minute), m, nopLogger{})
	txManager := memory.NewTxManager(f.store)
	workflow := transition_booking.NewUseCase(f.store.Bookings(), f.store.Rooms(), txManager, capacityService, nil, m, nopLogger{}).
		WithTimeProvider(f.clock)

	return NewUseCase(f.store.Bookings(), f.store.Rooms(), f.store.Pets(), capacityService, workflow, txManager, policy, nopLogger{}).
		WithTimeProvider(f.clock)
}

func (f *fixture) pet(t *testing.T, ownerID int64, weight float64) int64 {
	t.Helper()
	size, err := domain.Classify(weight)
	require.NoError(t, err)
	pet, err := f.store.Pets().Create(f.ctx, &domain.Pet{OwnerID: ownerID, Name: "pet", Species: "cat", Weight: weight, Size: size})
	require.NoError(t, err)
	return pet.ID
}

func request(ownerID, roomID int64, checkIn, checkOut string, petIDs ...int64) *Request {
	return &Request{
		OwnerID:  ownerID,
		RoomID:   roomID,
		CheckIn:  types.MustParseDate(checkIn),
		CheckOut: types.MustParseDate(checkOut),
		PetIDs:   petIDs,
	}
}

func TestExecute_CreatesPendingWithPets(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(Policy{})
	small := f.pet(t, 1, 4)
	medium := f.pet(t, 1, 12)

	resp, err := uc.Execute(f.ctx, request(1, f.room.ID, "2025-02-20", "2025-02-23", small, medium))
	require.NoError(t, err)
	assert.False(t, resp.NeedsReview)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, 50.0*3*2, resp.Booking.TotalPrice)

	stored, err := f.store.Bookings().GetByID(f.ctx, resp.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{small, medium}, stored.PetIDs())
}

func TestExecute_CreationIsNotCapacityGated(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(Policy{})

	first, err := uc.Execute(f.ctx, request(1, f.room.ID, "2025-02-20", "2025-02-22", f.pet(t, 1, 3)))
	require.NoError(t, err)
	second, err := uc.Execute(f.ctx, request(2, f.room.ID, "2025-02-21", "2025-02-23", f.pet(t, 2, 5)))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, first.Booking.Status)
	assert.Equal(t, domain.StatusPending, second.Booking.Status)
}

func TestExecute_AutoApprove(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(Policy{AutoApprove: true})

	first, err := uc.Execute(f.ctx, request(1, f.room.ID, "2025-02-20", "2025-02-22", f.pet(t, 1, 3)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, first.Booking.Status)
	assert.False(t, first.NeedsReview)

	// второе бронирование создаётся, но остаётся pending
	second, err := uc.Execute(f.ctx, request(2, f.room.ID, "2025-02-21", "2025-02-23", f.pet(t, 2, 5)))
	require.NoError(t, err)
	assert.True(t, second.NeedsReview)
	assert.Equal(t, domain.StatusPending, second.Booking.Status)

	stored, err := f.store.Bookings().GetByID(f.ctx, second.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestExecute_Precheck(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(Policy{Precheck: true})

	_, err := uc.Execute(f.ctx, request(1, f.room.ID, "2025-02-20", "2025-02-22", f.pet(t, 1, 3)))
	require.NoError(t, err)

	_, err = uc.Execute(f.ctx, request(2, f.room.ID, "2025-02-21", "2025-02-23", f.pet(t, 2, 5)))
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	// медиум-пул независим от занятого смолл-пула
	_, err = uc.Execute(f.ctx, request(2, f.room.ID, "2025-02-21", "2025-02-23", f.pet(t, 2, 9)))
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(Policy{MaxStayNights: 5})
	own := f.pet(t, 1, 4)
	foreign := f.pet(t, 2, 4)
	second := f.pet(t, 1, 3)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"check-out equals check-in", request(1, f.room.ID, "2025-02-20", "2025-02-20", own), domain.ErrInvalidStay},
		{"check-out before check-in", request(1, f.room.ID, "2025-02-21", "2025-02-20", own), domain.ErrInvalidStay},
		{"no pets", request(1, f.room.ID, "2025-02-20", "2025-02-21"), domain.ErrInvalidStay},
		{"duplicate pet", request(1, f.room.ID, "2025-02-20", "2025-02-21", own, own), ErrInvalidInput},
		{"zero owner", request(0, f.room.ID, "2025-02-20", "2025-02-21", own), ErrInvalidInput},
		{"check-in in the past", request(1, f.room.ID, "2025-02-17", "2025-02-19", own), ErrCheckInInPast},
		{"stay too long", request(1, f.room.ID, "2025-02-20", "2025-02-26", own), ErrStayTooLong},
		{"unknown room", request(1, 404, "2025-02-20", "2025-02-21", own), ErrRoomNotFound},
		{"unknown pet", request(1, f.room.ID, "2025-02-20", "2025-02-21", 999), ErrPetNotFound},
		{"foreign pet", request(1, f.room.ID, "2025-02-20", "2025-02-21", foreign), ErrPetNotOwned},
		{"room too small", request(1, f.room.ID, "2025-02-20", "2025-02-21", own, second), ErrRoomTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(f.ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	bookings, err := f.store.Bookings().GetByFilter(f.ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestExecute_CheckInTodayAllowed(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase(Policy{})

	req := request(1, f.room.ID, "2025-02-18", "2025-02-19", f.pet(t, 1, 4))
	req.Notes = ptr.Of("allergic to chicken")

	resp, err := uc.Execute(f.ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking.Notes)
	assert.Equal(t, "allergic to chicken", *resp.Booking.Notes)
}
