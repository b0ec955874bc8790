package capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/memory"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type cacheCounter struct {
	results map[string]int
}

func (c *cacheCounter) IncCacheResult(result string) {
	c.results[result]++
}

type fixture struct {
	ctx     context.Context
	store   *memory.Store
	service *Service
	counter *cacheCounter
	room    *domain.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	room, err := store.Rooms().Create(ctx, &domain.Room{Name: "Sunny", SmallCapacity: 2, MediumCapacity: 1, NightlyPrice: 1000})
	require.NoError(t, err)

	counter := &cacheCounter{results: map[string]int{}}
	service := NewService(store.Rooms(), store.Bookings(), NewCache(time.Minute), counter, nopLogger{})

	return &fixture{ctx: ctx, store: store, service: service, counter: counter, room: room}
}

func (f *fixture) book(t *testing.T, checkIn, checkOut string, status domain.BookingStatus, weights ...float64) *domain.Booking {
	t.Helper()

	petIDs := make([]int64, 0, len(weights))
	for _, w := range weights {
		size, err := domain.Classify(w)
		require.NoError(t, err)
		pet, err := f.store.Pets().Create(f.ctx, &domain.Pet{OwnerID: 1, Name: "pet", Species: "cat", Weight: w, Size: size})
		require.NoError(t, err)
		petIDs = append(petIDs, pet.ID)
	}

	b, err := f.store.Bookings().Create(f.ctx, &domain.Booking{
		OwnerID:  1,
		RoomID:   f.room.ID,
		CheckIn:  d(checkIn),
		CheckOut: d(checkOut),
		Status:   status,
	})
	require.NoError(t, err)
	require.NoError(t, f.store.Bookings().LinkPets(f.ctx, b.ID, petIDs))
	return b
}

func TestService_MonthTableIsCached(t *testing.T) {
	f := newFixture(t)
	f.book(t, "2025-02-10", "2025-02-12", domain.StatusPending, 3)

	table, err := f.service.MonthTable(f.ctx, f.room, 2025, time.February)
	require.NoError(t, err)
	assert.Equal(t, 28, table.Len())

	row, _ := table.Row(d("2025-02-11"))
	assert.Equal(t, 1, row.SmallRemaining)

	_, err = f.service.MonthTable(f.ctx, f.room, 2025, time.February)
	require.NoError(t, err)
	assert.Equal(t, 1, f.counter.results[cacheMiss])
	assert.Equal(t, 1, f.counter.results[cacheHit])

	// новое бронирование без сброса кэша не видно, после Invalidate - видно
	f.book(t, "2025-02-11", "2025-02-12", domain.StatusPending, 5)
	table, _ = f.service.MonthTable(f.ctx, f.room, 2025, time.February)
	row, _ = table.Row(d("2025-02-11"))
	assert.Equal(t, 1, row.SmallRemaining)

	f.service.Invalidate(f.room.ID)
	table, _ = f.service.MonthTable(f.ctx, f.room, 2025, time.February)
	row, _ = table.Row(d("2025-02-11"))
	assert.Equal(t, 0, row.SmallRemaining)
}

func TestService_StayRemainingAcrossMonths(t *testing.T) {
	f := newFixture(t)
	f.book(t, "2025-03-01", "2025-03-03", domain.StatusConfirmed, 12)
	f.book(t, "2025-02-20", "2025-02-21", domain.StatusCancelled, 12)

	remaining, err := f.service.StayRemaining(f.ctx, f.room, d("2025-02-27"), d("2025-03-02"))
	require.NoError(t, err)
	assert.Equal(t, domain.Remaining{Small: 2, Medium: 0}, remaining)

	remaining, err = f.service.StayRemaining(f.ctx, f.room, d("2025-02-20"), d("2025-02-21"))
	require.NoError(t, err)
	assert.Equal(t, domain.Remaining{Small: 2, Medium: 1}, remaining, "cancelled bookings hold nothing")

	_, err = f.service.StayRemaining(f.ctx, f.room, d("2025-02-21"), d("2025-02-21"))
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
}

func TestService_GetRoom(t *testing.T) {
	f := newFixture(t)

	room, err := f.service.GetRoom(f.ctx, f.room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunny", room.Name)

	_, err = f.service.GetRoom(f.ctx, 404)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

// racingBookings выполняет запись и сброс кэша сразу после первого чтения
type racingBookings struct {
	BookingRepository
	onFirstRead func()
}

func (r *racingBookings) GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	bookings, err := r.BookingRepository.GetByFilter(ctx, filter)
	if r.onFirstRead != nil {
		hook := r.onFirstRead
		r.onFirstRead = nil
		hook()
	}
	return bookings, err
}

func TestService_MonthTableNotCachedAfterConcurrentInvalidate(t *testing.T) {
	f := newFixture(t)
	bookings := &racingBookings{BookingRepository: f.store.Bookings()}
	service := NewService(f.store.Rooms(), bookings, NewCache(time.Minute), f.counter, nopLogger{})

	bookings.onFirstRead = func() {
		f.book(t, "2025-02-10", "2025-02-11", domain.StatusConfirmed, 3, 4)
		service.Invalidate(f.room.ID)
	}

	stale, err := service.MonthTable(f.ctx, f.room, 2025, time.February)
	require.NoError(t, err)
	row, _ := stale.Row(d("2025-02-10"))
	assert.Equal(t, 0, row.SmallOccupied)

	fresh, err := service.MonthTable(f.ctx, f.room, 2025, time.February)
	require.NoError(t, err)
	row, _ = fresh.Row(d("2025-02-10"))
	assert.Equal(t, 2, row.SmallOccupied)
	assert.Equal(t, 0, row.SmallRemaining)
	assert.Equal(t, 2, f.counter.results[cacheMiss])
}
