// Package memory хранилище в памяти с той же семантикой, что и PostgreSQL репозитории.
// Используется режимом `serve --in-memory` и тестами сервисов и usecase.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/booking"
	petRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/pet"
	roomRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/room"
)

type state struct {
	rooms       map[int64]domain.Room
	pets        map[int64]domain.Pet
	bookings    map[int64]domain.Booking
	bookingPets map[int64][]int64

	nextRoomID    int64
	nextPetID     int64
	nextBookingID int64
}

func (s *state) clone() *state {
	c := &state{
		rooms:         make(map[int64]domain.Room, len(s.rooms)),
		pets:          make(map[int64]domain.Pet, len(s.pets)),
		bookings:      make(map[int64]domain.Booking, len(s.bookings)),
		bookingPets:   make(map[int64][]int64, len(s.bookingPets)),
		nextRoomID:    s.nextRoomID,
		nextPetID:     s.nextPetID,
		nextBookingID: s.nextBookingID,
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.pets {
		c.pets[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.bookingPets {
		c.bookingPets[k] = append([]int64(nil), v...)
	}
	return c
}

// Store общее состояние всех репозиториев
type Store struct {
	// txMu держит TxManager на время транзакции; запись вне транзакции
	// тоже берёт его, чтобы откат снимка не потерял чужие изменения
	txMu sync.Mutex

	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		state: &state{
			rooms:       make(map[int64]domain.Room),
			pets:        make(map[int64]domain.Pet),
			bookings:    make(map[int64]domain.Booking),
			bookingPets: make(map[int64][]int64),
		},
		now: time.Now,
	}
}

// Rooms репозиторий номеров
func (s *Store) Rooms() *RoomRepository { return &RoomRepository{store: s} }

// Pets репозиторий питомцев
func (s *Store) Pets() *PetRepository { return &PetRepository{store: s} }

// Bookings репозиторий бронирований
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{store: s} }

// writeGuard блокирует запись вне транзакции
func (s *Store) writeGuard(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) restore(st *state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}

// RoomRepository номера
type RoomRepository struct {
	store *Store
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	defer r.store.writeGuard(ctx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.state
	st.nextRoomID++
	room.ID = st.nextRoomID
	room.CreatedAt = r.store.now()
	st.rooms[room.ID] = *room

	created := *room
	return &created, nil
}

func (r *RoomRepository) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	room, ok := r.store.state.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &room, nil
}

func (r *RoomRepository) List(_ context.Context) ([]*domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rooms := make([]*domain.Room, 0, len(r.store.state.rooms))
	for _, room := range r.store.state.rooms {
		room := room
		rooms = append(rooms, &room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// PetRepository питомцы
type PetRepository struct {
	store *Store
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	defer r.store.writeGuard(ctx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.state
	st.nextPetID++
	pet.ID = st.nextPetID
	pet.CreatedAt = r.store.now()
	st.pets[pet.ID] = *pet

	created := *pet
	return &created, nil
}

func (r *PetRepository) GetByIDs(_ context.Context, ids []int64) ([]domain.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pets := make([]domain.Pet, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if pet, ok := r.store.state.pets[id]; ok && !seen[id] {
			seen[id] = true
			pets = append(pets, pet)
		}
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].ID < pets[j].ID })
	return pets, nil
}

func (r *PetRepository) ListByOwner(_ context.Context, ownerID int64) ([]domain.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pets := make([]domain.Pet, 0)
	for _, pet := range r.store.state.pets {
		if pet.OwnerID == ownerID {
			pets = append(pets, pet)
		}
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].ID < pets[j].ID })
	return pets, nil
}

// GetByID возвращает питомца (для тестов и сидов)
func (r *PetRepository) GetByID(_ context.Context, id int64) (*domain.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pet, ok := r.store.state.pets[id]
	if !ok {
		return nil, petRepo.ErrPetNotFound
	}
	return &pet, nil
}

// BookingRepository бронирования
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	defer r.store.writeGuard(ctx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.state
	st.nextBookingID++
	now := r.store.now()
	booking.ID = st.nextBookingID
	booking.CreatedAt = now
	booking.UpdatedAt = now

	stored := *booking
	stored.Pets = nil
	st.bookings[booking.ID] = stored

	return booking, nil
}

func (r *BookingRepository) LinkPets(ctx context.Context, bookingID int64, petIDs []int64) error {
	defer r.store.writeGuard(ctx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := r.store.state
	if _, ok := st.bookings[bookingID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	for _, petID := range petIDs {
		if _, ok := st.pets[petID]; !ok {
			return petRepo.ErrPetNotFound
		}
	}
	st.bookingPets[bookingID] = append(st.bookingPets[bookingID], petIDs...)
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.state.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.withPets(b), nil
}

func (r *BookingRepository) GetByFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]*domain.Booking, 0)
	for _, b := range r.store.state.bookings {
		b := b
		if filter.Matches(&b) {
			bookings = append(bookings, r.withPets(b))
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CheckIn.Equal(bookings[j].CheckIn) {
			return bookings[i].CheckIn.Before(bookings[j].CheckIn)
		}
		return bookings[i].ID < bookings[j].ID
	})
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, ts domain.StatusTimestamps) error {
	defer r.store.writeGuard(ctx)()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.state.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.ApplyStatus(status, ts)
	b.UpdatedAt = r.store.now()
	r.store.state.bookings[id] = b
	return nil
}

// withPets вызывается под блокировкой
func (r *BookingRepository) withPets(b domain.Booking) *domain.Booking {
	ids := r.store.state.bookingPets[b.ID]
	b.Pets = make([]domain.Pet, 0, len(ids))
	for _, id := range ids {
		if pet, ok := r.store.state.pets[id]; ok {
			b.Pets = append(b.Pets, pet)
		}
	}
	sort.Slice(b.Pets, func(i, j int) bool { return b.Pets[i].ID < b.Pets[j].ID })
	return &b
}
