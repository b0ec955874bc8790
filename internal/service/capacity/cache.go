package capacity

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

type cacheKey struct {
	roomID      int64
	windowStart types.Date
}

// Generation версия данных номера на момент чтения из хранилища
type Generation struct {
	epoch uint64
	room  uint64
}

type cacheEntry struct {
	table    *domain.CapacityTable
	storedAt time.Time
}

// Cache кэш таблиц вместимости по (номер, начало окна).
// Таблица из кэша годится только для чтения (календарь, подсказки);
// проверка при подтверждении всегда строит таблицу заново в транзакции.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time

	// счётчики сбросов: epoch для InvalidateAll, rooms для Invalidate
	epoch uint64
	rooms map[int64]uint64
}

// NewCache создает кэш. ttl <= 0 - записи не устаревают
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
		rooms:   make(map[int64]uint64),
	}
}

// Get возвращает таблицу, если она есть, не устарела и покрывает окно до end
func (c *Cache) Get(roomID int64, start, end types.Date) (*domain.CapacityTable, bool) {
	c.mu.RLock()
	entry, ok := c.entries[cacheKey{roomID: roomID, windowStart: start}]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, cacheKey{roomID: roomID, windowStart: start})
		c.mu.Unlock()
		return nil, false
	}
	if entry.table.End.Before(end) {
		return nil, false
	}
	return entry.table, true
}

// Put сохраняет таблицу
func (c *Cache) Put(table *domain.CapacityTable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(table)
}

// Generation возвращает текущую версию номера. Берётся до чтения из хранилища
func (c *Cache) Generation(roomID int64) Generation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Generation{epoch: c.epoch, room: c.rooms[roomID]}
}

// PutIfCurrent сохраняет таблицу, только если номер не сбрасывался после gen.
// Таблица, построенная до сброса, в кэш не попадает.
func (c *Cache) PutIfCurrent(table *domain.CapacityTable, gen Generation) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != gen.epoch || c.rooms[table.RoomID] != gen.room {
		return false
	}
	c.put(table)
	return true
}

func (c *Cache) put(table *domain.CapacityTable) {
	c.entries[cacheKey{roomID: table.RoomID, windowStart: table.Start}] = cacheEntry{
		table:    table,
		storedAt: c.now(),
	}
}

// Invalidate удаляет все таблицы номера
func (c *Cache) Invalidate(roomID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[roomID]++
	for key := range c.entries {
		if key.roomID == roomID {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll очищает кэш
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.entries = make(map[cacheKey]cacheEntry)
}

// Len количество записей
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
