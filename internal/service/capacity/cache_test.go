package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
)

func TestCache_GetPutInvalidate(t *testing.T) {
	cache := NewCache(0)

	feb := domain.NewCapacityTable(1, d("2025-02-01"), d("2025-02-28"))
	mar := domain.NewCapacityTable(1, d("2025-03-01"), d("2025-03-31"))
	other := domain.NewCapacityTable(2, d("2025-02-01"), d("2025-02-28"))
	cache.Put(feb)
	cache.Put(mar)
	cache.Put(other)

	got, ok := cache.Get(1, d("2025-02-01"), d("2025-02-28"))
	assert.True(t, ok)
	assert.Same(t, feb, got)

	_, ok = cache.Get(1, d("2025-02-01"), d("2025-03-05"))
	assert.False(t, ok, "cached table shorter than the requested window")

	cache.Invalidate(1)
	assert.Equal(t, 1, cache.Len())
	_, ok = cache.Get(1, d("2025-03-01"), d("2025-03-31"))
	assert.False(t, ok)
	_, ok = cache.Get(2, d("2025-02-01"), d("2025-02-28"))
	assert.True(t, ok)

	cache.InvalidateAll()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_TTL(t *testing.T) {
	now := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)
	cache := NewCache(time.Minute)
	cache.now = func() time.Time { return now }

	cache.Put(domain.NewCapacityTable(1, d("2025-02-01"), d("2025-02-28")))

	now = now.Add(30 * time.Second)
	_, ok := cache.Get(1, d("2025-02-01"), d("2025-02-28"))
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get(1, d("2025-02-01"), d("2025-02-28"))
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_PutIfCurrent(t *testing.T) {
	cache := NewCache(0)
	feb := domain.NewCapacityTable(1, d("2025-02-01"), d("2025-02-28"))

	gen := cache.Generation(1)
	cache.Invalidate(2)
	assert.True(t, cache.PutIfCurrent(feb, gen), "other room reset does not matter")

	gen = cache.Generation(1)
	cache.Invalidate(1)
	assert.False(t, cache.PutIfCurrent(feb, gen))
	assert.Equal(t, 0, cache.Len())

	gen = cache.Generation(1)
	cache.InvalidateAll()
	assert.False(t, cache.PutIfCurrent(feb, gen))

	assert.True(t, cache.PutIfCurrent(feb, cache.Generation(1)))
	assert.Equal(t, 1, cache.Len())
}
