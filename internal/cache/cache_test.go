package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 8, 17, 15, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func sampleKey(matchID string) Key {
	return Key{
		MatchID: matchID,
		Outcome: models.EnsembleOutcome{HomeWin: 0.55, Draw: 0.25, AwayWin: 0.20, Confidence: 70, ConsensusStrength: 60},
	}
}

func TestKeyString(t *testing.T) {
	key := sampleKey("match_1")
	assert.Equal(t, "match_1:0.55:0.25:0.2:70:60", key.String())

	other := key
	other.Outcome.Confidence = 71
	assert.NotEqual(t, key.String(), other.String())
}

func TestKeyStringWithColonMatchIDs(t *testing.T) {
	// the outcome always fills the last five fields, so colons in match ids cannot shift them
	first := Key{MatchID: "cup:1", Outcome: models.EnsembleOutcome{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2, Confidence: 60, ConsensusStrength: 50}}
	second := Key{MatchID: "cup", Outcome: models.EnsembleOutcome{HomeWin: 1, Draw: 0.5, AwayWin: 0.3, Confidence: 0.2, ConsensusStrength: 60}}
	assert.NotEqual(t, first.String(), second.String())

	cache := NewTableCache(time.Hour, 10, newFakeClock())
	defer cache.Clear()

	cache.Set(first, &markets.Table{MatchID: first.MatchID})
	cache.Set(second, &markets.Table{MatchID: second.MatchID})
	assert.Equal(t, 2, cache.ItemCount())

	got, ok := cache.Get(first)
	require.True(t, ok)
	assert.Equal(t, "cup:1", got.MatchID)

	got, ok = cache.Get(second)
	require.True(t, ok)
	assert.Equal(t, "cup", got.MatchID)
}

func TestTableCacheGetSet(t *testing.T) {
	cache := NewTableCache(time.Hour, 10, newFakeClock())
	defer cache.Clear()

	key := sampleKey("match_1")
	_, ok := cache.Get(key)
	assert.False(t, ok)

	table := &markets.Table{MatchID: "match_1"}
	cache.Set(key, table)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Same(t, table, got)
}

func TestTableCacheExpiration(t *testing.T) {
	clock := newFakeClock()
	cache := NewTableCache(time.Minute, 10, clock)

	key := sampleKey("match_1")
	cache.Set(key, &markets.Table{MatchID: "match_1"})

	clock.Advance(59 * time.Second)
	_, ok := cache.Get(key)
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = cache.Get(key)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.ItemCount())
}

func TestTableCacheMaxSize(t *testing.T) {
	clock := newFakeClock()
	maxSize := 3
	cache := NewTableCache(time.Hour, maxSize, clock)

	for i := 0; i < 5; i++ {
		cache.Set(sampleKey(fmt.Sprintf("match_%d", i)), &markets.Table{})
		clock.Advance(time.Second)
	}

	assert.Equal(t, maxSize, cache.ItemCount())
	for i := 0; i < 2; i++ {
		_, ok := cache.Get(sampleKey(fmt.Sprintf("match_%d", i)))
		assert.False(t, ok, "match_%d should have been evicted", i)
	}
	for i := 2; i < 5; i++ {
		_, ok := cache.Get(sampleKey(fmt.Sprintf("match_%d", i)))
		assert.True(t, ok, "match_%d should be cached", i)
	}
}

func TestTableCacheEvictsExpiredFirst(t *testing.T) {
	clock := newFakeClock()
	cache := NewTableCache(time.Minute, 2, clock)

	cache.Set(sampleKey("old"), &markets.Table{})
	clock.Advance(2 * time.Minute)
	cache.Set(sampleKey("fresh"), &markets.Table{})
	cache.Set(sampleKey("newer"), &markets.Table{})

	assert.Equal(t, 2, cache.ItemCount())
	_, ok := cache.Get(sampleKey("fresh"))
	assert.True(t, ok)
	_, ok = cache.Get(sampleKey("newer"))
	assert.True(t, ok)
}

func TestTableCacheOverwriteDoesNotEvict(t *testing.T) {
	cache := NewTableCache(time.Hour, 2, newFakeClock())

	cache.Set(sampleKey("a"), &markets.Table{})
	cache.Set(sampleKey("b"), &markets.Table{})
	cache.Set(sampleKey("b"), &markets.Table{MatchID: "b"})

	assert.Equal(t, 2, cache.ItemCount())
	_, ok := cache.Get(sampleKey("a"))
	assert.True(t, ok)
}

func TestTableCacheDelete(t *testing.T) {
	cache := NewTableCache(time.Hour, 10, newFakeClock())

	cache.Set(sampleKey("a"), &markets.Table{})
	cache.Set(sampleKey("b"), &markets.Table{})
	cache.Delete(sampleKey("a"))

	_, ok := cache.Get(sampleKey("a"))
	assert.False(t, ok)
	_, ok = cache.Get(sampleKey("b"))
	assert.True(t, ok)
}

func TestTableCacheStats(t *testing.T) {
	cache := NewTableCache(time.Hour, 10, newFakeClock())
	key := sampleKey("match_1")

	stats := cache.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
	assert.Equal(t, 0.0, stats.Ratio)

	_, _ = cache.Get(key)
	cache.Set(key, &markets.Table{})
	_, _ = cache.Get(key)

	stats = cache.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.Ratio)
	assert.Equal(t, 1, stats.Entries)

	cache.Clear()
	stats = cache.Stats()
	assert.Equal(t, Stats{}, stats)
}

func TestTableCacheConcurrentAccess(t *testing.T) {
	cache := NewTableCache(time.Hour, 50, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := sampleKey(fmt.Sprintf("match_%d", i%5))
			cache.Set(key, &markets.Table{})
			_, _ = cache.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.ItemCount())
	assert.Equal(t, uint64(20), cache.Stats().Hits)
}
