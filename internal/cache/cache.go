// Package cache provides a bounded in-memory cache for derived market tables.
package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/metrics"
	"github.com/yourusername/clever-tickets/internal/models"
)

// Clock supplies the current time for expiry checks
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock
var SystemClock Clock = systemClock{}

// Key identifies a market table by match and model output
type Key struct {
	MatchID string
	Outcome models.EnsembleOutcome
}

// String returns string representation of cache key
func (k Key) String() string {
	o := k.Outcome
	return fmt.Sprintf("%s:%g:%g:%g:%g:%g", k.MatchID, o.HomeWin, o.Draw, o.AwayWin, o.Confidence, o.ConsensusStrength)
}

type entry struct {
	table     *markets.Table
	storedAt  time.Time
	expiresAt time.Time
}

// Stats is a snapshot of cache usage
type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Ratio   float64 `json:"hit_ratio"`
	Entries int     `json:"entries"`
}

// TableCache caches market tables. Expiry is judged against the injected
// Clock so go-cache's own janitor is disabled.
type TableCache struct {
	cache     *gocache.Cache
	clock     Clock
	ttl       time.Duration
	maxSize   int
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewTableCache creates a new table cache
func NewTableCache(ttl time.Duration, maxSize int, clock Clock) *TableCache {
	if clock == nil {
		clock = SystemClock
	}
	return &TableCache{
		cache:   gocache.New(gocache.NoExpiration, 0),
		clock:   clock,
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached table
func (tc *TableCache) Get(key Key) (*markets.Table, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	k := key.String()
	if item, found := tc.cache.Get(k); found {
		e := item.(entry)
		if tc.clock.Now().Before(e.expiresAt) {
			tc.hitCount++
			metrics.RecordCacheLookup(true)
			return e.table, true
		}
		tc.cache.Delete(k)
		metrics.UpdateCacheEntries(tc.cache.ItemCount())
	}

	tc.missCount++
	metrics.RecordCacheLookup(false)
	return nil, false
}

// Set stores a table, evicting expired entries and then the oldest ones
// when the cache is full
func (tc *TableCache) Set(key Key, table *markets.Table) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	k := key.String()
	if _, exists := tc.cache.Get(k); !exists && tc.maxSize > 0 && tc.cache.ItemCount() >= tc.maxSize {
		tc.evict()
	}

	now := tc.clock.Now()
	tc.cache.Set(k, entry{table: table, storedAt: now, expiresAt: now.Add(tc.ttl)}, gocache.NoExpiration)
	metrics.UpdateCacheEntries(tc.cache.ItemCount())
}

// evict removes expired entries, then the oldest entries until there is room for one more
func (tc *TableCache) evict() {
	now := tc.clock.Now()
	items := tc.cache.Items()

	type aged struct {
		key      string
		storedAt time.Time
	}
	live := make([]aged, 0, len(items))
	for k, item := range items {
		e := item.Object.(entry)
		if !now.Before(e.expiresAt) {
			tc.cache.Delete(k)
			continue
		}
		live = append(live, aged{key: k, storedAt: e.storedAt})
	}

	sort.Slice(live, func(i, j int) bool {
		if !live[i].storedAt.Equal(live[j].storedAt) {
			return live[i].storedAt.Before(live[j].storedAt)
		}
		return live[i].key < live[j].key
	})
	for i := 0; len(live)-i >= tc.maxSize; i++ {
		tc.cache.Delete(live[i].key)
	}
}

// Delete removes one table
func (tc *TableCache) Delete(key Key) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.cache.Delete(key.String())
	metrics.UpdateCacheEntries(tc.cache.ItemCount())
}

// Clear flushes the entire cache
func (tc *TableCache) Clear() {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.cache.Flush()
	tc.hitCount = 0
	tc.missCount = 0
	metrics.UpdateCacheEntries(0)
}

// Stats returns cache statistics
func (tc *TableCache) Stats() Stats {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	s := Stats{
		Hits:    tc.hitCount,
		Misses:  tc.missCount,
		Entries: tc.cache.ItemCount(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.Ratio = float64(s.Hits) / float64(total)
	}
	return s
}

// ItemCount returns the number of items in cache, expired ones included until evicted
func (tc *TableCache) ItemCount() int {
	return tc.cache.ItemCount()
}
