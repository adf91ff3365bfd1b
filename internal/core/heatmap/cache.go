package heatmap

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/groupcache/lru"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/domain"
)

const DefaultCacheSize = 32

// Cache memoizes Compute. Entries are keyed by a digest of every input that
// Compute reads, so a change to any of them is a miss; nothing is ever
// invalidated by hand. Returned dashboards are shared and must not be
// mutated.
type Cache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	hits   uint64
	misses uint64
}

func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{lru: lru.New(size)}
}

type cacheKeyInput struct {
	Habits    []domain.Habit    `json:"h"`
	History   domain.HistoryMap `json:"y"`
	Notes     domain.NotesMap   `json:"n"`
	StartDate string            `json:"s"`
	Today     string            `json:"t"`
}

// Key digests the exact (habits, history, notes, start date, today) tuple.
// encoding/json writes map keys sorted, which keeps the encoding canonical.
func Key(snap *domain.Snapshot, today time.Time) (uint64, error) {
	in := cacheKeyInput{Today: domain.DateKey(domain.CivilDate(today))}
	if snap != nil {
		in.Habits = snap.Habits
		in.History = snap.History
		in.Notes = snap.Notes
		in.StartDate = snap.Settings.StartDate
	}

	data, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

func (c *Cache) Compute(snap *domain.Snapshot, today time.Time) Dashboard {
	key, err := Key(snap, today)
	if err != nil {
		return Compute(snap, today)
	}

	c.mu.Lock()
	if v, ok := c.lru.Get(key); ok {
		c.hits++
		c.mu.Unlock()
		return v.(Dashboard)
	}
	c.misses++
	c.mu.Unlock()

	d := Compute(snap, today)

	c.mu.Lock()
	c.lru.Add(key, d)
	c.mu.Unlock()

	return d
}

// Stats reports hits and misses since creation.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
