package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// RankingCache is a thread-safe LRU cache for exported ranking
// artifacts. Rankings are immutable once written, so a hit never needs
// revalidation against the storage backend.
type RankingCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*vocab.Ranking
	order   []string // oldest first
}

// NewRankingCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 20.
func NewRankingCache(maxSize int) *RankingCache {
	if maxSize <= 0 {
		maxSize = 20
	}
	return &RankingCache{
		maxSize: maxSize,
		entries: make(map[string]*vocab.Ranking),
	}
}

// NewRankingCacheFromEnv creates a cache with size from the
// RANKING_CACHE_SIZE env var.
func NewRankingCacheFromEnv() *RankingCache {
	size := 20
	if v := os.Getenv("RANKING_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewRankingCache(size)
}

// Get retrieves a ranking from the cache, or nil if not found.
func (c *RankingCache) Get(id string) *vocab.Ranking {
	c.mu.Lock()
	defer c.mu.Unlock()

	ranking, ok := c.entries[id]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return ranking
}

// Put adds a ranking to the cache, evicting the oldest if full.
func (c *RankingCache) Put(id string, ranking *vocab.Ranking) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; ok {
		c.entries[id] = ranking
		c.moveToEnd(id)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = ranking
	c.order = append(c.order, id)
}

// Len returns the number of cached rankings.
func (c *RankingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *RankingCache) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
