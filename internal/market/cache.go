package market

import (
	"context"
	"sync"
	"time"

	"strompreis/internal/metrics"
	"strompreis/internal/models"
)

// Cache wraps a Fetcher and memoizes responses per exact UTC fetch window.
// Freshness is bounded by the TTL; correctness of the grids never depends on
// the cache, only on the points it hands back.
type Cache struct {
	inner Fetcher
	ttl   time.Duration

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

type cacheKey struct {
	startMS int64
	endMS   int64
}

type cacheEntry struct {
	points    []models.PricePoint
	fetchedAt time.Time
}

// NewCache creates a range cache around inner with the given TTL.
func NewCache(inner Fetcher, ttl time.Duration) *Cache {
	return &Cache{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// FetchRange serves the window from cache when a fresh entry exists and
// delegates upstream otherwise. Failed fetches are never cached.
func (c *Cache) FetchRange(ctx context.Context, start, end time.Time) ([]models.PricePoint, error) {
	key := cacheKey{startMS: start.UnixMilli(), endMS: end.UnixMilli()}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.fetchedAt) < c.ttl {
		c.mu.Unlock()
		metrics.CacheHits.Inc()
		return entry.points, nil
	}
	c.mu.Unlock()
	metrics.CacheMisses.Inc()

	points, err := c.inner.FetchRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{points: points, fetchedAt: time.Now()}
	c.mu.Unlock()
	return points, nil
}
