package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"fishcast/datasource"
	"fishcast/models"
)

// CachedTideSource wraps a TideSource and caches its per-day results.
// Tide extrema for a fixed day do not change, and the free WorldTides tier is
// tightly limited, so repeated day selections must not re-hit the provider.
type CachedTideSource struct {
	source         datasource.TideSource
	cache          map[string]tideCacheEntry // key is lat,lon:date
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
}

// tideCacheEntry represents a cached extrema list with its timestamp.
type tideCacheEntry struct {
	Events    []models.TideEvent
	Timestamp time.Time
}

// NewCachedTideSource creates a new cached wrapper around a tide source.
func NewCachedTideSource(source datasource.TideSource, cacheDuration time.Duration) *CachedTideSource {
	return &CachedTideSource{
		source:        source,
		cache:         make(map[string]tideCacheEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying source with a [Cached] suffix.
func (c *CachedTideSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// FetchExtremes fetches tide extrema, using the cache when available.
// Errors are not cached: a failed day is retried on the next request.
func (c *CachedTideSource) FetchExtremes(ctx context.Context, coords models.Coords, dateKey string) ([]models.TideEvent, error) {
	cacheKey := fmt.Sprintf("%.4f,%.4f:%s", coords.Lat, coords.Lon, dateKey)

	c.mutex.RLock()
	entry, found := c.cache[cacheKey]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()

		log.Debug().Str("key", cacheKey).Str("source", c.source.Name()).
			Dur("age", time.Since(entry.Timestamp).Round(time.Second)).
			Msg("tide cache hit")
		return entry.Events, nil
	}

	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	log.Debug().Str("key", cacheKey).Str("source", c.source.Name()).
		Msg("tide cache miss, fetching fresh data")

	events, err := c.source.FetchExtremes(ctx, coords, dateKey)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.cache[cacheKey] = tideCacheEntry{
		Events:    events,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return events, nil
}

// CacheStats returns statistics about cache hits and misses.
func (c *CachedTideSource) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedTideSource implements the TideSource interface.
var _ datasource.TideSource = (*CachedTideSource)(nil)
