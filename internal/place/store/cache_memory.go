package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ainadeul/internal/place/models"
	"ainadeul/internal/platform/metrics"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

type cachedPlace struct {
	place    *models.Place
	storedAt time.Time
}

// InMemoryCache is the detail cache used when Redis is not configured.
type InMemoryCache struct {
	mu       sync.RWMutex
	places   map[domain.PlaceID]cachedPlace
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewInMemoryCache(cacheTTL time.Duration, metrics *metrics.Metrics) *InMemoryCache {
	return &InMemoryCache{
		places:   make(map[domain.PlaceID]cachedPlace),
		cacheTTL: cacheTTL,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Find returns sentinel.ErrNotFound when the entry is missing or older than the TTL.
func (c *InMemoryCache) Find(_ context.Context, placeID domain.PlaceID) (*models.Place, error) {
	c.mu.RLock()
	cached, ok := c.places[placeID]
	c.mu.RUnlock()
	if !ok || c.now().Sub(cached.storedAt) >= c.cacheTTL {
		if c.metrics != nil {
			c.metrics.IncrementPlaceCacheMiss()
		}
		return nil, fmt.Errorf("place not cached: %w", sentinel.ErrNotFound)
	}
	if c.metrics != nil {
		c.metrics.IncrementPlaceCacheHit()
	}
	return clonePlace(cached.place), nil
}

func (c *InMemoryCache) Save(_ context.Context, place *models.Place) error {
	if place == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.places[place.ID] = cachedPlace{place: clonePlace(place), storedAt: c.now()}
	return nil
}
