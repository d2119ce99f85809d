package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ainadeul/internal/place/models"
	"ainadeul/internal/platform/metrics"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

const redisPlaceKeyPrefix = "place:detail:"

// RedisCache holds place details in Redis with TTL-based eviction.
type RedisCache struct {
	client   *redis.Client
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

// NewRedisCache constructs a Redis-backed detail cache; metrics may be nil.
func NewRedisCache(client *redis.Client, cacheTTL time.Duration, metrics *metrics.Metrics) *RedisCache {
	return &RedisCache{client: client, cacheTTL: cacheTTL, metrics: metrics}
}

// Find returns sentinel.ErrNotFound on a cache miss.
func (c *RedisCache) Find(ctx context.Context, placeID domain.PlaceID) (*models.Place, error) {
	data, err := c.client.Get(ctx, placeKey(placeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.recordMiss()
			return nil, fmt.Errorf("place not cached: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find place cache: %w", err)
	}

	var place models.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return nil, fmt.Errorf("decode place cache: %w", err)
	}
	c.recordHit()
	return &place, nil
}

func (c *RedisCache) Save(ctx context.Context, place *models.Place) error {
	if place == nil {
		return fmt.Errorf("place is required")
	}
	payload, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("encode place cache: %w", err)
	}
	if err := c.client.Set(ctx, placeKey(place.ID), payload, c.cacheTTL).Err(); err != nil {
		return fmt.Errorf("save place cache: %w", err)
	}
	return nil
}

func (c *RedisCache) recordHit() {
	if c.metrics != nil {
		c.metrics.IncrementPlaceCacheHit()
	}
}

func (c *RedisCache) recordMiss() {
	if c.metrics != nil {
		c.metrics.IncrementPlaceCacheMiss()
	}
}

func placeKey(placeID domain.PlaceID) string {
	return redisPlaceKeyPrefix + placeID.String()
}
