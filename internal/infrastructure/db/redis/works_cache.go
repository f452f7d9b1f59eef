package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

const worksCacheKey = "cache:works"

// WorksCache stores the serialized works list in Redis with a fixed TTL, so
// multiple API replicas share one cache. Expiry is delegated to Redis.
type WorksCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWorksCache creates a WorksCache wrapping the given Redis client.
func NewWorksCache(client *redis.Client, ttl time.Duration) *WorksCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &WorksCache{client: client, ttl: ttl}
}

func (c *WorksCache) Get(ctx context.Context) ([]*domain.Work, bool, error) {
	raw, err := c.client.Get(ctx, worksCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("works cache get: %w", err)
	}

	var works []*domain.Work
	if err := json.Unmarshal(raw, &works); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, fmt.Errorf("works cache decode: %w", err)
	}
	return works, true, nil
}

func (c *WorksCache) Set(ctx context.Context, works []*domain.Work) error {
	raw, err := json.Marshal(works)
	if err != nil {
		return fmt.Errorf("works cache encode: %w", err)
	}
	return c.client.Set(ctx, worksCacheKey, raw, c.ttl).Err()
}

func (c *WorksCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, worksCacheKey).Err()
}
