package service

import (
	"context"
	"sync"
	"time"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// DefaultWorksCacheTTL mirrors the five-minute works cache the public site
// relied on before the API cached server-side.
const DefaultWorksCacheTTL = 5 * time.Minute

// MemoryWorksCache is the in-process works list cache: a snapshot of the list
// plus the instant it was fetched, expiring after a fixed TTL.
type MemoryWorksCache struct {
	mu        sync.RWMutex
	data      []*domain.Work
	fetchedAt time.Time

	ttl time.Duration
	now func() time.Time
}

func NewMemoryWorksCache(ttl time.Duration) *MemoryWorksCache {
	if ttl <= 0 {
		ttl = DefaultWorksCacheTTL
	}
	return &MemoryWorksCache{ttl: ttl, now: time.Now}
}

func (c *MemoryWorksCache) Get(_ context.Context) ([]*domain.Work, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false, nil
	}
	return c.data, true, nil
}

func (c *MemoryWorksCache) Set(_ context.Context, works []*domain.Work) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = works
	c.fetchedAt = c.now()
	return nil
}

func (c *MemoryWorksCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = nil
	c.fetchedAt = time.Time{}
	return nil
}
