package api

import (
	"context"

	"github.com/frontridge/frontridge-api/internal/api/metrics"
	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

// instrumentedWorksCache decorates a WorksCache with the cache read counters.
// Keeping the counters here leaves the core services free of metrics wiring.
type instrumentedWorksCache struct {
	next ports.WorksCache
}

func instrumentWorksCache(next ports.WorksCache) ports.WorksCache {
	return &instrumentedWorksCache{next: next}
}

func (c *instrumentedWorksCache) Get(ctx context.Context) ([]*domain.Work, bool, error) {
	works, ok, err := c.next.Get(ctx)
	switch {
	case err != nil:
		metrics.WorksCacheRequestsTotal.WithLabelValues("error").Inc()
	case ok:
		metrics.WorksCacheRequestsTotal.WithLabelValues("hit").Inc()
	default:
		metrics.WorksCacheRequestsTotal.WithLabelValues("miss").Inc()
	}
	return works, ok, err
}

func (c *instrumentedWorksCache) Set(ctx context.Context, works []*domain.Work) error {
	return c.next.Set(ctx, works)
}

func (c *instrumentedWorksCache) Invalidate(ctx context.Context) error {
	return c.next.Invalidate(ctx)
}
