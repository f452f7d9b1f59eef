package ports

import (
	"context"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// WorksCache caches the public works list between reads. Implementations are
// internally synchronized; a miss is reported as (nil, false, nil).
type WorksCache interface {
	Get(ctx context.Context) ([]*domain.Work, bool, error)
	Set(ctx context.Context, works []*domain.Work) error
	Invalidate(ctx context.Context) error
}
