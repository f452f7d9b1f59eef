package service

import (
	"context"
	"testing"
	"time"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

func TestMemoryWorksCache_MissWhenEmpty(t *testing.T) {
	cache := NewMemoryWorksCache(time.Minute)

	if _, ok, err := cache.Get(context.Background()); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryWorksCache_HitWithinTTL(t *testing.T) {
	cache := NewMemoryWorksCache(time.Minute)
	works := []*domain.Work{{ID: "a", Name: "Lobby"}}

	if err := cache.Set(context.Background(), works); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := cache.Get(context.Background())
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected cached data: %+v", got)
	}
}

func TestMemoryWorksCache_ExpiresAfterTTL(t *testing.T) {
	cache := NewMemoryWorksCache(time.Minute)
	base := time.Now()
	cache.now = func() time.Time { return base }

	_ = cache.Set(context.Background(), []*domain.Work{{ID: "a"}})

	cache.now = func() time.Time { return base.Add(59 * time.Second) }
	if _, ok, _ := cache.Get(context.Background()); !ok {
		t.Fatalf("expected hit before TTL")
	}

	cache.now = func() time.Time { return base.Add(time.Minute) }
	if _, ok, _ := cache.Get(context.Background()); ok {
		t.Fatalf("expected miss at TTL boundary")
	}
}

func TestMemoryWorksCache_Invalidate(t *testing.T) {
	cache := NewMemoryWorksCache(time.Minute)

	_ = cache.Set(context.Background(), []*domain.Work{{ID: "a"}})
	if err := cache.Invalidate(context.Background()); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok, _ := cache.Get(context.Background()); ok {
		t.Fatalf("expected miss after invalidation")
	}
}

func TestMemoryWorksCache_TTLFallback(t *testing.T) {
	cache := NewMemoryWorksCache(0)
	if cache.ttl != DefaultWorksCacheTTL {
		t.Fatalf("expected default TTL, got %v", cache.ttl)
	}
}
