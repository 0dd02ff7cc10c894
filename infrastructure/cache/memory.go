package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

// MemorySnapshotCache é a alternativa sem Redis, válida apenas para uma instância
type MemorySnapshotCache struct {
	mu       sync.RWMutex
	snapshot *domain.DashboardKPIs
	storedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySnapshotCache(ttl time.Duration) *MemorySnapshotCache {
	return &MemorySnapshotCache{ttl: ttl, now: time.Now}
}

func (c *MemorySnapshotCache) Get(_ context.Context) (*domain.DashboardKPIs, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil || c.now().Sub(c.storedAt) > c.ttl {
		return nil, false, nil
	}

	clone := *c.snapshot
	return &clone, true, nil
}

func (c *MemorySnapshotCache) Set(_ context.Context, kpis *domain.DashboardKPIs) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	clone := *kpis
	c.snapshot = &clone
	c.storedAt = c.now()
	return nil
}
