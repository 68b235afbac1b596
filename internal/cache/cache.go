package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/domain"
)

// DefaultTTL is the time-to-live applied to entries stored without an
// explicit TTL.
const DefaultTTL = 600 * time.Second

// TaskCache caches the result of "all tasks for owner" queries, keyed
// by owner ID. Entries are never authoritative; an expired or missing
// entry simply falls through to the store.
//
// Implementations must be safe for concurrent use and must never block
// or fail a request: the interface deliberately has no error returns.
type TaskCache interface {
	// Get returns the cached task list for the owner, or (nil, false)
	// if no entry exists or the entry has expired.
	Get(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, bool)

	// Set stores the task list for the owner, overwriting any existing
	// entry. A ttl <= 0 uses the implementation's default.
	Set(ctx context.Context, ownerID uuid.UUID, tasks []*domain.Task, ttl time.Duration)

	// Invalidate removes the owner's entry immediately, forcing the
	// next read to consult the store.
	Invalidate(ctx context.Context, ownerID uuid.UUID)
}

// NoopCache is a TaskCache that caches nothing. Every Get is a miss.
// Useful in tests and for running with caching disabled.
type NoopCache struct{}

// NewNoopCache creates a new NoopCache.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

var _ TaskCache = (*NoopCache)(nil)

// Get implements TaskCache.Get; it always misses.
func (c *NoopCache) Get(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, bool) {
	return nil, false
}

// Set implements TaskCache.Set; it discards the entry.
func (c *NoopCache) Set(ctx context.Context, ownerID uuid.UUID, tasks []*domain.Task, ttl time.Duration) {
}

// Invalidate implements TaskCache.Invalidate; it does nothing.
func (c *NoopCache) Invalidate(ctx context.Context, ownerID uuid.UUID) {}
