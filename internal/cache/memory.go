package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/domain"
)

// entry holds one owner's cached task list and its absolute expiry.
type entry struct {
	tasks     []*domain.Task
	expiresAt time.Time
}

// MemoryCache is an in-process TaskCache backed by a mutex-protected
// map. Expired entries are dropped lazily on read; there is no
// background janitor, so memory is bounded by the number of distinct
// owners seen between restarts.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[uuid.UUID]entry
	defaultTTL time.Duration
	timeFunc   func() time.Time // Injectable for testing
}

var _ TaskCache = (*MemoryCache)(nil)

// NewMemoryCache creates a MemoryCache with the given default TTL.
// A defaultTTL <= 0 falls back to DefaultTTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &MemoryCache{
		entries:    make(map[uuid.UUID]entry),
		defaultTTL: defaultTTL,
		timeFunc:   time.Now,
	}
}

// Get implements TaskCache.Get.
func (c *MemoryCache) Get(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, bool) {
	c.mu.RLock()
	e, ok := c.entries[ownerID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.timeFunc().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// replaced the entry since we released the read lock.
		if cur, ok := c.entries[ownerID]; ok && c.timeFunc().After(cur.expiresAt) {
			delete(c.entries, ownerID)
		}
		c.mu.Unlock()
		return nil, false
	}

	// Copy the slice header so callers appending to the result cannot
	// corrupt the cached entry.
	tasks := make([]*domain.Task, len(e.tasks))
	copy(tasks, e.tasks)
	return tasks, true
}

// Set implements TaskCache.Set.
func (c *MemoryCache) Set(ctx context.Context, ownerID uuid.UUID, tasks []*domain.Task, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	stored := make([]*domain.Task, len(tasks))
	copy(stored, tasks)

	c.mu.Lock()
	c.entries[ownerID] = entry{
		tasks:     stored,
		expiresAt: c.timeFunc().Add(ttl),
	}
	c.mu.Unlock()
}

// Invalidate implements TaskCache.Invalidate.
func (c *MemoryCache) Invalidate(ctx context.Context, ownerID uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, ownerID)
	c.mu.Unlock()
}

// Len returns the number of entries currently held, including entries
// that have expired but not yet been dropped.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
