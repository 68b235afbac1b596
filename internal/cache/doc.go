// Package cache provides the per-owner task list result cache. The
// cache is a best-effort performance optimization: the store remains
// the source of truth, and every mutation invalidates the owner's entry
// before the mutation is acknowledged.
package cache
