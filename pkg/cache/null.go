package cache

import (
	"context"
	"time"
)

// NullCache discards every write and misses every read. It backs the
// --no-cache flag and keeps pipeline tests deterministic.
type NullCache struct{}

// NewNullCache creates a cache that never stores anything.
func NewNullCache() Cache { return &NullCache{} }

// Get always misses.
func (c *NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op.
func (c *NullCache) Delete(context.Context, string) error { return nil }

// Close is a no-op.
func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
