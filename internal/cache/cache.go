// Package cache provides the keyed TTL store shared by the discovery
// repositories.
package cache

import (
	"context"
	"time"
)

// Manager is a keyed TTL store. An expired entry is indistinguishable from an
// absent one (implementations evict on read). Keys are independent; writes to
// the same key are last-write-wins.
type Manager interface {
	// Get returns the stored value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear drops every key owned by this manager.
	Clear(ctx context.Context) error
	Exists(ctx context.Context, key string) (bool, error)
}
