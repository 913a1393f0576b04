package ports

import (
	"context"
	"time"
)

// CacheBackend is a key/value store with per-entry expiry used by the read-through cache.
type CacheBackend interface {
	// Get returns the stored bytes and true on a hit, nil and false on a miss.
	// Errors are reserved for an unreachable or failing backend.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// SetWithTTL stores value under key, expiring after ttl.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
