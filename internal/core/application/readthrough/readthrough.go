// Package readthrough implements the get-or-populate cache used in front of the slow
// shipment and user lookups. Values are stored as JSON with a per-entry TTL. The cache
// is never the system of record: any backend failure or corrupt entry falls back to
// the producer and is only logged.
package readthrough

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/metrics"
)

var ErrBackendIsRequired = errors.New("readthrough: cache backend is required")

// Cache binds a backend to the logger and metrics used on every lookup.
type Cache struct {
	backend ports.CacheBackend
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New returns a cache over backend. m may be nil.
func New(backend ports.CacheBackend, logger *slog.Logger, m *metrics.Metrics) (*Cache, error) {
	if backend == nil {
		return nil, ErrBackendIsRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		backend: backend,
		logger:  logger.With("component", "readthrough"),
		metrics: m,
	}, nil
}

// GetOrPopulate returns the value cached under key, or calls producer, stores its
// result for ttl and returns it. Producer errors are returned as is and nothing
// is stored. Concurrent misses may both call producer; the last write wins.
//
// Example:
//
//	details, err := readthrough.GetOrPopulate(ctx, cache, "shipment-status:42", 2*time.Minute,
//	    func(ctx context.Context) (*ShipmentDetails, error) { return inner.Handle(ctx, query) })
func GetOrPopulate[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	producer func(ctx context.Context) (T, error),
) (T, error) {
	name := cacheName(key)

	raw, hit, err := c.backend.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.RecordCache(name, metrics.CacheError)
		c.logger.WarnContext(ctx, "cache read failed, falling back to store", "key", key, "error", err)
	case hit:
		var value T
		decodeErr := json.Unmarshal(raw, &value)
		if decodeErr == nil {
			c.metrics.RecordCache(name, metrics.CacheHit)
			return value, nil
		}
		c.metrics.RecordCache(name, metrics.CacheError)
		c.logger.WarnContext(ctx, "cached value is corrupt, repopulating", "key", key, "error", decodeErr)
	default:
		c.metrics.RecordCache(name, metrics.CacheMiss)
	}

	value, err := producer(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "value is not cacheable", "key", key, "error", err)
		return value, nil
	}
	if err := c.backend.SetWithTTL(ctx, key, encoded, ttl); err != nil {
		c.metrics.RecordCache(name, metrics.CacheError)
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}

	return value, nil
}

// cacheName is the key prefix before the first ':', used as the metrics label.
func cacheName(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
