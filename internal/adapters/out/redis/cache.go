// Package redis implements the read-through cache backend on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

const DefaultPingTimeout = 2 * time.Second

type Config struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PingTimeout time.Duration
}

// Cache implements ports.CacheBackend with GET and SET ... EX.
type Cache struct {
	client *redis.Client
}

// NewCache builds the client and pings Redis once. A failed ping is only
// logged: go-redis redials on demand and readers fall back to the store
// until Redis answers.
func NewCache(ctx context.Context, config Config, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PingTimeout <= 0 {
		config.PingTimeout = DefaultPingTimeout
	}

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.PingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WarnContext(ctx, "Redis is unreachable, serving reads from the database",
			"addr", addr, "error", err)
	}

	return &Cache{client: client}
}

// NewCacheWithClient wraps an existing client.
func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (c *Cache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
