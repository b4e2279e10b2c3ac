package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-orders/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const keyPrefix = "catalog:products:"

// redisCache implements ProductCache on top of Redis.
type redisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache connects to the Redis instance at url and verifies it with a ping.
func NewRedisCache(ctx context.Context, url string, ttl time.Duration, logger zerolog.Logger) (ProductCache, error) {
	logger = logger.With().Str("component", "product-cache").Logger()

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Dur("ttl", ttl).
		Msg("product cache connected")

	return &redisCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Get returns the cached products for key.
func (c *redisCache) Get(ctx context.Context, key string) ([]model.Product, bool, error) {
	val, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(val, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	c.logger.Debug().Str("key", key).Int("count", len(products)).Msg("cache hit")
	return products, true, nil
}

// Set stores products under key with the configured TTL.
func (c *redisCache) Set(ctx context.Context, key string, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.rdb.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Invalidate deletes every key under the catalogue prefix.
func (c *redisCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}

	c.logger.Info().Int("count", len(keys)).Msg("product cache invalidated")
	return nil
}

// Close closes the Redis client.
func (c *redisCache) Close() error {
	return c.rdb.Close()
}
