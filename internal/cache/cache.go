// Package cache provides a read-through cache for catalogue queries.
package cache

import (
	"context"

	"shop-orders/internal/model"
)

// ProductCache stores catalogue query results keyed by normalized filter.
type ProductCache interface {
	// Get returns the cached products for key. The boolean is false on a miss.
	Get(ctx context.Context, key string) ([]model.Product, bool, error)

	// Set stores products under key.
	Set(ctx context.Context, key string, products []model.Product) error

	// Invalidate drops every cached catalogue entry.
	Invalidate(ctx context.Context) error

	// Close releases resources held by the cache.
	Close() error
}

// nopCache is used when caching is disabled.
type nopCache struct{}

// NewNopCache returns a cache that never stores anything.
func NewNopCache() ProductCache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string) ([]model.Product, bool, error) { return nil, false, nil }
func (nopCache) Set(context.Context, string, []model.Product) error         { return nil }
func (nopCache) Invalidate(context.Context) error                           { return nil }
func (nopCache) Close() error                                               { return nil }
