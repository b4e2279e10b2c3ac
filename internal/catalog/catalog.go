// Package catalog loads product feeds and seeds them into the products table.
//
// A feed is a gzipped JSON-lines file with one product per line, using the
// same keys the catalogue API returns (name, vin, category, price, image,
// model, inStock, description). Blank lines are ignored.
package catalog

import (
	"context"

	"shop-orders/internal/model"
)

// Loader reads a product feed.
type Loader interface {
	// Load reads the feed at path and returns its products in file order.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// Store persists seeded products.
type Store interface {
	UpsertMany(ctx context.Context, products []model.Product) (int, error)
}

// Invalidator drops cached catalogue queries after a seed.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
