package repository

import (
	"context"

	"shop-orders/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List returns the products matching filter, ordered by name.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// UpsertMany inserts or updates products keyed by VIN in a single
	// transaction and returns the number of rows written.
	UpsertMany(ctx context.Context, products []model.Product) (int, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts an order header within the provided transaction and
	// fills in the store-assigned ID and timestamps.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts order items, in slice order, within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// List retrieves orders newest first with their items. An empty status
	// returns every order.
	List(ctx context.Context, status string) ([]model.Order, error)

	// UpdateStatus overwrites an order's status and stamps updated_at.
	// It reports whether a row was changed.
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
}
