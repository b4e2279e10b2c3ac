package service

import (
	"context"

	"shop-orders/internal/model"
)

// ProductService defines catalogue read operations.
type ProductService interface {
	// List returns the products matching filter, ordered by name.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
}

// OrderService defines checkout operations.
type OrderService interface {
	// CreateOrder validates a cart and persists it as a pending order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)
}

// AdminService defines back-office order operations.
type AdminService interface {
	// ListOrders returns orders newest first with their items. An empty status
	// returns every order.
	ListOrders(ctx context.Context, status string) ([]model.Order, error)

	// UpdateStatus changes the status of an existing order.
	UpdateStatus(ctx context.Context, req *model.StatusUpdateRequest) (*model.StatusUpdateResponse, error)
}
