package repository

import (
	"context"
	"errors"
	"fmt"

	"shop-orders/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the SQLSTATE Postgres reports for duplicate keys.
const uniqueViolation = "23505"

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts an order header within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (order_number, customer_name, customer_phone, customer_email, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerEmail,
		order.TotalAmount,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		event := r.logger.Error().Err(err).Str("order_number", order.OrderNumber)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			event = event.Str("constraint", pgErr.ConstraintName)
		}
		event.Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, product_name, product_vin, product_model, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.ProductName, item.ProductVIN, item.ProductModel, item.Price, item.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if err := results.QueryRow().Scan(&items[i].ID); err != nil {
			r.logger.Error().
				Err(err).
				Int64("order_id", items[i].OrderID).
				Int("item_index", i).
				Str("product_vin", items[i].ProductVIN).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item %d: %w", i+1, err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// List retrieves orders newest first with their items aggregated in insertion order.
func (r *orderRepository) List(ctx context.Context, status string) ([]model.Order, error) {
	query := `
		SELECT
			o.id, o.order_number, o.customer_name, o.customer_phone,
			o.customer_email, o.total_amount, o.status, o.created_at, o.updated_at,
			COALESCE(
				json_agg(
					json_build_object(
						'product_name', oi.product_name,
						'product_vin', oi.product_vin,
						'product_model', oi.product_model,
						'price', oi.price,
						'quantity', oi.quantity
					) ORDER BY oi.id
				) FILTER (WHERE oi.id IS NOT NULL),
				'[]'::json
			) AS items
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE ($1::text = '' OR o.status = $1::text)
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id DESC
	`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		r.logger.Error().Err(err).Str("status", status).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.CustomerEmail,
			&o.TotalAmount,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.Items,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if o.Items == nil {
			o.Items = []model.OrderItem{}
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus overwrites an order's status and stamps updated_at.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", id).
			Str("status", status).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("order_id", id).Msg("order not found for status update")
		return false, nil
	}

	r.logger.Debug().
		Int64("order_id", id).
		Str("status", status).
		Msg("order status updated")

	return true, nil
}
