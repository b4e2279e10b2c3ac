package service

import (
	"context"
	"time"

	"shop-orders/internal/model"
	"shop-orders/internal/ordernum"
	"shop-orders/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	numbers   *ordernum.Generator
	txTimeout time.Duration
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. txTimeout bounds the whole
// checkout transaction.
func NewOrderService(
	orderRepo repository.OrderRepository,
	numbers *ordernum.Generator,
	txTimeout time.Duration,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		numbers:   numbers,
		txTimeout: txTimeout,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates the cart and writes the order header and its items in
// one transaction.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if err := validateOrderRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("rejected order request")
		return nil, err
	}

	s.checkTotal(req)

	order := &model.Order{
		OrderNumber:   s.numbers.Next(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		TotalAmount:   req.TotalAmount,
		Status:        model.StatusPending,
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	// Start transaction
	tx, err := s.orderRepo.BeginTx(txCtx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, model.NewStorageError("failed to begin transaction", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
				s.logger.Error().Err(rbErr).Str("order_number", order.OrderNumber).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(txCtx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to create order")
		return nil, model.NewStorageError("failed to create order", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			OrderID:      order.ID,
			ProductName:  *item.ProductName,
			ProductVIN:   *item.ProductVIN,
			ProductModel: *item.ProductModel,
			Price:        *item.Price,
			Quantity:     *item.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(txCtx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_number", order.OrderNumber).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, model.NewStorageError("failed to create order items", err)
	}

	// Commit transaction
	if err = tx.Commit(txCtx); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to commit transaction")
		return nil, model.NewStorageError("failed to commit order", err)
	}

	s.logger.Info().
		Str("order_number", order.OrderNumber).
		Int64("order_id", order.ID).
		Int("item_count", len(items)).
		Msg("order created successfully")

	return &model.OrderResponse{
		Success:     true,
		OrderNumber: order.OrderNumber,
		OrderID:     order.ID,
	}, nil
}

// checkTotal logs when the submitted total disagrees with the item lines.
// The submitted value is stored as is.
func (s *orderService) checkTotal(req *model.OrderRequest) {
	sum := decimal.Zero
	for _, item := range req.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(*item.Quantity))))
	}

	if !sum.Equal(req.TotalAmount) {
		s.logger.Warn().
			Str("total_amount", req.TotalAmount.String()).
			Str("computed_total", sum.String()).
			Msg("order total does not match item lines")
	}
}
