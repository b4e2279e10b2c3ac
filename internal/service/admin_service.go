package service

import (
	"context"

	"shop-orders/internal/model"
	"shop-orders/internal/repository"

	"github.com/rs/zerolog"
)

const msgStatusUpdated = "Status updated"

// adminService implements AdminService.
type adminService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(orderRepo repository.OrderRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "admin").Logger(),
	}
}

// ListOrders returns orders newest first, optionally restricted to status.
func (s *adminService) ListOrders(ctx context.Context, status string) ([]model.Order, error) {
	if status != "" && !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	orders, err := s.orderRepo.List(ctx, status)
	if err != nil {
		s.logger.Error().Err(err).Str("status", status).Msg("failed to list orders")
		return nil, model.NewStorageError("failed to list orders", err)
	}

	s.logger.Debug().Int("count", len(orders)).Str("status", status).Msg("retrieved orders")
	return orders, nil
}

// UpdateStatus sets a new status on an existing order.
func (s *adminService) UpdateStatus(ctx context.Context, req *model.StatusUpdateRequest) (*model.StatusUpdateResponse, error) {
	if req == nil || req.OrderID <= 0 || req.Status == "" {
		return nil, model.NewValidationError("order_id", model.MsgMissingStatusFields)
	}

	if !model.IsValidStatus(req.Status) {
		s.logger.Warn().Str("status", req.Status).Int64("order_id", req.OrderID).Msg("invalid order status")
		return nil, model.ErrInvalidStatus
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, req.OrderID, req.Status)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", req.OrderID).Msg("failed to update order status")
		return nil, model.NewStorageError("failed to update order status", err)
	}

	if !updated {
		s.logger.Debug().Int64("order_id", req.OrderID).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Int64("order_id", req.OrderID).
		Str("status", req.Status).
		Msg("order status updated")

	return &model.StatusUpdateResponse{
		Success: true,
		Message: msgStatusUpdated,
	}, nil
}
