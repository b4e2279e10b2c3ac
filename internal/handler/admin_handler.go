package handler

import (
	"net/http"

	"shop-orders/internal/model"
	"shop-orders/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles the back-office order endpoints.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// ListOrders handles GET /api/admin/orders[?status=] requests.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, model.OrderListResponse{Orders: orders})
}

// UpdateStatus handles PUT /api/admin/orders requests.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusUpdateRequest
	if status, message, ok := decodeJSON(w, r, &req); !ok {
		writeError(w, status, message, h.logger)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
