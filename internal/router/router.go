package router

import (
	"net/http"

	"shop-orders/internal/handler"
	"shop-orders/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	healthHandler *handler.HealthHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.BrowserPreflight([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Catalogue
		r.Get("/products", productHandler.List)
		r.Options("/products", middleware.Preflight(http.MethodGet))

		// Checkout
		r.Post("/orders", orderHandler.Create)
		r.Options("/orders", middleware.Preflight(http.MethodPost))

		// Back office
		r.Get("/admin/orders", adminHandler.ListOrders)
		r.Put("/admin/orders", adminHandler.UpdateStatus)
		r.Options("/admin/orders", middleware.Preflight(http.MethodGet, http.MethodPut))
	})

	return r
}
