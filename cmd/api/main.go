package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-orders/internal/cache"
	"shop-orders/internal/catalog"
	"shop-orders/internal/config"
	"shop-orders/internal/database"
	"shop-orders/internal/handler"
	"shop-orders/internal/ordernum"
	"shop-orders/internal/repository"
	"shop-orders/internal/router"
	"shop-orders/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shop-orders API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize catalogue cache
	productCache := newProductCache(ctx, cfg.Cache, logger)
	defer productCache.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	if cfg.Catalog.SeedEnabled {
		seeder := catalog.NewSeeder(newCatalogLoader(ctx, cfg.S3, logger), productRepo, productCache, logger)
		if _, err := seeder.Seed(ctx, cfg.Catalog.SeedFiles); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// Initialize services
	productService := service.NewProductService(productRepo, productCache, logger)
	orderService := service.NewOrderService(orderRepo, ordernum.NewGenerator(), cfg.Order.Timeout(), logger)
	adminService := service.NewAdminService(orderRepo, logger)

	// Initialize HTTP handlers
	healthHandler := handler.NewHealthHandler(pool, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	// Initialize router
	mux := router.New(healthHandler, productHandler, orderHandler, adminHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newProductCache connects to Redis when caching is enabled. An unreachable
// Redis disables caching rather than failing startup.
func newProductCache(ctx context.Context, cfg config.CacheConfig, logger zerolog.Logger) cache.ProductCache {
	if !cfg.Enabled {
		logger.Info().Msg("catalog cache disabled")
		return cache.NewNopCache()
	}

	productCache, err := cache.NewRedisCache(ctx, cfg.RedisURL, cfg.Expiry(), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to connect to Redis, catalog cache disabled")
		return cache.NewNopCache()
	}
	return productCache
}

// newCatalogLoader reads feeds from S3 with a local fallback when S3 is
// enabled, and from the local file system otherwise.
func newCatalogLoader(ctx context.Context, cfg config.S3Config, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)

	if !cfg.Enabled {
		logger.Info().Msg("using local file system for catalog feeds (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Prefix, logger)
}
