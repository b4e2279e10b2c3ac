package service

import (
	"context"

	"shop-orders/internal/cache"
	"shop-orders/internal/model"
	"shop-orders/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	cache       cache.ProductCache
	logger      zerolog.Logger
}

// NewProductService creates a new product service reading through cache.
func NewProductService(productRepo repository.ProductRepository, productCache cache.ProductCache, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       productCache,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List returns the products matching filter. Cache failures are logged and
// the query falls through to the repository.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	filter = filter.Normalize()
	key := filter.CacheKey()

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("cache_key", key).Msg("catalog cache read failed")
	} else if ok {
		s.logger.Debug().Str("cache_key", key).Int("count", len(cached)).Msg("catalog cache hit")
		return cached, nil
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Str("search", filter.Search).
			Str("model", filter.Model).
			Str("category", filter.Category).
			Msg("failed to list products")
		return nil, model.NewStorageError("failed to list products", err)
	}

	if err := s.cache.Set(ctx, key, products); err != nil {
		s.logger.Warn().Err(err).Str("cache_key", key).Msg("catalog cache write failed")
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("cache_key", key).
		Msg("retrieved products")

	return products, nil
}
