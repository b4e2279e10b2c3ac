package catalog

import (
	"context"
	"fmt"
	"sync"

	"shop-orders/internal/model"

	"github.com/rs/zerolog"
)

// Seeder loads product feeds and writes them to the store.
type Seeder struct {
	loader      Loader
	store       Store
	invalidator Invalidator
	logger      zerolog.Logger
}

// NewSeeder creates a new catalogue seeder. invalidator may be nil.
func NewSeeder(loader Loader, store Store, invalidator Invalidator, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:      loader,
		store:       store,
		invalidator: invalidator,
		logger:      logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

// Seed loads every feed in paths concurrently, merges them and upserts the
// result. When the same VIN appears more than once the occurrence from the
// later path (or later line) wins. Nothing is written if any feed fails.
func (s *Seeder) Seed(ctx context.Context, paths []string) (int, error) {
	s.logger.Info().Int("feed_count", len(paths)).Msg("seeding catalog")

	type loadResult struct {
		index    int
		products []model.Product
		err      error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			products, err := s.loader.Load(ctx, path)
			resultChan <- loadResult{
				index:    index,
				products: products,
				err:      err,
			}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in path order
	results := make([][]model.Product, len(paths))
	for result := range resultChan {
		if result.err != nil {
			s.logger.Error().
				Err(result.err).
				Str("feed", paths[result.index]).
				Msg("failed to load catalog feed")
			return 0, fmt.Errorf("failed to load catalog feed %s: %w", paths[result.index], result.err)
		}
		results[result.index] = result.products
	}

	merged := merge(results)
	if len(merged) == 0 {
		s.logger.Warn().Msg("catalog feeds contained no products")
		return 0, nil
	}

	n, err := s.store.UpsertMany(ctx, merged)
	if err != nil {
		return 0, fmt.Errorf("failed to store catalog: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate catalog cache")
		}
	}

	s.logger.Info().Int("products", n).Msg("catalog seeded")
	return n, nil
}

// merge flattens feeds keeping the last occurrence of each VIN at the position
// of its first occurrence.
func merge(feeds [][]model.Product) []model.Product {
	position := map[string]int{}
	var merged []model.Product

	for _, feed := range feeds {
		for _, p := range feed {
			if i, ok := position[p.VIN]; ok {
				merged[i] = p
				continue
			}
			position[p.VIN] = len(merged)
			merged = append(merged, p)
		}
	}

	return merged
}
