package catalog

import (
	"context"
	"fmt"
	"os"

	"shop-orders/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for feeds on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based feed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-file-loader").Logger(),
	}
}

// Load reads a gzipped feed file from disk.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog feed")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalog feed")
		return nil, fmt.Errorf("failed to open catalog feed %s: %w", path, err)
	}
	defer file.Close()

	products, err := decodeFeed(ctx, file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalog feed")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalog feed loaded successfully")

	return products, nil
}
