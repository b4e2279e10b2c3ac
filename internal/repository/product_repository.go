package repository

import (
	"context"
	"fmt"
	"strings"

	"shop-orders/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// likeEscaper escapes LIKE metacharacters using Postgres' default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// buildListQuery renders the catalogue query for filter with positional arguments.
func buildListQuery(filter model.ProductFilter) (string, []any) {
	f := filter.Normalize()

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, name, vin, category, price, image_url, model, in_stock, description
		FROM products
		WHERE 1=1`)

	args := []any{}
	if f.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(f.Search))+"%")
		n := len(args)
		fmt.Fprintf(&sb, " AND (LOWER(name) LIKE $%d OR LOWER(vin) LIKE $%d)", n, n)
	}

	if f.Model != "" {
		args = append(args, f.Model)
		fmt.Fprintf(&sb, " AND model = $%d", len(args))
	}

	if f.Category != "" {
		args = append(args, strings.ToLower(f.Category))
		fmt.Fprintf(&sb, " AND LOWER(category) = $%d", len(args))
	}

	sb.WriteString(" ORDER BY name, id")
	return sb.String(), args
}

// List returns the products matching filter, ordered by name.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("search", filter.Search).
			Str("model", filter.Model).
			Str("category", filter.Category).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.VIN, &p.Category, &p.Price, &p.Image, &p.Model, &p.InStock, &p.Description)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// UpsertMany inserts or updates products keyed by VIN in a single transaction.
func (r *productRepository) UpsertMany(ctx context.Context, products []model.Product) (n int, err error) {
	if len(products) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (name, vin, category, price, image_url, model, in_stock, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (vin) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			model = EXCLUDED.model,
			in_stock = EXCLUDED.in_stock,
			description = EXCLUDED.description
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.Name, p.VIN, p.Category, p.Price, p.Image, p.Model, p.InStock, p.Description)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range products {
		if _, err = results.Exec(); err != nil {
			results.Close()
			r.logger.Error().
				Err(err).
				Str("vin", products[i].VIN).
				Msg("failed to upsert product")
			return 0, fmt.Errorf("failed to upsert product %s: %w", products[i].VIN, err)
		}
	}
	if err = results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit product upsert")
		return 0, fmt.Errorf("failed to commit product upsert: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("products upserted")

	return len(products), nil
}
