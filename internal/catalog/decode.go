package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"shop-orders/internal/model"
)

// decodeFeed reads gzipped JSON-lines products from r.
func decodeFeed(ctx context.Context, r io.Reader, source string) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.Product
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p model.Product
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid product JSON: %w", source, lineNo, err)
		}
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, lineNo, err)
		}
		p.ID = 0
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading feed %s: %w", source, err)
	}

	return products, nil
}

func validateProduct(p model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if strings.TrimSpace(p.VIN) == "" {
		return fmt.Errorf("product vin is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %s: price must not be negative", p.VIN)
	}
	return nil
}
