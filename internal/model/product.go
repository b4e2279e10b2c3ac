package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices leave the API as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// filterAll is the sentinel the storefront sends for "no model/category filter".
const filterAll = "all"

// Product represents an item in the catalogue.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	VIN         string          `json:"vin" db:"vin"`
	Category    string          `json:"category" db:"category"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Image       string          `json:"image" db:"image_url"`
	Model       string          `json:"model" db:"model"`
	InStock     bool            `json:"inStock" db:"in_stock"`
	Description string          `json:"description" db:"description"`
}

// ProductListResponse wraps the catalogue listing.
type ProductListResponse struct {
	Products []Product `json:"products"`
}

// ProductFilter narrows a catalogue query. Empty fields do not filter.
type ProductFilter struct {
	Search   string
	Model    string
	Category string
}

// Normalize trims the filter and drops "all" sentinels.
func (f ProductFilter) Normalize() ProductFilter {
	n := ProductFilter{
		Search:   strings.TrimSpace(f.Search),
		Model:    strings.TrimSpace(f.Model),
		Category: strings.TrimSpace(f.Category),
	}
	if n.Model == filterAll {
		n.Model = ""
	}
	if strings.EqualFold(n.Category, filterAll) {
		n.Category = ""
	}
	return n
}

// CacheKey returns a stable key for the normalized filter.
func (f ProductFilter) CacheKey() string {
	n := f.Normalize()
	return "search=" + strings.ToLower(n.Search) +
		"|model=" + n.Model +
		"|category=" + strings.ToLower(n.Category)
}
