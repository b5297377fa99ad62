package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for a new catalog product.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	BrandID     string          `json:"brand_id,omitempty"`
	Specs       json.RawMessage `json:"specs,omitempty"`
	Image       string          `json:"image,omitempty"`
}

// UpdateProductRequest partial product update. A Stock value is applied as a
// ledger adjustment at the default location, never as a field overwrite.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id"`
	BrandID     *string          `json:"brand_id"`
	Specs       json.RawMessage  `json:"specs"`
	Image       *string          `json:"image"`
	Stock       *int64           `json:"stock"`
}

// ProductResponse a catalog product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	BrandID     string          `json:"brand_id,omitempty"`
	Specs       json.RawMessage `json:"specs,omitempty"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListProductsRequest catalog listing filters.
type ListProductsRequest struct {
	CategoryID string `query:"category_id"`
	BrandID    string `query:"brand_id"`
	Search     string `query:"search"`
	PageRequest
}

// CategoryResponse a product category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BrandResponse a handset brand.
type BrandResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateNamedRequest input for categories and brands (name only).
type CreateNamedRequest struct {
	Name string `json:"name"`
}
