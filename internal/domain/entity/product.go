package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a spare-part SKU in the catalog.
// Stock is never stored here; it lives per location in StockLevel and is
// derived from the inventory transaction log.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	BrandID     string          // optional, empty when unbranded
	Specs       json.RawMessage // free-form spec map as shown on the product page
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
