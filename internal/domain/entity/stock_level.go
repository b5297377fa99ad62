package entity

import "time"

// StockLevel is the current quantity of a product at a location.
// Unique per (product, location); a cached aggregate of the transaction log,
// maintained incrementally. Quantity never goes below zero.
type StockLevel struct {
	ProductID  string
	LocationID string
	Quantity   int64
	UpdatedAt  time.Time
}
