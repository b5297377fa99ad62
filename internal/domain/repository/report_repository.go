package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem is a product whose aggregate stock is under the alert threshold.
type LowStockItem struct {
	ProductID string
	Name      string
	Quantity  int64
}

// ReportRepository is the read-only port behind the dashboard summary.
// Everything is recomputed per request; no cached aggregates.
type ReportRepository interface {
	// TotalStockValue returns the sum over products of stock across all
	// locations times unit price.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
	// LowStockItems returns products whose total stock is below threshold.
	LowStockItems(ctx context.Context, threshold int64) ([]LowStockItem, error)
	// MovementTotal sums ledger quantities of one type since a point in time.
	MovementTotal(ctx context.Context, txnType string, since time.Time) (int64, error)
}
