package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/quikfix/spares-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregations over the ledger and catalog.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the adapter.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalStockValue sums quantity times unit price over every product and location.
func (r *ReportRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(s.quantity * p.price), 0)
		FROM stock_levels s
		JOIN products p ON p.id = s.product_id`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total stock value: %w", err)
	}
	return total, nil
}

// LowStockItems returns products whose aggregate stock across locations is
// below threshold, worst first. Products with no stock rows count as zero.
func (r *ReportRepo) LowStockItems(ctx context.Context, threshold int64) ([]repository.LowStockItem, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(s.quantity), 0) AS total_quantity
		FROM products p
		LEFT JOIN stock_levels s ON s.product_id = p.id
		GROUP BY p.id, p.name
		HAVING COALESCE(SUM(s.quantity), 0) < $1
		ORDER BY total_quantity ASC, p.name ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MovementTotal sums ledger quantities of one type since a point in time.
func (r *ReportRepo) MovementTotal(ctx context.Context, txnType string, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM inventory_transactions
		WHERE type = $1 AND created_at >= $2`
	var total int64
	if err := r.q.QueryRow(ctx, query, txnType, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("movement total: %w", err)
	}
	return total, nil
}
