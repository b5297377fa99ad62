package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO a product under the low-stock alert threshold.
type LowStockItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// ReportSummaryDTO dashboard figures, recomputed on every request.
type ReportSummaryDTO struct {
	TotalStockValue decimal.Decimal   `json:"total_stock_value"`
	MonthlyInwards  int64             `json:"monthly_inwards"`
	MonthlyOutwards int64             `json:"monthly_outwards"`
	LowStockItems   []LowStockItemDTO `json:"low_stock_items"`
}
