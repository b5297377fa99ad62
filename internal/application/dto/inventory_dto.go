package dto

import "time"

// RecordInwardRequest input for an inward stock receipt.
type RecordInwardRequest struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Quantity   int64  `json:"quantity"`
	SupplierID string `json:"supplier_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// AdjustStockRequest sets a product's stock at a location to an absolute
// quantity. The delta is recorded as a synthetic ledger movement so the
// audit trail stays complete.
type AdjustStockRequest struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Quantity   int64  `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// TransactionResponse one ledger entry with display names resolved.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name,omitempty"`
	SupplierID   string    `json:"supplier_id,omitempty"`
	SupplierName string    `json:"supplier_name,omitempty"`
	OrderID      string    `json:"order_id,omitempty"`
	OrderNumber  string    `json:"order_number,omitempty"`
	PerformedBy  string    `json:"performed_by"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockLevelResponse current quantity for a (product, location) pair.
type StockLevelResponse struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Quantity   int64  `json:"quantity"`
}

// InwardResponse result of a recorded inward receipt.
type InwardResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	StockLevel  StockLevelResponse  `json:"stock_level"`
}

// ListTransactionsRequest filters for the transaction log.
type ListTransactionsRequest struct {
	Type      string `query:"type"`
	ProductID string `query:"product_id"`
	PageRequest
}
