package entity

import "time"

// Inventory transaction types.
const (
	TransactionTypeInward  = "INWARD"  // stock received
	TransactionTypeOutward = "OUTWARD" // stock dispatched
)

// InventoryTransaction is one append-only ledger entry. Once written it is
// never mutated or deleted; StockLevel is the running sum of these rows.
type InventoryTransaction struct {
	ID          string
	Type        string // INWARD or OUTWARD
	Quantity    int64  // always positive; Type carries the direction
	ProductID   string
	LocationID  string
	SupplierID  string // set on inward receipts, empty otherwise
	OrderID     string // set on order dispatches, empty otherwise
	PerformedBy string
	Notes       string
	CreatedAt   time.Time

	// Display names resolved on read for the admin transaction log.
	ProductName  string
	LocationName string
	SupplierName string
	OrderNumber  string
}
