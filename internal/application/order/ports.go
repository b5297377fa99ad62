package order

import (
	"context"

	"github.com/quikfix/spares-api/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction with the repositories
// checkout needs. The order row, its item snapshots, every stock decrement
// and every OUTWARD ledger entry commit together or roll back together.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		txnRepo repository.InventoryTransactionRepository,
		stockRepo repository.StockLevelRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
