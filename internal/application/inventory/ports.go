package inventory

import (
	"context"

	"github.com/quikfix/spares-api/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction, handing it repositories
// bound to that transaction. The ledger relies on it for atomicity: the
// stock mutation and the log append commit as a pair or not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.InventoryTransactionRepository,
		stockRepo repository.StockLevelRepository,
	) error) error
}
