package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// TransactionFilter narrows List; zero values mean "no filter".
type TransactionFilter struct {
	Type      string
	ProductID string
}

// InventoryTransactionRepository is the persistence port for the append-only
// ledger. There is deliberately no update or delete.
type InventoryTransactionRepository interface {
	Create(txn *entity.InventoryTransaction) error
	// List returns entries newest first with display names resolved.
	List(filter TransactionFilter, limit, offset int) ([]*entity.InventoryTransaction, error)
}
