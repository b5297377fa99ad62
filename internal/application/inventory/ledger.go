package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// Movement is one signed stock change to apply to the ledger.
// SupplierID references the source on inward receipts; OrderID the
// destination on outward dispatches. ItemName only feeds error messages.
type Movement struct {
	Type        string
	ProductID   string
	LocationID  string
	Quantity    int64
	SupplierID  string
	OrderID     string
	PerformedBy string
	Notes       string
	ItemName    string
}

// ApplyMovement mutates the stock level and appends the matching transaction
// row using repositories bound to the caller's transaction. The stock row is
// locked first (SELECT FOR UPDATE) so concurrent movements against the same
// (product, location) pair serialize and can never oversell.
//
// INWARD creates the stock row when absent; OUTWARD fails with
// InsufficientStockError when the locked quantity is below the request and
// leaves everything untouched (the caller's rollback discards the lock).
func ApplyMovement(
	txnRepo repository.InventoryTransactionRepository,
	stockRepo repository.StockLevelRepository,
	mv Movement,
	now time.Time,
) (*entity.StockLevel, *entity.InventoryTransaction, error) {
	if mv.Quantity <= 0 || mv.ProductID == "" || mv.LocationID == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	level, err := stockRepo.GetForUpdate(mv.ProductID, mv.LocationID)
	if err != nil {
		return nil, nil, err
	}

	switch mv.Type {
	case entity.TransactionTypeInward:
		level.Quantity += mv.Quantity
	case entity.TransactionTypeOutward:
		if level.Quantity < mv.Quantity {
			name := mv.ItemName
			if name == "" {
				name = mv.ProductID
			}
			return nil, nil, &domain.InsufficientStockError{
				ItemName:  name,
				Available: level.Quantity,
				Requested: mv.Quantity,
			}
		}
		level.Quantity -= mv.Quantity
	default:
		return nil, nil, domain.ErrInvalidInput
	}

	level.UpdatedAt = now
	if err := stockRepo.Upsert(level); err != nil {
		return nil, nil, err
	}

	txn := &entity.InventoryTransaction{
		ID:          uuid.New().String(),
		Type:        mv.Type,
		Quantity:    mv.Quantity,
		ProductID:   mv.ProductID,
		LocationID:  mv.LocationID,
		SupplierID:  mv.SupplierID,
		OrderID:     mv.OrderID,
		PerformedBy: mv.PerformedBy,
		Notes:       mv.Notes,
		CreatedAt:   now,
	}
	if err := txnRepo.Create(txn); err != nil {
		return nil, nil, err
	}
	return level, txn, nil
}
