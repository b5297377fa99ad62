package inventory

import (
	"context"
	"time"

	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// UseCase covers the inventory operations: inward receipts, stock
// adjustments and the read side of the ledger. Every mutation goes through
// the TxRunner so the movement and its stock effect commit together.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	supplierRepo repository.SupplierRepository
	txnRepo      repository.InventoryTransactionRepository
	stockRepo    repository.StockLevelRepository
}

// NewUseCase builds the use case. txnRepo and stockRepo are pool-bound and
// used for reads only; mutations get transaction-bound repos from txRunner.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	supplierRepo repository.SupplierRepository,
	txnRepo repository.InventoryTransactionRepository,
	stockRepo repository.StockLevelRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		supplierRepo: supplierRepo,
		txnRepo:      txnRepo,
		stockRepo:    stockRepo,
	}
}

// RecordInward receives stock from a supplier: one INWARD ledger entry plus
// the stock increment, atomically. performedBy comes from the caller's token.
func (uc *UseCase) RecordInward(ctx context.Context, performedBy string, in dto.RecordInwardRequest) (*dto.InwardResponse, error) {
	if in.ProductID == "" || in.LocationID == "" || performedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Referenced rows must exist before the transaction opens.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	var resp *dto.InwardResponse
	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.InventoryTransactionRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		level, txn, err := ApplyMovement(txnRepo, stockRepo, Movement{
			Type:        entity.TransactionTypeInward,
			ProductID:   in.ProductID,
			LocationID:  in.LocationID,
			Quantity:    in.Quantity,
			SupplierID:  in.SupplierID,
			PerformedBy: performedBy,
			Notes:       in.Notes,
			ItemName:    product.Name,
		}, now)
		if err != nil {
			return err
		}
		resp = &dto.InwardResponse{
			Transaction: toTransactionResponse(txn),
			StockLevel:  toStockLevelResponse(level),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AdjustStock sets the quantity at a location to an absolute value by
// recording the signed delta as a synthetic INWARD or OUTWARD movement.
// Direct counter overwrites are not offered anywhere; the ledger stays the
// single source of truth.
func (uc *UseCase) AdjustStock(ctx context.Context, performedBy string, in dto.AdjustStockRequest) (*dto.StockLevelResponse, error) {
	if in.ProductID == "" || in.LocationID == "" || performedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	notes := in.Notes
	if notes == "" {
		notes = "Stock adjustment"
	}

	now := time.Now()
	var resp *dto.StockLevelResponse
	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.InventoryTransactionRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		current, err := stockRepo.GetForUpdate(in.ProductID, in.LocationID)
		if err != nil {
			return err
		}
		delta := in.Quantity - current.Quantity
		if delta == 0 {
			r := toStockLevelResponse(current)
			resp = &r
			return nil
		}
		mv := Movement{
			Type:        entity.TransactionTypeInward,
			ProductID:   in.ProductID,
			LocationID:  in.LocationID,
			Quantity:    delta,
			PerformedBy: performedBy,
			Notes:       notes,
			ItemName:    product.Name,
		}
		if delta < 0 {
			mv.Type = entity.TransactionTypeOutward
			mv.Quantity = -delta
		}
		level, _, err := ApplyMovement(txnRepo, stockRepo, mv, now)
		if err != nil {
			return err
		}
		r := toStockLevelResponse(level)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStockLevel returns the current quantity, zero when no row exists.
func (uc *UseCase) GetStockLevel(productID, locationID string) (*dto.StockLevelResponse, error) {
	if productID == "" || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	level, err := uc.stockRepo.Get(productID, locationID)
	if err != nil {
		return nil, err
	}
	r := toStockLevelResponse(level)
	return &r, nil
}

// ListTransactions returns ledger entries newest first, optionally filtered
// by type and product.
func (uc *UseCase) ListTransactions(in dto.ListTransactionsRequest) ([]dto.TransactionResponse, error) {
	in.DefaultPage()
	if in.Type != "" && in.Type != entity.TransactionTypeInward && in.Type != entity.TransactionTypeOutward {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.txnRepo.List(repository.TransactionFilter{
		Type:      in.Type,
		ProductID: in.ProductID,
	}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, txn := range list {
		out = append(out, toTransactionResponse(txn))
	}
	return out, nil
}

func toTransactionResponse(t *entity.InventoryTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           t.ID,
		Type:         t.Type,
		Quantity:     t.Quantity,
		ProductID:    t.ProductID,
		ProductName:  t.ProductName,
		LocationID:   t.LocationID,
		LocationName: t.LocationName,
		SupplierID:   t.SupplierID,
		SupplierName: t.SupplierName,
		OrderID:      t.OrderID,
		OrderNumber:  t.OrderNumber,
		PerformedBy:  t.PerformedBy,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
	}
}

func toStockLevelResponse(l *entity.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		ProductID:  l.ProductID,
		LocationID: l.LocationID,
		Quantity:   l.Quantity,
	}
}
