package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/inventory"
	"github.com/quikfix/spares-api/internal/application/usecase"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (s *stubProductRepo) Create(p *entity.Product) error { s.products[p.ID] = p; return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (s *stubProductRepo) Update(p *entity.Product) error {
	cp := *p
	s.products[p.ID] = &cp
	return nil
}
func (s *stubProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

type stubLocationRepo struct {
	locations []*entity.Location
}

func (s *stubLocationRepo) Create(l *entity.Location) error {
	s.locations = append(s.locations, l)
	return nil
}
func (s *stubLocationRepo) GetByID(id string) (*entity.Location, error) {
	for _, l := range s.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}
func (s *stubLocationRepo) GetFirst() (*entity.Location, error) {
	if len(s.locations) == 0 {
		return nil, nil
	}
	return s.locations[0], nil
}
func (s *stubLocationRepo) List() ([]*entity.Location, error) { return s.locations, nil }

type stubSupplierRepo struct{}

func (stubSupplierRepo) Create(*entity.Supplier) error { return nil }
func (stubSupplierRepo) GetByID(string) (*entity.Supplier, error) {
	return nil, nil
}
func (stubSupplierRepo) Update(*entity.Supplier) error     { return nil }
func (stubSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }

type stubStockRepo struct {
	levels map[string]*entity.StockLevel // productID|locationID
}

func (s *stubStockRepo) key(productID, locationID string) string {
	return productID + "|" + locationID
}

func (s *stubStockRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	if l, ok := s.levels[s.key(productID, locationID)]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{ProductID: productID, LocationID: locationID}, nil
}

func (s *stubStockRepo) GetForUpdate(productID, locationID string) (*entity.StockLevel, error) {
	key := s.key(productID, locationID)
	if _, ok := s.levels[key]; !ok {
		s.levels[key] = &entity.StockLevel{ProductID: productID, LocationID: locationID}
	}
	cp := *s.levels[key]
	return &cp, nil
}

func (s *stubStockRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	s.levels[s.key(level.ProductID, level.LocationID)] = &cp
	return nil
}

type stubTxnRepo struct {
	txns []*entity.InventoryTransaction
}

func (s *stubTxnRepo) Create(txn *entity.InventoryTransaction) error {
	cp := *txn
	s.txns = append(s.txns, &cp)
	return nil
}
func (s *stubTxnRepo) List(repository.TransactionFilter, int, int) ([]*entity.InventoryTransaction, error) {
	return s.txns, nil
}

type stubTxRunner struct {
	txnRepo   *stubTxnRepo
	stockRepo *stubStockRepo
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.InventoryTransactionRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	return fn(r.txnRepo, r.stockRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	editedProductID = "prod-screen"
	warehouseID     = "loc-main"
	adminID         = "admin-1"
)

type productFixture struct {
	uc          *usecase.ProductUseCase
	productRepo *stubProductRepo
	stockRepo   *stubStockRepo
	txnRepo     *stubTxnRepo
}

// newProductFixture wires a real inventory use case behind the product one.
// withLocation controls whether a default location exists.
func newProductFixture(t *testing.T, withLocation bool) *productFixture {
	t.Helper()
	productRepo := &stubProductRepo{products: map[string]*entity.Product{
		editedProductID: {
			ID:    editedProductID,
			Name:  "iPhone 13 Screen",
			Price: decimal.NewFromInt(120),
		},
	}}
	locationRepo := &stubLocationRepo{}
	if withLocation {
		locationRepo.locations = append(locationRepo.locations,
			&entity.Location{ID: warehouseID, Name: "Main Warehouse"})
	}
	stockRepo := &stubStockRepo{levels: make(map[string]*entity.StockLevel)}
	txnRepo := &stubTxnRepo{}
	runner := &stubTxRunner{txnRepo: txnRepo, stockRepo: stockRepo}
	inventoryUC := inventory.NewUseCase(runner, productRepo, locationRepo, stubSupplierRepo{}, txnRepo, stockRepo)
	uc := usecase.NewProductUseCase(productRepo, locationRepo, inventoryUC)
	return &productFixture{uc: uc, productRepo: productRepo, stockRepo: stockRepo, txnRepo: txnRepo}
}

func int64p(n int64) *int64 { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_StockEditGoesThroughLedger(t *testing.T) {
	f := newProductFixture(t, true)

	name := "iPhone 13 Screen OEM"
	resp, err := f.uc.Update(context.Background(), adminID, editedProductID, dto.UpdateProductRequest{
		Name:  &name,
		Stock: int64p(25),
	})
	require.NoError(t, err)
	assert.Equal(t, name, resp.Name)

	level, err := f.stockRepo.Get(editedProductID, warehouseID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), level.Quantity)

	require.Len(t, f.txnRepo.txns, 1)
	assert.Equal(t, entity.TransactionTypeInward, f.txnRepo.txns[0].Type)
	assert.Equal(t, "Stock correction from product edit", f.txnRepo.txns[0].Notes)
	assert.Equal(t, adminID, f.txnRepo.txns[0].PerformedBy)
}

// A failed stock adjustment must not leave the field edits behind: the
// product write happens only after the adjustment succeeds.
func TestProductUpdate_FailedAdjustmentLeavesProductUntouched(t *testing.T) {
	f := newProductFixture(t, false) // no default location

	name := "Renamed Screen"
	_, err := f.uc.Update(context.Background(), adminID, editedProductID, dto.UpdateProductRequest{
		Name:  &name,
		Stock: int64p(25),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := f.productRepo.GetByID(editedProductID)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13 Screen", stored.Name)
	assert.True(t, stored.UpdatedAt.IsZero())
	assert.Empty(t, f.txnRepo.txns)
}

func TestProductUpdate_UnknownProduct(t *testing.T) {
	f := newProductFixture(t, true)

	_, err := f.uc.Update(context.Background(), adminID, "prod-missing", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
