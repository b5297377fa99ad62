package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/inventory"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	mu     sync.Mutex
	levels map[string]*entity.StockLevel // productID|locationID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{levels: make(map[string]*entity.StockLevel)}
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

func (f *fakeStockRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.levels[stockKey(productID, locationID)]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{ProductID: productID, LocationID: locationID}, nil
}

// GetForUpdate mirrors the adapter's contract: an absent pair is seeded
// with a zero row so there is always a row to lock.
func (f *fakeStockRepo) GetForUpdate(productID, locationID string) (*entity.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := stockKey(productID, locationID)
	if _, ok := f.levels[key]; !ok {
		f.levels[key] = &entity.StockLevel{ProductID: productID, LocationID: locationID}
	}
	cp := *f.levels[key]
	return &cp, nil
}

func (f *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *level
	f.levels[stockKey(level.ProductID, level.LocationID)] = &cp
	return nil
}

func (f *fakeStockRepo) snapshot() map[string]*entity.StockLevel {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]*entity.StockLevel, len(f.levels))
	for k, v := range f.levels {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (f *fakeStockRepo) restore(snap map[string]*entity.StockLevel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levels = snap
}

func (f *fakeStockRepo) quantity(productID, locationID string) int64 {
	l, _ := f.Get(productID, locationID)
	return l.Quantity
}

type fakeTxnRepo struct {
	mu   sync.Mutex
	txns []*entity.InventoryTransaction
}

func (f *fakeTxnRepo) Create(txn *entity.InventoryTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *txn
	f.txns = append(f.txns, &cp)
	return nil
}

func (f *fakeTxnRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.InventoryTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.InventoryTransaction
	for i := len(f.txns) - 1; i >= 0; i-- { // newest first
		txn := f.txns[i]
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		if filter.ProductID != "" && txn.ProductID != filter.ProductID {
			continue
		}
		out = append(out, txn)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTxnRepo) all() []*entity.InventoryTransaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.InventoryTransaction(nil), f.txns...)
}

// fakeTxRunner hands the shared fakes to fn and emulates rollback by
// restoring a snapshot when fn fails.
type fakeTxRunner struct {
	mu        sync.Mutex
	txnRepo   *fakeTxnRepo
	stockRepo *fakeStockRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.InventoryTransactionRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stockSnap := r.stockRepo.snapshot()
	txnSnap := len(r.txnRepo.txns)
	if err := fn(r.txnRepo, r.stockRepo); err != nil {
		r.stockRepo.restore(stockSnap)
		r.txnRepo.txns = r.txnRepo.txns[:txnSnap]
		return err
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { f.locations[l.ID] = l; return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) GetFirst() (*entity.Location, error) {
	for _, l := range f.locations {
		return l, nil
	}
	return nil, nil
}
func (f *fakeLocationRepo) List() ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.locations {
		out = append(out, l)
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID  = "prod-1"
	testLocationID = "loc-1"
	testSupplierID = "sup-1"
	testActor      = "admin-1"
)

type fixture struct {
	uc        *inventory.UseCase
	stockRepo *fakeStockRepo
	txnRepo   *fakeTxnRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stockRepo := newFakeStockRepo()
	txnRepo := &fakeTxnRepo{}
	runner := &fakeTxRunner{txnRepo: txnRepo, stockRepo: stockRepo}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, Name: "iPhone 13 Screen"},
	}}
	locationRepo := &fakeLocationRepo{locations: map[string]*entity.Location{
		testLocationID: {ID: testLocationID, Name: "Main Warehouse"},
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		testSupplierID: {ID: testSupplierID, Name: "Parts Depot"},
	}}
	uc := inventory.NewUseCase(runner, productRepo, locationRepo, supplierRepo, txnRepo, stockRepo)
	return &fixture{uc: uc, stockRepo: stockRepo, txnRepo: txnRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordInward
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordInward_CreatesLevelAndLedgerEntry(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.RecordInward(context.Background(), testActor, dto.RecordInwardRequest{
		ProductID:  testProductID,
		LocationID: testLocationID,
		Quantity:   10,
		SupplierID: testSupplierID,
		Notes:      "first delivery",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.StockLevel.Quantity)
	assert.Equal(t, entity.TransactionTypeInward, resp.Transaction.Type)
	assert.Equal(t, testActor, resp.Transaction.PerformedBy)
	assert.Equal(t, testSupplierID, resp.Transaction.SupplierID)

	txns := f.txnRepo.all()
	require.Len(t, txns, 1)
	assert.Equal(t, int64(10), txns[0].Quantity)
	assert.Equal(t, int64(10), f.stockRepo.quantity(testProductID, testLocationID))
}

func TestRecordInward_AccumulatesOnExistingLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, qty := range []int64{5, 7} {
		_, err := f.uc.RecordInward(ctx, testActor, dto.RecordInwardRequest{
			ProductID: testProductID, LocationID: testLocationID, Quantity: qty,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(12), f.stockRepo.quantity(testProductID, testLocationID))
	assert.Len(t, f.txnRepo.all(), 2)
}

// First receipts for a pair with no stock row yet must not overwrite each
// other: the locked row is seeded before the read, so every inward lands on
// top of the previous one and the aggregate stays the ledger sum.
func TestRecordInward_ConcurrentFirstReceiptsAccumulate(t *testing.T) {
	f := newFixture(t)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RecordInward(context.Background(), testActor, dto.RecordInwardRequest{
				ProductID:  testProductID,
				LocationID: testLocationID,
				Quantity:   5,
				SupplierID: testSupplierID,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var ledgerSum int64
	for _, txn := range f.txnRepo.all() {
		ledgerSum += txn.Quantity
	}
	assert.Equal(t, int64(workers*5), ledgerSum)
	assert.Equal(t, ledgerSum, f.stockRepo.quantity(testProductID, testLocationID))
}

func TestRecordInward_RejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []dto.RecordInwardRequest{
		{ProductID: "", LocationID: testLocationID, Quantity: 1},
		{ProductID: testProductID, LocationID: "", Quantity: 1},
		{ProductID: testProductID, LocationID: testLocationID, Quantity: 0},
		{ProductID: testProductID, LocationID: testLocationID, Quantity: -3},
	}
	for _, in := range cases {
		_, err := f.uc.RecordInward(ctx, testActor, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := f.uc.RecordInward(ctx, "", dto.RecordInwardRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "performedBy is required")

	assert.Empty(t, f.txnRepo.all(), "no ledger entry may exist after rejected input")
}

func TestRecordInward_UnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordInward(ctx, testActor, dto.RecordInwardRequest{
		ProductID: "missing", LocationID: testLocationID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.RecordInward(ctx, testActor, dto.RecordInwardRequest{
		ProductID: testProductID, LocationID: "missing", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.RecordInward(ctx, testActor, dto.RecordInwardRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 1, SupplierID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_RecordsSignedDelta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 0 -> 20: an INWARD of 20.
	resp, err := f.uc.AdjustStock(ctx, testActor, dto.AdjustStockRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.Quantity)

	// 20 -> 8: an OUTWARD of 12.
	resp, err = f.uc.AdjustStock(ctx, testActor, dto.AdjustStockRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 8,
		Notes: "cycle count",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.Quantity)

	txns := f.txnRepo.all()
	require.Len(t, txns, 2)
	assert.Equal(t, entity.TransactionTypeInward, txns[0].Type)
	assert.Equal(t, int64(20), txns[0].Quantity)
	assert.Equal(t, entity.TransactionTypeOutward, txns[1].Type)
	assert.Equal(t, int64(12), txns[1].Quantity)
	assert.Equal(t, "Stock adjustment", txns[0].Notes, "default note when none given")
	assert.Equal(t, "cycle count", txns[1].Notes)
}

func TestAdjustStock_NoOpWhenQuantityUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AdjustStock(ctx, testActor, dto.AdjustStockRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 5,
	})
	require.NoError(t, err)

	resp, err := f.uc.AdjustStock(ctx, testActor, dto.AdjustStockRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Quantity)
	assert.Len(t, f.txnRepo.all(), 1, "equal target writes no ledger entry")
}

func TestAdjustStock_RejectsNegativeTarget(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AdjustStock(context.Background(), testActor, dto.AdjustStockRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Replaying the ledger must reproduce the stored quantity exactly.
func TestLedgerAndAggregateStayConsistent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	steps := []struct {
		inward int64 // RecordInward quantity; 0 means adjust instead
		target int64 // AdjustStock target when inward == 0
	}{
		{inward: 15},
		{target: 10},
		{inward: 3},
		{target: 25},
		{target: 2},
	}
	for _, s := range steps {
		var err error
		if s.inward > 0 {
			_, err = f.uc.RecordInward(ctx, testActor, dto.RecordInwardRequest{
				ProductID: testProductID, LocationID: testLocationID, Quantity: s.inward,
			})
		} else {
			_, err = f.uc.AdjustStock(ctx, testActor, dto.AdjustStockRequest{
				ProductID: testProductID, LocationID: testLocationID, Quantity: s.target,
			})
		}
		require.NoError(t, err)
	}

	var replayed int64
	for _, txn := range f.txnRepo.all() {
		switch txn.Type {
		case entity.TransactionTypeInward:
			replayed += txn.Quantity
		case entity.TransactionTypeOutward:
			replayed -= txn.Quantity
		}
	}
	assert.Equal(t, f.stockRepo.quantity(testProductID, testLocationID), replayed)
	assert.Equal(t, int64(2), replayed)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement failure semantics
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_OutwardInsufficientStock(t *testing.T) {
	stockRepo := newFakeStockRepo()
	txnRepo := &fakeTxnRepo{}
	require.NoError(t, stockRepo.Upsert(&entity.StockLevel{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 3,
	}))

	_, _, err := inventory.ApplyMovement(txnRepo, stockRepo, inventory.Movement{
		Type:       entity.TransactionTypeOutward,
		ProductID:  testProductID,
		LocationID: testLocationID,
		Quantity:   5,
		ItemName:   "iPhone 13 Screen",
	}, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var ise *domain.InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, "iPhone 13 Screen", ise.ItemName)
	assert.Equal(t, int64(3), ise.Available)
	assert.Equal(t, int64(5), ise.Requested)
	assert.Equal(t, "insufficient stock for item: iPhone 13 Screen. Available: 3, requested: 5", err.Error())

	assert.Equal(t, int64(3), stockRepo.quantity(testProductID, testLocationID), "level untouched")
	assert.Empty(t, txnRepo.all(), "no ledger entry on failure")
}

func TestApplyMovement_ExactDepletionSucceeds(t *testing.T) {
	stockRepo := newFakeStockRepo()
	txnRepo := &fakeTxnRepo{}
	require.NoError(t, stockRepo.Upsert(&entity.StockLevel{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 5,
	}))

	level, txn, err := inventory.ApplyMovement(txnRepo, stockRepo, inventory.Movement{
		Type:       entity.TransactionTypeOutward,
		ProductID:  testProductID,
		LocationID: testLocationID,
		Quantity:   5,
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), level.Quantity)
	assert.Equal(t, int64(5), txn.Quantity)
}

func TestApplyMovement_RejectsUnknownType(t *testing.T) {
	stockRepo := newFakeStockRepo()
	txnRepo := &fakeTxnRepo{}
	_, _, err := inventory.ApplyMovement(txnRepo, stockRepo, inventory.Movement{
		Type: "TRANSFER", ProductID: testProductID, LocationID: testLocationID, Quantity: 1,
	}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reads
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStockLevel_ZeroWhenAbsent(t *testing.T) {
	f := newFixture(t)
	resp, err := f.uc.GetStockLevel(testProductID, testLocationID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Quantity)
}

func TestListTransactions_FilterAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordInward(ctx, testActor, dto.RecordInwardRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 10,
	})
	require.NoError(t, err)
	_, err = f.uc.AdjustStock(ctx, testActor, dto.AdjustStockRequest{
		ProductID: testProductID, LocationID: testLocationID, Quantity: 4,
	})
	require.NoError(t, err)

	all, err := f.uc.ListTransactions(dto.ListTransactionsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entity.TransactionTypeOutward, all[0].Type, "newest first")

	outward, err := f.uc.ListTransactions(dto.ListTransactionsRequest{Type: entity.TransactionTypeOutward})
	require.NoError(t, err)
	require.Len(t, outward, 1)
	assert.Equal(t, int64(6), outward[0].Quantity)

	_, err = f.uc.ListTransactions(dto.ListTransactionsRequest{Type: "SIDEWAYS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
