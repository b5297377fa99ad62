package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quikfix/spares-api/internal/application/report"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

type fakeReportRepo struct {
	value     decimal.Decimal
	valueErr  error
	lowStock  []repository.LowStockItem
	lowErr    error
	inwards   int64
	outwards  int64
	flowErr   error
	threshold int64
	since     time.Time
}

func (f *fakeReportRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	return f.value, f.valueErr
}

func (f *fakeReportRepo) LowStockItems(ctx context.Context, threshold int64) ([]repository.LowStockItem, error) {
	f.threshold = threshold
	return f.lowStock, f.lowErr
}

func (f *fakeReportRepo) MovementTotal(ctx context.Context, txnType string, since time.Time) (int64, error) {
	f.since = since
	if f.flowErr != nil {
		return 0, f.flowErr
	}
	if txnType == entity.TransactionTypeInward {
		return f.inwards, nil
	}
	return f.outwards, nil
}

func TestGetSummary_AssemblesAllSections(t *testing.T) {
	repo := &fakeReportRepo{
		value: decimal.NewFromInt(125000),
		lowStock: []repository.LowStockItem{
			{ProductID: "p1", Name: "iPhone 13 Screen", Quantity: 2},
			{ProductID: "p2", Name: "Pixel 6 Battery", Quantity: 0},
		},
		inwards:  40,
		outwards: 33,
	}
	uc := report.NewSummaryUseCase(repo, 5)

	sum, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.TotalStockValue.Equal(decimal.NewFromInt(125000)))
	assert.Equal(t, int64(40), sum.MonthlyInwards)
	assert.Equal(t, int64(33), sum.MonthlyOutwards)
	require.Len(t, sum.LowStockItems, 2)
	assert.Equal(t, "iPhone 13 Screen", sum.LowStockItems[0].Name)
	assert.Equal(t, int64(0), sum.LowStockItems[1].Quantity)
	assert.Equal(t, int64(5), repo.threshold)

	// The movement window starts at the first of the current month.
	now := time.Now()
	wantStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	assert.Equal(t, wantStart, repo.since)
}

func TestGetSummary_ThresholdDefault(t *testing.T) {
	repo := &fakeReportRepo{value: decimal.Zero}
	uc := report.NewSummaryUseCase(repo, 0)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(report.DefaultLowStockThreshold), repo.threshold)
}

// One failing aggregation fails the whole report; no partial numbers.
func TestGetSummary_PropagatesErrors(t *testing.T) {
	boom := errors.New("connection reset")

	for _, repo := range []*fakeReportRepo{
		{valueErr: boom},
		{lowErr: boom},
		{flowErr: boom},
	} {
		uc := report.NewSummaryUseCase(repo, 5)
		sum, err := uc.GetSummary(context.Background())
		assert.Nil(t, sum)
		assert.ErrorIs(t, err, boom)
	}
}
