// Package report contains the read-only dashboard aggregations.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold flags products whose aggregate stock falls under
// this many units.
const DefaultLowStockThreshold = 5

// SummaryUseCase builds the admin report: total stock value, low-stock
// alerts and this month's inward/outward throughput. Pure reads over the
// ledger; a failing query fails the whole report rather than returning
// partial numbers.
type SummaryUseCase struct {
	reportRepo repository.ReportRepository
	threshold  int64
}

// NewSummaryUseCase builds the use case. threshold <= 0 uses the default.
func NewSummaryUseCase(reportRepo repository.ReportRepository, threshold int64) *SummaryUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &SummaryUseCase{reportRepo: reportRepo, threshold: threshold}
}

// GetSummary runs the three aggregations in parallel and assembles the DTO.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.ReportSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type valueResult struct {
		value decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		items []repository.LowStockItem
		err   error
	}
	type flowResult struct {
		inwards  int64
		outwards int64
		err      error
	}

	valueCh := make(chan valueResult, 1)
	lowCh := make(chan lowStockResult, 1)
	flowCh := make(chan flowResult, 1)

	go func() {
		v, err := uc.reportRepo.TotalStockValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		items, err := uc.reportRepo.LowStockItems(ctx, uc.threshold)
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		in, err := uc.reportRepo.MovementTotal(ctx, entity.TransactionTypeInward, monthStart)
		if err != nil {
			flowCh <- flowResult{err: err}
			return
		}
		out, err := uc.reportRepo.MovementTotal(ctx, entity.TransactionTypeOutward, monthStart)
		flowCh <- flowResult{inwards: in, outwards: out, err: err}
	}()

	value := <-valueCh
	low := <-lowCh
	flow := <-flowCh
	if value.err != nil {
		return nil, fmt.Errorf("total stock value: %w", value.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("low stock items: %w", low.err)
	}
	if flow.err != nil {
		return nil, fmt.Errorf("monthly movements: %w", flow.err)
	}

	summary := &dto.ReportSummaryDTO{
		TotalStockValue: value.value,
		MonthlyInwards:  flow.inwards,
		MonthlyOutwards: flow.outwards,
		LowStockItems:   make([]dto.LowStockItemDTO, 0, len(low.items)),
	}
	for _, item := range low.items {
		summary.LowStockItems = append(summary.LowStockItems, dto.LowStockItemDTO{
			ID:       item.ProductID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return summary, nil
}
