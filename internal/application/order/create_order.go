package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/inventory"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	domorder "github.com/quikfix/spares-api/internal/domain/order"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// CreateOrderUseCase turns a checkout into an order plus the matching stock
// dispatch, all inside one transaction.
type CreateOrderUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
}

// NewCreateOrderUseCase builds the use case.
func NewCreateOrderUseCase(txRunner TxRunner, locationRepo repository.LocationRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, locationRepo: locationRepo}
}

// CreateOrder places an order:
//
//  1. Resolve the default location, creating "Main Warehouse" on first use.
//  2. Inside one transaction, dispatch every line through the ledger; the
//     row lock taken there makes the per-item availability check safe under
//     concurrent checkouts, and the first short item aborts the whole order.
//  3. Insert the order with its item snapshots and a generated number.
//
// Either everything commits or nothing does: no orphaned orders, no stock
// deducted without an order behind it.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, performedBy string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" || in.CustomerMobile == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if performedBy == "" {
		performedBy = "SYSTEM"
	}

	location, err := uc.defaultLocation()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ord := &entity.Order{
		ID:             uuid.New().String(),
		OrderNumber:    domorder.GenerateNumber(now),
		CustomerName:   in.CustomerName,
		CustomerMobile: in.CustomerMobile,
		Total:          in.Total,
		Status:         entity.OrderStatusProcessing,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, item := range in.Items {
		ord.Items = append(ord.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   ord.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	run := func() error {
		return uc.txRunner.RunOrder(ctx, func(
			txnRepo repository.InventoryTransactionRepository,
			stockRepo repository.StockLevelRepository,
			orderRepo repository.OrderRepository,
		) error {
			// Dispatch each line first: the FOR UPDATE lock inside
			// ApplyMovement is what serializes concurrent checkouts on the
			// same product. Any failure rolls the whole order back.
			for _, item := range in.Items {
				_, _, err := inventory.ApplyMovement(txnRepo, stockRepo, inventory.Movement{
					Type:        entity.TransactionTypeOutward,
					ProductID:   item.ProductID,
					LocationID:  location.ID,
					Quantity:    item.Quantity,
					OrderID:     ord.ID,
					PerformedBy: performedBy,
					Notes:       "Order " + ord.OrderNumber,
					ItemName:    item.Name,
				}, now)
				if err != nil {
					return err
				}
			}
			return orderRepo.Create(ord)
		})
	}

	if err := run(); err != nil {
		// A lost race on the order-number unique constraint gets one retry
		// with a fresh number.
		if errors.Is(err, domain.ErrDuplicate) {
			ord.OrderNumber = domorder.GenerateNumber(time.Now())
			err = run()
		}
		if err != nil {
			return nil, err
		}
	}

	resp := toOrderResponse(ord)
	return &resp, nil
}

// defaultLocation returns the sole/default stock point, creating it when the
// deployment has none yet.
func (uc *CreateOrderUseCase) defaultLocation() (*entity.Location, error) {
	location, err := uc.locationRepo.GetFirst()
	if err != nil {
		return nil, err
	}
	if location != nil {
		return location, nil
	}
	location = &entity.Location{
		ID:        uuid.New().String(),
		Name:      entity.DefaultLocationName,
		Address:   "Default Address",
		CreatedAt: time.Now(),
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.CustomerName,
		CustomerMobile: o.CustomerMobile,
		Total:          o.Total,
		Status:         o.Status,
		CancelledBy:    o.CancelledBy,
		TrackingLink:   o.TrackingLink,
		Items:          make([]dto.OrderItemResponse, 0, len(o.Items)),
		CreatedAt:      o.CreatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return resp
}
