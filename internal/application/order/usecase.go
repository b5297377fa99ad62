package order

import (
	"errors"

	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// UseCase covers the order surface outside checkout: status lifecycle and
// the read side.
type UseCase struct {
	orderRepo repository.OrderRepository
}

// NewUseCase builds the use case.
func NewUseCase(orderRepo repository.OrderRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo}
}

// UpdateStatus applies a status transition and/or sets the tracking link.
// Transitions follow the state machine in entity.CanTransition; cancelling
// requires a cancelledBy actor. Stock already deducted at creation stays
// deducted when an order is cancelled.
func (uc *UseCase) UpdateStatus(orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == nil && in.TrackingLink == nil && in.CancelledBy == nil {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	upd := repository.OrderUpdate{
		TrackingLink: in.TrackingLink,
		CancelledBy:  in.CancelledBy,
	}
	if in.Status != nil {
		status := *in.Status
		if !entity.ValidOrderStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		if status != current.Status {
			if !entity.CanTransition(current.Status, status) {
				return nil, domain.ErrInvalidTransition
			}
			if status == entity.OrderStatusCancelled && (in.CancelledBy == nil || *in.CancelledBy == "") {
				return nil, domain.ErrInvalidInput
			}
			upd.Status = &status
			// The write only lands while the status we validated against
			// is still the stored one; a racing update past this read
			// makes the UPDATE a no-op instead of overwriting it.
			expected := current.Status
			upd.ExpectedStatus = &expected
		}
	}

	if err := uc.orderRepo.Update(orderID, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) && upd.ExpectedStatus != nil {
			// Lost the compare-and-swap: either the order is gone or
			// someone else moved the status first.
			again, err2 := uc.orderRepo.GetByID(orderID)
			if err2 != nil {
				return nil, err2
			}
			if again == nil {
				return nil, domain.ErrNotFound
			}
			return nil, domain.ErrInvalidTransition
		}
		return nil, err
	}
	updated, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(updated)
	return &resp, nil
}

// GetByID returns one order with items.
func (uc *UseCase) GetByID(orderID string) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(ord)
	return &resp, nil
}

// List returns orders newest first; an empty mobile returns all orders
// (admin view).
func (uc *UseCase) List(mobile string, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.List(mobile, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}
