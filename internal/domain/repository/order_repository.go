package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// OrderUpdate carries the fields a status update may touch. Nil means
// "leave as is". When Status is set, ExpectedStatus makes the write a
// compare-and-swap: it applies only while the stored status still matches,
// so two racing updates cannot both move the same order.
type OrderUpdate struct {
	Status         *string
	ExpectedStatus *string
	TrackingLink   *string
	CancelledBy    *string
}

// OrderRepository is the persistence port for orders and their item snapshots.
type OrderRepository interface {
	// Create inserts the order and all items.
	Create(order *entity.Order) error
	// GetByID returns the order with items, or nil when absent.
	GetByID(id string) (*entity.Order, error)
	// List returns orders newest first; mobile filters to one customer,
	// empty mobile returns everything (admin view).
	List(mobile string, limit, offset int) ([]*entity.Order, error)
	Update(id string, upd OrderUpdate) error
}
