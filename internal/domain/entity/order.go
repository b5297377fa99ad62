package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusProcessing = "processing"
	OrderStatusInTransit  = "in-transit"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// processing -> in-transit -> delivered; cancellation is allowed from
// processing and in-transit. Delivered and cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case OrderStatusProcessing:
		return to == OrderStatusInTransit || to == OrderStatusCancelled
	case OrderStatusInTransit:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	}
	return false
}

// Order is a customer checkout. Items are denormalized snapshots taken at
// creation time; later product edits never alter historical orders.
// Stock is deducted when the order is created and is not returned on
// cancellation.
type Order struct {
	ID             string
	OrderNumber    string
	CustomerName   string
	CustomerMobile string
	Total          decimal.Decimal
	Status         string
	CancelledBy    string // actor tag, only set on cancelled orders
	TrackingLink   string
	Items          []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderItem is an immutable line-item snapshot embedded in an order.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int64
	Image     string
}
