package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput one checkout line; a snapshot of the product as displayed,
// not a live reference.
type OrderItemInput struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// CreateOrderRequest checkout input.
type CreateOrderRequest struct {
	CustomerName   string           `json:"customer_name"`
	CustomerMobile string           `json:"customer_mobile"`
	Items          []OrderItemInput `json:"items"`
	Total          decimal.Decimal  `json:"total"`
}

// UpdateOrderStatusRequest partial status update; nil fields are left alone.
type UpdateOrderStatusRequest struct {
	Status       *string `json:"status"`
	TrackingLink *string `json:"tracking_link"`
	CancelledBy  *string `json:"cancelled_by"`
}

// OrderItemResponse one line of an order.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// OrderResponse an order with its item snapshots.
type OrderResponse struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"order_number"`
	CustomerName   string              `json:"customer_name"`
	CustomerMobile string              `json:"customer_mobile"`
	Total          decimal.Decimal     `json:"total"`
	Status         string              `json:"status"`
	CancelledBy    string              `json:"cancelled_by,omitempty"`
	TrackingLink   string              `json:"tracking_link,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
}
