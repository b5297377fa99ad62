package entity

import "time"

// Supplier provides inward stock; referenced optionally by INWARD transactions.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
