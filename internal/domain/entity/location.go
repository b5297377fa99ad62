package entity

import "time"

// DefaultLocationName is used when an order arrives and no location exists yet.
// Single-location deployments never create one explicitly.
const DefaultLocationName = "Main Warehouse"

// Location is a physical stock point (warehouse / godown).
type Location struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
