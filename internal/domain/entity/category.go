package entity

import "time"

// Category groups products (displays, batteries, connectors, ...).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
