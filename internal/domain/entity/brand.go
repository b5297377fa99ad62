package entity

import "time"

// Brand is the handset manufacturer a spare part fits.
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
