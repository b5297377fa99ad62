package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// StockLevelRepository is the port for per (product, location) quantities.
// Mutations run inside transactions only.
type StockLevelRepository interface {
	// Get returns a zero-quantity level when no row exists yet.
	Get(productID, locationID string) (*entity.StockLevel, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE) so the check-then-act
	// sequence in movements and order creation serializes correctly. When no
	// row exists yet it must create a zero one first, since FOR UPDATE locks
	// nothing on an absent row.
	GetForUpdate(productID, locationID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
}
