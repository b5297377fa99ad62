package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// LocationRepository is the persistence port for stock locations.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	// GetFirst returns the oldest location or nil when none exists; order
	// creation uses it as the default stock point.
	GetFirst() (*entity.Location, error)
	List() ([]*entity.Location, error)
}
