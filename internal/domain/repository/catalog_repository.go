package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// CategoryRepository is the persistence port for product categories.
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
}

// BrandRepository is the persistence port for handset brands.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	List() ([]*entity.Brand, error)
}
