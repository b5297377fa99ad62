package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// ProductFilter narrows catalog listings; zero values mean "no filter".
type ProductFilter struct {
	CategoryID string
	BrandID    string
	Search     string
}

// ProductRepository is the persistence port for catalog products.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
}
