package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// CatalogUseCase list/create for the catalog reference data the storefront
// filters on: categories and brands.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, brandRepo repository.BrandRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, brandRepo: brandRepo}
}

// ListCategories returns all categories.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// CreateCategory adds a category.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateNamedRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// ListBrands returns all brands.
func (uc *CatalogUseCase) ListBrands() ([]dto.BrandResponse, error) {
	brands, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

// CreateBrand adds a brand.
func (uc *CatalogUseCase) CreateBrand(in dto.CreateNamedRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand := &entity.Brand{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: brand.ID, Name: brand.Name}, nil
}
