package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/inventory"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	"github.com/quikfix/spares-api/internal/domain/repository"
)

// ProductUseCase CRUD for catalog products.
//
// The legacy admin screen sent a bare "stock" number with product edits;
// that path now goes through the inventory ledger as an adjustment at the
// default location instead of overwriting a counter.
type ProductUseCase struct {
	repo         repository.ProductRepository
	locationRepo repository.LocationRepository
	inventoryUC  *inventory.UseCase
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, locationRepo repository.LocationRepository, inventoryUC *inventory.UseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, locationRepo: locationRepo, inventoryUC: inventoryUC}
}

// Create adds a product to the catalog.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		Specs:       in.Specs,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID returns one product.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update applies the provided fields. A Stock value becomes a ledger
// adjustment at the default location, performed by the editing admin.
func (uc *ProductUseCase) Update(ctx context.Context, performedBy, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.BrandID != nil {
		product.BrandID = *in.BrandID
	}
	if in.Specs != nil {
		product.Specs = in.Specs
	}
	if in.Image != nil {
		product.Image = *in.Image
	}

	// Adjust stock before persisting the field edits so a failed adjustment
	// leaves the product untouched instead of half-applied.
	if in.Stock != nil {
		location, err := uc.locationRepo.GetFirst()
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
		if _, err := uc.inventoryUC.AdjustStock(ctx, performedBy, dto.AdjustStockRequest{
			ProductID:  id,
			LocationID: location.ID,
			Quantity:   *in.Stock,
			Notes:      "Stock correction from product edit",
		}); err != nil {
			return nil, err
		}
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// List returns catalog products with optional filters.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) ([]dto.ProductResponse, error) {
	in.DefaultPage()
	products, err := uc.repo.List(repository.ProductFilter{
		CategoryID: in.CategoryID,
		BrandID:    in.BrandID,
		Search:     in.Search,
	}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		Specs:       p.Specs,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
