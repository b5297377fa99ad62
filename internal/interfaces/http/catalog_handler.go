package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/usecase"
)

// CatalogHandler handles categories and brands.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories returns all categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateCategory adds a category (admin).
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateNamedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.CreateCategory(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListBrands returns all brands.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	list, err := h.uc.ListBrands()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateBrand adds a brand (admin).
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.CreateNamedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.CreateBrand(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
