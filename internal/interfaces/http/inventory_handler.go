package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/inventory"
)

// InventoryHandler handles the admin inventory surface: inward receipts,
// stock adjustments, the transaction log and stock lookups.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordInward godoc
// @Summary      Record an inward stock receipt
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordInwardRequest  true  "product_id, location_id, quantity, supplier_id (optional), notes (optional)"
// @Success      201   {object}  dto.InwardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/inward [post]
func (h *InventoryHandler) RecordInward(c *fiber.Ctx) error {
	var in dto.RecordInwardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.RecordInward(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AdjustStock godoc
// @Summary      Set stock to an absolute quantity via a synthetic movement
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, location_id, quantity"
// @Success      200   {object}  dto.StockLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.uc.AdjustStock(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListTransactions godoc
// @Summary      List ledger entries, newest first
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "INWARD or OUTWARD"
// @Param        product_id  query  string  false  "filter by product"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	var in dto.ListTransactionsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	list, err := h.uc.ListTransactions(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetStockLevel godoc
// @Summary      Current stock for a product at a location (0 when absent)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  true  "product id"
// @Param        location_id  query  string  true  "location id"
// @Success      200  {object}  dto.StockLevelResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/stock [get]
func (h *InventoryHandler) GetStockLevel(c *fiber.Ctx) error {
	resp, err := h.uc.GetStockLevel(c.Query("product_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
