package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/application/order"
	"github.com/quikfix/spares-api/internal/domain/entity"
)

// OrderHandler handles checkout and the order lifecycle.
type OrderHandler struct {
	createUC *order.CreateOrderUseCase
	uc       *order.UseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(createUC *order.CreateOrderUseCase, uc *order.UseCase) *OrderHandler {
	return &OrderHandler{createUC: createUC, uc: uc}
}

// Create godoc
// @Summary      Place an order (checkout)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "customer_name, customer_mobile, items, total"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	resp, err := h.createUC.CreateOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      List orders, newest first
// @Description  Admins see every order; customers must pass their mobile.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        mobile  query  string  false  "filter by customer mobile"
// @Success      200  {array}   dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	mobile := c.Query("mobile")
	if mobile == "" && GetRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "mobile filter required"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	list, err := h.uc.List(mobile, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Get one order with items
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus godoc
// @Summary      Update order status and/or tracking link
// @Description  Admins may apply any valid transition. Customers may only
// @Description  cancel; cancelledBy is stamped from the token.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "order id"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status, tracking_link, cancelled_by"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	if GetRole(c) != entity.RoleAdmin {
		// Customers can only cancel their own checkout flow; everything
		// else on this route is back-office.
		if in.Status == nil || *in.Status != entity.OrderStatusCancelled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only cancellation is allowed"})
		}
	}
	if in.Status != nil && *in.Status == entity.OrderStatusCancelled && in.CancelledBy == nil {
		actor := GetUserID(c)
		in.CancelledBy = &actor
	}

	resp, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
