package handlers

import (
	"kalahaat/internal/i18n"
	"kalahaat/internal/models"
	"kalahaat/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and the order
// lifecycle.
type OrderHandler struct {
	store    *session.Store
	bundle   *i18n.Bundle
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store *session.Store, bundle *i18n.Bundle) *OrderHandler {
	return &OrderHandler{
		store:    store,
		bundle:   bundle,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
}

// HandleListOrders returns every order, newest first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.store.Orders()
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(orders)
}

// PlaceOrderRequest carries the checkout details.
type PlaceOrderRequest struct {
	Shipping      *models.ShippingDetails `json:"shipping"`
	PaymentMethod string                  `json:"payment_method"`
}

// HandlePlaceOrder converts the session cart into a pending order. A
// missing actor or an empty cart yields no order, which this endpoint
// reports as a 400 with the localized empty-cart message.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.store.PlaceOrder(req.Shipping, req.PaymentMethod)
	if err != nil {
		return failJSON(c, err)
	}
	lang := langFrom(c)
	if order == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": h.bundle.T("emptyCart", lang),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": h.bundle.T("orderSuccess", lang),
		"order":   order,
	})
}

// UpdateStatusRequest carries the target order status.
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleUpdateStatus advances or cancels an order as the current actor.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.store.UpdateOrderStatus(c.Params("id"), req.Status); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}
