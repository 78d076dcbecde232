package handlers

import (
	"kalahaat/internal/i18n"
	"kalahaat/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	store    *session.Store
	bundle   *i18n.Bundle
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(store *session.Store, bundle *i18n.Bundle) *CartHandler {
	return &CartHandler{
		store:    store,
		bundle:   bundle,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the cart contents and the running total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.store.CartItems(),
		"total": h.store.CartTotal(),
	})
}

// AddItemRequest carries the product to add to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddItem adds one unit of a product to the cart, incrementing the
// quantity when the product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.store.AddToCart(req.ProductID); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"items": h.store.CartItems(),
		"total": h.store.CartTotal(),
	})
}

// HandleRemoveItem deletes the whole cart entry for a product, whatever
// its quantity.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.store.RemoveFromCart(c.Params("id"))
	return c.JSON(fiber.Map{
		"items": h.store.CartItems(),
		"total": h.store.CartTotal(),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.store.ClearCart()
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
