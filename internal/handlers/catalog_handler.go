package handlers

import (
	"kalahaat/internal/i18n"
	"kalahaat/internal/models"
	"kalahaat/internal/session"
	"kalahaat/pkg/copygen"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	store     *session.Store
	bundle    *i18n.Bundle
	generator copygen.Generator
	validate  *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler. The generator may be
// nil, in which case description generation always answers with the
// fallback text.
func NewCatalogHandler(store *session.Store, bundle *i18n.Bundle, generator copygen.Generator) *CatalogHandler {
	return &CatalogHandler{
		store:     store,
		bundle:    bundle,
		generator: generator,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleAddProduct)
	productRoutes.Post("/describe", h.HandleDescribe)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns every product, newest first.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.store.Products()
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(products)
}

// HandleAddProduct lists a new product as the current actor.
func (h *CatalogHandler) HandleAddProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if product.SellerID == "" {
		if actor := h.store.Current(); actor != nil {
			product.SellerID = actor.ID
		}
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFail(c, err)
	}

	if err := h.store.AddProduct(&product); err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleDeleteProduct removes a product as the current actor.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.store.DeleteProduct(c.Params("id")); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// DescribeRequest asks for marketing copy for a product listing being
// drafted.
type DescribeRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// HandleDescribe generates a product description in the requested
// language. Generation failures degrade to a fixed fallback text rather
// than an error so the listing flow never blocks on the upstream model.
func (h *CatalogHandler) HandleDescribe(c *fiber.Ctx) error {
	var req DescribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	lang := langFrom(c)
	description := copygen.FallbackDescription
	if h.generator != nil {
		generated, err := h.generator.GenerateDescription(c.Context(), req.Title, req.Category, lang)
		if err != nil {
			logrus.WithError(err).Warn("description generation failed")
		} else {
			description = generated
		}
	}
	return c.JSON(fiber.Map{"description": description})
}
