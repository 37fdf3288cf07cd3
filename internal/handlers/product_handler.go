package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/products")
	routes.Get("/", h.HandleGetProducts)
	routes.Get("/:id", h.HandleGetProductByID)
	routes.Get("/:id/edit-log", h.HandleGetProductEditLog)
	routes.Post("/", h.HandleCreateProduct)
	routes.Put("/:id", h.HandleUpdateProduct)
	routes.Delete("/:id", h.HandleDeleteProduct)
}

// editorID pulls the authenticated customer's ID out of the request locals,
// when the auth middleware has stored one. JWT claims decode numbers as
// float64.
func editorID(c *fiber.Ctx) *uint {
	switch v := c.Locals("customer_id").(type) {
	case float64:
		id := uint(v)
		return &id
	case uint:
		return &v
	default:
		return nil
	}
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	product, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(product); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Create(c.UserContext(), &product, editorID(c)); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondBadRequest(c, err)
	}
	product.ID = id
	if err := validate.Struct(product); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Update(c.UserContext(), &product, editorID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id, editorID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetProductEditLog retrieves the edit trail of a product.
func (h *ProductHandler) HandleGetProductEditLog(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	entries, err := h.service.EditLog(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
