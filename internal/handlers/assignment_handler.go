package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryAssignmentHandler handles HTTP requests for the category
// assignments of a product.
type CategoryAssignmentHandler struct {
	service *services.CategoryAssignmentService
}

// NewCategoryAssignmentHandler creates a new CategoryAssignmentHandler.
func NewCategoryAssignmentHandler(service *services.CategoryAssignmentService) *CategoryAssignmentHandler {
	return &CategoryAssignmentHandler{service: service}
}

// RegisterRoutes registers the assignment routes with the Fiber app.
func (h *CategoryAssignmentHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/products")
	routes.Get("/:id/categories", h.HandleGetProductCategories)
	routes.Post("/:id/categories", h.HandleAssignCategory)
	routes.Delete("/:id/categories/:categoryId", h.HandleRemoveCategory)
}

// HandleGetProductCategories lists the categories assigned to a product.
func (h *CategoryAssignmentHandler) HandleGetProductCategories(c *fiber.Ctx) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	categories, err := h.service.CategoriesForProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleAssignCategory attaches a category to a product.
func (h *CategoryAssignmentHandler) HandleAssignCategory(c *fiber.Ctx) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var req models.AssignCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Assign(c.UserContext(), productID, req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRemoveCategory detaches a category from a product.
func (h *CategoryAssignmentHandler) HandleRemoveCategory(c *fiber.Ctx) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}
	categoryID, err := idParam(c, "categoryId")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Remove(c.UserContext(), productID, categoryID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
