package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for product categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/categories")
	routes.Get("/", h.HandleGetCategories)
	routes.Get("/:id", h.HandleGetCategoryByID)
	routes.Post("/", h.HandleCreateCategory)
	routes.Put("/:id", h.HandleUpdateCategory)
	routes.Delete("/:id", h.HandleDeleteCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	category, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(category); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Create(c.UserContext(), &category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return respondBadRequest(c, err)
	}
	category.ID = id
	if err := validate.Struct(category); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Update(c.UserContext(), &category); err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
