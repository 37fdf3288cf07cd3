package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ManufacturerHandler handles HTTP requests for manufacturers.
type ManufacturerHandler struct {
	service *services.ManufacturerService
}

// NewManufacturerHandler creates a new ManufacturerHandler.
func NewManufacturerHandler(service *services.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{service: service}
}

// RegisterRoutes registers the manufacturer routes with the Fiber app.
func (h *ManufacturerHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/manufacturers")
	routes.Get("/", h.HandleGetManufacturers)
	routes.Get("/:id", h.HandleGetManufacturerByID)
	routes.Post("/", h.HandleCreateManufacturer)
	routes.Put("/:id", h.HandleUpdateManufacturer)
	routes.Delete("/:id", h.HandleDeleteManufacturer)
}

func (h *ManufacturerHandler) HandleGetManufacturers(c *fiber.Ctx) error {
	manufacturers, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(manufacturers)
}

func (h *ManufacturerHandler) HandleGetManufacturerByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	manufacturer, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(manufacturer)
}

func (h *ManufacturerHandler) HandleCreateManufacturer(c *fiber.Ctx) error {
	var manufacturer models.Manufacturer
	if err := c.BodyParser(&manufacturer); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(manufacturer); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Create(c.UserContext(), &manufacturer); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(manufacturer)
}

func (h *ManufacturerHandler) HandleUpdateManufacturer(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var manufacturer models.Manufacturer
	if err := c.BodyParser(&manufacturer); err != nil {
		return respondBadRequest(c, err)
	}
	manufacturer.ID = id
	if err := validate.Struct(manufacturer); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Update(c.UserContext(), &manufacturer); err != nil {
		return respondError(c, err)
	}
	return c.JSON(manufacturer)
}

func (h *ManufacturerHandler) HandleDeleteManufacturer(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
