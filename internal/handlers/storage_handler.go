package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StorageHandler handles HTTP requests for warehouses and stock levels.
type StorageHandler struct {
	service *services.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(service *services.StorageService) *StorageHandler {
	return &StorageHandler{service: service}
}

// RegisterRoutes registers the storage and stock routes with the Fiber app.
func (h *StorageHandler) RegisterRoutes(router fiber.Router) {
	storages := router.Group("/storages")
	storages.Get("/", h.HandleGetStorages)
	storages.Get("/:id", h.HandleGetStorageByID)
	storages.Post("/", h.HandleCreateStorage)
	storages.Put("/:id", h.HandleUpdateStorage)
	storages.Delete("/:id", h.HandleDeleteStorage)

	stocks := router.Group("/stocks")
	stocks.Get("/", h.HandleGetStocks)
	stocks.Get("/:id", h.HandleGetStockByID)
	stocks.Post("/", h.HandleCreateStock)
	stocks.Put("/:id", h.HandleUpdateStock)
	stocks.Delete("/:id", h.HandleDeleteStock)
}

func (h *StorageHandler) HandleGetStorages(c *fiber.Ctx) error {
	storages, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(storages)
}

func (h *StorageHandler) HandleGetStorageByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	storage, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(storage)
}

func (h *StorageHandler) HandleCreateStorage(c *fiber.Ctx) error {
	var storage models.Storage
	if err := c.BodyParser(&storage); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(storage); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Create(c.UserContext(), &storage); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(storage)
}

func (h *StorageHandler) HandleUpdateStorage(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var storage models.Storage
	if err := c.BodyParser(&storage); err != nil {
		return respondBadRequest(c, err)
	}
	storage.ID = id
	if err := validate.Struct(storage); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Update(c.UserContext(), &storage); err != nil {
		return respondError(c, err)
	}
	return c.JSON(storage)
}

func (h *StorageHandler) HandleDeleteStorage(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StorageHandler) HandleGetStocks(c *fiber.Ctx) error {
	stocks, err := h.service.GetAllStocks(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stocks)
}

func (h *StorageHandler) HandleGetStockByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	stock, err := h.service.GetStockByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

func (h *StorageHandler) HandleCreateStock(c *fiber.Ctx) error {
	var stock models.Stock
	if err := c.BodyParser(&stock); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(stock); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.CreateStock(c.UserContext(), &stock); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

func (h *StorageHandler) HandleUpdateStock(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var stock models.Stock
	if err := c.BodyParser(&stock); err != nil {
		return respondBadRequest(c, err)
	}
	stock.ID = id
	if err := validate.Struct(stock); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.UpdateStock(c.UserContext(), &stock); err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

func (h *StorageHandler) HandleDeleteStock(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.DeleteStock(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
