package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers and their addresses.
type CustomerHandler struct {
	service *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// RegisterRoutes registers the customer and address routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/customers")
	customers.Get("/", h.HandleGetCustomers)
	customers.Get("/:id", h.HandleGetCustomerByID)
	customers.Post("/", h.HandleCreateCustomer)
	customers.Put("/:id", h.HandleUpdateCustomer)
	customers.Delete("/:id", h.HandleDeleteCustomer)
	customers.Get("/:id/addresses", h.HandleGetCustomerAddresses)
	customers.Post("/:id/addresses", h.HandleAssignAddress)
	customers.Put("/:id/addresses/:addressId/main", h.HandleSetMainAddress)

	addresses := router.Group("/addresses")
	addresses.Get("/", h.HandleGetAddresses)
	addresses.Get("/:id", h.HandleGetAddressByID)
	addresses.Post("/", h.HandleCreateAddress)
	addresses.Put("/:id", h.HandleUpdateAddress)
	addresses.Delete("/:id", h.HandleDeleteAddress)
}

func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	customer, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(customer); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Create(c.UserContext(), &customer); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return respondBadRequest(c, err)
	}
	customer.ID = id
	if err := validate.Struct(customer); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Update(c.UserContext(), &customer); err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetCustomerAddresses lists the customer's address associations.
func (h *CustomerHandler) HandleGetCustomerAddresses(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	assocs, err := h.service.GetCustomerAddresses(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(assocs)
}

// HandleAssignAddress links an existing address to the customer.
func (h *CustomerHandler) HandleAssignAddress(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var req struct {
		AddressID uint `json:"address_id" validate:"required"`
		IsMain    bool `json:"is_main"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	assoc, err := h.service.AssignAddress(c.UserContext(), id, req.AddressID, req.IsMain)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assoc)
}

// HandleSetMainAddress designates one assigned address as the main one.
func (h *CustomerHandler) HandleSetMainAddress(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}
	addressID, err := idParam(c, "addressId")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.SetMainAddress(c.UserContext(), id, addressID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) HandleGetAddresses(c *fiber.Ctx) error {
	addresses, err := h.service.GetAllAddresses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(addresses)
}

func (h *CustomerHandler) HandleGetAddressByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	address, err := h.service.GetAddressByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(address)
}

func (h *CustomerHandler) HandleCreateAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(address); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.CreateAddress(c.UserContext(), &address); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

func (h *CustomerHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return respondBadRequest(c, err)
	}
	address.ID = id
	if err := validate.Struct(address); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.UpdateAddress(c.UserContext(), &address); err != nil {
		return respondError(c, err)
	}
	return c.JSON(address)
}

func (h *CustomerHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.DeleteAddress(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
