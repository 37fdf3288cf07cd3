package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/states", h.HandleGetStates)
	orderRoutes.Get("/customer/:customerId", h.HandleGetOrdersByCustomer)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Post("/change-state", h.HandleChangeState)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
	orderRoutes.Post("/:id/apply-gift-card", h.HandleApplyGiftCard)
	orderRoutes.Delete("/:id/remove-gift-card", h.HandleRemoveGiftCard)
}

// HandleGetOrders retrieves the read-model of every order.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves the read-model of a single order.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	order, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGetOrdersByCustomer retrieves all orders of one customer.
func (h *OrderHandler) HandleGetOrdersByCustomer(c *fiber.Ctx) error {
	customerID, err := idParam(c, "customerId")
	if err != nil {
		return respondBadRequest(c, err)
	}

	orders, err := h.service.FindByCustomer(c.UserContext(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	created, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleChangeState appends a status log entry for the requested state.
func (h *OrderHandler) HandleChangeState(c *fiber.Ctx) error {
	var req models.ChangeOrderStateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.ChangeState(c.UserContext(), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteOrder deletes an order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleApplyGiftCard binds a coupon to the order.
func (h *OrderHandler) HandleApplyGiftCard(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	var req models.ApplyGiftCardRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.ApplyGiftCard(c.UserContext(), id, req.CouponCode); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRemoveGiftCard releases the order's coupon back to the pool.
func (h *OrderHandler) HandleRemoveGiftCard(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.RemoveGiftCard(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetStates lists the state catalog names in catalog order.
func (h *OrderHandler) HandleGetStates(c *fiber.Ctx) error {
	names, err := h.service.StateNames(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(names)
}
