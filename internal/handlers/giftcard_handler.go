package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GiftCardHandler handles HTTP requests for gift cards and coupons.
type GiftCardHandler struct {
	service *services.GiftCardService
}

// NewGiftCardHandler creates a new GiftCardHandler.
func NewGiftCardHandler(service *services.GiftCardService) *GiftCardHandler {
	return &GiftCardHandler{service: service}
}

// RegisterRoutes registers the gift card routes with the Fiber app.
func (h *GiftCardHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/gift-cards")
	routes.Get("/", h.HandleGetGiftCards)
	routes.Get("/:id", h.HandleGetGiftCardByID)
	routes.Post("/", h.HandleCreateGiftCard)
	routes.Delete("/:id", h.HandleDeleteGiftCard)
	routes.Post("/:id/coupons", h.HandleGenerateCoupon)
}

// HandleGetGiftCards retrieves all gift cards with their coupons.
func (h *GiftCardHandler) HandleGetGiftCards(c *fiber.Ctx) error {
	cards, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cards)
}

// HandleGetGiftCardByID retrieves a single gift card.
func (h *GiftCardHandler) HandleGetGiftCardByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	card, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(card)
}

// HandleCreateGiftCard creates a new gift card.
func (h *GiftCardHandler) HandleCreateGiftCard(c *fiber.Ctx) error {
	var req models.CreateGiftCardRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	card, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// HandleDeleteGiftCard deletes a gift card and its coupons.
func (h *GiftCardHandler) HandleDeleteGiftCard(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGenerateCoupon mints a new coupon for the gift card.
func (h *GiftCardHandler) HandleGenerateCoupon(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondBadRequest(c, err)
	}

	coupon, err := h.service.GenerateCoupon(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}
