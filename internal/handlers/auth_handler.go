package handlers

import (
	"musicostore/internal/models"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers the public auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/auth")
	routes.Post("/register", h.HandleRegister)
	routes.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(user); err != nil {
		return respondBadRequest(c, err)
	}

	if err := h.service.Register(c.UserContext(), &user); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// HandleLogin authenticates and returns a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return respondBadRequest(c, err)
	}

	token, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
