package handlers

import (
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SearchHandler handles free-text catalog search requests.
type SearchHandler struct {
	service *services.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(service *services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers the search route with the Fiber app.
func (h *SearchHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/search", h.HandleSearch)
}

// HandleSearch runs the query from the "query" parameter across products,
// categories and manufacturers.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	result, err := h.service.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
