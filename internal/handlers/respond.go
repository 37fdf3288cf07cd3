package handlers

import (
	"errors"
	"log"

	"musicostore/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate checks request payloads against their struct tags.
var validate = validator.New()

// respondError translates a business error into the JSON error envelope and
// the matching status code. Errors reach this point unmodified from the
// service layer.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidOperation):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// idParam parses a positive integer route parameter.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(id), nil
}
