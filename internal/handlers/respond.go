package handlers

import (
	"errors"
	"fmt"

	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail writes the uniform error body.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// failFromError maps service and repository sentinels onto the HTTP error
// taxonomy. Anything unmatched is an internal error.
func failFromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailRegistered),
		errors.Is(err, services.ErrGatewayOrderExists):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidSignature),
		errors.Is(err, services.ErrInvalidStage),
		errors.Is(err, services.ErrStageNotForward),
		errors.Is(err, services.ErrOrderTerminal):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}

// failValidation flattens validator errors into one message per field.
func failValidation(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Validation failed")
	}
	messages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"fields":  messages,
	})
}

// callerID returns the authenticated user id injected by the auth gate.
func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
