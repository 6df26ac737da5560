package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/activ/internal/store"
)

// ErrorHandler renders every failure as the {success:false, message}
// envelope. Unexpected errors are logged and surfaced without internal
// detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// storeError translates the store error taxonomy into the HTTP contract.
// Validation failures render directly with per-field detail; everything else
// becomes a fiber error for the app-level error handler. Unknown errors pass
// through and surface as a generic 500 without internal detail.
func storeError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  ve.Fields,
		})
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMessage)
	case errors.Is(err, store.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, "Member with this email already exists")
	case errors.Is(err, store.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
	case errors.Is(err, store.ErrInactiveAccount):
		return fiber.NewError(fiber.StatusForbidden, "Account is inactive or not found")
	default:
		return err
	}
}
