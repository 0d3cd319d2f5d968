package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the plain error body used by every endpoint.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse rejects bad input with the offending field path so
// the CMS form can highlight it.
func ValidationErrorResponse(c *fiber.Ctx, message, field string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"field":   field,
	})
}
