package authValidator

import (
	"strings"

	"marketwire/middleware"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest is the parsed login payload handed to the controller.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the admin login payload.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			return middleware.ValidationErrorResponse(c, "Email is required!", "email")
		} else if !strings.Contains(reqData.Email, "@") {
			return middleware.ValidationErrorResponse(c, "Email is not valid!", "email")
		}

		// Validate Password
		if reqData.Password == "" {
			return middleware.ValidationErrorResponse(c, "Password is required!", "password")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
