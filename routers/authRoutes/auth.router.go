package authRoutes

import (
	"marketwire/contract"
	authController "marketwire/controllers/auth"
	authValidator "marketwire/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the admin session endpoints.
func SetupAuthRoutes(app *fiber.App, h *authController.Handler) {
	app.Add(contract.Auth.Login.Method, contract.Auth.Login.Path, authValidator.Login(), h.Login)
}
