package authController

import (
	"log"

	"marketwire/middleware"
	"marketwire/repository"
	authValidator "marketwire/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Handler exposes the admin session endpoints.
type Handler struct {
	admins repository.AdminRepository
}

// NewHandler builds an auth Handler.
func NewHandler(admins repository.AdminRepository) *Handler {
	return &Handler{admins: admins}
}

// Login checks the admin credentials and issues a session token. Unknown
// emails and wrong passwords get the same answer.
func (h *Handler) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	admin, err := h.admins.GetByEmail(reqData.Email)
	if err != nil {
		log.Printf("Login lookup error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed!")
	}
	if admin == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.Email)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed!")
	}

	return c.JSON(fiber.Map{"token": token})
}
