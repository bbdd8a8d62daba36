package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer session token.
func Login(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		session, err := gate.Login(req.Email, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(session)
	}
}

// Logout acknowledges a client-side token discard. Sessions are stateless
// JWTs; there is nothing to revoke server-side.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	}
}
