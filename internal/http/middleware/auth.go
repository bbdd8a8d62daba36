package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
)

// AdminEmailLocalKey is the key under which the authenticated admin
// email is stored in Fiber's context locals.
const AdminEmailLocalKey = "admin_email"

// RequireAuth guards the admin surface: requests must carry a valid
// bearer token issued by the gate. Failures short-circuit with 401 via
// fiber.ErrUnauthorized so the global error handler shapes the body.
func RequireAuth(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.ErrUnauthorized
		}

		email, err := gate.Verify(token)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(AdminEmailLocalKey, email)
		return c.Next()
	}
}
