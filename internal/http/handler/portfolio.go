package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// GetPortfolio serves the public aggregate payload: every section of the
// site merged with its seed defaults.
func GetPortfolio(svc service.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.Load(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(data)
	}
}
