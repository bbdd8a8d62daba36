package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// SubmitContact accepts a public contact-form submission.
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ContactInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		msg, err := svc.Submit(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	}
}

// ListMessages serves the admin inbox, optionally filtered by ?status=.
func ListMessages(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.List(c.UserContext(), c.Query("status"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(msgs)
	}
}

// UnreadMessageCount backs the inbox badge poll.
func UnreadMessageCount(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.UnreadCount(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// OpenMessage returns one message; the first view of an unread message
// marks it read.
func OpenMessage(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msg, err := svc.Open(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(msg)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetMessageStatus toggles a message between read and unread.
func SetMessageStatus(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req statusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if err := svc.SetStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteMessage removes a message from the inbox.
func DeleteMessage(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
