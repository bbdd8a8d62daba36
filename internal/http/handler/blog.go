package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// ListPublishedBlogs serves the public blog index, published posts only.
func ListPublishedBlogs(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.ListPublished(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	}
}

// GetBlogBySlug serves one published post. Unknown slugs and unpublished
// posts are indistinguishable 404s.
func GetBlogBySlug(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := svc.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(post)
	}
}

func listBlogs(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.ListAll(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	}
}

func getBlog(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(post)
	}
}

func createBlog(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BlogInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		post, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

func updateBlog(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BlogInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		post, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(post)
	}
}

func deleteBlog(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
