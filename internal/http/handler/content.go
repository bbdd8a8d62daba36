package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// The admin CRUD surface is one generic pipeline per collection. Blogs
// route through their dedicated service so slug rules apply; contact
// submissions never appear here, their inbox routes own them.

// ListCollection serves GET /api/admin/:collection.
func ListCollection(content service.ContentService, blogs service.BlogService) fiber.Handler {
	blogList := listBlogs(blogs)
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if collection == model.CollectionBlogs {
			return blogList(c)
		}
		records, err := content.List(c.UserContext(), collection)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(records)
	}
}

// CreateRecord serves POST /api/admin/:collection.
func CreateRecord(content service.ContentService, blogs service.BlogService) fiber.Handler {
	blogCreate := createBlog(blogs)
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if collection == model.CollectionBlogs {
			return blogCreate(c)
		}

		var fields map[string]any
		if err := c.BodyParser(&fields); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		rec, err := content.Create(c.UserContext(), collection, fields)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GetRecord serves GET /api/admin/:collection/:id.
func GetRecord(content service.ContentService, blogs service.BlogService) fiber.Handler {
	blogGet := getBlog(blogs)
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if collection == model.CollectionBlogs {
			return blogGet(c)
		}
		rec, err := content.Get(c.UserContext(), collection, c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rec)
	}
}

// UpdateRecord serves PUT /api/admin/:collection/:id.
func UpdateRecord(content service.ContentService, blogs service.BlogService) fiber.Handler {
	blogUpdate := updateBlog(blogs)
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if collection == model.CollectionBlogs {
			return blogUpdate(c)
		}

		var fields map[string]any
		if err := c.BodyParser(&fields); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		rec, err := content.Update(c.UserContext(), collection, c.Params("id"), fields)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteRecord serves DELETE /api/admin/:collection/:id.
func DeleteRecord(content service.ContentService, blogs service.BlogService) fiber.Handler {
	blogDelete := deleteBlog(blogs)
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if collection == model.CollectionBlogs {
			return blogDelete(c)
		}
		if err := content.Delete(c.UserContext(), collection, c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
