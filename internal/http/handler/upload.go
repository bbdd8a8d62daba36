package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// UploadImage accepts a multipart image (field name: file) plus an
// optional folder field and returns the stored URL.
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		url, err := svc.Upload(c.UserContext(), f, service.UploadParams{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Folder:      c.FormValue("folder", "uploads"),
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
	}
}

// UploadProfilePicture uploads under the profile-pictures folder and
// appends to the picture history.
func UploadProfilePicture(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		url, err := svc.UploadProfilePicture(c.UserContext(), f, service.UploadParams{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
	}
}

// ProfilePictureHistory lists past profile pictures, most recent first.
func ProfilePictureHistory(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		history, err := svc.History(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(history)
	}
}
