package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
	"portfolio/internal/http/middleware"
	"portfolio/internal/service"
)

// Services bundles everything the HTTP surface depends on.
type Services struct {
	Portfolio service.PortfolioService
	Content   service.ContentService
	Blogs     service.BlogService
	Contact   service.ContactService
	Images    service.ImageService
}

// RegisterRoutes attaches all HTTP routes to the Fiber app. Handlers stay
// thin; every rule lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, gate *auth.Gate, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	// Public surface.
	api.Get("/portfolio", GetPortfolio(svcs.Portfolio))
	api.Get("/blogs", ListPublishedBlogs(svcs.Blogs))
	api.Get("/blogs/:slug", GetBlogBySlug(svcs.Blogs))
	api.Post("/contact", SubmitContact(svcs.Contact))

	// Admin surface. Everything past login requires a bearer token.
	admin := api.Group("/admin")
	admin.Post("/login", Login(gate))
	admin.Use(middleware.RequireAuth(gate))
	admin.Post("/logout", Logout())

	admin.Post("/uploads", UploadImage(svcs.Images))
	admin.Post("/profile-pictures", UploadProfilePicture(svcs.Images))
	admin.Get("/profile-pictures/history", ProfilePictureHistory(svcs.Images))

	admin.Get("/messages", ListMessages(svcs.Contact))
	admin.Get("/messages/unread-count", UnreadMessageCount(svcs.Contact))
	admin.Get("/messages/:id", OpenMessage(svcs.Contact))
	admin.Put("/messages/:id/status", SetMessageStatus(svcs.Contact))
	admin.Delete("/messages/:id", DeleteMessage(svcs.Contact))

	// Generic collection CRUD goes last so the literal routes above win.
	admin.Get("/:collection", ListCollection(svcs.Content, svcs.Blogs))
	admin.Post("/:collection", CreateRecord(svcs.Content, svcs.Blogs))
	admin.Get("/:collection/:id", GetRecord(svcs.Content, svcs.Blogs))
	admin.Put("/:collection/:id", UpdateRecord(svcs.Content, svcs.Blogs))
	admin.Delete("/:collection/:id", DeleteRecord(svcs.Content, svcs.Blogs))
}
