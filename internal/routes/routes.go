package routes

import (
	"edu-turkish-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	University  *handlers.UniversityHandler
	Content     *handlers.ContentHandler
	Application *handlers.ApplicationHandler
	Upload      *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// University catalog
	universities := v1.Group("/universities")
	{
		universities.Get("/", h.University.GetUniversities)
		universities.Get("/filters", h.University.GetFilters)
		universities.Get("/slug/:slug", h.University.GetUniversityBySlug)
		universities.Get("/:id", h.University.GetUniversityByID)
	}

	directions := v1.Group("/directions")
	{
		directions.Get("/", h.University.GetDirections)
		directions.Get("/:slug/universities", h.University.GetUniversitiesByDirection)
	}

	// Site content
	v1.Get("/faqs", h.Content.GetFAQs)
	v1.Get("/reviews", h.Content.GetReviews)

	blog := v1.Group("/blog")
	{
		blog.Get("/", h.Content.GetBlogArticles)
		blog.Get("/:slug", h.Content.GetBlogArticle)
	}

	v1.Post("/applications", h.Application.CreateApplication)

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", h.Upload.GetPresignedURL)
		upload.Delete("/", h.Upload.DeleteFile)
	}
}
