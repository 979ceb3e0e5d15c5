package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/helenb/wagtail-torchbox/internal/api/http/handler"
)

func (r *Router) registerFeedRoutes(api fiber.Router, h *handler.FeedsHandler) {
	f := api.Group("/home")
	f.Get("/people", h.People)
	f.Get("/blogs", h.Blogs)
	f.Get("/work", h.Work)
	f.Get("/jobs", h.Jobs)

	api.Get("/adverts", h.Adverts)
	api.Get("/tags", h.Tags)
}
