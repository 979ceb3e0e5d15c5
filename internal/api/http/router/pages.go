package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/helenb/wagtail-torchbox/internal/api/http/handler"
)

func (r *Router) registerPageRoutes(api fiber.Router, h *handler.PagesHandler) {
	api.Get("/pages/*", h.Serve)
}
