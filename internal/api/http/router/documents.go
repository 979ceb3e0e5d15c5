package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/helenb/wagtail-torchbox/internal/api/http/handler"
)

func (r *Router) registerDocumentRoutes(api fiber.Router, h *handler.DocumentsHandler) {
	d := api.Group("/documents")
	d.Get("/:id", h.Get)
	d.Get("/:id/download", h.Download)
}
