package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/helenb/wagtail-torchbox/internal/api/http/handler"
)

func (r *Router) registerMenuRoutes(api fiber.Router, h *handler.MenusHandler) {
	m := api.Group("/menus")
	m.Get("/top", h.Top)
	m.Get("/top/children", h.TopChildren)
	m.Get("/secondary", h.Secondary)
}
