package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/helenb/wagtail-torchbox/config"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/internal/service/menus"
	"github.com/helenb/wagtail-torchbox/internal/service/pages"
)

type MenusHandler struct {
	menus menus.Service
	pages pages.Service
	cfg   *config.Config
}

func NewMenusHandler(menusSvc menus.Service, pagesSvc pages.Service, cfg *config.Config) *MenusHandler {
	return &MenusHandler{menus: menusSvc, pages: pagesSvc, cfg: cfg}
}

// GET /api/v1/menus/top?calling_page=/blog/
func (h *MenusHandler) Top(c fiber.Ctx) error {
	root, err := h.pages.Root(c.Context(), h.cfg.Site.RootPathOrDefault())
	if err != nil {
		return internalError(c)
	}

	items, err := h.menus.Top(c.Context(), root)
	if err != nil {
		return internalError(c)
	}

	body := fiber.Map{"menuitems": menuItemsJSON(items)}
	if cp := h.callingPage(c); cp != nil {
		body["calling_page"] = nodeJSON(cp)
	}
	return ok(c, body)
}

// GET /api/v1/menus/top/children?parent=<node id>
func (h *MenusHandler) TopChildren(c fiber.Ctx) error {
	parentID, err := uuid.Parse(c.Query("parent"))
	if err != nil {
		return badRequest(c, "invalid parent id")
	}

	parent, err := h.pages.NodeByID(c.Context(), parentID)
	if err != nil {
		if errors.Is(err, pages.ErrPageNotFound) {
			return notFound(c, "page not found")
		}
		return internalError(c)
	}

	children, err := h.menus.TopChildren(c.Context(), parent)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"parent":             nodeJSON(parent),
		"menuitems_children": nodesJSON(children),
	})
}

// GET /api/v1/menus/secondary?calling_page=/about/
func (h *MenusHandler) Secondary(c fiber.Ctx) error {
	cp := h.callingPage(c)
	if cp == nil {
		return badRequest(c, "calling_page is required")
	}

	nodes, err := h.menus.Secondary(c.Context(), cp)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{"pages": nodesJSON(nodes)})
}

// callingPage resolves the optional calling_page query parameter. An
// unknown path is treated the same as an absent one.
func (h *MenusHandler) callingPage(c fiber.Ctx) *repo.Node {
	path := c.Query("calling_page")
	if path == "" {
		return nil
	}
	p, err := h.pages.ByURLPath(c.Context(), path)
	if err != nil {
		return nil
	}
	return p.Node
}
