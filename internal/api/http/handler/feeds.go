package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/helenb/wagtail-torchbox/config"
	"github.com/helenb/wagtail-torchbox/internal/service/feeds"
	"github.com/helenb/wagtail-torchbox/internal/service/listing"
	"github.com/helenb/wagtail-torchbox/pkg/assets"
)

type FeedsHandler struct {
	feeds   feeds.Service
	listing listing.Service
	cfg     *config.Config
	ser     *serializer
}

func NewFeedsHandler(feedsSvc feeds.Service, listingSvc listing.Service, cfg *config.Config, store *assets.Client) *FeedsHandler {
	return &FeedsHandler{
		feeds:   feedsSvc,
		listing: listingSvc,
		cfg:     cfg,
		ser:     newSerializer(store),
	}
}

func (h *FeedsHandler) count(c fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("count"))
	if err != nil || n < 1 {
		return h.cfg.Site.FeedCountOrDefault()
	}
	return n
}

// GET /api/v1/home/people
func (h *FeedsHandler) People(c fiber.Ctx) error {
	people, err := h.feeds.People(c.Context(), h.count(c))
	if err != nil {
		return internalError(c)
	}
	items := make([]fiber.Map, 0, len(people))
	for _, p := range people {
		items = append(items, h.ser.personCardJSON(p))
	}
	return ok(c, fiber.Map{"people": items})
}

// GET /api/v1/home/blogs
func (h *FeedsHandler) Blogs(c fiber.Ctx) error {
	blogs, err := h.feeds.Blogs(c.Context(), h.count(c))
	if err != nil {
		return internalError(c)
	}
	items := make([]fiber.Map, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, h.ser.blogCardJSON(b))
	}
	return ok(c, fiber.Map{"blogs": items})
}

// GET /api/v1/home/work
func (h *FeedsHandler) Work(c fiber.Ctx) error {
	work, err := h.feeds.Work(c.Context(), h.count(c))
	if err != nil {
		return internalError(c)
	}
	items := make([]fiber.Map, 0, len(work))
	for _, w := range work {
		items = append(items, workCardJSON(w))
	}
	return ok(c, fiber.Map{"work": items})
}

// GET /api/v1/home/jobs
func (h *FeedsHandler) Jobs(c fiber.Ctx) error {
	jobs, err := h.feeds.Jobs(c.Context(), h.count(c))
	if err != nil {
		return internalError(c)
	}
	items := make([]fiber.Map, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, jobCardJSON(j))
	}
	return ok(c, fiber.Map{"jobs": items})
}

// GET /api/v1/adverts?page=<node id>
func (h *FeedsHandler) Adverts(c fiber.Ctx) error {
	var nodeID *uuid.UUID
	if raw := c.Query("page"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid page id")
		}
		nodeID = &id
	}

	adverts, err := h.feeds.Adverts(c.Context(), nodeID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"adverts": advertsJSON(adverts)})
}

// GET /api/v1/tags
func (h *FeedsHandler) Tags(c fiber.Ctx) error {
	tags, err := h.listing.Tags(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"tags": tags})
}
