package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/helenb/wagtail-torchbox/config"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/internal/service/feeds"
	"github.com/helenb/wagtail-torchbox/internal/service/listing"
	"github.com/helenb/wagtail-torchbox/internal/service/pages"
	"github.com/helenb/wagtail-torchbox/pkg/assets"
)

type PagesHandler struct {
	pages   pages.Service
	listing listing.Service
	feeds   feeds.Service
	cfg     *config.Config
	ser     *serializer
}

func NewPagesHandler(pagesSvc pages.Service, listingSvc listing.Service, feedsSvc feeds.Service, cfg *config.Config, store *assets.Client) *PagesHandler {
	return &PagesHandler{
		pages:   pagesSvc,
		listing: listingSvc,
		feeds:   feedsSvc,
		cfg:     cfg,
		ser:     newSerializer(store),
	}
}

// GET /api/v1/pages/*
func (h *PagesHandler) Serve(c fiber.Ctx) error {
	// Stored url_paths always carry a trailing slash.
	path := "/" + c.Params("*")
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	p, err := h.pages.ByURLPath(c.Context(), path)
	if err != nil {
		if errors.Is(err, pages.ErrPageNotFound) {
			return notFound(c, "page not found")
		}
		return internalError(c)
	}

	body, err := h.render(c, p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, body)
}

// render builds the page payload: the typed record under "self", plus the
// context the page's template needs (listings for index pages, feeds and
// adverts for the home page).
func (h *PagesHandler) render(c fiber.Ctx, p *pages.Page) (fiber.Map, error) {
	req := listing.ListRequest{
		Page:    c.Query("page"),
		PerPage: h.cfg.Site.PageSizeOrDefault(),
		Tag:     c.Query("tag"),
	}

	switch {
	case p.Home != nil:
		return h.renderHome(c, p)

	case p.Standard != nil:
		return fiber.Map{"self": h.standardJSON(p.Node, p.Standard)}, nil

	case p.BlogIndex != nil:
		result, err := h.listing.Blogs(c.Context(), p.Node, req)
		if err != nil {
			return nil, err
		}
		items := make([]fiber.Map, 0, len(result.Items))
		for _, b := range result.Items {
			items = append(items, h.ser.blogCardJSON(b))
		}
		return fiber.Map{
			"self":  h.blogIndexJSON(p.Node, p.BlogIndex),
			"blogs": pageResultJSON(result, items),
		}, nil

	case p.Blog != nil:
		return h.renderBlog(c, p)

	case p.JobIndex != nil:
		result, err := h.listing.Jobs(c.Context(), p.Node, req)
		if err != nil {
			return nil, err
		}
		items := make([]fiber.Map, 0, len(result.Items))
		for _, j := range result.Items {
			items = append(items, jobCardJSON(j))
		}
		return fiber.Map{
			"self": h.indexJSON(p.Node, p.JobIndex.Intro),
			"jobs": pageResultJSON(result, items),
		}, nil

	case p.Job != nil:
		return fiber.Map{"self": h.jobJSON(p.Node, p.Job)}, nil

	case p.WorkIndex != nil:
		result, err := h.listing.Work(c.Context(), p.Node, req)
		if err != nil {
			return nil, err
		}
		items := make([]fiber.Map, 0, len(result.Items))
		for _, w := range result.Items {
			items = append(items, workCardJSON(w))
		}
		return fiber.Map{
			"self": h.indexJSON(p.Node, p.WorkIndex.Intro),
			"work": pageResultJSON(result, items),
		}, nil

	case p.Work != nil:
		return fiber.Map{"self": h.workJSON(p.Node, p.Work)}, nil

	case p.PersonIndex != nil:
		result, err := h.listing.People(c.Context(), p.Node, req)
		if err != nil {
			return nil, err
		}
		items := make([]fiber.Map, 0, len(result.Items))
		for _, person := range result.Items {
			items = append(items, h.ser.personCardJSON(person))
		}
		return fiber.Map{
			"self":   h.indexJSON(p.Node, p.PersonIndex.Intro),
			"people": pageResultJSON(result, items),
		}, nil

	case p.Person != nil:
		return fiber.Map{"self": h.personJSON(p.Node, p.Person)}, nil

	default:
		return fiber.Map{"self": nodeJSON(p.Node)}, nil
	}
}

func (h *PagesHandler) renderHome(c fiber.Ctx, p *pages.Page) (fiber.Map, error) {
	count := h.cfg.Site.FeedCountOrDefault()

	people, err := h.feeds.People(c.Context(), count)
	if err != nil {
		return nil, err
	}
	blogs, err := h.feeds.Blogs(c.Context(), count)
	if err != nil {
		return nil, err
	}
	work, err := h.feeds.Work(c.Context(), count)
	if err != nil {
		return nil, err
	}
	jobs, err := h.feeds.Jobs(c.Context(), count)
	if err != nil {
		return nil, err
	}
	adverts, err := h.feeds.Adverts(c.Context(), &p.Node.ID)
	if err != nil {
		return nil, err
	}

	peopleItems := make([]fiber.Map, 0, len(people))
	for _, person := range people {
		peopleItems = append(peopleItems, h.ser.personCardJSON(person))
	}
	blogItems := make([]fiber.Map, 0, len(blogs))
	for _, b := range blogs {
		blogItems = append(blogItems, h.ser.blogCardJSON(b))
	}
	workItems := make([]fiber.Map, 0, len(work))
	for _, w := range work {
		workItems = append(workItems, workCardJSON(w))
	}
	jobItems := make([]fiber.Map, 0, len(jobs))
	for _, j := range jobs {
		jobItems = append(jobItems, jobCardJSON(j))
	}

	self := nodeJSON(p.Node)
	self["carousel"] = h.ser.carouselJSON(p.Home.Edges.CarouselItems)

	return fiber.Map{
		"self":    self,
		"people":  peopleItems,
		"blogs":   blogItems,
		"work":    workItems,
		"jobs":    jobItems,
		"adverts": advertsJSON(adverts),
	}, nil
}

func (h *PagesHandler) renderBlog(c fiber.Ctx, p *pages.Page) (fiber.Map, error) {
	body := fiber.Map{"self": h.blogJSON(p.Node, p.Blog)}

	idx, err := h.listing.BlogIndexFor(c.Context(), p.Node)
	if err != nil {
		return nil, err
	}
	if idx != nil && idx.Edges.Node != nil {
		body["blog_index"] = nodeJSON(idx.Edges.Node)
	}
	return body, nil
}

// ---------------------------------------------------------------------------
// Detail shapes
// ---------------------------------------------------------------------------

func (h *PagesHandler) indexJSON(n *repo.Node, intro string) fiber.Map {
	m := nodeJSON(n)
	m["intro"] = intro
	return m
}

func (h *PagesHandler) blogIndexJSON(n *repo.Node, idx *repo.BlogIndexPage) fiber.Map {
	m := h.indexJSON(n, idx.Intro)
	m["related_links"] = h.ser.relatedLinksJSON(idx.Edges.RelatedLinks)
	return m
}

func (h *PagesHandler) standardJSON(n *repo.Node, sp *repo.StandardPage) fiber.Map {
	m := nodeJSON(n)
	m["intro"] = sp.Intro
	m["body"] = sp.Body
	m["feed_image"] = h.ser.imageJSON(sp.Edges.FeedImage)
	m["related_links"] = h.ser.relatedLinksJSON(sp.Edges.RelatedLinks)
	return m
}

func (h *PagesHandler) blogJSON(n *repo.Node, b *repo.BlogPage) fiber.Map {
	m := h.ser.blogCardJSON(b)
	m["page"] = nodeJSON(n)
	m["body"] = b.Body
	m["related_links"] = h.ser.relatedLinksJSON(b.Edges.RelatedLinks)

	authors := make([]fiber.Map, 0, len(b.Edges.Authorships))
	for _, a := range b.Edges.Authorships {
		if a.Edges.Author == nil {
			continue
		}
		authors = append(authors, h.ser.personCardJSON(a.Edges.Author))
	}
	m["authors"] = authors
	return m
}

func (h *PagesHandler) jobJSON(n *repo.Node, j *repo.JobPage) fiber.Map {
	m := nodeJSON(n)
	m["body"] = j.Body
	return m
}

func (h *PagesHandler) workJSON(n *repo.Node, w *repo.WorkPage) fiber.Map {
	m := nodeJSON(n)
	m["summary"] = w.Summary
	m["intro"] = w.Intro
	m["body"] = w.Body

	shots := make([]fiber.Map, 0, len(w.Edges.Screenshots))
	for _, sc := range w.Edges.Screenshots {
		shots = append(shots, fiber.Map{"image": h.ser.imageJSON(sc.Edges.Image)})
	}
	m["screenshots"] = shots
	return m
}

func (h *PagesHandler) personJSON(n *repo.Node, p *repo.PersonPage) fiber.Map {
	m := h.ser.personCardJSON(p)
	m["page"] = nodeJSON(n)
	m["biography"] = p.Biography
	m["feed_image"] = h.ser.imageJSON(p.Edges.FeedImage)
	m["related_links"] = h.ser.relatedLinksJSON(p.Edges.RelatedLinks)
	m["contact"] = fiber.Map{
		"telephone": p.Telephone,
		"email":     p.Email,
		"address_1": p.Address1,
		"address_2": p.Address2,
		"city":      p.City,
		"country":   p.Country,
		"post_code": p.PostCode,
	}
	return m
}
