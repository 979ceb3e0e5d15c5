package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/internal/service/listing"
	"github.com/helenb/wagtail-torchbox/internal/service/menus"
	"github.com/helenb/wagtail-torchbox/pkg/assets"
	"github.com/helenb/wagtail-torchbox/pkg/format"
)

// serializer builds the JSON shapes shared by the page, menu and feed
// handlers. The asset store is optional; without one, file keys resolve
// under the local media path.
type serializer struct {
	store *assets.Client
}

func newSerializer(store *assets.Client) *serializer {
	return &serializer{store: store}
}

func (s *serializer) fileURL(key string) string {
	if s.store == nil {
		return "/media/" + key
	}
	return s.store.URL(key)
}

// ---------------------------------------------------------------------------
// Shared shapes
// ---------------------------------------------------------------------------

func nodeJSON(n *repo.Node) fiber.Map {
	return fiber.Map{
		"id":                 n.ID,
		"title":              n.Title,
		"slug":               n.Slug,
		"url":                n.URLPath,
		"content_type":       n.ContentType,
		"seo_title":          n.SeoTitle,
		"search_description": n.SearchDescription,
		"show_in_menus":      n.ShowInMenus,
	}
}

func (s *serializer) imageJSON(img *repo.Image) fiber.Map {
	if img == nil {
		return nil
	}
	return fiber.Map{
		"id":     img.ID,
		"title":  img.Title,
		"url":    s.fileURL(img.File),
		"width":  img.Width,
		"height": img.Height,
	}
}

func (s *serializer) relatedLinkJSON(rl *repo.RelatedLink) fiber.Map {
	var pageURL, docURL string
	if rl.Edges.LinkNode != nil {
		pageURL = rl.Edges.LinkNode.URLPath
	}
	if rl.Edges.LinkDocument != nil {
		docURL = s.fileURL(rl.Edges.LinkDocument.File)
	}
	return fiber.Map{
		"title": rl.Title,
		"url":   listing.ResolveLink(pageURL, docURL, rl.LinkExternal),
	}
}

func (s *serializer) relatedLinksJSON(links []*repo.RelatedLink) []fiber.Map {
	out := make([]fiber.Map, 0, len(links))
	for _, rl := range links {
		out = append(out, s.relatedLinkJSON(rl))
	}
	return out
}

func (s *serializer) carouselJSON(items []*repo.CarouselItem) []fiber.Map {
	out := make([]fiber.Map, 0, len(items))
	for _, ci := range items {
		var pageURL, docURL string
		if ci.Edges.LinkNode != nil {
			pageURL = ci.Edges.LinkNode.URLPath
		}
		if ci.Edges.LinkDocument != nil {
			docURL = s.fileURL(ci.Edges.LinkDocument.File)
		}
		out = append(out, fiber.Map{
			"caption":   ci.Caption,
			"embed_url": ci.EmbedURL,
			"image":     s.imageJSON(ci.Edges.Image),
			"link":      listing.ResolveLink(pageURL, docURL, ci.LinkExternal),
		})
	}
	return out
}

func advertJSON(a *repo.Advert) fiber.Map {
	return fiber.Map{
		"id":   a.ID,
		"text": a.Text,
		"url":  a.URL,
	}
}

func advertsJSON(adverts []*repo.Advert) []fiber.Map {
	out := make([]fiber.Map, 0, len(adverts))
	for _, a := range adverts {
		out = append(out, advertJSON(a))
	}
	return out
}

// ---------------------------------------------------------------------------
// Page cards (listing and feed entries)
// ---------------------------------------------------------------------------

func (s *serializer) blogCardJSON(b *repo.BlogPage) fiber.Map {
	m := fiber.Map{
		"id":           b.ID,
		"intro":        b.Intro,
		"date":         b.Date.Format("2006-01-02"),
		"time_display": format.TimeDisplay(b.Date.Hour(), b.Date.Minute()),
		"feed_image":   s.imageJSON(b.Edges.FeedImage),
	}
	if b.Edges.Node != nil {
		m["page"] = nodeJSON(b.Edges.Node)
	}
	if b.Edges.Tags != nil {
		tags := make([]string, 0, len(b.Edges.Tags))
		for _, t := range b.Edges.Tags {
			tags = append(tags, t.Name)
		}
		m["tags"] = tags
	}
	return m
}

func (s *serializer) personCardJSON(p *repo.PersonPage) fiber.Map {
	m := fiber.Map{
		"id":         p.ID,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"role":       p.Role,
		"intro":      p.Intro,
		"image":      s.imageJSON(p.Edges.Image),
	}
	if p.Edges.Node != nil {
		m["page"] = nodeJSON(p.Edges.Node)
	}
	return m
}

func workCardJSON(w *repo.WorkPage) fiber.Map {
	m := fiber.Map{
		"id":      w.ID,
		"summary": w.Summary,
		"intro":   w.Intro,
	}
	if w.Edges.Node != nil {
		m["page"] = nodeJSON(w.Edges.Node)
	}
	return m
}

func jobCardJSON(j *repo.JobPage) fiber.Map {
	m := fiber.Map{
		"id":   j.ID,
		"body": j.Body,
	}
	if j.Edges.Node != nil {
		m["page"] = nodeJSON(j.Edges.Node)
	}
	return m
}

// ---------------------------------------------------------------------------
// Listings and menus
// ---------------------------------------------------------------------------

func pageResultJSON[T any](r *listing.PageResult[T], items []fiber.Map) fiber.Map {
	return fiber.Map{
		"items":        items,
		"page":         r.Page,
		"per_page":     r.PerPage,
		"total":        r.Total,
		"total_pages":  r.TotalPages,
		"has_next":     r.HasNext(),
		"has_previous": r.HasPrev(),
	}
}

func menuItemsJSON(items []menus.Item) []fiber.Map {
	out := make([]fiber.Map, 0, len(items))
	for _, it := range items {
		m := nodeJSON(it.Node)
		m["show_dropdown"] = it.ShowDropdown
		out = append(out, m)
	}
	return out
}

func nodesJSON(nodes []*repo.Node) []fiber.Map {
	out := make([]fiber.Map, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeJSON(n))
	}
	return out
}
