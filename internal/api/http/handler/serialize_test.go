package handler

import (
	"testing"

	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/internal/service/listing"
	"github.com/helenb/wagtail-torchbox/internal/service/menus"
)

func TestRelatedLinkJSONPriority(t *testing.T) {
	s := newSerializer(nil)

	// A linked page wins over a simultaneously set external URL.
	rl := &repo.RelatedLink{Title: "About", LinkExternal: "https://example.com"}
	rl.Edges.LinkNode = &repo.Node{URLPath: "/about/"}
	if got := s.relatedLinkJSON(rl)["url"]; got != "/about/" {
		t.Errorf("page link: url = %v, want /about/", got)
	}

	// A linked document wins over the external URL.
	rl = &repo.RelatedLink{Title: "Brochure", LinkExternal: "https://example.com"}
	rl.Edges.LinkDocument = &repo.Document{File: "documents/brochure.pdf"}
	if got := s.relatedLinkJSON(rl)["url"]; got != "/media/documents/brochure.pdf" {
		t.Errorf("document link: url = %v, want /media/documents/brochure.pdf", got)
	}

	// Only the external URL set.
	rl = &repo.RelatedLink{Title: "Elsewhere", LinkExternal: "https://example.com"}
	if got := s.relatedLinkJSON(rl)["url"]; got != "https://example.com" {
		t.Errorf("external link: url = %v, want https://example.com", got)
	}
}

func TestMenuItemsJSONShape(t *testing.T) {
	items := []menus.Item{
		{Node: &repo.Node{Title: "Blog", URLPath: "/blog/"}, ShowDropdown: true},
		{Node: &repo.Node{Title: "Jobs", URLPath: "/jobs/"}, ShowDropdown: false},
	}

	out := menuItemsJSON(items)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0]["show_dropdown"] != true {
		t.Errorf("first item show_dropdown = %v, want true", out[0]["show_dropdown"])
	}
	if out[1]["show_dropdown"] != false {
		t.Errorf("second item show_dropdown = %v, want false", out[1]["show_dropdown"])
	}
	if out[0]["url"] != "/blog/" {
		t.Errorf("first item url = %v, want /blog/", out[0]["url"])
	}
}

func TestPageResultJSONNavigation(t *testing.T) {
	r := &listing.PageResult[*repo.BlogPage]{
		Page:       2,
		PerPage:    10,
		Total:      25,
		TotalPages: 3,
	}

	out := pageResultJSON(r, nil)
	if out["has_next"] != true {
		t.Errorf("has_next = %v, want true", out["has_next"])
	}
	if out["has_previous"] != true {
		t.Errorf("has_previous = %v, want true", out["has_previous"])
	}
	if out["total_pages"] != 3 {
		t.Errorf("total_pages = %v, want 3", out["total_pages"])
	}
}
