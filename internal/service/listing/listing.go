package listing

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/helenb/wagtail-torchbox/internal/pagetree"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	entblogindex "github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	entblog "github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	entjob "github.com/helenb/wagtail-torchbox/internal/repo/jobpage"
	entnode "github.com/helenb/wagtail-torchbox/internal/repo/node"
	entperson "github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	enttag "github.com/helenb/wagtail-torchbox/internal/repo/tag"
	entwork "github.com/helenb/wagtail-torchbox/internal/repo/workpage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ListRequest describes one page of a descendant listing. Page is the raw
// query-string value so clamping happens in one place.
type ListRequest struct {
	Page    string
	PerPage int
	Tag     string
}

func (r ListRequest) perPage() int {
	if r.PerPage < 1 {
		return DefaultPerPage
	}
	return r.PerPage
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Blogs lists live blog pages under the given index node, newest first,
	// optionally filtered by tag name.
	Blogs(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.BlogPage], error)

	// Jobs lists live job pages under the given index node.
	Jobs(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.JobPage], error)

	// Work lists live work pages under the given index node.
	Work(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.WorkPage], error)

	// People lists live person pages under the given index node.
	People(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.PersonPage], error)

	// BlogIndexFor finds the nearest blog index above the given node. When no
	// ancestor is a blog index it falls back to the first blog index in the
	// store, and returns (nil, nil) when none exists at all.
	BlogIndexFor(ctx context.Context, n *repo.Node) (*repo.BlogIndexPage, error)

	// Tags lists the distinct tag names used by live blog pages.
	Tags(ctx context.Context) ([]string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type listingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &listingService{db: db}
}

func (s *listingService) Blogs(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.BlogPage], error) {
	q := s.db.BlogPage.Query().
		Where(entblog.HasNodeWith(
			entnode.Live(true),
			entnode.PathHasPrefix(indexNode.Path),
		))
	if req.Tag != "" {
		q = q.Where(entblog.HasTagsWith(enttag.Name(req.Tag)))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}

	perPage := req.perPage()
	pages := TotalPages(total, perPage)
	page := ClampPage(req.Page, pages)

	items, err := q.
		Order(entblog.ByDate(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		WithNode().
		WithFeedImage().
		WithTags().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	return &PageResult[*repo.BlogPage]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: pages,
	}, nil
}

func (s *listingService) Jobs(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.JobPage], error) {
	q := s.db.JobPage.Query().
		Where(entjob.HasNodeWith(
			entnode.Live(true),
			entnode.PathHasPrefix(indexNode.Path),
		))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}

	perPage := req.perPage()
	pages := TotalPages(total, perPage)
	page := ClampPage(req.Page, pages)

	items, err := q.
		Order(entjob.ByNodeField(entnode.FieldPath)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		WithNode().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return &PageResult[*repo.JobPage]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: pages,
	}, nil
}

func (s *listingService) Work(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.WorkPage], error) {
	q := s.db.WorkPage.Query().
		Where(entwork.HasNodeWith(
			entnode.Live(true),
			entnode.PathHasPrefix(indexNode.Path),
		))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count work: %w", err)
	}

	perPage := req.perPage()
	pages := TotalPages(total, perPage)
	page := ClampPage(req.Page, pages)

	items, err := q.
		Order(entwork.ByNodeField(entnode.FieldPath)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		WithNode().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work: %w", err)
	}

	return &PageResult[*repo.WorkPage]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: pages,
	}, nil
}

func (s *listingService) People(ctx context.Context, indexNode *repo.Node, req ListRequest) (*PageResult[*repo.PersonPage], error) {
	q := s.db.PersonPage.Query().
		Where(entperson.HasNodeWith(
			entnode.Live(true),
			entnode.PathHasPrefix(indexNode.Path),
		))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count people: %w", err)
	}

	perPage := req.perPage()
	pages := TotalPages(total, perPage)
	page := ClampPage(req.Page, pages)

	items, err := q.
		Order(entperson.ByLastName(), entperson.ByFirstName()).
		Offset((page - 1) * perPage).
		Limit(perPage).
		WithNode().
		WithImage().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	return &PageResult[*repo.PersonPage]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: pages,
	}, nil
}

func (s *listingService) BlogIndexFor(ctx context.Context, n *repo.Node) (*repo.BlogIndexPage, error) {
	for _, p := range pagetree.AncestorPaths(n.Path) {
		idx, err := s.db.BlogIndexPage.Query().
			Where(entblogindex.HasNodeWith(entnode.Path(p))).
			WithNode().
			Only(ctx)
		if err == nil {
			return idx, nil
		}
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("blog index for %s: %w", p, err)
		}
	}

	// No ancestor matched, use whichever blog index was created first.
	idx, err := s.db.BlogIndexPage.Query().
		Order(entblogindex.ByCreatedAt(sql.OrderAsc())).
		WithNode().
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fallback blog index: %w", err)
	}
	return idx, nil
}

func (s *listingService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.db.Tag.Query().
		Where(enttag.HasBlogPagesWith(entblog.HasNodeWith(entnode.Live(true)))).
		Order(enttag.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}
