package pages

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/helenb/wagtail-torchbox/internal/pagetree"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	entauthorship "github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	entblogindex "github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	entblog "github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	entcarousel "github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	enthome "github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	entjobindex "github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	entjob "github.com/helenb/wagtail-torchbox/internal/repo/jobpage"
	entnode "github.com/helenb/wagtail-torchbox/internal/repo/node"
	entpersonindex "github.com/helenb/wagtail-torchbox/internal/repo/personindexpage"
	entperson "github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	entrelated "github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	entstandard "github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
	entworkindex "github.com/helenb/wagtail-torchbox/internal/repo/workindexpage"
	entwork "github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	entscreenshot "github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Page is a node together with its type-specific record. Exactly one of
// the typed fields is non-nil, matching Node.ContentType.
type Page struct {
	Node *repo.Node

	Home        *repo.HomePage
	Standard    *repo.StandardPage
	BlogIndex   *repo.BlogIndexPage
	Blog        *repo.BlogPage
	JobIndex    *repo.JobIndexPage
	Job         *repo.JobPage
	WorkIndex   *repo.WorkIndexPage
	Work        *repo.WorkPage
	PersonIndex *repo.PersonIndexPage
	Person      *repo.PersonPage
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// ByURLPath resolves a public URL path to its live page.
	ByURLPath(ctx context.Context, urlPath string) (*Page, error)

	// NodeByID loads a single live node.
	NodeByID(ctx context.Context, id uuid.UUID) (*repo.Node, error)

	// Root returns the node the site hangs off.
	Root(ctx context.Context, rootPath string) (*repo.Node, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type pageService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &pageService{db: db}
}

func (s *pageService) ByURLPath(ctx context.Context, urlPath string) (*Page, error) {
	n, err := s.db.Node.Query().
		Where(entnode.URLPath(urlPath), entnode.Live(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("resolve %s: %w", urlPath, err)
	}
	return s.load(ctx, n)
}

func (s *pageService) NodeByID(ctx context.Context, id uuid.UUID) (*repo.Node, error) {
	n, err := s.db.Node.Query().
		Where(entnode.ID(id), entnode.Live(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("node %s: %w", id, err)
	}
	return n, nil
}

func (s *pageService) Root(ctx context.Context, rootPath string) (*repo.Node, error) {
	n, err := s.db.Node.Query().
		Where(entnode.Path(rootPath)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("root node: %w", err)
	}
	return n, nil
}

// load attaches the type-specific record. Child collections come back in
// sort order, link targets eager-loaded for resolution.
func (s *pageService) load(ctx context.Context, n *repo.Node) (*Page, error) {
	p := &Page{Node: n}
	var err error

	switch n.ContentType {
	case pagetree.TypeHomePage:
		p.Home, err = s.db.HomePage.Query().
			Where(enthome.NodeID(n.ID)).
			WithCarouselItems(func(q *repo.CarouselItemQuery) {
				q.Order(entcarousel.BySortOrder()).
					WithImage().
					WithLinkNode().
					WithLinkDocument()
			}).
			Only(ctx)

	case pagetree.TypeStandardPage:
		p.Standard, err = s.db.StandardPage.Query().
			Where(entstandard.NodeID(n.ID)).
			WithFeedImage().
			WithRelatedLinks(withLinkTargets).
			Only(ctx)

	case pagetree.TypeBlogIndexPage:
		p.BlogIndex, err = s.db.BlogIndexPage.Query().
			Where(entblogindex.NodeID(n.ID)).
			WithRelatedLinks(withLinkTargets).
			Only(ctx)

	case pagetree.TypeBlogPage:
		p.Blog, err = s.db.BlogPage.Query().
			Where(entblog.NodeID(n.ID)).
			WithFeedImage().
			WithTags().
			WithRelatedLinks(withLinkTargets).
			WithAuthorships(func(q *repo.BlogAuthorshipQuery) {
				q.Order(entauthorship.BySortOrder()).
					WithAuthor(func(pq *repo.PersonPageQuery) {
						pq.WithNode().WithImage()
					})
			}).
			Only(ctx)

	case pagetree.TypeJobIndexPage:
		p.JobIndex, err = s.db.JobIndexPage.Query().
			Where(entjobindex.NodeID(n.ID)).
			Only(ctx)

	case pagetree.TypeJobPage:
		p.Job, err = s.db.JobPage.Query().
			Where(entjob.NodeID(n.ID)).
			Only(ctx)

	case pagetree.TypeWorkIndexPage:
		p.WorkIndex, err = s.db.WorkIndexPage.Query().
			Where(entworkindex.NodeID(n.ID)).
			Only(ctx)

	case pagetree.TypeWorkPage:
		p.Work, err = s.db.WorkPage.Query().
			Where(entwork.NodeID(n.ID)).
			WithScreenshots(func(q *repo.WorkScreenshotQuery) {
				q.Order(entscreenshot.BySortOrder()).WithImage()
			}).
			Only(ctx)

	case pagetree.TypePersonIndexPage:
		p.PersonIndex, err = s.db.PersonIndexPage.Query().
			Where(entpersonindex.NodeID(n.ID)).
			Only(ctx)

	case pagetree.TypePersonPage:
		p.Person, err = s.db.PersonPage.Query().
			Where(entperson.NodeID(n.ID)).
			WithImage().
			WithFeedImage().
			WithRelatedLinks(withLinkTargets).
			Only(ctx)

	default:
		return nil, fmt.Errorf("%w: unknown content type %q", ErrPageNotFound, n.ContentType)
	}

	if err != nil {
		if repo.IsNotFound(err) {
			// Node exists but its typed record is missing, treat as gone.
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("load %s page: %w", n.ContentType, err)
	}
	return p, nil
}

func withLinkTargets(q *repo.RelatedLinkQuery) {
	q.Order(entrelated.BySortOrder()).
		WithLinkNode().
		WithLinkDocument()
}
