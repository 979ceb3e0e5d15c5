package feeds

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/helenb/wagtail-torchbox/internal/repo"
	entadvert "github.com/helenb/wagtail-torchbox/internal/repo/advert"
	entplacement "github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	entblog "github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	entjob "github.com/helenb/wagtail-torchbox/internal/repo/jobpage"
	entnode "github.com/helenb/wagtail-torchbox/internal/repo/node"
	entperson "github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	entwork "github.com/helenb/wagtail-torchbox/internal/repo/workpage"
)

// DefaultCount is how many entries a home page feed shows when the site
// config does not say otherwise.
const DefaultCount = 3

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// People returns up to count live person pages in random order.
	People(ctx context.Context, count int) ([]*repo.PersonPage, error)

	// Work returns up to count live work pages in random order.
	Work(ctx context.Context, count int) ([]*repo.WorkPage, error)

	// Blogs returns up to count live blog pages, newest first.
	Blogs(ctx context.Context, count int) ([]*repo.BlogPage, error)

	// Jobs returns up to count live job pages in tree order.
	Jobs(ctx context.Context, count int) ([]*repo.JobPage, error)

	// Adverts returns the adverts placed on the given node, or every advert
	// when nodeID is nil.
	Adverts(ctx context.Context, nodeID *uuid.UUID) ([]*repo.Advert, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type feedService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &feedService{db: db}
}

// randomOrder shuffles rows in the database so each render of the home
// page picks a different sample.
func randomOrder(s *sql.Selector) {
	s.OrderExpr(sql.Expr("RANDOM()"))
}

func clampCount(count int) int {
	if count < 1 {
		return DefaultCount
	}
	return count
}

func (s *feedService) People(ctx context.Context, count int) ([]*repo.PersonPage, error) {
	people, err := s.db.PersonPage.Query().
		Where(entperson.HasNodeWith(entnode.Live(true))).
		Order(randomOrder).
		Limit(clampCount(count)).
		WithNode().
		WithImage().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("people feed: %w", err)
	}
	return people, nil
}

func (s *feedService) Work(ctx context.Context, count int) ([]*repo.WorkPage, error) {
	work, err := s.db.WorkPage.Query().
		Where(entwork.HasNodeWith(entnode.Live(true))).
		Order(randomOrder).
		Limit(clampCount(count)).
		WithNode().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("work feed: %w", err)
	}
	return work, nil
}

func (s *feedService) Blogs(ctx context.Context, count int) ([]*repo.BlogPage, error) {
	blogs, err := s.db.BlogPage.Query().
		Where(entblog.HasNodeWith(entnode.Live(true))).
		Order(entblog.ByDate(sql.OrderDesc())).
		Limit(clampCount(count)).
		WithNode().
		WithFeedImage().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("blogs feed: %w", err)
	}
	return blogs, nil
}

func (s *feedService) Jobs(ctx context.Context, count int) ([]*repo.JobPage, error) {
	jobs, err := s.db.JobPage.Query().
		Where(entjob.HasNodeWith(entnode.Live(true))).
		Order(entjob.ByNodeField(entnode.FieldPath)).
		Limit(clampCount(count)).
		WithNode().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("jobs feed: %w", err)
	}
	return jobs, nil
}

func (s *feedService) Adverts(ctx context.Context, nodeID *uuid.UUID) ([]*repo.Advert, error) {
	q := s.db.Advert.Query()
	if nodeID != nil {
		q = q.Where(entadvert.HasPlacementsWith(entplacement.NodeID(*nodeID)))
	}
	adverts, err := q.Order(entadvert.ByText()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("adverts: %w", err)
	}
	return adverts, nil
}
