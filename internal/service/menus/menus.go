package menus

import (
	"context"
	"fmt"

	"github.com/helenb/wagtail-torchbox/internal/pagetree"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	entnode "github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Item is one entry of the top navigation. ShowDropdown is set when the
// entry has menu children of its own.
type Item struct {
	Node         *repo.Node
	ShowDropdown bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Top returns the top-level menu under root, flagging entries that can
	// open a dropdown.
	Top(ctx context.Context, root *repo.Node) ([]Item, error)

	// TopChildren returns the dropdown entries for one top-level item.
	TopChildren(ctx context.Context, parent *repo.Node) ([]*repo.Node, error)

	// Secondary returns the sidebar menu for a page: its own menu children,
	// or its menu siblings when it has none.
	Secondary(ctx context.Context, page *repo.Node) ([]*repo.Node, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type menuService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &menuService{db: db}
}

func (s *menuService) Top(ctx context.Context, root *repo.Node) ([]Item, error) {
	children, err := s.menuChildren(ctx, root)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(children))
	for _, c := range children {
		hasChildren, err := s.db.Node.Query().
			Where(menuChildOf(c)...).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("menu dropdown check: %w", err)
		}
		items = append(items, Item{Node: c, ShowDropdown: hasChildren})
	}
	return items, nil
}

func (s *menuService) TopChildren(ctx context.Context, parent *repo.Node) ([]*repo.Node, error) {
	return s.menuChildren(ctx, parent)
}

func (s *menuService) Secondary(ctx context.Context, page *repo.Node) ([]*repo.Node, error) {
	children, err := s.menuChildren(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(children) > 0 {
		return children, nil
	}

	parentPath, ok := pagetree.ParentPath(page.Path)
	if !ok {
		return children, nil
	}
	siblings, err := s.db.Node.Query().
		Where(
			entnode.PathHasPrefix(parentPath),
			entnode.DepthEQ(page.Depth),
			entnode.PathNEQ(page.Path),
			entnode.Live(true),
			entnode.ShowInMenus(true),
		).
		Order(entnode.ByPath()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu siblings: %w", err)
	}
	return siblings, nil
}

func (s *menuService) menuChildren(ctx context.Context, n *repo.Node) ([]*repo.Node, error) {
	children, err := s.db.Node.Query().
		Where(menuChildOf(n)...).
		Order(entnode.ByPath()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu children of %s: %w", n.Path, err)
	}
	return children, nil
}

func menuChildOf(n *repo.Node) []predicate.Node {
	return []predicate.Node{
		entnode.PathHasPrefix(n.Path),
		entnode.DepthEQ(n.Depth + 1),
		entnode.Live(true),
		entnode.ShowInMenus(true),
	}
}
