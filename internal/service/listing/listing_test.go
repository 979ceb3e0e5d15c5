package listing

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/helenb/wagtail-torchbox/internal/pagetree"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/internal/repo/enttest"
)

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func createNode(t *testing.T, db *repo.Client, path, slug, contentType string, live bool) *repo.Node {
	t.Helper()
	n, err := db.Node.Create().
		SetPath(path).
		SetDepth(pagetree.Depth(path)).
		SetTitle(slug).
		SetSlug(slug).
		SetURLPath("/" + slug + "/").
		SetLive(live).
		SetContentType(contentType).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create node %q: %v", slug, err)
	}
	return n
}

func createBlog(t *testing.T, db *repo.Client, n *repo.Node, date time.Time, tags ...*repo.Tag) *repo.BlogPage {
	t.Helper()
	b, err := db.BlogPage.Create().
		SetNodeID(n.ID).
		SetBody("<p>post</p>").
		SetDate(date).
		AddTags(tags...).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create blog for %q: %v", n.Slug, err)
	}
	return b
}

func TestBlogsHidesDraftPages(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	index := createNode(t, db, "00010001", "blog", pagetree.TypeBlogIndexPage, true)
	live := createNode(t, db, pagetree.ChildPath(index.Path, 1), "live-post", pagetree.TypeBlogPage, true)
	draft := createNode(t, db, pagetree.ChildPath(index.Path, 2), "draft-post", pagetree.TypeBlogPage, false)
	createBlog(t, db, live, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	createBlog(t, db, draft, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	result, err := New(db).Blogs(ctx, index, ListRequest{})
	if err != nil {
		t.Fatalf("Blogs: %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 {
		t.Fatalf("got %d items (total %d), want the single live post", len(result.Items), result.Total)
	}
	if result.Items[0].NodeID != live.ID {
		t.Errorf("got node %s, want the live post %s", result.Items[0].NodeID, live.ID)
	}
}

func TestBlogsTagFilter(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	golang, err := db.Tag.Create().SetName("golang").Save(ctx)
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	design, err := db.Tag.Create().SetName("design").Save(ctx)
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	index := createNode(t, db, "00010001", "blog", pagetree.TypeBlogIndexPage, true)
	n1 := createNode(t, db, pagetree.ChildPath(index.Path, 1), "go-post", pagetree.TypeBlogPage, true)
	n2 := createNode(t, db, pagetree.ChildPath(index.Path, 2), "design-post", pagetree.TypeBlogPage, true)
	tagged := createBlog(t, db, n1, time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC), golang)
	createBlog(t, db, n2, time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC), design)

	result, err := New(db).Blogs(ctx, index, ListRequest{Tag: "golang"})
	if err != nil {
		t.Fatalf("Blogs: %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 {
		t.Fatalf("got %d items (total %d), want exactly the tagged post", len(result.Items), result.Total)
	}
	if result.Items[0].ID != tagged.ID {
		t.Errorf("got blog %s, want the golang-tagged one %s", result.Items[0].ID, tagged.ID)
	}
}

func TestBlogsNewestFirst(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	index := createNode(t, db, "00010001", "blog", pagetree.TypeBlogIndexPage, true)

	// Created oldest-first so insertion order cannot mask the sort.
	dates := []time.Time{
		time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 10, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		n := createNode(t, db, pagetree.ChildPath(index.Path, i+1), fmt.Sprintf("post-%d", i+1), pagetree.TypeBlogPage, true)
		createBlog(t, db, n, d)
	}

	result, err := New(db).Blogs(ctx, index, ListRequest{})
	if err != nil {
		t.Fatalf("Blogs: %v", err)
	}
	if len(result.Items) != len(dates) {
		t.Fatalf("got %d items, want %d", len(result.Items), len(dates))
	}
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i].Date.After(result.Items[i-1].Date) {
			t.Errorf("items out of order at %d: %s before %s", i, result.Items[i-1].Date, result.Items[i].Date)
		}
	}
	if !result.Items[0].Date.Equal(dates[2]) {
		t.Errorf("first item dated %s, want the newest %s", result.Items[0].Date, dates[2])
	}
}

func TestBlogsScopedToIndexSubtree(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	index := createNode(t, db, "00010001", "blog", pagetree.TypeBlogIndexPage, true)
	other := createNode(t, db, "00010002", "archive", pagetree.TypeBlogIndexPage, true)
	inside := createNode(t, db, pagetree.ChildPath(index.Path, 1), "inside", pagetree.TypeBlogPage, true)
	outside := createNode(t, db, pagetree.ChildPath(other.Path, 1), "outside", pagetree.TypeBlogPage, true)
	createBlog(t, db, inside, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	createBlog(t, db, outside, time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC))

	result, err := New(db).Blogs(ctx, index, ListRequest{})
	if err != nil {
		t.Fatalf("Blogs: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].NodeID != inside.ID {
		t.Fatalf("got %d items, want only the post under the queried index", len(result.Items))
	}
}
