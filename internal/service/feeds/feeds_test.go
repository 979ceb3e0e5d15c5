package feeds

import (
	"context"
	"fmt"
	"testing"

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

func createJob(t *testing.T, db *repo.Client, path, slug string, live bool) *repo.JobPage {
	t.Helper()
	ctx := context.Background()
	n, err := db.Node.Create().
		SetPath(path).
		SetDepth(pagetree.Depth(path)).
		SetTitle(slug).
		SetSlug(slug).
		SetURLPath("/jobs/" + slug + "/").
		SetLive(live).
		SetContentType(pagetree.TypeJobPage).
		Save(ctx)
	if err != nil {
		t.Fatalf("create node %q: %v", slug, err)
	}
	j, err := db.JobPage.Create().
		SetNodeID(n.ID).
		SetBody("<p>apply now</p>").
		Save(ctx)
	if err != nil {
		t.Fatalf("create job %q: %v", slug, err)
	}
	return j
}

func TestJobsFeedLimit(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	indexPath := "00010004"
	for i := 1; i <= 5; i++ {
		createJob(t, db, pagetree.ChildPath(indexPath, i), fmt.Sprintf("job-%d", i), true)
	}
	createJob(t, db, pagetree.ChildPath(indexPath, 6), "job-draft", false)

	svc := New(db)

	jobs, err := svc.Jobs(ctx, 2)
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	// Tree order, so the first two children come back.
	for i, j := range jobs {
		if want := fmt.Sprintf("job-%d", i+1); j.Edges.Node == nil || j.Edges.Node.Slug != want {
			t.Errorf("jobs[%d] = %v, want %s", i, j.Edges.Node, want)
		}
	}
}

func TestJobsFeedDefaultCount(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	indexPath := "00010004"
	for i := 1; i <= 5; i++ {
		createJob(t, db, pagetree.ChildPath(indexPath, i), fmt.Sprintf("job-%d", i), true)
	}

	jobs, err := New(db).Jobs(ctx, 0)
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != DefaultCount {
		t.Errorf("got %d jobs, want the default %d", len(jobs), DefaultCount)
	}
}

func TestJobsFeedHidesDrafts(t *testing.T) {
	db := openTestClient(t)
	ctx := context.Background()

	indexPath := "00010004"
	createJob(t, db, pagetree.ChildPath(indexPath, 1), "job-live", true)
	createJob(t, db, pagetree.ChildPath(indexPath, 2), "job-draft", false)

	jobs, err := New(db).Jobs(ctx, 10)
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Edges.Node.Slug != "job-live" {
		t.Fatalf("got %d jobs, want only the live one", len(jobs))
	}
}
