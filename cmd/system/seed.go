package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/helenb/wagtail-torchbox/config"
	"github.com/helenb/wagtail-torchbox/internal/pagetree"
	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/pkg/database"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty database with a demo site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			count, err := client.Node.Query().Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to check node count: %w", err)
			}
			if count > 0 {
				fmt.Println("Database is not empty, skipping seed.")
				return nil
			}

			if err := seedDemoSite(ctx, client, cfg.Site.RootPathOrDefault()); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
			fmt.Println("Demo site seeded successfully.")
			return nil
		},
	}

	return cmd
}

func seedDemoSite(ctx context.Context, db *repo.Client, rootPath string) error {
	tx, err := db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	newNode := func(path, title, slug, urlPath, contentType string, inMenus bool) (*repo.Node, error) {
		return tx.Node.Create().
			SetPath(path).
			SetDepth(pagetree.Depth(path)).
			SetTitle(title).
			SetSlug(slug).
			SetURLPath(urlPath).
			SetContentType(contentType).
			SetShowInMenus(inMenus).
			Save(ctx)
	}

	home, err := newNode(rootPath, "Home", "home", "/", pagetree.TypeHomePage, false)
	if err != nil {
		return err
	}
	hp, err := tx.HomePage.Create().SetNodeID(home.ID).Save(ctx)
	if err != nil {
		return err
	}

	carousel, err := tx.Image.Create().
		SetTitle("Studio").
		SetFile("images/studio.jpg").
		SetWidth(1600).
		SetHeight(900).
		Save(ctx)
	if err != nil {
		return err
	}
	_, err = tx.CarouselItem.Create().
		SetHomePageID(hp.ID).
		SetSortOrder(1).
		SetImageID(carousel.ID).
		SetCaption("Welcome to the studio").
		Save(ctx)
	if err != nil {
		return err
	}

	about, err := newNode(pagetree.ChildPath(rootPath, 1), "About us", "about", "/about/", pagetree.TypeStandardPage, true)
	if err != nil {
		return err
	}
	_, err = tx.StandardPage.Create().
		SetNodeID(about.ID).
		SetIntro("We are a digital agency.").
		SetBody("<p>We design and build websites.</p>").
		Save(ctx)
	if err != nil {
		return err
	}

	blogRoot, err := newNode(pagetree.ChildPath(rootPath, 2), "Blog", "blog", "/blog/", pagetree.TypeBlogIndexPage, true)
	if err != nil {
		return err
	}
	_, err = tx.BlogIndexPage.Create().
		SetNodeID(blogRoot.ID).
		SetIntro("News and thoughts from the studio.").
		Save(ctx)
	if err != nil {
		return err
	}

	workRoot, err := newNode(pagetree.ChildPath(rootPath, 3), "Work", "work", "/work/", pagetree.TypeWorkIndexPage, true)
	if err != nil {
		return err
	}
	_, err = tx.WorkIndexPage.Create().
		SetNodeID(workRoot.ID).
		SetIntro("Selected projects.").
		Save(ctx)
	if err != nil {
		return err
	}

	jobsRoot, err := newNode(pagetree.ChildPath(rootPath, 4), "Jobs", "jobs", "/jobs/", pagetree.TypeJobIndexPage, true)
	if err != nil {
		return err
	}
	_, err = tx.JobIndexPage.Create().
		SetNodeID(jobsRoot.ID).
		SetIntro("Come and work with us.").
		Save(ctx)
	if err != nil {
		return err
	}

	peopleRoot, err := newNode(pagetree.ChildPath(rootPath, 5), "Team", "team", "/team/", pagetree.TypePersonIndexPage, true)
	if err != nil {
		return err
	}
	_, err = tx.PersonIndexPage.Create().
		SetNodeID(peopleRoot.ID).
		SetIntro("The people behind the work.").
		Save(ctx)
	if err != nil {
		return err
	}

	// A couple of blog entries with a shared tag.
	golangTag, err := tx.Tag.Create().SetName("golang").Save(ctx)
	if err != nil {
		return err
	}
	for i, title := range []string{"Launching our new site", "Why we love fast builds"} {
		n, nerr := newNode(
			pagetree.ChildPath(blogRoot.Path, i+1),
			title,
			fmt.Sprintf("post-%d", i+1),
			fmt.Sprintf("/blog/post-%d/", i+1),
			pagetree.TypeBlogPage,
			false,
		)
		if nerr != nil {
			err = nerr
			return err
		}
		_, err = tx.BlogPage.Create().
			SetNodeID(n.ID).
			SetIntro("A short update.").
			SetBody("<p>Hello from the blog.</p>").
			SetDate(time.Now().AddDate(0, 0, -i)).
			AddTags(golangTag).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	personNode, err := newNode(pagetree.ChildPath(peopleRoot.Path, 1), "Jane Doe", "jane-doe", "/team/jane-doe/", pagetree.TypePersonPage, false)
	if err != nil {
		return err
	}
	_, err = tx.PersonPage.Create().
		SetNodeID(personNode.ID).
		SetFirstName("Jane").
		SetLastName("Doe").
		SetRole("Developer").
		SetIntro("Builds things for the web.").
		Save(ctx)
	if err != nil {
		return err
	}

	workNode, err := newNode(pagetree.ChildPath(workRoot.Path, 1), "Museum website", "museum", "/work/museum/", pagetree.TypeWorkPage, false)
	if err != nil {
		return err
	}
	_, err = tx.WorkPage.Create().
		SetNodeID(workNode.ID).
		SetSummary("A new site for the city museum.").
		SetBody("<p>Case study.</p>").
		Save(ctx)
	if err != nil {
		return err
	}

	jobNode, err := newNode(pagetree.ChildPath(jobsRoot.Path, 1), "Go developer", "go-developer", "/jobs/go-developer/", pagetree.TypeJobPage, false)
	if err != nil {
		return err
	}
	_, err = tx.JobPage.Create().
		SetNodeID(jobNode.ID).
		SetBody("<p>We are hiring.</p>").
		Save(ctx)
	if err != nil {
		return err
	}

	advert, err := tx.Advert.Create().
		SetText("We are hiring!").
		SetURL("/jobs/").
		Save(ctx)
	if err != nil {
		return err
	}
	_, err = tx.AdvertPlacement.Create().
		SetNodeID(home.ID).
		SetAdvertID(advert.ID).
		Save(ctx)
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
