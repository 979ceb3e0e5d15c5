package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/helenb/wagtail-torchbox/config"
	"github.com/helenb/wagtail-torchbox/internal/api/http/handler"
	"github.com/helenb/wagtail-torchbox/internal/service/documents"
	"github.com/helenb/wagtail-torchbox/internal/service/feeds"
	"github.com/helenb/wagtail-torchbox/internal/service/listing"
	"github.com/helenb/wagtail-torchbox/internal/service/menus"
	"github.com/helenb/wagtail-torchbox/internal/service/pages"
	"github.com/helenb/wagtail-torchbox/pkg/assets"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	PagesSvc     pages.Service
	ListingSvc   listing.Service
	MenusSvc     menus.Service
	FeedsSvc     feeds.Service
	DocumentsSvc documents.Service
	Assets       *assets.Client `optional:"true"`
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	pagesH := handler.NewPagesHandler(r.p.PagesSvc, r.p.ListingSvc, r.p.FeedsSvc, r.p.Cfg, r.p.Assets)
	menusH := handler.NewMenusHandler(r.p.MenusSvc, r.p.PagesSvc, r.p.Cfg)
	feedsH := handler.NewFeedsHandler(r.p.FeedsSvc, r.p.ListingSvc, r.p.Cfg, r.p.Assets)
	documentsH := handler.NewDocumentsHandler(r.p.DocumentsSvc)

	api := app.Group("/api/v1")

	r.registerPageRoutes(api, pagesH)
	r.registerMenuRoutes(api, menusH)
	r.registerFeedRoutes(api, feedsH)
	r.registerDocumentRoutes(api, documentsH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
