package app

import (
	"go.uber.org/fx"

	"github.com/helenb/wagtail-torchbox/internal/repo"
	"github.com/helenb/wagtail-torchbox/internal/service/documents"
	"github.com/helenb/wagtail-torchbox/internal/service/feeds"
	"github.com/helenb/wagtail-torchbox/internal/service/listing"
	"github.com/helenb/wagtail-torchbox/internal/service/menus"
	"github.com/helenb/wagtail-torchbox/internal/service/pages"
	"github.com/helenb/wagtail-torchbox/pkg/assets"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePagesService,
		ProvideListingService,
		ProvideMenusService,
		ProvideFeedsService,
		ProvideDocumentsService,
	),
)

func ProvidePagesService(db *repo.Client) pages.Service {
	return pages.New(db)
}

func ProvideListingService(db *repo.Client) listing.Service {
	return listing.New(db)
}

func ProvideMenusService(db *repo.Client) menus.Service {
	return menus.New(db)
}

func ProvideFeedsService(db *repo.Client) feeds.Service {
	return feeds.New(db)
}

type documentsParams struct {
	fx.In

	DB     *repo.Client
	Assets *assets.Client `optional:"true"`
}

func ProvideDocumentsService(p documentsParams) documents.Service {
	return documents.New(p.DB, p.Assets)
}
