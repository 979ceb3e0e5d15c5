// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/advert"
	"github.com/helenb/wagtail-torchbox/internal/repo/advertplacement"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogauthorship"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/blogpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/carouselitem"
	"github.com/helenb/wagtail-torchbox/internal/repo/document"
	"github.com/helenb/wagtail-torchbox/internal/repo/homepage"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/jobpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/relatedlink"
	"github.com/helenb/wagtail-torchbox/internal/repo/standardpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/tag"
	"github.com/helenb/wagtail-torchbox/internal/repo/workindexpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workpage"
	"github.com/helenb/wagtail-torchbox/internal/repo/workscreenshot"
	"github.com/helenb/wagtail-torchbox/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	advertMixin := schema.Advert{}.Mixin()
	advertMixinFields0 := advertMixin[0].Fields()
	_ = advertMixinFields0
	advertMixinFields1 := advertMixin[1].Fields()
	_ = advertMixinFields1
	advertFields := schema.Advert{}.Fields()
	_ = advertFields
	// advertDescCreatedAt is the schema descriptor for created_at field.
	advertDescCreatedAt := advertMixinFields1[0].Descriptor()
	// advert.DefaultCreatedAt holds the default value on creation for the created_at field.
	advert.DefaultCreatedAt = advertDescCreatedAt.Default.(func() time.Time)
	// advertDescUpdatedAt is the schema descriptor for updated_at field.
	advertDescUpdatedAt := advertMixinFields1[1].Descriptor()
	// advert.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	advert.DefaultUpdatedAt = advertDescUpdatedAt.Default.(func() time.Time)
	// advert.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	advert.UpdateDefaultUpdatedAt = advertDescUpdatedAt.UpdateDefault.(func() time.Time)
	// advertDescText is the schema descriptor for text field.
	advertDescText := advertFields[0].Descriptor()
	// advert.TextValidator is a validator for the "text" field. It is called by the builders before save.
	advert.TextValidator = func() func(string) error {
		validators := advertDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// advertDescURL is the schema descriptor for url field.
	advertDescURL := advertFields[1].Descriptor()
	// advert.URLValidator is a validator for the "url" field. It is called by the builders before save.
	advert.URLValidator = advertDescURL.Validators[0].(func(string) error)
	// advertDescID is the schema descriptor for id field.
	advertDescID := advertMixinFields0[0].Descriptor()
	// advert.DefaultID holds the default value on creation for the id field.
	advert.DefaultID = advertDescID.Default.(func() uuid.UUID)
	advertplacementMixin := schema.AdvertPlacement{}.Mixin()
	advertplacementMixinFields0 := advertplacementMixin[0].Fields()
	_ = advertplacementMixinFields0
	advertplacementFields := schema.AdvertPlacement{}.Fields()
	_ = advertplacementFields
	// advertplacementDescID is the schema descriptor for id field.
	advertplacementDescID := advertplacementMixinFields0[0].Descriptor()
	// advertplacement.DefaultID holds the default value on creation for the id field.
	advertplacement.DefaultID = advertplacementDescID.Default.(func() uuid.UUID)
	blogauthorshipMixin := schema.BlogAuthorship{}.Mixin()
	blogauthorshipMixinFields0 := blogauthorshipMixin[0].Fields()
	_ = blogauthorshipMixinFields0
	blogauthorshipFields := schema.BlogAuthorship{}.Fields()
	_ = blogauthorshipFields
	// blogauthorshipDescSortOrder is the schema descriptor for sort_order field.
	blogauthorshipDescSortOrder := blogauthorshipFields[0].Descriptor()
	// blogauthorship.DefaultSortOrder holds the default value on creation for the sort_order field.
	blogauthorship.DefaultSortOrder = blogauthorshipDescSortOrder.Default.(int)
	// blogauthorshipDescID is the schema descriptor for id field.
	blogauthorshipDescID := blogauthorshipMixinFields0[0].Descriptor()
	// blogauthorship.DefaultID holds the default value on creation for the id field.
	blogauthorship.DefaultID = blogauthorshipDescID.Default.(func() uuid.UUID)
	blogindexpageMixin := schema.BlogIndexPage{}.Mixin()
	blogindexpageMixinFields0 := blogindexpageMixin[0].Fields()
	_ = blogindexpageMixinFields0
	blogindexpageMixinFields1 := blogindexpageMixin[1].Fields()
	_ = blogindexpageMixinFields1
	blogindexpageFields := schema.BlogIndexPage{}.Fields()
	_ = blogindexpageFields
	// blogindexpageDescCreatedAt is the schema descriptor for created_at field.
	blogindexpageDescCreatedAt := blogindexpageMixinFields1[0].Descriptor()
	// blogindexpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogindexpage.DefaultCreatedAt = blogindexpageDescCreatedAt.Default.(func() time.Time)
	// blogindexpageDescUpdatedAt is the schema descriptor for updated_at field.
	blogindexpageDescUpdatedAt := blogindexpageMixinFields1[1].Descriptor()
	// blogindexpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogindexpage.DefaultUpdatedAt = blogindexpageDescUpdatedAt.Default.(func() time.Time)
	// blogindexpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogindexpage.UpdateDefaultUpdatedAt = blogindexpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blogindexpageDescID is the schema descriptor for id field.
	blogindexpageDescID := blogindexpageMixinFields0[0].Descriptor()
	// blogindexpage.DefaultID holds the default value on creation for the id field.
	blogindexpage.DefaultID = blogindexpageDescID.Default.(func() uuid.UUID)
	blogpageMixin := schema.BlogPage{}.Mixin()
	blogpageMixinFields0 := blogpageMixin[0].Fields()
	_ = blogpageMixinFields0
	blogpageMixinFields1 := blogpageMixin[1].Fields()
	_ = blogpageMixinFields1
	blogpageFields := schema.BlogPage{}.Fields()
	_ = blogpageFields
	// blogpageDescCreatedAt is the schema descriptor for created_at field.
	blogpageDescCreatedAt := blogpageMixinFields1[0].Descriptor()
	// blogpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogpage.DefaultCreatedAt = blogpageDescCreatedAt.Default.(func() time.Time)
	// blogpageDescUpdatedAt is the schema descriptor for updated_at field.
	blogpageDescUpdatedAt := blogpageMixinFields1[1].Descriptor()
	// blogpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogpage.DefaultUpdatedAt = blogpageDescUpdatedAt.Default.(func() time.Time)
	// blogpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogpage.UpdateDefaultUpdatedAt = blogpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blogpageDescBody is the schema descriptor for body field.
	blogpageDescBody := blogpageFields[2].Descriptor()
	// blogpage.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	blogpage.BodyValidator = blogpageDescBody.Validators[0].(func(string) error)
	// blogpageDescID is the schema descriptor for id field.
	blogpageDescID := blogpageMixinFields0[0].Descriptor()
	// blogpage.DefaultID holds the default value on creation for the id field.
	blogpage.DefaultID = blogpageDescID.Default.(func() uuid.UUID)
	carouselitemMixin := schema.CarouselItem{}.Mixin()
	carouselitemMixinFields0 := carouselitemMixin[0].Fields()
	_ = carouselitemMixinFields0
	carouselitemMixinFields1 := carouselitemMixin[1].Fields()
	_ = carouselitemMixinFields1
	carouselitemFields := schema.CarouselItem{}.Fields()
	_ = carouselitemFields
	// carouselitemDescLinkExternal is the schema descriptor for link_external field.
	carouselitemDescLinkExternal := carouselitemMixinFields1[0].Descriptor()
	// carouselitem.LinkExternalValidator is a validator for the "link_external" field. It is called by the builders before save.
	carouselitem.LinkExternalValidator = carouselitemDescLinkExternal.Validators[0].(func(string) error)
	// carouselitemDescSortOrder is the schema descriptor for sort_order field.
	carouselitemDescSortOrder := carouselitemFields[0].Descriptor()
	// carouselitem.DefaultSortOrder holds the default value on creation for the sort_order field.
	carouselitem.DefaultSortOrder = carouselitemDescSortOrder.Default.(int)
	// carouselitemDescEmbedURL is the schema descriptor for embed_url field.
	carouselitemDescEmbedURL := carouselitemFields[2].Descriptor()
	// carouselitem.EmbedURLValidator is a validator for the "embed_url" field. It is called by the builders before save.
	carouselitem.EmbedURLValidator = carouselitemDescEmbedURL.Validators[0].(func(string) error)
	// carouselitemDescCaption is the schema descriptor for caption field.
	carouselitemDescCaption := carouselitemFields[3].Descriptor()
	// carouselitem.CaptionValidator is a validator for the "caption" field. It is called by the builders before save.
	carouselitem.CaptionValidator = carouselitemDescCaption.Validators[0].(func(string) error)
	// carouselitemDescID is the schema descriptor for id field.
	carouselitemDescID := carouselitemMixinFields0[0].Descriptor()
	// carouselitem.DefaultID holds the default value on creation for the id field.
	carouselitem.DefaultID = carouselitemDescID.Default.(func() uuid.UUID)
	documentMixin := schema.Document{}.Mixin()
	documentMixinFields0 := documentMixin[0].Fields()
	_ = documentMixinFields0
	documentMixinFields1 := documentMixin[1].Fields()
	_ = documentMixinFields1
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentMixinFields1[0].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentMixinFields1[1].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[0].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = func() func(string) error {
		validators := documentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFile is the schema descriptor for file field.
	documentDescFile := documentFields[1].Descriptor()
	// document.FileValidator is a validator for the "file" field. It is called by the builders before save.
	document.FileValidator = func() func(string) error {
		validators := documentDescFile.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file string) error {
			for _, fn := range fns {
				if err := fn(file); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentMixinFields0[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	homepageMixin := schema.HomePage{}.Mixin()
	homepageMixinFields0 := homepageMixin[0].Fields()
	_ = homepageMixinFields0
	homepageMixinFields1 := homepageMixin[1].Fields()
	_ = homepageMixinFields1
	homepageFields := schema.HomePage{}.Fields()
	_ = homepageFields
	// homepageDescCreatedAt is the schema descriptor for created_at field.
	homepageDescCreatedAt := homepageMixinFields1[0].Descriptor()
	// homepage.DefaultCreatedAt holds the default value on creation for the created_at field.
	homepage.DefaultCreatedAt = homepageDescCreatedAt.Default.(func() time.Time)
	// homepageDescUpdatedAt is the schema descriptor for updated_at field.
	homepageDescUpdatedAt := homepageMixinFields1[1].Descriptor()
	// homepage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	homepage.DefaultUpdatedAt = homepageDescUpdatedAt.Default.(func() time.Time)
	// homepage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	homepage.UpdateDefaultUpdatedAt = homepageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// homepageDescID is the schema descriptor for id field.
	homepageDescID := homepageMixinFields0[0].Descriptor()
	// homepage.DefaultID holds the default value on creation for the id field.
	homepage.DefaultID = homepageDescID.Default.(func() uuid.UUID)
	imageMixin := schema.Image{}.Mixin()
	imageMixinFields0 := imageMixin[0].Fields()
	_ = imageMixinFields0
	imageMixinFields1 := imageMixin[1].Fields()
	_ = imageMixinFields1
	imageFields := schema.Image{}.Fields()
	_ = imageFields
	// imageDescCreatedAt is the schema descriptor for created_at field.
	imageDescCreatedAt := imageMixinFields1[0].Descriptor()
	// image.DefaultCreatedAt holds the default value on creation for the created_at field.
	image.DefaultCreatedAt = imageDescCreatedAt.Default.(func() time.Time)
	// imageDescUpdatedAt is the schema descriptor for updated_at field.
	imageDescUpdatedAt := imageMixinFields1[1].Descriptor()
	// image.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	image.DefaultUpdatedAt = imageDescUpdatedAt.Default.(func() time.Time)
	// image.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	image.UpdateDefaultUpdatedAt = imageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// imageDescTitle is the schema descriptor for title field.
	imageDescTitle := imageFields[0].Descriptor()
	// image.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	image.TitleValidator = func() func(string) error {
		validators := imageDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// imageDescFile is the schema descriptor for file field.
	imageDescFile := imageFields[1].Descriptor()
	// image.FileValidator is a validator for the "file" field. It is called by the builders before save.
	image.FileValidator = func() func(string) error {
		validators := imageDescFile.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file string) error {
			for _, fn := range fns {
				if err := fn(file); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// imageDescID is the schema descriptor for id field.
	imageDescID := imageMixinFields0[0].Descriptor()
	// image.DefaultID holds the default value on creation for the id field.
	image.DefaultID = imageDescID.Default.(func() uuid.UUID)
	jobindexpageMixin := schema.JobIndexPage{}.Mixin()
	jobindexpageMixinFields0 := jobindexpageMixin[0].Fields()
	_ = jobindexpageMixinFields0
	jobindexpageMixinFields1 := jobindexpageMixin[1].Fields()
	_ = jobindexpageMixinFields1
	jobindexpageFields := schema.JobIndexPage{}.Fields()
	_ = jobindexpageFields
	// jobindexpageDescCreatedAt is the schema descriptor for created_at field.
	jobindexpageDescCreatedAt := jobindexpageMixinFields1[0].Descriptor()
	// jobindexpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobindexpage.DefaultCreatedAt = jobindexpageDescCreatedAt.Default.(func() time.Time)
	// jobindexpageDescUpdatedAt is the schema descriptor for updated_at field.
	jobindexpageDescUpdatedAt := jobindexpageMixinFields1[1].Descriptor()
	// jobindexpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobindexpage.DefaultUpdatedAt = jobindexpageDescUpdatedAt.Default.(func() time.Time)
	// jobindexpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobindexpage.UpdateDefaultUpdatedAt = jobindexpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobindexpageDescID is the schema descriptor for id field.
	jobindexpageDescID := jobindexpageMixinFields0[0].Descriptor()
	// jobindexpage.DefaultID holds the default value on creation for the id field.
	jobindexpage.DefaultID = jobindexpageDescID.Default.(func() uuid.UUID)
	jobpageMixin := schema.JobPage{}.Mixin()
	jobpageMixinFields0 := jobpageMixin[0].Fields()
	_ = jobpageMixinFields0
	jobpageMixinFields1 := jobpageMixin[1].Fields()
	_ = jobpageMixinFields1
	jobpageFields := schema.JobPage{}.Fields()
	_ = jobpageFields
	// jobpageDescCreatedAt is the schema descriptor for created_at field.
	jobpageDescCreatedAt := jobpageMixinFields1[0].Descriptor()
	// jobpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobpage.DefaultCreatedAt = jobpageDescCreatedAt.Default.(func() time.Time)
	// jobpageDescUpdatedAt is the schema descriptor for updated_at field.
	jobpageDescUpdatedAt := jobpageMixinFields1[1].Descriptor()
	// jobpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobpage.DefaultUpdatedAt = jobpageDescUpdatedAt.Default.(func() time.Time)
	// jobpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobpage.UpdateDefaultUpdatedAt = jobpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobpageDescBody is the schema descriptor for body field.
	jobpageDescBody := jobpageFields[1].Descriptor()
	// jobpage.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	jobpage.BodyValidator = jobpageDescBody.Validators[0].(func(string) error)
	// jobpageDescID is the schema descriptor for id field.
	jobpageDescID := jobpageMixinFields0[0].Descriptor()
	// jobpage.DefaultID holds the default value on creation for the id field.
	jobpage.DefaultID = jobpageDescID.Default.(func() uuid.UUID)
	nodeMixin := schema.Node{}.Mixin()
	nodeMixinFields0 := nodeMixin[0].Fields()
	_ = nodeMixinFields0
	nodeMixinFields1 := nodeMixin[1].Fields()
	_ = nodeMixinFields1
	nodeFields := schema.Node{}.Fields()
	_ = nodeFields
	// nodeDescCreatedAt is the schema descriptor for created_at field.
	nodeDescCreatedAt := nodeMixinFields1[0].Descriptor()
	// node.DefaultCreatedAt holds the default value on creation for the created_at field.
	node.DefaultCreatedAt = nodeDescCreatedAt.Default.(func() time.Time)
	// nodeDescUpdatedAt is the schema descriptor for updated_at field.
	nodeDescUpdatedAt := nodeMixinFields1[1].Descriptor()
	// node.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	node.DefaultUpdatedAt = nodeDescUpdatedAt.Default.(func() time.Time)
	// node.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	node.UpdateDefaultUpdatedAt = nodeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// nodeDescPath is the schema descriptor for path field.
	nodeDescPath := nodeFields[0].Descriptor()
	// node.PathValidator is a validator for the "path" field. It is called by the builders before save.
	node.PathValidator = nodeDescPath.Validators[0].(func(string) error)
	// nodeDescDepth is the schema descriptor for depth field.
	nodeDescDepth := nodeFields[1].Descriptor()
	// node.DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	node.DepthValidator = nodeDescDepth.Validators[0].(func(int) error)
	// nodeDescTitle is the schema descriptor for title field.
	nodeDescTitle := nodeFields[2].Descriptor()
	// node.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	node.TitleValidator = func() func(string) error {
		validators := nodeDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// nodeDescSlug is the schema descriptor for slug field.
	nodeDescSlug := nodeFields[3].Descriptor()
	// node.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	node.SlugValidator = func() func(string) error {
		validators := nodeDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// nodeDescURLPath is the schema descriptor for url_path field.
	nodeDescURLPath := nodeFields[4].Descriptor()
	// node.URLPathValidator is a validator for the "url_path" field. It is called by the builders before save.
	node.URLPathValidator = nodeDescURLPath.Validators[0].(func(string) error)
	// nodeDescLive is the schema descriptor for live field.
	nodeDescLive := nodeFields[5].Descriptor()
	// node.DefaultLive holds the default value on creation for the live field.
	node.DefaultLive = nodeDescLive.Default.(bool)
	// nodeDescShowInMenus is the schema descriptor for show_in_menus field.
	nodeDescShowInMenus := nodeFields[6].Descriptor()
	// node.DefaultShowInMenus holds the default value on creation for the show_in_menus field.
	node.DefaultShowInMenus = nodeDescShowInMenus.Default.(bool)
	// nodeDescSeoTitle is the schema descriptor for seo_title field.
	nodeDescSeoTitle := nodeFields[7].Descriptor()
	// node.SeoTitleValidator is a validator for the "seo_title" field. It is called by the builders before save.
	node.SeoTitleValidator = nodeDescSeoTitle.Validators[0].(func(string) error)
	// nodeDescContentType is the schema descriptor for content_type field.
	nodeDescContentType := nodeFields[9].Descriptor()
	// node.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	node.ContentTypeValidator = nodeDescContentType.Validators[0].(func(string) error)
	// nodeDescID is the schema descriptor for id field.
	nodeDescID := nodeMixinFields0[0].Descriptor()
	// node.DefaultID holds the default value on creation for the id field.
	node.DefaultID = nodeDescID.Default.(func() uuid.UUID)
	personindexpageMixin := schema.PersonIndexPage{}.Mixin()
	personindexpageMixinFields0 := personindexpageMixin[0].Fields()
	_ = personindexpageMixinFields0
	personindexpageMixinFields1 := personindexpageMixin[1].Fields()
	_ = personindexpageMixinFields1
	personindexpageFields := schema.PersonIndexPage{}.Fields()
	_ = personindexpageFields
	// personindexpageDescCreatedAt is the schema descriptor for created_at field.
	personindexpageDescCreatedAt := personindexpageMixinFields1[0].Descriptor()
	// personindexpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	personindexpage.DefaultCreatedAt = personindexpageDescCreatedAt.Default.(func() time.Time)
	// personindexpageDescUpdatedAt is the schema descriptor for updated_at field.
	personindexpageDescUpdatedAt := personindexpageMixinFields1[1].Descriptor()
	// personindexpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	personindexpage.DefaultUpdatedAt = personindexpageDescUpdatedAt.Default.(func() time.Time)
	// personindexpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	personindexpage.UpdateDefaultUpdatedAt = personindexpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personindexpageDescID is the schema descriptor for id field.
	personindexpageDescID := personindexpageMixinFields0[0].Descriptor()
	// personindexpage.DefaultID holds the default value on creation for the id field.
	personindexpage.DefaultID = personindexpageDescID.Default.(func() uuid.UUID)
	personpageMixin := schema.PersonPage{}.Mixin()
	personpageMixinFields0 := personpageMixin[0].Fields()
	_ = personpageMixinFields0
	personpageMixinFields1 := personpageMixin[1].Fields()
	_ = personpageMixinFields1
	personpageMixinFields2 := personpageMixin[2].Fields()
	_ = personpageMixinFields2
	personpageFields := schema.PersonPage{}.Fields()
	_ = personpageFields
	// personpageDescCreatedAt is the schema descriptor for created_at field.
	personpageDescCreatedAt := personpageMixinFields1[0].Descriptor()
	// personpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	personpage.DefaultCreatedAt = personpageDescCreatedAt.Default.(func() time.Time)
	// personpageDescUpdatedAt is the schema descriptor for updated_at field.
	personpageDescUpdatedAt := personpageMixinFields1[1].Descriptor()
	// personpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	personpage.DefaultUpdatedAt = personpageDescUpdatedAt.Default.(func() time.Time)
	// personpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	personpage.UpdateDefaultUpdatedAt = personpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personpageDescTelephone is the schema descriptor for telephone field.
	personpageDescTelephone := personpageMixinFields2[0].Descriptor()
	// personpage.TelephoneValidator is a validator for the "telephone" field. It is called by the builders before save.
	personpage.TelephoneValidator = personpageDescTelephone.Validators[0].(func(string) error)
	// personpageDescEmail is the schema descriptor for email field.
	personpageDescEmail := personpageMixinFields2[1].Descriptor()
	// personpage.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	personpage.EmailValidator = personpageDescEmail.Validators[0].(func(string) error)
	// personpageDescAddress1 is the schema descriptor for address_1 field.
	personpageDescAddress1 := personpageMixinFields2[2].Descriptor()
	// personpage.Address1Validator is a validator for the "address_1" field. It is called by the builders before save.
	personpage.Address1Validator = personpageDescAddress1.Validators[0].(func(string) error)
	// personpageDescAddress2 is the schema descriptor for address_2 field.
	personpageDescAddress2 := personpageMixinFields2[3].Descriptor()
	// personpage.Address2Validator is a validator for the "address_2" field. It is called by the builders before save.
	personpage.Address2Validator = personpageDescAddress2.Validators[0].(func(string) error)
	// personpageDescCity is the schema descriptor for city field.
	personpageDescCity := personpageMixinFields2[4].Descriptor()
	// personpage.CityValidator is a validator for the "city" field. It is called by the builders before save.
	personpage.CityValidator = personpageDescCity.Validators[0].(func(string) error)
	// personpageDescCountry is the schema descriptor for country field.
	personpageDescCountry := personpageMixinFields2[5].Descriptor()
	// personpage.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	personpage.CountryValidator = personpageDescCountry.Validators[0].(func(string) error)
	// personpageDescPostCode is the schema descriptor for post_code field.
	personpageDescPostCode := personpageMixinFields2[6].Descriptor()
	// personpage.PostCodeValidator is a validator for the "post_code" field. It is called by the builders before save.
	personpage.PostCodeValidator = personpageDescPostCode.Validators[0].(func(string) error)
	// personpageDescFirstName is the schema descriptor for first_name field.
	personpageDescFirstName := personpageFields[1].Descriptor()
	// personpage.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	personpage.FirstNameValidator = func() func(string) error {
		validators := personpageDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personpageDescLastName is the schema descriptor for last_name field.
	personpageDescLastName := personpageFields[2].Descriptor()
	// personpage.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	personpage.LastNameValidator = func() func(string) error {
		validators := personpageDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personpageDescRole is the schema descriptor for role field.
	personpageDescRole := personpageFields[3].Descriptor()
	// personpage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	personpage.RoleValidator = personpageDescRole.Validators[0].(func(string) error)
	// personpageDescID is the schema descriptor for id field.
	personpageDescID := personpageMixinFields0[0].Descriptor()
	// personpage.DefaultID holds the default value on creation for the id field.
	personpage.DefaultID = personpageDescID.Default.(func() uuid.UUID)
	relatedlinkMixin := schema.RelatedLink{}.Mixin()
	relatedlinkMixinFields0 := relatedlinkMixin[0].Fields()
	_ = relatedlinkMixinFields0
	relatedlinkMixinFields1 := relatedlinkMixin[1].Fields()
	_ = relatedlinkMixinFields1
	relatedlinkFields := schema.RelatedLink{}.Fields()
	_ = relatedlinkFields
	// relatedlinkDescLinkExternal is the schema descriptor for link_external field.
	relatedlinkDescLinkExternal := relatedlinkMixinFields1[0].Descriptor()
	// relatedlink.LinkExternalValidator is a validator for the "link_external" field. It is called by the builders before save.
	relatedlink.LinkExternalValidator = relatedlinkDescLinkExternal.Validators[0].(func(string) error)
	// relatedlinkDescTitle is the schema descriptor for title field.
	relatedlinkDescTitle := relatedlinkFields[0].Descriptor()
	// relatedlink.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	relatedlink.TitleValidator = func() func(string) error {
		validators := relatedlinkDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// relatedlinkDescSortOrder is the schema descriptor for sort_order field.
	relatedlinkDescSortOrder := relatedlinkFields[1].Descriptor()
	// relatedlink.DefaultSortOrder holds the default value on creation for the sort_order field.
	relatedlink.DefaultSortOrder = relatedlinkDescSortOrder.Default.(int)
	// relatedlinkDescID is the schema descriptor for id field.
	relatedlinkDescID := relatedlinkMixinFields0[0].Descriptor()
	// relatedlink.DefaultID holds the default value on creation for the id field.
	relatedlink.DefaultID = relatedlinkDescID.Default.(func() uuid.UUID)
	standardpageMixin := schema.StandardPage{}.Mixin()
	standardpageMixinFields0 := standardpageMixin[0].Fields()
	_ = standardpageMixinFields0
	standardpageMixinFields1 := standardpageMixin[1].Fields()
	_ = standardpageMixinFields1
	standardpageFields := schema.StandardPage{}.Fields()
	_ = standardpageFields
	// standardpageDescCreatedAt is the schema descriptor for created_at field.
	standardpageDescCreatedAt := standardpageMixinFields1[0].Descriptor()
	// standardpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	standardpage.DefaultCreatedAt = standardpageDescCreatedAt.Default.(func() time.Time)
	// standardpageDescUpdatedAt is the schema descriptor for updated_at field.
	standardpageDescUpdatedAt := standardpageMixinFields1[1].Descriptor()
	// standardpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	standardpage.DefaultUpdatedAt = standardpageDescUpdatedAt.Default.(func() time.Time)
	// standardpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	standardpage.UpdateDefaultUpdatedAt = standardpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// standardpageDescID is the schema descriptor for id field.
	standardpageDescID := standardpageMixinFields0[0].Descriptor()
	// standardpage.DefaultID holds the default value on creation for the id field.
	standardpage.DefaultID = standardpageDescID.Default.(func() uuid.UUID)
	tagMixin := schema.Tag{}.Mixin()
	tagMixinFields0 := tagMixin[0].Fields()
	_ = tagMixinFields0
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[0].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = func() func(string) error {
		validators := tagDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagMixinFields0[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
	workindexpageMixin := schema.WorkIndexPage{}.Mixin()
	workindexpageMixinFields0 := workindexpageMixin[0].Fields()
	_ = workindexpageMixinFields0
	workindexpageMixinFields1 := workindexpageMixin[1].Fields()
	_ = workindexpageMixinFields1
	workindexpageFields := schema.WorkIndexPage{}.Fields()
	_ = workindexpageFields
	// workindexpageDescCreatedAt is the schema descriptor for created_at field.
	workindexpageDescCreatedAt := workindexpageMixinFields1[0].Descriptor()
	// workindexpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	workindexpage.DefaultCreatedAt = workindexpageDescCreatedAt.Default.(func() time.Time)
	// workindexpageDescUpdatedAt is the schema descriptor for updated_at field.
	workindexpageDescUpdatedAt := workindexpageMixinFields1[1].Descriptor()
	// workindexpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workindexpage.DefaultUpdatedAt = workindexpageDescUpdatedAt.Default.(func() time.Time)
	// workindexpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workindexpage.UpdateDefaultUpdatedAt = workindexpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workindexpageDescID is the schema descriptor for id field.
	workindexpageDescID := workindexpageMixinFields0[0].Descriptor()
	// workindexpage.DefaultID holds the default value on creation for the id field.
	workindexpage.DefaultID = workindexpageDescID.Default.(func() uuid.UUID)
	workpageMixin := schema.WorkPage{}.Mixin()
	workpageMixinFields0 := workpageMixin[0].Fields()
	_ = workpageMixinFields0
	workpageMixinFields1 := workpageMixin[1].Fields()
	_ = workpageMixinFields1
	workpageFields := schema.WorkPage{}.Fields()
	_ = workpageFields
	// workpageDescCreatedAt is the schema descriptor for created_at field.
	workpageDescCreatedAt := workpageMixinFields1[0].Descriptor()
	// workpage.DefaultCreatedAt holds the default value on creation for the created_at field.
	workpage.DefaultCreatedAt = workpageDescCreatedAt.Default.(func() time.Time)
	// workpageDescUpdatedAt is the schema descriptor for updated_at field.
	workpageDescUpdatedAt := workpageMixinFields1[1].Descriptor()
	// workpage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workpage.DefaultUpdatedAt = workpageDescUpdatedAt.Default.(func() time.Time)
	// workpage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workpage.UpdateDefaultUpdatedAt = workpageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workpageDescSummary is the schema descriptor for summary field.
	workpageDescSummary := workpageFields[1].Descriptor()
	// workpage.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	workpage.SummaryValidator = func() func(string) error {
		validators := workpageDescSummary.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(summary string) error {
			for _, fn := range fns {
				if err := fn(summary); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workpageDescID is the schema descriptor for id field.
	workpageDescID := workpageMixinFields0[0].Descriptor()
	// workpage.DefaultID holds the default value on creation for the id field.
	workpage.DefaultID = workpageDescID.Default.(func() uuid.UUID)
	workscreenshotMixin := schema.WorkScreenshot{}.Mixin()
	workscreenshotMixinFields0 := workscreenshotMixin[0].Fields()
	_ = workscreenshotMixinFields0
	workscreenshotFields := schema.WorkScreenshot{}.Fields()
	_ = workscreenshotFields
	// workscreenshotDescSortOrder is the schema descriptor for sort_order field.
	workscreenshotDescSortOrder := workscreenshotFields[0].Descriptor()
	// workscreenshot.DefaultSortOrder holds the default value on creation for the sort_order field.
	workscreenshot.DefaultSortOrder = workscreenshotDescSortOrder.Default.(int)
	// workscreenshotDescID is the schema descriptor for id field.
	workscreenshotDescID := workscreenshotMixinFields0[0].Descriptor()
	// workscreenshot.DefaultID holds the default value on creation for the id field.
	workscreenshot.DefaultID = workscreenshotDescID.Default.(func() uuid.UUID)
}
