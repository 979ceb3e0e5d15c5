// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Advert is the client for interacting with the Advert builders.
	Advert *AdvertClient
	// AdvertPlacement is the client for interacting with the AdvertPlacement builders.
	AdvertPlacement *AdvertPlacementClient
	// BlogAuthorship is the client for interacting with the BlogAuthorship builders.
	BlogAuthorship *BlogAuthorshipClient
	// BlogIndexPage is the client for interacting with the BlogIndexPage builders.
	BlogIndexPage *BlogIndexPageClient
	// BlogPage is the client for interacting with the BlogPage builders.
	BlogPage *BlogPageClient
	// CarouselItem is the client for interacting with the CarouselItem builders.
	CarouselItem *CarouselItemClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// HomePage is the client for interacting with the HomePage builders.
	HomePage *HomePageClient
	// Image is the client for interacting with the Image builders.
	Image *ImageClient
	// JobIndexPage is the client for interacting with the JobIndexPage builders.
	JobIndexPage *JobIndexPageClient
	// JobPage is the client for interacting with the JobPage builders.
	JobPage *JobPageClient
	// Node is the client for interacting with the Node builders.
	Node *NodeClient
	// PersonIndexPage is the client for interacting with the PersonIndexPage builders.
	PersonIndexPage *PersonIndexPageClient
	// PersonPage is the client for interacting with the PersonPage builders.
	PersonPage *PersonPageClient
	// RelatedLink is the client for interacting with the RelatedLink builders.
	RelatedLink *RelatedLinkClient
	// StandardPage is the client for interacting with the StandardPage builders.
	StandardPage *StandardPageClient
	// Tag is the client for interacting with the Tag builders.
	Tag *TagClient
	// WorkIndexPage is the client for interacting with the WorkIndexPage builders.
	WorkIndexPage *WorkIndexPageClient
	// WorkPage is the client for interacting with the WorkPage builders.
	WorkPage *WorkPageClient
	// WorkScreenshot is the client for interacting with the WorkScreenshot builders.
	WorkScreenshot *WorkScreenshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Advert = NewAdvertClient(c.config)
	c.AdvertPlacement = NewAdvertPlacementClient(c.config)
	c.BlogAuthorship = NewBlogAuthorshipClient(c.config)
	c.BlogIndexPage = NewBlogIndexPageClient(c.config)
	c.BlogPage = NewBlogPageClient(c.config)
	c.CarouselItem = NewCarouselItemClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.HomePage = NewHomePageClient(c.config)
	c.Image = NewImageClient(c.config)
	c.JobIndexPage = NewJobIndexPageClient(c.config)
	c.JobPage = NewJobPageClient(c.config)
	c.Node = NewNodeClient(c.config)
	c.PersonIndexPage = NewPersonIndexPageClient(c.config)
	c.PersonPage = NewPersonPageClient(c.config)
	c.RelatedLink = NewRelatedLinkClient(c.config)
	c.StandardPage = NewStandardPageClient(c.config)
	c.Tag = NewTagClient(c.config)
	c.WorkIndexPage = NewWorkIndexPageClient(c.config)
	c.WorkPage = NewWorkPageClient(c.config)
	c.WorkScreenshot = NewWorkScreenshotClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Advert:          NewAdvertClient(cfg),
		AdvertPlacement: NewAdvertPlacementClient(cfg),
		BlogAuthorship:  NewBlogAuthorshipClient(cfg),
		BlogIndexPage:   NewBlogIndexPageClient(cfg),
		BlogPage:        NewBlogPageClient(cfg),
		CarouselItem:    NewCarouselItemClient(cfg),
		Document:        NewDocumentClient(cfg),
		HomePage:        NewHomePageClient(cfg),
		Image:           NewImageClient(cfg),
		JobIndexPage:    NewJobIndexPageClient(cfg),
		JobPage:         NewJobPageClient(cfg),
		Node:            NewNodeClient(cfg),
		PersonIndexPage: NewPersonIndexPageClient(cfg),
		PersonPage:      NewPersonPageClient(cfg),
		RelatedLink:     NewRelatedLinkClient(cfg),
		StandardPage:    NewStandardPageClient(cfg),
		Tag:             NewTagClient(cfg),
		WorkIndexPage:   NewWorkIndexPageClient(cfg),
		WorkPage:        NewWorkPageClient(cfg),
		WorkScreenshot:  NewWorkScreenshotClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Advert:          NewAdvertClient(cfg),
		AdvertPlacement: NewAdvertPlacementClient(cfg),
		BlogAuthorship:  NewBlogAuthorshipClient(cfg),
		BlogIndexPage:   NewBlogIndexPageClient(cfg),
		BlogPage:        NewBlogPageClient(cfg),
		CarouselItem:    NewCarouselItemClient(cfg),
		Document:        NewDocumentClient(cfg),
		HomePage:        NewHomePageClient(cfg),
		Image:           NewImageClient(cfg),
		JobIndexPage:    NewJobIndexPageClient(cfg),
		JobPage:         NewJobPageClient(cfg),
		Node:            NewNodeClient(cfg),
		PersonIndexPage: NewPersonIndexPageClient(cfg),
		PersonPage:      NewPersonPageClient(cfg),
		RelatedLink:     NewRelatedLinkClient(cfg),
		StandardPage:    NewStandardPageClient(cfg),
		Tag:             NewTagClient(cfg),
		WorkIndexPage:   NewWorkIndexPageClient(cfg),
		WorkPage:        NewWorkPageClient(cfg),
		WorkScreenshot:  NewWorkScreenshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Advert.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Advert, c.AdvertPlacement, c.BlogAuthorship, c.BlogIndexPage, c.BlogPage,
		c.CarouselItem, c.Document, c.HomePage, c.Image, c.JobIndexPage, c.JobPage,
		c.Node, c.PersonIndexPage, c.PersonPage, c.RelatedLink, c.StandardPage, c.Tag,
		c.WorkIndexPage, c.WorkPage, c.WorkScreenshot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Advert, c.AdvertPlacement, c.BlogAuthorship, c.BlogIndexPage, c.BlogPage,
		c.CarouselItem, c.Document, c.HomePage, c.Image, c.JobIndexPage, c.JobPage,
		c.Node, c.PersonIndexPage, c.PersonPage, c.RelatedLink, c.StandardPage, c.Tag,
		c.WorkIndexPage, c.WorkPage, c.WorkScreenshot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdvertMutation:
		return c.Advert.mutate(ctx, m)
	case *AdvertPlacementMutation:
		return c.AdvertPlacement.mutate(ctx, m)
	case *BlogAuthorshipMutation:
		return c.BlogAuthorship.mutate(ctx, m)
	case *BlogIndexPageMutation:
		return c.BlogIndexPage.mutate(ctx, m)
	case *BlogPageMutation:
		return c.BlogPage.mutate(ctx, m)
	case *CarouselItemMutation:
		return c.CarouselItem.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *HomePageMutation:
		return c.HomePage.mutate(ctx, m)
	case *ImageMutation:
		return c.Image.mutate(ctx, m)
	case *JobIndexPageMutation:
		return c.JobIndexPage.mutate(ctx, m)
	case *JobPageMutation:
		return c.JobPage.mutate(ctx, m)
	case *NodeMutation:
		return c.Node.mutate(ctx, m)
	case *PersonIndexPageMutation:
		return c.PersonIndexPage.mutate(ctx, m)
	case *PersonPageMutation:
		return c.PersonPage.mutate(ctx, m)
	case *RelatedLinkMutation:
		return c.RelatedLink.mutate(ctx, m)
	case *StandardPageMutation:
		return c.StandardPage.mutate(ctx, m)
	case *TagMutation:
		return c.Tag.mutate(ctx, m)
	case *WorkIndexPageMutation:
		return c.WorkIndexPage.mutate(ctx, m)
	case *WorkPageMutation:
		return c.WorkPage.mutate(ctx, m)
	case *WorkScreenshotMutation:
		return c.WorkScreenshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AdvertClient is a client for the Advert schema.
type AdvertClient struct {
	config
}

// NewAdvertClient returns a client for the Advert from the given config.
func NewAdvertClient(c config) *AdvertClient {
	return &AdvertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `advert.Hooks(f(g(h())))`.
func (c *AdvertClient) Use(hooks ...Hook) {
	c.hooks.Advert = append(c.hooks.Advert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `advert.Intercept(f(g(h())))`.
func (c *AdvertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Advert = append(c.inters.Advert, interceptors...)
}

// Create returns a builder for creating a Advert entity.
func (c *AdvertClient) Create() *AdvertCreate {
	mutation := newAdvertMutation(c.config, OpCreate)
	return &AdvertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Advert entities.
func (c *AdvertClient) CreateBulk(builders ...*AdvertCreate) *AdvertCreateBulk {
	return &AdvertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdvertClient) MapCreateBulk(slice any, setFunc func(*AdvertCreate, int)) *AdvertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdvertCreateBulk{err: fmt.Errorf("calling to AdvertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdvertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdvertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Advert.
func (c *AdvertClient) Update() *AdvertUpdate {
	mutation := newAdvertMutation(c.config, OpUpdate)
	return &AdvertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdvertClient) UpdateOne(_m *Advert) *AdvertUpdateOne {
	mutation := newAdvertMutation(c.config, OpUpdateOne, withAdvert(_m))
	return &AdvertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdvertClient) UpdateOneID(id uuid.UUID) *AdvertUpdateOne {
	mutation := newAdvertMutation(c.config, OpUpdateOne, withAdvertID(id))
	return &AdvertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Advert.
func (c *AdvertClient) Delete() *AdvertDelete {
	mutation := newAdvertMutation(c.config, OpDelete)
	return &AdvertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdvertClient) DeleteOne(_m *Advert) *AdvertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdvertClient) DeleteOneID(id uuid.UUID) *AdvertDeleteOne {
	builder := c.Delete().Where(advert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdvertDeleteOne{builder}
}

// Query returns a query builder for Advert.
func (c *AdvertClient) Query() *AdvertQuery {
	return &AdvertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdvert},
		inters: c.Interceptors(),
	}
}

// Get returns a Advert entity by its id.
func (c *AdvertClient) Get(ctx context.Context, id uuid.UUID) (*Advert, error) {
	return c.Query().Where(advert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdvertClient) GetX(ctx context.Context, id uuid.UUID) *Advert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a Advert.
func (c *AdvertClient) QueryNode(_m *Advert) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(advert.Table, advert.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, advert.NodeTable, advert.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlacements queries the placements edge of a Advert.
func (c *AdvertClient) QueryPlacements(_m *Advert) *AdvertPlacementQuery {
	query := (&AdvertPlacementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(advert.Table, advert.FieldID, id),
			sqlgraph.To(advertplacement.Table, advertplacement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, advert.PlacementsTable, advert.PlacementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdvertClient) Hooks() []Hook {
	return c.hooks.Advert
}

// Interceptors returns the client interceptors.
func (c *AdvertClient) Interceptors() []Interceptor {
	return c.inters.Advert
}

func (c *AdvertClient) mutate(ctx context.Context, m *AdvertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdvertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdvertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdvertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdvertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Advert mutation op: %q", m.Op())
	}
}

// AdvertPlacementClient is a client for the AdvertPlacement schema.
type AdvertPlacementClient struct {
	config
}

// NewAdvertPlacementClient returns a client for the AdvertPlacement from the given config.
func NewAdvertPlacementClient(c config) *AdvertPlacementClient {
	return &AdvertPlacementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `advertplacement.Hooks(f(g(h())))`.
func (c *AdvertPlacementClient) Use(hooks ...Hook) {
	c.hooks.AdvertPlacement = append(c.hooks.AdvertPlacement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `advertplacement.Intercept(f(g(h())))`.
func (c *AdvertPlacementClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdvertPlacement = append(c.inters.AdvertPlacement, interceptors...)
}

// Create returns a builder for creating a AdvertPlacement entity.
func (c *AdvertPlacementClient) Create() *AdvertPlacementCreate {
	mutation := newAdvertPlacementMutation(c.config, OpCreate)
	return &AdvertPlacementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdvertPlacement entities.
func (c *AdvertPlacementClient) CreateBulk(builders ...*AdvertPlacementCreate) *AdvertPlacementCreateBulk {
	return &AdvertPlacementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdvertPlacementClient) MapCreateBulk(slice any, setFunc func(*AdvertPlacementCreate, int)) *AdvertPlacementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdvertPlacementCreateBulk{err: fmt.Errorf("calling to AdvertPlacementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdvertPlacementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdvertPlacementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdvertPlacement.
func (c *AdvertPlacementClient) Update() *AdvertPlacementUpdate {
	mutation := newAdvertPlacementMutation(c.config, OpUpdate)
	return &AdvertPlacementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdvertPlacementClient) UpdateOne(_m *AdvertPlacement) *AdvertPlacementUpdateOne {
	mutation := newAdvertPlacementMutation(c.config, OpUpdateOne, withAdvertPlacement(_m))
	return &AdvertPlacementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdvertPlacementClient) UpdateOneID(id uuid.UUID) *AdvertPlacementUpdateOne {
	mutation := newAdvertPlacementMutation(c.config, OpUpdateOne, withAdvertPlacementID(id))
	return &AdvertPlacementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdvertPlacement.
func (c *AdvertPlacementClient) Delete() *AdvertPlacementDelete {
	mutation := newAdvertPlacementMutation(c.config, OpDelete)
	return &AdvertPlacementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdvertPlacementClient) DeleteOne(_m *AdvertPlacement) *AdvertPlacementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdvertPlacementClient) DeleteOneID(id uuid.UUID) *AdvertPlacementDeleteOne {
	builder := c.Delete().Where(advertplacement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdvertPlacementDeleteOne{builder}
}

// Query returns a query builder for AdvertPlacement.
func (c *AdvertPlacementClient) Query() *AdvertPlacementQuery {
	return &AdvertPlacementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdvertPlacement},
		inters: c.Interceptors(),
	}
}

// Get returns a AdvertPlacement entity by its id.
func (c *AdvertPlacementClient) Get(ctx context.Context, id uuid.UUID) (*AdvertPlacement, error) {
	return c.Query().Where(advertplacement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdvertPlacementClient) GetX(ctx context.Context, id uuid.UUID) *AdvertPlacement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a AdvertPlacement.
func (c *AdvertPlacementClient) QueryNode(_m *AdvertPlacement) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(advertplacement.Table, advertplacement.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, advertplacement.NodeTable, advertplacement.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAdvert queries the advert edge of a AdvertPlacement.
func (c *AdvertPlacementClient) QueryAdvert(_m *AdvertPlacement) *AdvertQuery {
	query := (&AdvertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(advertplacement.Table, advertplacement.FieldID, id),
			sqlgraph.To(advert.Table, advert.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, advertplacement.AdvertTable, advertplacement.AdvertColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdvertPlacementClient) Hooks() []Hook {
	return c.hooks.AdvertPlacement
}

// Interceptors returns the client interceptors.
func (c *AdvertPlacementClient) Interceptors() []Interceptor {
	return c.inters.AdvertPlacement
}

func (c *AdvertPlacementClient) mutate(ctx context.Context, m *AdvertPlacementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdvertPlacementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdvertPlacementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdvertPlacementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdvertPlacementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AdvertPlacement mutation op: %q", m.Op())
	}
}

// BlogAuthorshipClient is a client for the BlogAuthorship schema.
type BlogAuthorshipClient struct {
	config
}

// NewBlogAuthorshipClient returns a client for the BlogAuthorship from the given config.
func NewBlogAuthorshipClient(c config) *BlogAuthorshipClient {
	return &BlogAuthorshipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blogauthorship.Hooks(f(g(h())))`.
func (c *BlogAuthorshipClient) Use(hooks ...Hook) {
	c.hooks.BlogAuthorship = append(c.hooks.BlogAuthorship, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blogauthorship.Intercept(f(g(h())))`.
func (c *BlogAuthorshipClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlogAuthorship = append(c.inters.BlogAuthorship, interceptors...)
}

// Create returns a builder for creating a BlogAuthorship entity.
func (c *BlogAuthorshipClient) Create() *BlogAuthorshipCreate {
	mutation := newBlogAuthorshipMutation(c.config, OpCreate)
	return &BlogAuthorshipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlogAuthorship entities.
func (c *BlogAuthorshipClient) CreateBulk(builders ...*BlogAuthorshipCreate) *BlogAuthorshipCreateBulk {
	return &BlogAuthorshipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlogAuthorshipClient) MapCreateBulk(slice any, setFunc func(*BlogAuthorshipCreate, int)) *BlogAuthorshipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlogAuthorshipCreateBulk{err: fmt.Errorf("calling to BlogAuthorshipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlogAuthorshipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlogAuthorshipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlogAuthorship.
func (c *BlogAuthorshipClient) Update() *BlogAuthorshipUpdate {
	mutation := newBlogAuthorshipMutation(c.config, OpUpdate)
	return &BlogAuthorshipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlogAuthorshipClient) UpdateOne(_m *BlogAuthorship) *BlogAuthorshipUpdateOne {
	mutation := newBlogAuthorshipMutation(c.config, OpUpdateOne, withBlogAuthorship(_m))
	return &BlogAuthorshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlogAuthorshipClient) UpdateOneID(id uuid.UUID) *BlogAuthorshipUpdateOne {
	mutation := newBlogAuthorshipMutation(c.config, OpUpdateOne, withBlogAuthorshipID(id))
	return &BlogAuthorshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlogAuthorship.
func (c *BlogAuthorshipClient) Delete() *BlogAuthorshipDelete {
	mutation := newBlogAuthorshipMutation(c.config, OpDelete)
	return &BlogAuthorshipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlogAuthorshipClient) DeleteOne(_m *BlogAuthorship) *BlogAuthorshipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlogAuthorshipClient) DeleteOneID(id uuid.UUID) *BlogAuthorshipDeleteOne {
	builder := c.Delete().Where(blogauthorship.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlogAuthorshipDeleteOne{builder}
}

// Query returns a query builder for BlogAuthorship.
func (c *BlogAuthorshipClient) Query() *BlogAuthorshipQuery {
	return &BlogAuthorshipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlogAuthorship},
		inters: c.Interceptors(),
	}
}

// Get returns a BlogAuthorship entity by its id.
func (c *BlogAuthorshipClient) Get(ctx context.Context, id uuid.UUID) (*BlogAuthorship, error) {
	return c.Query().Where(blogauthorship.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlogAuthorshipClient) GetX(ctx context.Context, id uuid.UUID) *BlogAuthorship {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlogPage queries the blog_page edge of a BlogAuthorship.
func (c *BlogAuthorshipClient) QueryBlogPage(_m *BlogAuthorship) *BlogPageQuery {
	query := (&BlogPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogauthorship.Table, blogauthorship.FieldID, id),
			sqlgraph.To(blogpage.Table, blogpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blogauthorship.BlogPageTable, blogauthorship.BlogPageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthor queries the author edge of a BlogAuthorship.
func (c *BlogAuthorshipClient) QueryAuthor(_m *BlogAuthorship) *PersonPageQuery {
	query := (&PersonPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogauthorship.Table, blogauthorship.FieldID, id),
			sqlgraph.To(personpage.Table, personpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, blogauthorship.AuthorTable, blogauthorship.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlogAuthorshipClient) Hooks() []Hook {
	return c.hooks.BlogAuthorship
}

// Interceptors returns the client interceptors.
func (c *BlogAuthorshipClient) Interceptors() []Interceptor {
	return c.inters.BlogAuthorship
}

func (c *BlogAuthorshipClient) mutate(ctx context.Context, m *BlogAuthorshipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlogAuthorshipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlogAuthorshipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlogAuthorshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlogAuthorshipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BlogAuthorship mutation op: %q", m.Op())
	}
}

// BlogIndexPageClient is a client for the BlogIndexPage schema.
type BlogIndexPageClient struct {
	config
}

// NewBlogIndexPageClient returns a client for the BlogIndexPage from the given config.
func NewBlogIndexPageClient(c config) *BlogIndexPageClient {
	return &BlogIndexPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blogindexpage.Hooks(f(g(h())))`.
func (c *BlogIndexPageClient) Use(hooks ...Hook) {
	c.hooks.BlogIndexPage = append(c.hooks.BlogIndexPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blogindexpage.Intercept(f(g(h())))`.
func (c *BlogIndexPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlogIndexPage = append(c.inters.BlogIndexPage, interceptors...)
}

// Create returns a builder for creating a BlogIndexPage entity.
func (c *BlogIndexPageClient) Create() *BlogIndexPageCreate {
	mutation := newBlogIndexPageMutation(c.config, OpCreate)
	return &BlogIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlogIndexPage entities.
func (c *BlogIndexPageClient) CreateBulk(builders ...*BlogIndexPageCreate) *BlogIndexPageCreateBulk {
	return &BlogIndexPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlogIndexPageClient) MapCreateBulk(slice any, setFunc func(*BlogIndexPageCreate, int)) *BlogIndexPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlogIndexPageCreateBulk{err: fmt.Errorf("calling to BlogIndexPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlogIndexPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlogIndexPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlogIndexPage.
func (c *BlogIndexPageClient) Update() *BlogIndexPageUpdate {
	mutation := newBlogIndexPageMutation(c.config, OpUpdate)
	return &BlogIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlogIndexPageClient) UpdateOne(_m *BlogIndexPage) *BlogIndexPageUpdateOne {
	mutation := newBlogIndexPageMutation(c.config, OpUpdateOne, withBlogIndexPage(_m))
	return &BlogIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlogIndexPageClient) UpdateOneID(id uuid.UUID) *BlogIndexPageUpdateOne {
	mutation := newBlogIndexPageMutation(c.config, OpUpdateOne, withBlogIndexPageID(id))
	return &BlogIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlogIndexPage.
func (c *BlogIndexPageClient) Delete() *BlogIndexPageDelete {
	mutation := newBlogIndexPageMutation(c.config, OpDelete)
	return &BlogIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlogIndexPageClient) DeleteOne(_m *BlogIndexPage) *BlogIndexPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlogIndexPageClient) DeleteOneID(id uuid.UUID) *BlogIndexPageDeleteOne {
	builder := c.Delete().Where(blogindexpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlogIndexPageDeleteOne{builder}
}

// Query returns a query builder for BlogIndexPage.
func (c *BlogIndexPageClient) Query() *BlogIndexPageQuery {
	return &BlogIndexPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlogIndexPage},
		inters: c.Interceptors(),
	}
}

// Get returns a BlogIndexPage entity by its id.
func (c *BlogIndexPageClient) Get(ctx context.Context, id uuid.UUID) (*BlogIndexPage, error) {
	return c.Query().Where(blogindexpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlogIndexPageClient) GetX(ctx context.Context, id uuid.UUID) *BlogIndexPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a BlogIndexPage.
func (c *BlogIndexPageClient) QueryNode(_m *BlogIndexPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogindexpage.Table, blogindexpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, blogindexpage.NodeTable, blogindexpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRelatedLinks queries the related_links edge of a BlogIndexPage.
func (c *BlogIndexPageClient) QueryRelatedLinks(_m *BlogIndexPage) *RelatedLinkQuery {
	query := (&RelatedLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogindexpage.Table, blogindexpage.FieldID, id),
			sqlgraph.To(relatedlink.Table, relatedlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blogindexpage.RelatedLinksTable, blogindexpage.RelatedLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlogIndexPageClient) Hooks() []Hook {
	return c.hooks.BlogIndexPage
}

// Interceptors returns the client interceptors.
func (c *BlogIndexPageClient) Interceptors() []Interceptor {
	return c.inters.BlogIndexPage
}

func (c *BlogIndexPageClient) mutate(ctx context.Context, m *BlogIndexPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlogIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlogIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlogIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlogIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BlogIndexPage mutation op: %q", m.Op())
	}
}

// BlogPageClient is a client for the BlogPage schema.
type BlogPageClient struct {
	config
}

// NewBlogPageClient returns a client for the BlogPage from the given config.
func NewBlogPageClient(c config) *BlogPageClient {
	return &BlogPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blogpage.Hooks(f(g(h())))`.
func (c *BlogPageClient) Use(hooks ...Hook) {
	c.hooks.BlogPage = append(c.hooks.BlogPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blogpage.Intercept(f(g(h())))`.
func (c *BlogPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlogPage = append(c.inters.BlogPage, interceptors...)
}

// Create returns a builder for creating a BlogPage entity.
func (c *BlogPageClient) Create() *BlogPageCreate {
	mutation := newBlogPageMutation(c.config, OpCreate)
	return &BlogPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlogPage entities.
func (c *BlogPageClient) CreateBulk(builders ...*BlogPageCreate) *BlogPageCreateBulk {
	return &BlogPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlogPageClient) MapCreateBulk(slice any, setFunc func(*BlogPageCreate, int)) *BlogPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlogPageCreateBulk{err: fmt.Errorf("calling to BlogPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlogPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlogPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlogPage.
func (c *BlogPageClient) Update() *BlogPageUpdate {
	mutation := newBlogPageMutation(c.config, OpUpdate)
	return &BlogPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlogPageClient) UpdateOne(_m *BlogPage) *BlogPageUpdateOne {
	mutation := newBlogPageMutation(c.config, OpUpdateOne, withBlogPage(_m))
	return &BlogPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlogPageClient) UpdateOneID(id uuid.UUID) *BlogPageUpdateOne {
	mutation := newBlogPageMutation(c.config, OpUpdateOne, withBlogPageID(id))
	return &BlogPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlogPage.
func (c *BlogPageClient) Delete() *BlogPageDelete {
	mutation := newBlogPageMutation(c.config, OpDelete)
	return &BlogPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlogPageClient) DeleteOne(_m *BlogPage) *BlogPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlogPageClient) DeleteOneID(id uuid.UUID) *BlogPageDeleteOne {
	builder := c.Delete().Where(blogpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlogPageDeleteOne{builder}
}

// Query returns a query builder for BlogPage.
func (c *BlogPageClient) Query() *BlogPageQuery {
	return &BlogPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlogPage},
		inters: c.Interceptors(),
	}
}

// Get returns a BlogPage entity by its id.
func (c *BlogPageClient) Get(ctx context.Context, id uuid.UUID) (*BlogPage, error) {
	return c.Query().Where(blogpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlogPageClient) GetX(ctx context.Context, id uuid.UUID) *BlogPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a BlogPage.
func (c *BlogPageClient) QueryNode(_m *BlogPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogpage.Table, blogpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, blogpage.NodeTable, blogpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedImage queries the feed_image edge of a BlogPage.
func (c *BlogPageClient) QueryFeedImage(_m *BlogPage) *ImageQuery {
	query := (&ImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogpage.Table, blogpage.FieldID, id),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, blogpage.FeedImageTable, blogpage.FeedImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTags queries the tags edge of a BlogPage.
func (c *BlogPageClient) QueryTags(_m *BlogPage) *TagQuery {
	query := (&TagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogpage.Table, blogpage.FieldID, id),
			sqlgraph.To(tag.Table, tag.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, blogpage.TagsTable, blogpage.TagsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRelatedLinks queries the related_links edge of a BlogPage.
func (c *BlogPageClient) QueryRelatedLinks(_m *BlogPage) *RelatedLinkQuery {
	query := (&RelatedLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogpage.Table, blogpage.FieldID, id),
			sqlgraph.To(relatedlink.Table, relatedlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blogpage.RelatedLinksTable, blogpage.RelatedLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthorships queries the authorships edge of a BlogPage.
func (c *BlogPageClient) QueryAuthorships(_m *BlogPage) *BlogAuthorshipQuery {
	query := (&BlogAuthorshipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogpage.Table, blogpage.FieldID, id),
			sqlgraph.To(blogauthorship.Table, blogauthorship.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blogpage.AuthorshipsTable, blogpage.AuthorshipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlogPageClient) Hooks() []Hook {
	return c.hooks.BlogPage
}

// Interceptors returns the client interceptors.
func (c *BlogPageClient) Interceptors() []Interceptor {
	return c.inters.BlogPage
}

func (c *BlogPageClient) mutate(ctx context.Context, m *BlogPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlogPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlogPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlogPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlogPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BlogPage mutation op: %q", m.Op())
	}
}

// CarouselItemClient is a client for the CarouselItem schema.
type CarouselItemClient struct {
	config
}

// NewCarouselItemClient returns a client for the CarouselItem from the given config.
func NewCarouselItemClient(c config) *CarouselItemClient {
	return &CarouselItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `carouselitem.Hooks(f(g(h())))`.
func (c *CarouselItemClient) Use(hooks ...Hook) {
	c.hooks.CarouselItem = append(c.hooks.CarouselItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `carouselitem.Intercept(f(g(h())))`.
func (c *CarouselItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CarouselItem = append(c.inters.CarouselItem, interceptors...)
}

// Create returns a builder for creating a CarouselItem entity.
func (c *CarouselItemClient) Create() *CarouselItemCreate {
	mutation := newCarouselItemMutation(c.config, OpCreate)
	return &CarouselItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CarouselItem entities.
func (c *CarouselItemClient) CreateBulk(builders ...*CarouselItemCreate) *CarouselItemCreateBulk {
	return &CarouselItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CarouselItemClient) MapCreateBulk(slice any, setFunc func(*CarouselItemCreate, int)) *CarouselItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CarouselItemCreateBulk{err: fmt.Errorf("calling to CarouselItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CarouselItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CarouselItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CarouselItem.
func (c *CarouselItemClient) Update() *CarouselItemUpdate {
	mutation := newCarouselItemMutation(c.config, OpUpdate)
	return &CarouselItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CarouselItemClient) UpdateOne(_m *CarouselItem) *CarouselItemUpdateOne {
	mutation := newCarouselItemMutation(c.config, OpUpdateOne, withCarouselItem(_m))
	return &CarouselItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CarouselItemClient) UpdateOneID(id uuid.UUID) *CarouselItemUpdateOne {
	mutation := newCarouselItemMutation(c.config, OpUpdateOne, withCarouselItemID(id))
	return &CarouselItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CarouselItem.
func (c *CarouselItemClient) Delete() *CarouselItemDelete {
	mutation := newCarouselItemMutation(c.config, OpDelete)
	return &CarouselItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CarouselItemClient) DeleteOne(_m *CarouselItem) *CarouselItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CarouselItemClient) DeleteOneID(id uuid.UUID) *CarouselItemDeleteOne {
	builder := c.Delete().Where(carouselitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CarouselItemDeleteOne{builder}
}

// Query returns a query builder for CarouselItem.
func (c *CarouselItemClient) Query() *CarouselItemQuery {
	return &CarouselItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCarouselItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CarouselItem entity by its id.
func (c *CarouselItemClient) Get(ctx context.Context, id uuid.UUID) (*CarouselItem, error) {
	return c.Query().Where(carouselitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CarouselItemClient) GetX(ctx context.Context, id uuid.UUID) *CarouselItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLinkNode queries the link_node edge of a CarouselItem.
func (c *CarouselItemClient) QueryLinkNode(_m *CarouselItem) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, carouselitem.LinkNodeTable, carouselitem.LinkNodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinkDocument queries the link_document edge of a CarouselItem.
func (c *CarouselItemClient) QueryLinkDocument(_m *CarouselItem) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, carouselitem.LinkDocumentTable, carouselitem.LinkDocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImage queries the image edge of a CarouselItem.
func (c *CarouselItemClient) QueryImage(_m *CarouselItem) *ImageQuery {
	query := (&ImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, id),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, carouselitem.ImageTable, carouselitem.ImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHomePage queries the home_page edge of a CarouselItem.
func (c *CarouselItemClient) QueryHomePage(_m *CarouselItem) *HomePageQuery {
	query := (&HomePageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(carouselitem.Table, carouselitem.FieldID, id),
			sqlgraph.To(homepage.Table, homepage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, carouselitem.HomePageTable, carouselitem.HomePageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CarouselItemClient) Hooks() []Hook {
	return c.hooks.CarouselItem
}

// Interceptors returns the client interceptors.
func (c *CarouselItemClient) Interceptors() []Interceptor {
	return c.inters.CarouselItem
}

func (c *CarouselItemClient) mutate(ctx context.Context, m *CarouselItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CarouselItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CarouselItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CarouselItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CarouselItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CarouselItem mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Document mutation op: %q", m.Op())
	}
}

// HomePageClient is a client for the HomePage schema.
type HomePageClient struct {
	config
}

// NewHomePageClient returns a client for the HomePage from the given config.
func NewHomePageClient(c config) *HomePageClient {
	return &HomePageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `homepage.Hooks(f(g(h())))`.
func (c *HomePageClient) Use(hooks ...Hook) {
	c.hooks.HomePage = append(c.hooks.HomePage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `homepage.Intercept(f(g(h())))`.
func (c *HomePageClient) Intercept(interceptors ...Interceptor) {
	c.inters.HomePage = append(c.inters.HomePage, interceptors...)
}

// Create returns a builder for creating a HomePage entity.
func (c *HomePageClient) Create() *HomePageCreate {
	mutation := newHomePageMutation(c.config, OpCreate)
	return &HomePageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HomePage entities.
func (c *HomePageClient) CreateBulk(builders ...*HomePageCreate) *HomePageCreateBulk {
	return &HomePageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HomePageClient) MapCreateBulk(slice any, setFunc func(*HomePageCreate, int)) *HomePageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HomePageCreateBulk{err: fmt.Errorf("calling to HomePageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HomePageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HomePageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HomePage.
func (c *HomePageClient) Update() *HomePageUpdate {
	mutation := newHomePageMutation(c.config, OpUpdate)
	return &HomePageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HomePageClient) UpdateOne(_m *HomePage) *HomePageUpdateOne {
	mutation := newHomePageMutation(c.config, OpUpdateOne, withHomePage(_m))
	return &HomePageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HomePageClient) UpdateOneID(id uuid.UUID) *HomePageUpdateOne {
	mutation := newHomePageMutation(c.config, OpUpdateOne, withHomePageID(id))
	return &HomePageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HomePage.
func (c *HomePageClient) Delete() *HomePageDelete {
	mutation := newHomePageMutation(c.config, OpDelete)
	return &HomePageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HomePageClient) DeleteOne(_m *HomePage) *HomePageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HomePageClient) DeleteOneID(id uuid.UUID) *HomePageDeleteOne {
	builder := c.Delete().Where(homepage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HomePageDeleteOne{builder}
}

// Query returns a query builder for HomePage.
func (c *HomePageClient) Query() *HomePageQuery {
	return &HomePageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHomePage},
		inters: c.Interceptors(),
	}
}

// Get returns a HomePage entity by its id.
func (c *HomePageClient) Get(ctx context.Context, id uuid.UUID) (*HomePage, error) {
	return c.Query().Where(homepage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HomePageClient) GetX(ctx context.Context, id uuid.UUID) *HomePage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a HomePage.
func (c *HomePageClient) QueryNode(_m *HomePage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(homepage.Table, homepage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, homepage.NodeTable, homepage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCarouselItems queries the carousel_items edge of a HomePage.
func (c *HomePageClient) QueryCarouselItems(_m *HomePage) *CarouselItemQuery {
	query := (&CarouselItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(homepage.Table, homepage.FieldID, id),
			sqlgraph.To(carouselitem.Table, carouselitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, homepage.CarouselItemsTable, homepage.CarouselItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HomePageClient) Hooks() []Hook {
	return c.hooks.HomePage
}

// Interceptors returns the client interceptors.
func (c *HomePageClient) Interceptors() []Interceptor {
	return c.inters.HomePage
}

func (c *HomePageClient) mutate(ctx context.Context, m *HomePageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HomePageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HomePageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HomePageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HomePageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown HomePage mutation op: %q", m.Op())
	}
}

// ImageClient is a client for the Image schema.
type ImageClient struct {
	config
}

// NewImageClient returns a client for the Image from the given config.
func NewImageClient(c config) *ImageClient {
	return &ImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `image.Hooks(f(g(h())))`.
func (c *ImageClient) Use(hooks ...Hook) {
	c.hooks.Image = append(c.hooks.Image, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `image.Intercept(f(g(h())))`.
func (c *ImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Image = append(c.inters.Image, interceptors...)
}

// Create returns a builder for creating a Image entity.
func (c *ImageClient) Create() *ImageCreate {
	mutation := newImageMutation(c.config, OpCreate)
	return &ImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Image entities.
func (c *ImageClient) CreateBulk(builders ...*ImageCreate) *ImageCreateBulk {
	return &ImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImageClient) MapCreateBulk(slice any, setFunc func(*ImageCreate, int)) *ImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImageCreateBulk{err: fmt.Errorf("calling to ImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Image.
func (c *ImageClient) Update() *ImageUpdate {
	mutation := newImageMutation(c.config, OpUpdate)
	return &ImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImageClient) UpdateOne(_m *Image) *ImageUpdateOne {
	mutation := newImageMutation(c.config, OpUpdateOne, withImage(_m))
	return &ImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImageClient) UpdateOneID(id uuid.UUID) *ImageUpdateOne {
	mutation := newImageMutation(c.config, OpUpdateOne, withImageID(id))
	return &ImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Image.
func (c *ImageClient) Delete() *ImageDelete {
	mutation := newImageMutation(c.config, OpDelete)
	return &ImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImageClient) DeleteOne(_m *Image) *ImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImageClient) DeleteOneID(id uuid.UUID) *ImageDeleteOne {
	builder := c.Delete().Where(image.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImageDeleteOne{builder}
}

// Query returns a query builder for Image.
func (c *ImageClient) Query() *ImageQuery {
	return &ImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImage},
		inters: c.Interceptors(),
	}
}

// Get returns a Image entity by its id.
func (c *ImageClient) Get(ctx context.Context, id uuid.UUID) (*Image, error) {
	return c.Query().Where(image.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImageClient) GetX(ctx context.Context, id uuid.UUID) *Image {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImageClient) Hooks() []Hook {
	return c.hooks.Image
}

// Interceptors returns the client interceptors.
func (c *ImageClient) Interceptors() []Interceptor {
	return c.inters.Image
}

func (c *ImageClient) mutate(ctx context.Context, m *ImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Image mutation op: %q", m.Op())
	}
}

// JobIndexPageClient is a client for the JobIndexPage schema.
type JobIndexPageClient struct {
	config
}

// NewJobIndexPageClient returns a client for the JobIndexPage from the given config.
func NewJobIndexPageClient(c config) *JobIndexPageClient {
	return &JobIndexPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobindexpage.Hooks(f(g(h())))`.
func (c *JobIndexPageClient) Use(hooks ...Hook) {
	c.hooks.JobIndexPage = append(c.hooks.JobIndexPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobindexpage.Intercept(f(g(h())))`.
func (c *JobIndexPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobIndexPage = append(c.inters.JobIndexPage, interceptors...)
}

// Create returns a builder for creating a JobIndexPage entity.
func (c *JobIndexPageClient) Create() *JobIndexPageCreate {
	mutation := newJobIndexPageMutation(c.config, OpCreate)
	return &JobIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobIndexPage entities.
func (c *JobIndexPageClient) CreateBulk(builders ...*JobIndexPageCreate) *JobIndexPageCreateBulk {
	return &JobIndexPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobIndexPageClient) MapCreateBulk(slice any, setFunc func(*JobIndexPageCreate, int)) *JobIndexPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobIndexPageCreateBulk{err: fmt.Errorf("calling to JobIndexPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobIndexPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobIndexPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobIndexPage.
func (c *JobIndexPageClient) Update() *JobIndexPageUpdate {
	mutation := newJobIndexPageMutation(c.config, OpUpdate)
	return &JobIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobIndexPageClient) UpdateOne(_m *JobIndexPage) *JobIndexPageUpdateOne {
	mutation := newJobIndexPageMutation(c.config, OpUpdateOne, withJobIndexPage(_m))
	return &JobIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobIndexPageClient) UpdateOneID(id uuid.UUID) *JobIndexPageUpdateOne {
	mutation := newJobIndexPageMutation(c.config, OpUpdateOne, withJobIndexPageID(id))
	return &JobIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobIndexPage.
func (c *JobIndexPageClient) Delete() *JobIndexPageDelete {
	mutation := newJobIndexPageMutation(c.config, OpDelete)
	return &JobIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobIndexPageClient) DeleteOne(_m *JobIndexPage) *JobIndexPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobIndexPageClient) DeleteOneID(id uuid.UUID) *JobIndexPageDeleteOne {
	builder := c.Delete().Where(jobindexpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobIndexPageDeleteOne{builder}
}

// Query returns a query builder for JobIndexPage.
func (c *JobIndexPageClient) Query() *JobIndexPageQuery {
	return &JobIndexPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobIndexPage},
		inters: c.Interceptors(),
	}
}

// Get returns a JobIndexPage entity by its id.
func (c *JobIndexPageClient) Get(ctx context.Context, id uuid.UUID) (*JobIndexPage, error) {
	return c.Query().Where(jobindexpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobIndexPageClient) GetX(ctx context.Context, id uuid.UUID) *JobIndexPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a JobIndexPage.
func (c *JobIndexPageClient) QueryNode(_m *JobIndexPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobindexpage.Table, jobindexpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, jobindexpage.NodeTable, jobindexpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobIndexPageClient) Hooks() []Hook {
	return c.hooks.JobIndexPage
}

// Interceptors returns the client interceptors.
func (c *JobIndexPageClient) Interceptors() []Interceptor {
	return c.inters.JobIndexPage
}

func (c *JobIndexPageClient) mutate(ctx context.Context, m *JobIndexPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown JobIndexPage mutation op: %q", m.Op())
	}
}

// JobPageClient is a client for the JobPage schema.
type JobPageClient struct {
	config
}

// NewJobPageClient returns a client for the JobPage from the given config.
func NewJobPageClient(c config) *JobPageClient {
	return &JobPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobpage.Hooks(f(g(h())))`.
func (c *JobPageClient) Use(hooks ...Hook) {
	c.hooks.JobPage = append(c.hooks.JobPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobpage.Intercept(f(g(h())))`.
func (c *JobPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobPage = append(c.inters.JobPage, interceptors...)
}

// Create returns a builder for creating a JobPage entity.
func (c *JobPageClient) Create() *JobPageCreate {
	mutation := newJobPageMutation(c.config, OpCreate)
	return &JobPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobPage entities.
func (c *JobPageClient) CreateBulk(builders ...*JobPageCreate) *JobPageCreateBulk {
	return &JobPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobPageClient) MapCreateBulk(slice any, setFunc func(*JobPageCreate, int)) *JobPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobPageCreateBulk{err: fmt.Errorf("calling to JobPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobPage.
func (c *JobPageClient) Update() *JobPageUpdate {
	mutation := newJobPageMutation(c.config, OpUpdate)
	return &JobPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobPageClient) UpdateOne(_m *JobPage) *JobPageUpdateOne {
	mutation := newJobPageMutation(c.config, OpUpdateOne, withJobPage(_m))
	return &JobPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobPageClient) UpdateOneID(id uuid.UUID) *JobPageUpdateOne {
	mutation := newJobPageMutation(c.config, OpUpdateOne, withJobPageID(id))
	return &JobPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobPage.
func (c *JobPageClient) Delete() *JobPageDelete {
	mutation := newJobPageMutation(c.config, OpDelete)
	return &JobPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobPageClient) DeleteOne(_m *JobPage) *JobPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobPageClient) DeleteOneID(id uuid.UUID) *JobPageDeleteOne {
	builder := c.Delete().Where(jobpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobPageDeleteOne{builder}
}

// Query returns a query builder for JobPage.
func (c *JobPageClient) Query() *JobPageQuery {
	return &JobPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobPage},
		inters: c.Interceptors(),
	}
}

// Get returns a JobPage entity by its id.
func (c *JobPageClient) Get(ctx context.Context, id uuid.UUID) (*JobPage, error) {
	return c.Query().Where(jobpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobPageClient) GetX(ctx context.Context, id uuid.UUID) *JobPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a JobPage.
func (c *JobPageClient) QueryNode(_m *JobPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobpage.Table, jobpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, jobpage.NodeTable, jobpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobPageClient) Hooks() []Hook {
	return c.hooks.JobPage
}

// Interceptors returns the client interceptors.
func (c *JobPageClient) Interceptors() []Interceptor {
	return c.inters.JobPage
}

func (c *JobPageClient) mutate(ctx context.Context, m *JobPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown JobPage mutation op: %q", m.Op())
	}
}

// NodeClient is a client for the Node schema.
type NodeClient struct {
	config
}

// NewNodeClient returns a client for the Node from the given config.
func NewNodeClient(c config) *NodeClient {
	return &NodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `node.Hooks(f(g(h())))`.
func (c *NodeClient) Use(hooks ...Hook) {
	c.hooks.Node = append(c.hooks.Node, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `node.Intercept(f(g(h())))`.
func (c *NodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Node = append(c.inters.Node, interceptors...)
}

// Create returns a builder for creating a Node entity.
func (c *NodeClient) Create() *NodeCreate {
	mutation := newNodeMutation(c.config, OpCreate)
	return &NodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Node entities.
func (c *NodeClient) CreateBulk(builders ...*NodeCreate) *NodeCreateBulk {
	return &NodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NodeClient) MapCreateBulk(slice any, setFunc func(*NodeCreate, int)) *NodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NodeCreateBulk{err: fmt.Errorf("calling to NodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Node.
func (c *NodeClient) Update() *NodeUpdate {
	mutation := newNodeMutation(c.config, OpUpdate)
	return &NodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NodeClient) UpdateOne(_m *Node) *NodeUpdateOne {
	mutation := newNodeMutation(c.config, OpUpdateOne, withNode(_m))
	return &NodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NodeClient) UpdateOneID(id uuid.UUID) *NodeUpdateOne {
	mutation := newNodeMutation(c.config, OpUpdateOne, withNodeID(id))
	return &NodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Node.
func (c *NodeClient) Delete() *NodeDelete {
	mutation := newNodeMutation(c.config, OpDelete)
	return &NodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NodeClient) DeleteOne(_m *Node) *NodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NodeClient) DeleteOneID(id uuid.UUID) *NodeDeleteOne {
	builder := c.Delete().Where(node.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NodeDeleteOne{builder}
}

// Query returns a query builder for Node.
func (c *NodeClient) Query() *NodeQuery {
	return &NodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNode},
		inters: c.Interceptors(),
	}
}

// Get returns a Node entity by its id.
func (c *NodeClient) Get(ctx context.Context, id uuid.UUID) (*Node, error) {
	return c.Query().Where(node.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NodeClient) GetX(ctx context.Context, id uuid.UUID) *Node {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NodeClient) Hooks() []Hook {
	return c.hooks.Node
}

// Interceptors returns the client interceptors.
func (c *NodeClient) Interceptors() []Interceptor {
	return c.inters.Node
}

func (c *NodeClient) mutate(ctx context.Context, m *NodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Node mutation op: %q", m.Op())
	}
}

// PersonIndexPageClient is a client for the PersonIndexPage schema.
type PersonIndexPageClient struct {
	config
}

// NewPersonIndexPageClient returns a client for the PersonIndexPage from the given config.
func NewPersonIndexPageClient(c config) *PersonIndexPageClient {
	return &PersonIndexPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `personindexpage.Hooks(f(g(h())))`.
func (c *PersonIndexPageClient) Use(hooks ...Hook) {
	c.hooks.PersonIndexPage = append(c.hooks.PersonIndexPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `personindexpage.Intercept(f(g(h())))`.
func (c *PersonIndexPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PersonIndexPage = append(c.inters.PersonIndexPage, interceptors...)
}

// Create returns a builder for creating a PersonIndexPage entity.
func (c *PersonIndexPageClient) Create() *PersonIndexPageCreate {
	mutation := newPersonIndexPageMutation(c.config, OpCreate)
	return &PersonIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PersonIndexPage entities.
func (c *PersonIndexPageClient) CreateBulk(builders ...*PersonIndexPageCreate) *PersonIndexPageCreateBulk {
	return &PersonIndexPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonIndexPageClient) MapCreateBulk(slice any, setFunc func(*PersonIndexPageCreate, int)) *PersonIndexPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonIndexPageCreateBulk{err: fmt.Errorf("calling to PersonIndexPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonIndexPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonIndexPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PersonIndexPage.
func (c *PersonIndexPageClient) Update() *PersonIndexPageUpdate {
	mutation := newPersonIndexPageMutation(c.config, OpUpdate)
	return &PersonIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonIndexPageClient) UpdateOne(_m *PersonIndexPage) *PersonIndexPageUpdateOne {
	mutation := newPersonIndexPageMutation(c.config, OpUpdateOne, withPersonIndexPage(_m))
	return &PersonIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonIndexPageClient) UpdateOneID(id uuid.UUID) *PersonIndexPageUpdateOne {
	mutation := newPersonIndexPageMutation(c.config, OpUpdateOne, withPersonIndexPageID(id))
	return &PersonIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PersonIndexPage.
func (c *PersonIndexPageClient) Delete() *PersonIndexPageDelete {
	mutation := newPersonIndexPageMutation(c.config, OpDelete)
	return &PersonIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonIndexPageClient) DeleteOne(_m *PersonIndexPage) *PersonIndexPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonIndexPageClient) DeleteOneID(id uuid.UUID) *PersonIndexPageDeleteOne {
	builder := c.Delete().Where(personindexpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonIndexPageDeleteOne{builder}
}

// Query returns a query builder for PersonIndexPage.
func (c *PersonIndexPageClient) Query() *PersonIndexPageQuery {
	return &PersonIndexPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersonIndexPage},
		inters: c.Interceptors(),
	}
}

// Get returns a PersonIndexPage entity by its id.
func (c *PersonIndexPageClient) Get(ctx context.Context, id uuid.UUID) (*PersonIndexPage, error) {
	return c.Query().Where(personindexpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonIndexPageClient) GetX(ctx context.Context, id uuid.UUID) *PersonIndexPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a PersonIndexPage.
func (c *PersonIndexPageClient) QueryNode(_m *PersonIndexPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personindexpage.Table, personindexpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, personindexpage.NodeTable, personindexpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonIndexPageClient) Hooks() []Hook {
	return c.hooks.PersonIndexPage
}

// Interceptors returns the client interceptors.
func (c *PersonIndexPageClient) Interceptors() []Interceptor {
	return c.inters.PersonIndexPage
}

func (c *PersonIndexPageClient) mutate(ctx context.Context, m *PersonIndexPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PersonIndexPage mutation op: %q", m.Op())
	}
}

// PersonPageClient is a client for the PersonPage schema.
type PersonPageClient struct {
	config
}

// NewPersonPageClient returns a client for the PersonPage from the given config.
func NewPersonPageClient(c config) *PersonPageClient {
	return &PersonPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `personpage.Hooks(f(g(h())))`.
func (c *PersonPageClient) Use(hooks ...Hook) {
	c.hooks.PersonPage = append(c.hooks.PersonPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `personpage.Intercept(f(g(h())))`.
func (c *PersonPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PersonPage = append(c.inters.PersonPage, interceptors...)
}

// Create returns a builder for creating a PersonPage entity.
func (c *PersonPageClient) Create() *PersonPageCreate {
	mutation := newPersonPageMutation(c.config, OpCreate)
	return &PersonPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PersonPage entities.
func (c *PersonPageClient) CreateBulk(builders ...*PersonPageCreate) *PersonPageCreateBulk {
	return &PersonPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonPageClient) MapCreateBulk(slice any, setFunc func(*PersonPageCreate, int)) *PersonPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonPageCreateBulk{err: fmt.Errorf("calling to PersonPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PersonPage.
func (c *PersonPageClient) Update() *PersonPageUpdate {
	mutation := newPersonPageMutation(c.config, OpUpdate)
	return &PersonPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonPageClient) UpdateOne(_m *PersonPage) *PersonPageUpdateOne {
	mutation := newPersonPageMutation(c.config, OpUpdateOne, withPersonPage(_m))
	return &PersonPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonPageClient) UpdateOneID(id uuid.UUID) *PersonPageUpdateOne {
	mutation := newPersonPageMutation(c.config, OpUpdateOne, withPersonPageID(id))
	return &PersonPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PersonPage.
func (c *PersonPageClient) Delete() *PersonPageDelete {
	mutation := newPersonPageMutation(c.config, OpDelete)
	return &PersonPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonPageClient) DeleteOne(_m *PersonPage) *PersonPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonPageClient) DeleteOneID(id uuid.UUID) *PersonPageDeleteOne {
	builder := c.Delete().Where(personpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonPageDeleteOne{builder}
}

// Query returns a query builder for PersonPage.
func (c *PersonPageClient) Query() *PersonPageQuery {
	return &PersonPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersonPage},
		inters: c.Interceptors(),
	}
}

// Get returns a PersonPage entity by its id.
func (c *PersonPageClient) Get(ctx context.Context, id uuid.UUID) (*PersonPage, error) {
	return c.Query().Where(personpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonPageClient) GetX(ctx context.Context, id uuid.UUID) *PersonPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a PersonPage.
func (c *PersonPageClient) QueryNode(_m *PersonPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personpage.Table, personpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, personpage.NodeTable, personpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImage queries the image edge of a PersonPage.
func (c *PersonPageClient) QueryImage(_m *PersonPage) *ImageQuery {
	query := (&ImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personpage.Table, personpage.FieldID, id),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, personpage.ImageTable, personpage.ImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedImage queries the feed_image edge of a PersonPage.
func (c *PersonPageClient) QueryFeedImage(_m *PersonPage) *ImageQuery {
	query := (&ImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personpage.Table, personpage.FieldID, id),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, personpage.FeedImageTable, personpage.FeedImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRelatedLinks queries the related_links edge of a PersonPage.
func (c *PersonPageClient) QueryRelatedLinks(_m *PersonPage) *RelatedLinkQuery {
	query := (&RelatedLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personpage.Table, personpage.FieldID, id),
			sqlgraph.To(relatedlink.Table, relatedlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, personpage.RelatedLinksTable, personpage.RelatedLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonPageClient) Hooks() []Hook {
	return c.hooks.PersonPage
}

// Interceptors returns the client interceptors.
func (c *PersonPageClient) Interceptors() []Interceptor {
	return c.inters.PersonPage
}

func (c *PersonPageClient) mutate(ctx context.Context, m *PersonPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PersonPage mutation op: %q", m.Op())
	}
}

// RelatedLinkClient is a client for the RelatedLink schema.
type RelatedLinkClient struct {
	config
}

// NewRelatedLinkClient returns a client for the RelatedLink from the given config.
func NewRelatedLinkClient(c config) *RelatedLinkClient {
	return &RelatedLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `relatedlink.Hooks(f(g(h())))`.
func (c *RelatedLinkClient) Use(hooks ...Hook) {
	c.hooks.RelatedLink = append(c.hooks.RelatedLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `relatedlink.Intercept(f(g(h())))`.
func (c *RelatedLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.RelatedLink = append(c.inters.RelatedLink, interceptors...)
}

// Create returns a builder for creating a RelatedLink entity.
func (c *RelatedLinkClient) Create() *RelatedLinkCreate {
	mutation := newRelatedLinkMutation(c.config, OpCreate)
	return &RelatedLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RelatedLink entities.
func (c *RelatedLinkClient) CreateBulk(builders ...*RelatedLinkCreate) *RelatedLinkCreateBulk {
	return &RelatedLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RelatedLinkClient) MapCreateBulk(slice any, setFunc func(*RelatedLinkCreate, int)) *RelatedLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RelatedLinkCreateBulk{err: fmt.Errorf("calling to RelatedLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RelatedLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RelatedLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RelatedLink.
func (c *RelatedLinkClient) Update() *RelatedLinkUpdate {
	mutation := newRelatedLinkMutation(c.config, OpUpdate)
	return &RelatedLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RelatedLinkClient) UpdateOne(_m *RelatedLink) *RelatedLinkUpdateOne {
	mutation := newRelatedLinkMutation(c.config, OpUpdateOne, withRelatedLink(_m))
	return &RelatedLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RelatedLinkClient) UpdateOneID(id uuid.UUID) *RelatedLinkUpdateOne {
	mutation := newRelatedLinkMutation(c.config, OpUpdateOne, withRelatedLinkID(id))
	return &RelatedLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RelatedLink.
func (c *RelatedLinkClient) Delete() *RelatedLinkDelete {
	mutation := newRelatedLinkMutation(c.config, OpDelete)
	return &RelatedLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RelatedLinkClient) DeleteOne(_m *RelatedLink) *RelatedLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RelatedLinkClient) DeleteOneID(id uuid.UUID) *RelatedLinkDeleteOne {
	builder := c.Delete().Where(relatedlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RelatedLinkDeleteOne{builder}
}

// Query returns a query builder for RelatedLink.
func (c *RelatedLinkClient) Query() *RelatedLinkQuery {
	return &RelatedLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRelatedLink},
		inters: c.Interceptors(),
	}
}

// Get returns a RelatedLink entity by its id.
func (c *RelatedLinkClient) Get(ctx context.Context, id uuid.UUID) (*RelatedLink, error) {
	return c.Query().Where(relatedlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RelatedLinkClient) GetX(ctx context.Context, id uuid.UUID) *RelatedLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLinkNode queries the link_node edge of a RelatedLink.
func (c *RelatedLinkClient) QueryLinkNode(_m *RelatedLink) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, relatedlink.LinkNodeTable, relatedlink.LinkNodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinkDocument queries the link_document edge of a RelatedLink.
func (c *RelatedLinkClient) QueryLinkDocument(_m *RelatedLink) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, relatedlink.LinkDocumentTable, relatedlink.LinkDocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStandardPage queries the standard_page edge of a RelatedLink.
func (c *RelatedLinkClient) QueryStandardPage(_m *RelatedLink) *StandardPageQuery {
	query := (&StandardPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, id),
			sqlgraph.To(standardpage.Table, standardpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.StandardPageTable, relatedlink.StandardPageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlogIndexPage queries the blog_index_page edge of a RelatedLink.
func (c *RelatedLinkClient) QueryBlogIndexPage(_m *RelatedLink) *BlogIndexPageQuery {
	query := (&BlogIndexPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, id),
			sqlgraph.To(blogindexpage.Table, blogindexpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.BlogIndexPageTable, relatedlink.BlogIndexPageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlogPage queries the blog_page edge of a RelatedLink.
func (c *RelatedLinkClient) QueryBlogPage(_m *RelatedLink) *BlogPageQuery {
	query := (&BlogPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, id),
			sqlgraph.To(blogpage.Table, blogpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.BlogPageTable, relatedlink.BlogPageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPersonPage queries the person_page edge of a RelatedLink.
func (c *RelatedLinkClient) QueryPersonPage(_m *RelatedLink) *PersonPageQuery {
	query := (&PersonPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(relatedlink.Table, relatedlink.FieldID, id),
			sqlgraph.To(personpage.Table, personpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, relatedlink.PersonPageTable, relatedlink.PersonPageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RelatedLinkClient) Hooks() []Hook {
	return c.hooks.RelatedLink
}

// Interceptors returns the client interceptors.
func (c *RelatedLinkClient) Interceptors() []Interceptor {
	return c.inters.RelatedLink
}

func (c *RelatedLinkClient) mutate(ctx context.Context, m *RelatedLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RelatedLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RelatedLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RelatedLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RelatedLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RelatedLink mutation op: %q", m.Op())
	}
}

// StandardPageClient is a client for the StandardPage schema.
type StandardPageClient struct {
	config
}

// NewStandardPageClient returns a client for the StandardPage from the given config.
func NewStandardPageClient(c config) *StandardPageClient {
	return &StandardPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `standardpage.Hooks(f(g(h())))`.
func (c *StandardPageClient) Use(hooks ...Hook) {
	c.hooks.StandardPage = append(c.hooks.StandardPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `standardpage.Intercept(f(g(h())))`.
func (c *StandardPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.StandardPage = append(c.inters.StandardPage, interceptors...)
}

// Create returns a builder for creating a StandardPage entity.
func (c *StandardPageClient) Create() *StandardPageCreate {
	mutation := newStandardPageMutation(c.config, OpCreate)
	return &StandardPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StandardPage entities.
func (c *StandardPageClient) CreateBulk(builders ...*StandardPageCreate) *StandardPageCreateBulk {
	return &StandardPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StandardPageClient) MapCreateBulk(slice any, setFunc func(*StandardPageCreate, int)) *StandardPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StandardPageCreateBulk{err: fmt.Errorf("calling to StandardPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StandardPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StandardPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StandardPage.
func (c *StandardPageClient) Update() *StandardPageUpdate {
	mutation := newStandardPageMutation(c.config, OpUpdate)
	return &StandardPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StandardPageClient) UpdateOne(_m *StandardPage) *StandardPageUpdateOne {
	mutation := newStandardPageMutation(c.config, OpUpdateOne, withStandardPage(_m))
	return &StandardPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StandardPageClient) UpdateOneID(id uuid.UUID) *StandardPageUpdateOne {
	mutation := newStandardPageMutation(c.config, OpUpdateOne, withStandardPageID(id))
	return &StandardPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StandardPage.
func (c *StandardPageClient) Delete() *StandardPageDelete {
	mutation := newStandardPageMutation(c.config, OpDelete)
	return &StandardPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StandardPageClient) DeleteOne(_m *StandardPage) *StandardPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StandardPageClient) DeleteOneID(id uuid.UUID) *StandardPageDeleteOne {
	builder := c.Delete().Where(standardpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StandardPageDeleteOne{builder}
}

// Query returns a query builder for StandardPage.
func (c *StandardPageClient) Query() *StandardPageQuery {
	return &StandardPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStandardPage},
		inters: c.Interceptors(),
	}
}

// Get returns a StandardPage entity by its id.
func (c *StandardPageClient) Get(ctx context.Context, id uuid.UUID) (*StandardPage, error) {
	return c.Query().Where(standardpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StandardPageClient) GetX(ctx context.Context, id uuid.UUID) *StandardPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a StandardPage.
func (c *StandardPageClient) QueryNode(_m *StandardPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(standardpage.Table, standardpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, standardpage.NodeTable, standardpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedImage queries the feed_image edge of a StandardPage.
func (c *StandardPageClient) QueryFeedImage(_m *StandardPage) *ImageQuery {
	query := (&ImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(standardpage.Table, standardpage.FieldID, id),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, standardpage.FeedImageTable, standardpage.FeedImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRelatedLinks queries the related_links edge of a StandardPage.
func (c *StandardPageClient) QueryRelatedLinks(_m *StandardPage) *RelatedLinkQuery {
	query := (&RelatedLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(standardpage.Table, standardpage.FieldID, id),
			sqlgraph.To(relatedlink.Table, relatedlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, standardpage.RelatedLinksTable, standardpage.RelatedLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StandardPageClient) Hooks() []Hook {
	return c.hooks.StandardPage
}

// Interceptors returns the client interceptors.
func (c *StandardPageClient) Interceptors() []Interceptor {
	return c.inters.StandardPage
}

func (c *StandardPageClient) mutate(ctx context.Context, m *StandardPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StandardPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StandardPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StandardPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StandardPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown StandardPage mutation op: %q", m.Op())
	}
}

// TagClient is a client for the Tag schema.
type TagClient struct {
	config
}

// NewTagClient returns a client for the Tag from the given config.
func NewTagClient(c config) *TagClient {
	return &TagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tag.Hooks(f(g(h())))`.
func (c *TagClient) Use(hooks ...Hook) {
	c.hooks.Tag = append(c.hooks.Tag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tag.Intercept(f(g(h())))`.
func (c *TagClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tag = append(c.inters.Tag, interceptors...)
}

// Create returns a builder for creating a Tag entity.
func (c *TagClient) Create() *TagCreate {
	mutation := newTagMutation(c.config, OpCreate)
	return &TagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tag entities.
func (c *TagClient) CreateBulk(builders ...*TagCreate) *TagCreateBulk {
	return &TagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagClient) MapCreateBulk(slice any, setFunc func(*TagCreate, int)) *TagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagCreateBulk{err: fmt.Errorf("calling to TagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tag.
func (c *TagClient) Update() *TagUpdate {
	mutation := newTagMutation(c.config, OpUpdate)
	return &TagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagClient) UpdateOne(_m *Tag) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTag(_m))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagClient) UpdateOneID(id uuid.UUID) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTagID(id))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tag.
func (c *TagClient) Delete() *TagDelete {
	mutation := newTagMutation(c.config, OpDelete)
	return &TagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagClient) DeleteOne(_m *Tag) *TagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagClient) DeleteOneID(id uuid.UUID) *TagDeleteOne {
	builder := c.Delete().Where(tag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagDeleteOne{builder}
}

// Query returns a query builder for Tag.
func (c *TagClient) Query() *TagQuery {
	return &TagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTag},
		inters: c.Interceptors(),
	}
}

// Get returns a Tag entity by its id.
func (c *TagClient) Get(ctx context.Context, id uuid.UUID) (*Tag, error) {
	return c.Query().Where(tag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagClient) GetX(ctx context.Context, id uuid.UUID) *Tag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlogPages queries the blog_pages edge of a Tag.
func (c *TagClient) QueryBlogPages(_m *Tag) *BlogPageQuery {
	query := (&BlogPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tag.Table, tag.FieldID, id),
			sqlgraph.To(blogpage.Table, blogpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, tag.BlogPagesTable, tag.BlogPagesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TagClient) Hooks() []Hook {
	return c.hooks.Tag
}

// Interceptors returns the client interceptors.
func (c *TagClient) Interceptors() []Interceptor {
	return c.inters.Tag
}

func (c *TagClient) mutate(ctx context.Context, m *TagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Tag mutation op: %q", m.Op())
	}
}

// WorkIndexPageClient is a client for the WorkIndexPage schema.
type WorkIndexPageClient struct {
	config
}

// NewWorkIndexPageClient returns a client for the WorkIndexPage from the given config.
func NewWorkIndexPageClient(c config) *WorkIndexPageClient {
	return &WorkIndexPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workindexpage.Hooks(f(g(h())))`.
func (c *WorkIndexPageClient) Use(hooks ...Hook) {
	c.hooks.WorkIndexPage = append(c.hooks.WorkIndexPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workindexpage.Intercept(f(g(h())))`.
func (c *WorkIndexPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkIndexPage = append(c.inters.WorkIndexPage, interceptors...)
}

// Create returns a builder for creating a WorkIndexPage entity.
func (c *WorkIndexPageClient) Create() *WorkIndexPageCreate {
	mutation := newWorkIndexPageMutation(c.config, OpCreate)
	return &WorkIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkIndexPage entities.
func (c *WorkIndexPageClient) CreateBulk(builders ...*WorkIndexPageCreate) *WorkIndexPageCreateBulk {
	return &WorkIndexPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkIndexPageClient) MapCreateBulk(slice any, setFunc func(*WorkIndexPageCreate, int)) *WorkIndexPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkIndexPageCreateBulk{err: fmt.Errorf("calling to WorkIndexPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkIndexPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkIndexPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkIndexPage.
func (c *WorkIndexPageClient) Update() *WorkIndexPageUpdate {
	mutation := newWorkIndexPageMutation(c.config, OpUpdate)
	return &WorkIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkIndexPageClient) UpdateOne(_m *WorkIndexPage) *WorkIndexPageUpdateOne {
	mutation := newWorkIndexPageMutation(c.config, OpUpdateOne, withWorkIndexPage(_m))
	return &WorkIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkIndexPageClient) UpdateOneID(id uuid.UUID) *WorkIndexPageUpdateOne {
	mutation := newWorkIndexPageMutation(c.config, OpUpdateOne, withWorkIndexPageID(id))
	return &WorkIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkIndexPage.
func (c *WorkIndexPageClient) Delete() *WorkIndexPageDelete {
	mutation := newWorkIndexPageMutation(c.config, OpDelete)
	return &WorkIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkIndexPageClient) DeleteOne(_m *WorkIndexPage) *WorkIndexPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkIndexPageClient) DeleteOneID(id uuid.UUID) *WorkIndexPageDeleteOne {
	builder := c.Delete().Where(workindexpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkIndexPageDeleteOne{builder}
}

// Query returns a query builder for WorkIndexPage.
func (c *WorkIndexPageClient) Query() *WorkIndexPageQuery {
	return &WorkIndexPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkIndexPage},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkIndexPage entity by its id.
func (c *WorkIndexPageClient) Get(ctx context.Context, id uuid.UUID) (*WorkIndexPage, error) {
	return c.Query().Where(workindexpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkIndexPageClient) GetX(ctx context.Context, id uuid.UUID) *WorkIndexPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a WorkIndexPage.
func (c *WorkIndexPageClient) QueryNode(_m *WorkIndexPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workindexpage.Table, workindexpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, workindexpage.NodeTable, workindexpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkIndexPageClient) Hooks() []Hook {
	return c.hooks.WorkIndexPage
}

// Interceptors returns the client interceptors.
func (c *WorkIndexPageClient) Interceptors() []Interceptor {
	return c.inters.WorkIndexPage
}

func (c *WorkIndexPageClient) mutate(ctx context.Context, m *WorkIndexPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkIndexPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkIndexPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkIndexPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkIndexPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WorkIndexPage mutation op: %q", m.Op())
	}
}

// WorkPageClient is a client for the WorkPage schema.
type WorkPageClient struct {
	config
}

// NewWorkPageClient returns a client for the WorkPage from the given config.
func NewWorkPageClient(c config) *WorkPageClient {
	return &WorkPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workpage.Hooks(f(g(h())))`.
func (c *WorkPageClient) Use(hooks ...Hook) {
	c.hooks.WorkPage = append(c.hooks.WorkPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workpage.Intercept(f(g(h())))`.
func (c *WorkPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkPage = append(c.inters.WorkPage, interceptors...)
}

// Create returns a builder for creating a WorkPage entity.
func (c *WorkPageClient) Create() *WorkPageCreate {
	mutation := newWorkPageMutation(c.config, OpCreate)
	return &WorkPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkPage entities.
func (c *WorkPageClient) CreateBulk(builders ...*WorkPageCreate) *WorkPageCreateBulk {
	return &WorkPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkPageClient) MapCreateBulk(slice any, setFunc func(*WorkPageCreate, int)) *WorkPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkPageCreateBulk{err: fmt.Errorf("calling to WorkPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkPage.
func (c *WorkPageClient) Update() *WorkPageUpdate {
	mutation := newWorkPageMutation(c.config, OpUpdate)
	return &WorkPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkPageClient) UpdateOne(_m *WorkPage) *WorkPageUpdateOne {
	mutation := newWorkPageMutation(c.config, OpUpdateOne, withWorkPage(_m))
	return &WorkPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkPageClient) UpdateOneID(id uuid.UUID) *WorkPageUpdateOne {
	mutation := newWorkPageMutation(c.config, OpUpdateOne, withWorkPageID(id))
	return &WorkPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkPage.
func (c *WorkPageClient) Delete() *WorkPageDelete {
	mutation := newWorkPageMutation(c.config, OpDelete)
	return &WorkPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkPageClient) DeleteOne(_m *WorkPage) *WorkPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkPageClient) DeleteOneID(id uuid.UUID) *WorkPageDeleteOne {
	builder := c.Delete().Where(workpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkPageDeleteOne{builder}
}

// Query returns a query builder for WorkPage.
func (c *WorkPageClient) Query() *WorkPageQuery {
	return &WorkPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkPage},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkPage entity by its id.
func (c *WorkPageClient) Get(ctx context.Context, id uuid.UUID) (*WorkPage, error) {
	return c.Query().Where(workpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkPageClient) GetX(ctx context.Context, id uuid.UUID) *WorkPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNode queries the node edge of a WorkPage.
func (c *WorkPageClient) QueryNode(_m *WorkPage) *NodeQuery {
	query := (&NodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workpage.Table, workpage.FieldID, id),
			sqlgraph.To(node.Table, node.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, workpage.NodeTable, workpage.NodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScreenshots queries the screenshots edge of a WorkPage.
func (c *WorkPageClient) QueryScreenshots(_m *WorkPage) *WorkScreenshotQuery {
	query := (&WorkScreenshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workpage.Table, workpage.FieldID, id),
			sqlgraph.To(workscreenshot.Table, workscreenshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workpage.ScreenshotsTable, workpage.ScreenshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkPageClient) Hooks() []Hook {
	return c.hooks.WorkPage
}

// Interceptors returns the client interceptors.
func (c *WorkPageClient) Interceptors() []Interceptor {
	return c.inters.WorkPage
}

func (c *WorkPageClient) mutate(ctx context.Context, m *WorkPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WorkPage mutation op: %q", m.Op())
	}
}

// WorkScreenshotClient is a client for the WorkScreenshot schema.
type WorkScreenshotClient struct {
	config
}

// NewWorkScreenshotClient returns a client for the WorkScreenshot from the given config.
func NewWorkScreenshotClient(c config) *WorkScreenshotClient {
	return &WorkScreenshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workscreenshot.Hooks(f(g(h())))`.
func (c *WorkScreenshotClient) Use(hooks ...Hook) {
	c.hooks.WorkScreenshot = append(c.hooks.WorkScreenshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workscreenshot.Intercept(f(g(h())))`.
func (c *WorkScreenshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkScreenshot = append(c.inters.WorkScreenshot, interceptors...)
}

// Create returns a builder for creating a WorkScreenshot entity.
func (c *WorkScreenshotClient) Create() *WorkScreenshotCreate {
	mutation := newWorkScreenshotMutation(c.config, OpCreate)
	return &WorkScreenshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkScreenshot entities.
func (c *WorkScreenshotClient) CreateBulk(builders ...*WorkScreenshotCreate) *WorkScreenshotCreateBulk {
	return &WorkScreenshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkScreenshotClient) MapCreateBulk(slice any, setFunc func(*WorkScreenshotCreate, int)) *WorkScreenshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkScreenshotCreateBulk{err: fmt.Errorf("calling to WorkScreenshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkScreenshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkScreenshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkScreenshot.
func (c *WorkScreenshotClient) Update() *WorkScreenshotUpdate {
	mutation := newWorkScreenshotMutation(c.config, OpUpdate)
	return &WorkScreenshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkScreenshotClient) UpdateOne(_m *WorkScreenshot) *WorkScreenshotUpdateOne {
	mutation := newWorkScreenshotMutation(c.config, OpUpdateOne, withWorkScreenshot(_m))
	return &WorkScreenshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkScreenshotClient) UpdateOneID(id uuid.UUID) *WorkScreenshotUpdateOne {
	mutation := newWorkScreenshotMutation(c.config, OpUpdateOne, withWorkScreenshotID(id))
	return &WorkScreenshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkScreenshot.
func (c *WorkScreenshotClient) Delete() *WorkScreenshotDelete {
	mutation := newWorkScreenshotMutation(c.config, OpDelete)
	return &WorkScreenshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkScreenshotClient) DeleteOne(_m *WorkScreenshot) *WorkScreenshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkScreenshotClient) DeleteOneID(id uuid.UUID) *WorkScreenshotDeleteOne {
	builder := c.Delete().Where(workscreenshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkScreenshotDeleteOne{builder}
}

// Query returns a query builder for WorkScreenshot.
func (c *WorkScreenshotClient) Query() *WorkScreenshotQuery {
	return &WorkScreenshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkScreenshot},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkScreenshot entity by its id.
func (c *WorkScreenshotClient) Get(ctx context.Context, id uuid.UUID) (*WorkScreenshot, error) {
	return c.Query().Where(workscreenshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkScreenshotClient) GetX(ctx context.Context, id uuid.UUID) *WorkScreenshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImage queries the image edge of a WorkScreenshot.
func (c *WorkScreenshotClient) QueryImage(_m *WorkScreenshot) *ImageQuery {
	query := (&ImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workscreenshot.Table, workscreenshot.FieldID, id),
			sqlgraph.To(image.Table, image.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, workscreenshot.ImageTable, workscreenshot.ImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkPage queries the work_page edge of a WorkScreenshot.
func (c *WorkScreenshotClient) QueryWorkPage(_m *WorkScreenshot) *WorkPageQuery {
	query := (&WorkPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workscreenshot.Table, workscreenshot.FieldID, id),
			sqlgraph.To(workpage.Table, workpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workscreenshot.WorkPageTable, workscreenshot.WorkPageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkScreenshotClient) Hooks() []Hook {
	return c.hooks.WorkScreenshot
}

// Interceptors returns the client interceptors.
func (c *WorkScreenshotClient) Interceptors() []Interceptor {
	return c.inters.WorkScreenshot
}

func (c *WorkScreenshotClient) mutate(ctx context.Context, m *WorkScreenshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkScreenshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkScreenshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkScreenshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkScreenshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WorkScreenshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Advert, AdvertPlacement, BlogAuthorship, BlogIndexPage, BlogPage, CarouselItem,
		Document, HomePage, Image, JobIndexPage, JobPage, Node, PersonIndexPage,
		PersonPage, RelatedLink, StandardPage, Tag, WorkIndexPage, WorkPage,
		WorkScreenshot []ent.Hook
	}
	inters struct {
		Advert, AdvertPlacement, BlogAuthorship, BlogIndexPage, BlogPage, CarouselItem,
		Document, HomePage, Image, JobIndexPage, JobPage, Node, PersonIndexPage,
		PersonPage, RelatedLink, StandardPage, Tag, WorkIndexPage, WorkPage,
		WorkScreenshot []ent.Interceptor
	}
)
