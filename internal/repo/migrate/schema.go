// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdvertsColumns holds the columns for the "adverts" table.
	AdvertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 255},
		{Name: "url", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "node_id", Type: field.TypeUUID, Nullable: true},
	}
	// AdvertsTable holds the schema information for the "adverts" table.
	AdvertsTable = &schema.Table{
		Name:       "adverts",
		Columns:    AdvertsColumns,
		PrimaryKey: []*schema.Column{AdvertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "adverts_nodes_node",
				Columns:    []*schema.Column{AdvertsColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// AdvertPlacementsColumns holds the columns for the "advert_placements" table.
	AdvertPlacementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "advert_id", Type: field.TypeUUID},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// AdvertPlacementsTable holds the schema information for the "advert_placements" table.
	AdvertPlacementsTable = &schema.Table{
		Name:       "advert_placements",
		Columns:    AdvertPlacementsColumns,
		PrimaryKey: []*schema.Column{AdvertPlacementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "advert_placements_adverts_placements",
				Columns:    []*schema.Column{AdvertPlacementsColumns[1]},
				RefColumns: []*schema.Column{AdvertsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "advert_placements_nodes_node",
				Columns:    []*schema.Column{AdvertPlacementsColumns[2]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "advertplacement_node_id_advert_id",
				Unique:  true,
				Columns: []*schema.Column{AdvertPlacementsColumns[2], AdvertPlacementsColumns[1]},
			},
		},
	}
	// BlogAuthorshipsColumns holds the columns for the "blog_authorships" table.
	BlogAuthorshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "person_page_id", Type: field.TypeUUID, Nullable: true},
		{Name: "blog_page_id", Type: field.TypeUUID},
	}
	// BlogAuthorshipsTable holds the schema information for the "blog_authorships" table.
	BlogAuthorshipsTable = &schema.Table{
		Name:       "blog_authorships",
		Columns:    BlogAuthorshipsColumns,
		PrimaryKey: []*schema.Column{BlogAuthorshipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blog_authorships_person_pages_author",
				Columns:    []*schema.Column{BlogAuthorshipsColumns[2]},
				RefColumns: []*schema.Column{PersonPagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "blog_authorships_blog_pages_authorships",
				Columns:    []*schema.Column{BlogAuthorshipsColumns[3]},
				RefColumns: []*schema.Column{BlogPagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blogauthorship_blog_page_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{BlogAuthorshipsColumns[3], BlogAuthorshipsColumns[1]},
			},
		},
	}
	// BlogIndexPagesColumns holds the columns for the "blog_index_pages" table.
	BlogIndexPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// BlogIndexPagesTable holds the schema information for the "blog_index_pages" table.
	BlogIndexPagesTable = &schema.Table{
		Name:       "blog_index_pages",
		Columns:    BlogIndexPagesColumns,
		PrimaryKey: []*schema.Column{BlogIndexPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blog_index_pages_nodes_node",
				Columns:    []*schema.Column{BlogIndexPagesColumns[4]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// BlogPagesColumns holds the columns for the "blog_pages" table.
	BlogPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "date", Type: field.TypeTime},
		{Name: "node_id", Type: field.TypeUUID},
		{Name: "feed_image_id", Type: field.TypeUUID, Nullable: true},
	}
	// BlogPagesTable holds the schema information for the "blog_pages" table.
	BlogPagesTable = &schema.Table{
		Name:       "blog_pages",
		Columns:    BlogPagesColumns,
		PrimaryKey: []*schema.Column{BlogPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blog_pages_nodes_node",
				Columns:    []*schema.Column{BlogPagesColumns[6]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "blog_pages_images_feed_image",
				Columns:    []*schema.Column{BlogPagesColumns[7]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blogpage_date",
				Unique:  false,
				Columns: []*schema.Column{BlogPagesColumns[5]},
			},
		},
	}
	// CarouselItemsColumns holds the columns for the "carousel_items" table.
	CarouselItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "link_external", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "embed_url", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "link_node_id", Type: field.TypeUUID, Nullable: true},
		{Name: "link_document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "image_id", Type: field.TypeUUID, Nullable: true},
		{Name: "home_page_id", Type: field.TypeUUID},
	}
	// CarouselItemsTable holds the schema information for the "carousel_items" table.
	CarouselItemsTable = &schema.Table{
		Name:       "carousel_items",
		Columns:    CarouselItemsColumns,
		PrimaryKey: []*schema.Column{CarouselItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "carousel_items_nodes_link_node",
				Columns:    []*schema.Column{CarouselItemsColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "carousel_items_documents_link_document",
				Columns:    []*schema.Column{CarouselItemsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "carousel_items_images_image",
				Columns:    []*schema.Column{CarouselItemsColumns[7]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "carousel_items_home_pages_carousel_items",
				Columns:    []*schema.Column{CarouselItemsColumns[8]},
				RefColumns: []*schema.Column{HomePagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "carouselitem_home_page_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{CarouselItemsColumns[8], CarouselItemsColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "file", Type: field.TypeString, Size: 500},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// HomePagesColumns holds the columns for the "home_pages" table.
	HomePagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// HomePagesTable holds the schema information for the "home_pages" table.
	HomePagesTable = &schema.Table{
		Name:       "home_pages",
		Columns:    HomePagesColumns,
		PrimaryKey: []*schema.Column{HomePagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "home_pages_nodes_node",
				Columns:    []*schema.Column{HomePagesColumns[3]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ImagesColumns holds the columns for the "images" table.
	ImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "file", Type: field.TypeString, Size: 500},
		{Name: "width", Type: field.TypeInt, Nullable: true},
		{Name: "height", Type: field.TypeInt, Nullable: true},
	}
	// ImagesTable holds the schema information for the "images" table.
	ImagesTable = &schema.Table{
		Name:       "images",
		Columns:    ImagesColumns,
		PrimaryKey: []*schema.Column{ImagesColumns[0]},
	}
	// JobIndexPagesColumns holds the columns for the "job_index_pages" table.
	JobIndexPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// JobIndexPagesTable holds the schema information for the "job_index_pages" table.
	JobIndexPagesTable = &schema.Table{
		Name:       "job_index_pages",
		Columns:    JobIndexPagesColumns,
		PrimaryKey: []*schema.Column{JobIndexPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_index_pages_nodes_node",
				Columns:    []*schema.Column{JobIndexPagesColumns[4]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// JobPagesColumns holds the columns for the "job_pages" table.
	JobPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// JobPagesTable holds the schema information for the "job_pages" table.
	JobPagesTable = &schema.Table{
		Name:       "job_pages",
		Columns:    JobPagesColumns,
		PrimaryKey: []*schema.Column{JobPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_pages_nodes_node",
				Columns:    []*schema.Column{JobPagesColumns[4]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// NodesColumns holds the columns for the "nodes" table.
	NodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "depth", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "url_path", Type: field.TypeString, Unique: true},
		{Name: "live", Type: field.TypeBool, Default: true},
		{Name: "show_in_menus", Type: field.TypeBool, Default: false},
		{Name: "seo_title", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "search_description", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString},
	}
	// NodesTable holds the schema information for the "nodes" table.
	NodesTable = &schema.Table{
		Name:       "nodes",
		Columns:    NodesColumns,
		PrimaryKey: []*schema.Column{NodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "node_depth",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[4]},
			},
			{
				Name:    "node_live_show_in_menus",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[8], NodesColumns[9]},
			},
			{
				Name:    "node_content_type",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[12]},
			},
		},
	}
	// PersonIndexPagesColumns holds the columns for the "person_index_pages" table.
	PersonIndexPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// PersonIndexPagesTable holds the schema information for the "person_index_pages" table.
	PersonIndexPagesTable = &schema.Table{
		Name:       "person_index_pages",
		Columns:    PersonIndexPagesColumns,
		PrimaryKey: []*schema.Column{PersonIndexPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "person_index_pages_nodes_node",
				Columns:    []*schema.Column{PersonIndexPagesColumns[4]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PersonPagesColumns holds the columns for the "person_pages" table.
	PersonPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "telephone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address_1", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address_2", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "country", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "post_code", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "first_name", Type: field.TypeString, Size: 255},
		{Name: "last_name", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "biography", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
		{Name: "image_id", Type: field.TypeUUID, Nullable: true},
		{Name: "feed_image_id", Type: field.TypeUUID, Nullable: true},
	}
	// PersonPagesTable holds the schema information for the "person_pages" table.
	PersonPagesTable = &schema.Table{
		Name:       "person_pages",
		Columns:    PersonPagesColumns,
		PrimaryKey: []*schema.Column{PersonPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "person_pages_nodes_node",
				Columns:    []*schema.Column{PersonPagesColumns[15]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "person_pages_images_image",
				Columns:    []*schema.Column{PersonPagesColumns[16]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "person_pages_images_feed_image",
				Columns:    []*schema.Column{PersonPagesColumns[17]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// RelatedLinksColumns holds the columns for the "related_links" table.
	RelatedLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "link_external", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "blog_index_page_id", Type: field.TypeUUID, Nullable: true},
		{Name: "blog_page_id", Type: field.TypeUUID, Nullable: true},
		{Name: "person_page_id", Type: field.TypeUUID, Nullable: true},
		{Name: "link_node_id", Type: field.TypeUUID, Nullable: true},
		{Name: "link_document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "standard_page_id", Type: field.TypeUUID, Nullable: true},
	}
	// RelatedLinksTable holds the schema information for the "related_links" table.
	RelatedLinksTable = &schema.Table{
		Name:       "related_links",
		Columns:    RelatedLinksColumns,
		PrimaryKey: []*schema.Column{RelatedLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "related_links_blog_index_pages_related_links",
				Columns:    []*schema.Column{RelatedLinksColumns[4]},
				RefColumns: []*schema.Column{BlogIndexPagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "related_links_blog_pages_related_links",
				Columns:    []*schema.Column{RelatedLinksColumns[5]},
				RefColumns: []*schema.Column{BlogPagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "related_links_person_pages_related_links",
				Columns:    []*schema.Column{RelatedLinksColumns[6]},
				RefColumns: []*schema.Column{PersonPagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "related_links_nodes_link_node",
				Columns:    []*schema.Column{RelatedLinksColumns[7]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "related_links_documents_link_document",
				Columns:    []*schema.Column{RelatedLinksColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "related_links_standard_pages_related_links",
				Columns:    []*schema.Column{RelatedLinksColumns[9]},
				RefColumns: []*schema.Column{StandardPagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// StandardPagesColumns holds the columns for the "standard_pages" table.
	StandardPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
		{Name: "feed_image_id", Type: field.TypeUUID, Nullable: true},
	}
	// StandardPagesTable holds the schema information for the "standard_pages" table.
	StandardPagesTable = &schema.Table{
		Name:       "standard_pages",
		Columns:    StandardPagesColumns,
		PrimaryKey: []*schema.Column{StandardPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "standard_pages_nodes_node",
				Columns:    []*schema.Column{StandardPagesColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "standard_pages_images_feed_image",
				Columns:    []*schema.Column{StandardPagesColumns[6]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}
	// WorkIndexPagesColumns holds the columns for the "work_index_pages" table.
	WorkIndexPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// WorkIndexPagesTable holds the schema information for the "work_index_pages" table.
	WorkIndexPagesTable = &schema.Table{
		Name:       "work_index_pages",
		Columns:    WorkIndexPagesColumns,
		PrimaryKey: []*schema.Column{WorkIndexPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_index_pages_nodes_node",
				Columns:    []*schema.Column{WorkIndexPagesColumns[4]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// WorkPagesColumns holds the columns for the "work_pages" table.
	WorkPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "summary", Type: field.TypeString, Size: 255},
		{Name: "intro", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// WorkPagesTable holds the schema information for the "work_pages" table.
	WorkPagesTable = &schema.Table{
		Name:       "work_pages",
		Columns:    WorkPagesColumns,
		PrimaryKey: []*schema.Column{WorkPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_pages_nodes_node",
				Columns:    []*schema.Column{WorkPagesColumns[6]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// WorkScreenshotsColumns holds the columns for the "work_screenshots" table.
	WorkScreenshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "work_page_id", Type: field.TypeUUID},
		{Name: "image_id", Type: field.TypeUUID, Nullable: true},
	}
	// WorkScreenshotsTable holds the schema information for the "work_screenshots" table.
	WorkScreenshotsTable = &schema.Table{
		Name:       "work_screenshots",
		Columns:    WorkScreenshotsColumns,
		PrimaryKey: []*schema.Column{WorkScreenshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_screenshots_work_pages_screenshots",
				Columns:    []*schema.Column{WorkScreenshotsColumns[2]},
				RefColumns: []*schema.Column{WorkPagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "work_screenshots_images_image",
				Columns:    []*schema.Column{WorkScreenshotsColumns[3]},
				RefColumns: []*schema.Column{ImagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workscreenshot_work_page_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{WorkScreenshotsColumns[2], WorkScreenshotsColumns[1]},
			},
		},
	}
	// BlogPageTagsColumns holds the columns for the "blog_page_tags" table.
	BlogPageTagsColumns = []*schema.Column{
		{Name: "blog_page_id", Type: field.TypeUUID},
		{Name: "tag_id", Type: field.TypeUUID},
	}
	// BlogPageTagsTable holds the schema information for the "blog_page_tags" table.
	BlogPageTagsTable = &schema.Table{
		Name:       "blog_page_tags",
		Columns:    BlogPageTagsColumns,
		PrimaryKey: []*schema.Column{BlogPageTagsColumns[0], BlogPageTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blog_page_tags_blog_page_id",
				Columns:    []*schema.Column{BlogPageTagsColumns[0]},
				RefColumns: []*schema.Column{BlogPagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "blog_page_tags_tag_id",
				Columns:    []*schema.Column{BlogPageTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdvertsTable,
		AdvertPlacementsTable,
		BlogAuthorshipsTable,
		BlogIndexPagesTable,
		BlogPagesTable,
		CarouselItemsTable,
		DocumentsTable,
		HomePagesTable,
		ImagesTable,
		JobIndexPagesTable,
		JobPagesTable,
		NodesTable,
		PersonIndexPagesTable,
		PersonPagesTable,
		RelatedLinksTable,
		StandardPagesTable,
		TagsTable,
		WorkIndexPagesTable,
		WorkPagesTable,
		WorkScreenshotsTable,
		BlogPageTagsTable,
	}
)

func init() {
	AdvertsTable.ForeignKeys[0].RefTable = NodesTable
	AdvertPlacementsTable.ForeignKeys[0].RefTable = AdvertsTable
	AdvertPlacementsTable.ForeignKeys[1].RefTable = NodesTable
	BlogAuthorshipsTable.ForeignKeys[0].RefTable = PersonPagesTable
	BlogAuthorshipsTable.ForeignKeys[1].RefTable = BlogPagesTable
	BlogIndexPagesTable.ForeignKeys[0].RefTable = NodesTable
	BlogPagesTable.ForeignKeys[0].RefTable = NodesTable
	BlogPagesTable.ForeignKeys[1].RefTable = ImagesTable
	CarouselItemsTable.ForeignKeys[0].RefTable = NodesTable
	CarouselItemsTable.ForeignKeys[1].RefTable = DocumentsTable
	CarouselItemsTable.ForeignKeys[2].RefTable = ImagesTable
	CarouselItemsTable.ForeignKeys[3].RefTable = HomePagesTable
	HomePagesTable.ForeignKeys[0].RefTable = NodesTable
	JobIndexPagesTable.ForeignKeys[0].RefTable = NodesTable
	JobPagesTable.ForeignKeys[0].RefTable = NodesTable
	PersonIndexPagesTable.ForeignKeys[0].RefTable = NodesTable
	PersonPagesTable.ForeignKeys[0].RefTable = NodesTable
	PersonPagesTable.ForeignKeys[1].RefTable = ImagesTable
	PersonPagesTable.ForeignKeys[2].RefTable = ImagesTable
	RelatedLinksTable.ForeignKeys[0].RefTable = BlogIndexPagesTable
	RelatedLinksTable.ForeignKeys[1].RefTable = BlogPagesTable
	RelatedLinksTable.ForeignKeys[2].RefTable = PersonPagesTable
	RelatedLinksTable.ForeignKeys[3].RefTable = NodesTable
	RelatedLinksTable.ForeignKeys[4].RefTable = DocumentsTable
	RelatedLinksTable.ForeignKeys[5].RefTable = StandardPagesTable
	StandardPagesTable.ForeignKeys[0].RefTable = NodesTable
	StandardPagesTable.ForeignKeys[1].RefTable = ImagesTable
	WorkIndexPagesTable.ForeignKeys[0].RefTable = NodesTable
	WorkPagesTable.ForeignKeys[0].RefTable = NodesTable
	WorkScreenshotsTable.ForeignKeys[0].RefTable = WorkPagesTable
	WorkScreenshotsTable.ForeignKeys[1].RefTable = ImagesTable
	BlogPageTagsTable.ForeignKeys[0].RefTable = BlogPagesTable
	BlogPageTagsTable.ForeignKeys[1].RefTable = TagsTable
}
