// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Advert is the predicate function for advert builders.
type Advert func(*sql.Selector)

// AdvertPlacement is the predicate function for advertplacement builders.
type AdvertPlacement func(*sql.Selector)

// BlogAuthorship is the predicate function for blogauthorship builders.
type BlogAuthorship func(*sql.Selector)

// BlogIndexPage is the predicate function for blogindexpage builders.
type BlogIndexPage func(*sql.Selector)

// BlogPage is the predicate function for blogpage builders.
type BlogPage func(*sql.Selector)

// CarouselItem is the predicate function for carouselitem builders.
type CarouselItem func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// HomePage is the predicate function for homepage builders.
type HomePage func(*sql.Selector)

// Image is the predicate function for image builders.
type Image func(*sql.Selector)

// JobIndexPage is the predicate function for jobindexpage builders.
type JobIndexPage func(*sql.Selector)

// JobPage is the predicate function for jobpage builders.
type JobPage func(*sql.Selector)

// Node is the predicate function for node builders.
type Node func(*sql.Selector)

// PersonIndexPage is the predicate function for personindexpage builders.
type PersonIndexPage func(*sql.Selector)

// PersonPage is the predicate function for personpage builders.
type PersonPage func(*sql.Selector)

// RelatedLink is the predicate function for relatedlink builders.
type RelatedLink func(*sql.Selector)

// StandardPage is the predicate function for standardpage builders.
type StandardPage func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// WorkIndexPage is the predicate function for workindexpage builders.
type WorkIndexPage func(*sql.Selector)

// WorkPage is the predicate function for workpage builders.
type WorkPage func(*sql.Selector)

// WorkScreenshot is the predicate function for workscreenshot builders.
type WorkScreenshot func(*sql.Selector)
