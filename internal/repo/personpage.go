// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/image"
	"github.com/helenb/wagtail-torchbox/internal/repo/node"
	"github.com/helenb/wagtail-torchbox/internal/repo/personpage"
)

// PersonPage is the model entity for the PersonPage schema.
type PersonPage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Telephone holds the value of the "telephone" field.
	Telephone string `json:"telephone,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Address1 holds the value of the "address_1" field.
	Address1 string `json:"address_1,omitempty"`
	// Address2 holds the value of the "address_2" field.
	Address2 string `json:"address_2,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// PostCode holds the value of the "post_code" field.
	PostCode string `json:"post_code,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID uuid.UUID `json:"node_id,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Intro holds the value of the "intro" field.
	Intro string `json:"intro,omitempty"`
	// Biography holds the value of the "biography" field.
	Biography string `json:"biography,omitempty"`
	// ImageID holds the value of the "image_id" field.
	ImageID uuid.UUID `json:"image_id,omitempty"`
	// FeedImageID holds the value of the "feed_image_id" field.
	FeedImageID uuid.UUID `json:"feed_image_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PersonPageQuery when eager-loading is set.
	Edges        PersonPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PersonPageEdges holds the relations/edges for other nodes in the graph.
type PersonPageEdges struct {
	// Node holds the value of the node edge.
	Node *Node `json:"node,omitempty"`
	// Image holds the value of the image edge.
	Image *Image `json:"image,omitempty"`
	// FeedImage holds the value of the feed_image edge.
	FeedImage *Image `json:"feed_image,omitempty"`
	// RelatedLinks holds the value of the related_links edge.
	RelatedLinks []*RelatedLink `json:"related_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// NodeOrErr returns the Node value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PersonPageEdges) NodeOrErr() (*Node, error) {
	if e.Node != nil {
		return e.Node, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "node"}
}

// ImageOrErr returns the Image value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PersonPageEdges) ImageOrErr() (*Image, error) {
	if e.Image != nil {
		return e.Image, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: image.Label}
	}
	return nil, &NotLoadedError{edge: "image"}
}

// FeedImageOrErr returns the FeedImage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PersonPageEdges) FeedImageOrErr() (*Image, error) {
	if e.FeedImage != nil {
		return e.FeedImage, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: image.Label}
	}
	return nil, &NotLoadedError{edge: "feed_image"}
}

// RelatedLinksOrErr returns the RelatedLinks value or an error if the edge
// was not loaded in eager-loading.
func (e PersonPageEdges) RelatedLinksOrErr() ([]*RelatedLink, error) {
	if e.loadedTypes[3] {
		return e.RelatedLinks, nil
	}
	return nil, &NotLoadedError{edge: "related_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PersonPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case personpage.FieldTelephone, personpage.FieldEmail, personpage.FieldAddress1, personpage.FieldAddress2, personpage.FieldCity, personpage.FieldCountry, personpage.FieldPostCode, personpage.FieldFirstName, personpage.FieldLastName, personpage.FieldRole, personpage.FieldIntro, personpage.FieldBiography:
			values[i] = new(sql.NullString)
		case personpage.FieldCreatedAt, personpage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case personpage.FieldID, personpage.FieldNodeID, personpage.FieldImageID, personpage.FieldFeedImageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PersonPage fields.
func (_m *PersonPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case personpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case personpage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case personpage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case personpage.FieldTelephone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telephone", values[i])
			} else if value.Valid {
				_m.Telephone = value.String
			}
		case personpage.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case personpage.FieldAddress1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address_1", values[i])
			} else if value.Valid {
				_m.Address1 = value.String
			}
		case personpage.FieldAddress2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address_2", values[i])
			} else if value.Valid {
				_m.Address2 = value.String
			}
		case personpage.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case personpage.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case personpage.FieldPostCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_code", values[i])
			} else if value.Valid {
				_m.PostCode = value.String
			}
		case personpage.FieldNodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value != nil {
				_m.NodeID = *value
			}
		case personpage.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case personpage.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case personpage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case personpage.FieldIntro:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intro", values[i])
			} else if value.Valid {
				_m.Intro = value.String
			}
		case personpage.FieldBiography:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field biography", values[i])
			} else if value.Valid {
				_m.Biography = value.String
			}
		case personpage.FieldImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field image_id", values[i])
			} else if value != nil {
				_m.ImageID = *value
			}
		case personpage.FieldFeedImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field feed_image_id", values[i])
			} else if value != nil {
				_m.FeedImageID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PersonPage.
// This includes values selected through modifiers, order, etc.
func (_m *PersonPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNode queries the "node" edge of the PersonPage entity.
func (_m *PersonPage) QueryNode() *NodeQuery {
	return NewPersonPageClient(_m.config).QueryNode(_m)
}

// QueryImage queries the "image" edge of the PersonPage entity.
func (_m *PersonPage) QueryImage() *ImageQuery {
	return NewPersonPageClient(_m.config).QueryImage(_m)
}

// QueryFeedImage queries the "feed_image" edge of the PersonPage entity.
func (_m *PersonPage) QueryFeedImage() *ImageQuery {
	return NewPersonPageClient(_m.config).QueryFeedImage(_m)
}

// QueryRelatedLinks queries the "related_links" edge of the PersonPage entity.
func (_m *PersonPage) QueryRelatedLinks() *RelatedLinkQuery {
	return NewPersonPageClient(_m.config).QueryRelatedLinks(_m)
}

// Update returns a builder for updating this PersonPage.
// Note that you need to call PersonPage.Unwrap() before calling this method if this PersonPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PersonPage) Update() *PersonPageUpdateOne {
	return NewPersonPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PersonPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PersonPage) Unwrap() *PersonPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PersonPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PersonPage) String() string {
	var builder strings.Builder
	builder.WriteString("PersonPage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("telephone=")
	builder.WriteString(_m.Telephone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("address_1=")
	builder.WriteString(_m.Address1)
	builder.WriteString(", ")
	builder.WriteString("address_2=")
	builder.WriteString(_m.Address2)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("post_code=")
	builder.WriteString(_m.PostCode)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeID))
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("intro=")
	builder.WriteString(_m.Intro)
	builder.WriteString(", ")
	builder.WriteString("biography=")
	builder.WriteString(_m.Biography)
	builder.WriteString(", ")
	builder.WriteString("image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageID))
	builder.WriteString(", ")
	builder.WriteString("feed_image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedImageID))
	builder.WriteByte(')')
	return builder.String()
}

// PersonPages is a parsable slice of PersonPage.
type PersonPages []*PersonPage
