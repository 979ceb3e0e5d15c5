// Code generated by ent, DO NOT EDIT.

package personpage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/helenb/wagtail-torchbox/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldUpdatedAt, v))
}

// Telephone applies equality check predicate on the "telephone" field. It's identical to TelephoneEQ.
func Telephone(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldTelephone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldEmail, v))
}

// Address1 applies equality check predicate on the "address_1" field. It's identical to Address1EQ.
func Address1(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldAddress1, v))
}

// Address2 applies equality check predicate on the "address_2" field. It's identical to Address2EQ.
func Address2(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldAddress2, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldCity, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldCountry, v))
}

// PostCode applies equality check predicate on the "post_code" field. It's identical to PostCodeEQ.
func PostCode(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldPostCode, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldNodeID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldLastName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldRole, v))
}

// Intro applies equality check predicate on the "intro" field. It's identical to IntroEQ.
func Intro(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldIntro, v))
}

// Biography applies equality check predicate on the "biography" field. It's identical to BiographyEQ.
func Biography(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldBiography, v))
}

// ImageID applies equality check predicate on the "image_id" field. It's identical to ImageIDEQ.
func ImageID(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldImageID, v))
}

// FeedImageID applies equality check predicate on the "feed_image_id" field. It's identical to FeedImageIDEQ.
func FeedImageID(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldFeedImageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldUpdatedAt, v))
}

// TelephoneEQ applies the EQ predicate on the "telephone" field.
func TelephoneEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldTelephone, v))
}

// TelephoneNEQ applies the NEQ predicate on the "telephone" field.
func TelephoneNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldTelephone, v))
}

// TelephoneIn applies the In predicate on the "telephone" field.
func TelephoneIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldTelephone, vs...))
}

// TelephoneNotIn applies the NotIn predicate on the "telephone" field.
func TelephoneNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldTelephone, vs...))
}

// TelephoneGT applies the GT predicate on the "telephone" field.
func TelephoneGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldTelephone, v))
}

// TelephoneGTE applies the GTE predicate on the "telephone" field.
func TelephoneGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldTelephone, v))
}

// TelephoneLT applies the LT predicate on the "telephone" field.
func TelephoneLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldTelephone, v))
}

// TelephoneLTE applies the LTE predicate on the "telephone" field.
func TelephoneLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldTelephone, v))
}

// TelephoneContains applies the Contains predicate on the "telephone" field.
func TelephoneContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldTelephone, v))
}

// TelephoneHasPrefix applies the HasPrefix predicate on the "telephone" field.
func TelephoneHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldTelephone, v))
}

// TelephoneHasSuffix applies the HasSuffix predicate on the "telephone" field.
func TelephoneHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldTelephone, v))
}

// TelephoneIsNil applies the IsNil predicate on the "telephone" field.
func TelephoneIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldTelephone))
}

// TelephoneNotNil applies the NotNil predicate on the "telephone" field.
func TelephoneNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldTelephone))
}

// TelephoneEqualFold applies the EqualFold predicate on the "telephone" field.
func TelephoneEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldTelephone, v))
}

// TelephoneContainsFold applies the ContainsFold predicate on the "telephone" field.
func TelephoneContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldTelephone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldEmail, v))
}

// Address1EQ applies the EQ predicate on the "address_1" field.
func Address1EQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldAddress1, v))
}

// Address1NEQ applies the NEQ predicate on the "address_1" field.
func Address1NEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldAddress1, v))
}

// Address1In applies the In predicate on the "address_1" field.
func Address1In(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldAddress1, vs...))
}

// Address1NotIn applies the NotIn predicate on the "address_1" field.
func Address1NotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldAddress1, vs...))
}

// Address1GT applies the GT predicate on the "address_1" field.
func Address1GT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldAddress1, v))
}

// Address1GTE applies the GTE predicate on the "address_1" field.
func Address1GTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldAddress1, v))
}

// Address1LT applies the LT predicate on the "address_1" field.
func Address1LT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldAddress1, v))
}

// Address1LTE applies the LTE predicate on the "address_1" field.
func Address1LTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldAddress1, v))
}

// Address1Contains applies the Contains predicate on the "address_1" field.
func Address1Contains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldAddress1, v))
}

// Address1HasPrefix applies the HasPrefix predicate on the "address_1" field.
func Address1HasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldAddress1, v))
}

// Address1HasSuffix applies the HasSuffix predicate on the "address_1" field.
func Address1HasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldAddress1, v))
}

// Address1IsNil applies the IsNil predicate on the "address_1" field.
func Address1IsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldAddress1))
}

// Address1NotNil applies the NotNil predicate on the "address_1" field.
func Address1NotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldAddress1))
}

// Address1EqualFold applies the EqualFold predicate on the "address_1" field.
func Address1EqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldAddress1, v))
}

// Address1ContainsFold applies the ContainsFold predicate on the "address_1" field.
func Address1ContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldAddress1, v))
}

// Address2EQ applies the EQ predicate on the "address_2" field.
func Address2EQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldAddress2, v))
}

// Address2NEQ applies the NEQ predicate on the "address_2" field.
func Address2NEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldAddress2, v))
}

// Address2In applies the In predicate on the "address_2" field.
func Address2In(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldAddress2, vs...))
}

// Address2NotIn applies the NotIn predicate on the "address_2" field.
func Address2NotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldAddress2, vs...))
}

// Address2GT applies the GT predicate on the "address_2" field.
func Address2GT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldAddress2, v))
}

// Address2GTE applies the GTE predicate on the "address_2" field.
func Address2GTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldAddress2, v))
}

// Address2LT applies the LT predicate on the "address_2" field.
func Address2LT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldAddress2, v))
}

// Address2LTE applies the LTE predicate on the "address_2" field.
func Address2LTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldAddress2, v))
}

// Address2Contains applies the Contains predicate on the "address_2" field.
func Address2Contains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldAddress2, v))
}

// Address2HasPrefix applies the HasPrefix predicate on the "address_2" field.
func Address2HasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldAddress2, v))
}

// Address2HasSuffix applies the HasSuffix predicate on the "address_2" field.
func Address2HasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldAddress2, v))
}

// Address2IsNil applies the IsNil predicate on the "address_2" field.
func Address2IsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldAddress2))
}

// Address2NotNil applies the NotNil predicate on the "address_2" field.
func Address2NotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldAddress2))
}

// Address2EqualFold applies the EqualFold predicate on the "address_2" field.
func Address2EqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldAddress2, v))
}

// Address2ContainsFold applies the ContainsFold predicate on the "address_2" field.
func Address2ContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldAddress2, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldCity, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldCountry, v))
}

// PostCodeEQ applies the EQ predicate on the "post_code" field.
func PostCodeEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldPostCode, v))
}

// PostCodeNEQ applies the NEQ predicate on the "post_code" field.
func PostCodeNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldPostCode, v))
}

// PostCodeIn applies the In predicate on the "post_code" field.
func PostCodeIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldPostCode, vs...))
}

// PostCodeNotIn applies the NotIn predicate on the "post_code" field.
func PostCodeNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldPostCode, vs...))
}

// PostCodeGT applies the GT predicate on the "post_code" field.
func PostCodeGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldPostCode, v))
}

// PostCodeGTE applies the GTE predicate on the "post_code" field.
func PostCodeGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldPostCode, v))
}

// PostCodeLT applies the LT predicate on the "post_code" field.
func PostCodeLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldPostCode, v))
}

// PostCodeLTE applies the LTE predicate on the "post_code" field.
func PostCodeLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldPostCode, v))
}

// PostCodeContains applies the Contains predicate on the "post_code" field.
func PostCodeContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldPostCode, v))
}

// PostCodeHasPrefix applies the HasPrefix predicate on the "post_code" field.
func PostCodeHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldPostCode, v))
}

// PostCodeHasSuffix applies the HasSuffix predicate on the "post_code" field.
func PostCodeHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldPostCode, v))
}

// PostCodeIsNil applies the IsNil predicate on the "post_code" field.
func PostCodeIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldPostCode))
}

// PostCodeNotNil applies the NotNil predicate on the "post_code" field.
func PostCodeNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldPostCode))
}

// PostCodeEqualFold applies the EqualFold predicate on the "post_code" field.
func PostCodeEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldPostCode, v))
}

// PostCodeContainsFold applies the ContainsFold predicate on the "post_code" field.
func PostCodeContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldPostCode, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldNodeID, vs...))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldLastName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldRole, v))
}

// IntroEQ applies the EQ predicate on the "intro" field.
func IntroEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldIntro, v))
}

// IntroNEQ applies the NEQ predicate on the "intro" field.
func IntroNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldIntro, v))
}

// IntroIn applies the In predicate on the "intro" field.
func IntroIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldIntro, vs...))
}

// IntroNotIn applies the NotIn predicate on the "intro" field.
func IntroNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldIntro, vs...))
}

// IntroGT applies the GT predicate on the "intro" field.
func IntroGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldIntro, v))
}

// IntroGTE applies the GTE predicate on the "intro" field.
func IntroGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldIntro, v))
}

// IntroLT applies the LT predicate on the "intro" field.
func IntroLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldIntro, v))
}

// IntroLTE applies the LTE predicate on the "intro" field.
func IntroLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldIntro, v))
}

// IntroContains applies the Contains predicate on the "intro" field.
func IntroContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldIntro, v))
}

// IntroHasPrefix applies the HasPrefix predicate on the "intro" field.
func IntroHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldIntro, v))
}

// IntroHasSuffix applies the HasSuffix predicate on the "intro" field.
func IntroHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldIntro, v))
}

// IntroIsNil applies the IsNil predicate on the "intro" field.
func IntroIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldIntro))
}

// IntroNotNil applies the NotNil predicate on the "intro" field.
func IntroNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldIntro))
}

// IntroEqualFold applies the EqualFold predicate on the "intro" field.
func IntroEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldIntro, v))
}

// IntroContainsFold applies the ContainsFold predicate on the "intro" field.
func IntroContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldIntro, v))
}

// BiographyEQ applies the EQ predicate on the "biography" field.
func BiographyEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldBiography, v))
}

// BiographyNEQ applies the NEQ predicate on the "biography" field.
func BiographyNEQ(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldBiography, v))
}

// BiographyIn applies the In predicate on the "biography" field.
func BiographyIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldBiography, vs...))
}

// BiographyNotIn applies the NotIn predicate on the "biography" field.
func BiographyNotIn(vs ...string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldBiography, vs...))
}

// BiographyGT applies the GT predicate on the "biography" field.
func BiographyGT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGT(FieldBiography, v))
}

// BiographyGTE applies the GTE predicate on the "biography" field.
func BiographyGTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldGTE(FieldBiography, v))
}

// BiographyLT applies the LT predicate on the "biography" field.
func BiographyLT(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLT(FieldBiography, v))
}

// BiographyLTE applies the LTE predicate on the "biography" field.
func BiographyLTE(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldLTE(FieldBiography, v))
}

// BiographyContains applies the Contains predicate on the "biography" field.
func BiographyContains(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContains(FieldBiography, v))
}

// BiographyHasPrefix applies the HasPrefix predicate on the "biography" field.
func BiographyHasPrefix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasPrefix(FieldBiography, v))
}

// BiographyHasSuffix applies the HasSuffix predicate on the "biography" field.
func BiographyHasSuffix(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldHasSuffix(FieldBiography, v))
}

// BiographyIsNil applies the IsNil predicate on the "biography" field.
func BiographyIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldBiography))
}

// BiographyNotNil applies the NotNil predicate on the "biography" field.
func BiographyNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldBiography))
}

// BiographyEqualFold applies the EqualFold predicate on the "biography" field.
func BiographyEqualFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEqualFold(FieldBiography, v))
}

// BiographyContainsFold applies the ContainsFold predicate on the "biography" field.
func BiographyContainsFold(v string) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldContainsFold(FieldBiography, v))
}

// ImageIDEQ applies the EQ predicate on the "image_id" field.
func ImageIDEQ(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldImageID, v))
}

// ImageIDNEQ applies the NEQ predicate on the "image_id" field.
func ImageIDNEQ(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldImageID, v))
}

// ImageIDIn applies the In predicate on the "image_id" field.
func ImageIDIn(vs ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldImageID, vs...))
}

// ImageIDNotIn applies the NotIn predicate on the "image_id" field.
func ImageIDNotIn(vs ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldImageID, vs...))
}

// ImageIDIsNil applies the IsNil predicate on the "image_id" field.
func ImageIDIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldImageID))
}

// ImageIDNotNil applies the NotNil predicate on the "image_id" field.
func ImageIDNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldImageID))
}

// FeedImageIDEQ applies the EQ predicate on the "feed_image_id" field.
func FeedImageIDEQ(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldEQ(FieldFeedImageID, v))
}

// FeedImageIDNEQ applies the NEQ predicate on the "feed_image_id" field.
func FeedImageIDNEQ(v uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNEQ(FieldFeedImageID, v))
}

// FeedImageIDIn applies the In predicate on the "feed_image_id" field.
func FeedImageIDIn(vs ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIn(FieldFeedImageID, vs...))
}

// FeedImageIDNotIn applies the NotIn predicate on the "feed_image_id" field.
func FeedImageIDNotIn(vs ...uuid.UUID) predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotIn(FieldFeedImageID, vs...))
}

// FeedImageIDIsNil applies the IsNil predicate on the "feed_image_id" field.
func FeedImageIDIsNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldIsNull(FieldFeedImageID))
}

// FeedImageIDNotNil applies the NotNil predicate on the "feed_image_id" field.
func FeedImageIDNotNil() predicate.PersonPage {
	return predicate.PersonPage(sql.FieldNotNull(FieldFeedImageID))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.Node) predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImage applies the HasEdge predicate on the "image" edge.
func HasImage() predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ImageTable, ImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImageWith applies the HasEdge predicate on the "image" edge with a given conditions (other predicates).
func HasImageWith(preds ...predicate.Image) predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := newImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedImage applies the HasEdge predicate on the "feed_image" edge.
func HasFeedImage() predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, FeedImageTable, FeedImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedImageWith applies the HasEdge predicate on the "feed_image" edge with a given conditions (other predicates).
func HasFeedImageWith(preds ...predicate.Image) predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := newFeedImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRelatedLinks applies the HasEdge predicate on the "related_links" edge.
func HasRelatedLinks() predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RelatedLinksTable, RelatedLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRelatedLinksWith applies the HasEdge predicate on the "related_links" edge with a given conditions (other predicates).
func HasRelatedLinksWith(preds ...predicate.RelatedLink) predicate.PersonPage {
	return predicate.PersonPage(func(s *sql.Selector) {
		step := newRelatedLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PersonPage) predicate.PersonPage {
	return predicate.PersonPage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PersonPage) predicate.PersonPage {
	return predicate.PersonPage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PersonPage) predicate.PersonPage {
	return predicate.PersonPage(sql.NotPredicates(p))
}
