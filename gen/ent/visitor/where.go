// Code generated by ent, DO NOT EDIT.

package visitor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/portaria-digital/concierge/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldName, v))
}

// TaxID applies equality check predicate on the "tax_id" field. It's identical to TaxIDEQ.
func TaxID(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldTaxID, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldBirthDate, v))
}

// PhotoPath applies equality check predicate on the "photo_path" field. It's identical to PhotoPathEQ.
func PhotoPath(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldPhotoPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContainsFold(FieldName, v))
}

// TaxIDEQ applies the EQ predicate on the "tax_id" field.
func TaxIDEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldTaxID, v))
}

// TaxIDNEQ applies the NEQ predicate on the "tax_id" field.
func TaxIDNEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldTaxID, v))
}

// TaxIDIn applies the In predicate on the "tax_id" field.
func TaxIDIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldTaxID, vs...))
}

// TaxIDNotIn applies the NotIn predicate on the "tax_id" field.
func TaxIDNotIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldTaxID, vs...))
}

// TaxIDGT applies the GT predicate on the "tax_id" field.
func TaxIDGT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldTaxID, v))
}

// TaxIDGTE applies the GTE predicate on the "tax_id" field.
func TaxIDGTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldTaxID, v))
}

// TaxIDLT applies the LT predicate on the "tax_id" field.
func TaxIDLT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldTaxID, v))
}

// TaxIDLTE applies the LTE predicate on the "tax_id" field.
func TaxIDLTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldTaxID, v))
}

// TaxIDContains applies the Contains predicate on the "tax_id" field.
func TaxIDContains(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContains(FieldTaxID, v))
}

// TaxIDHasPrefix applies the HasPrefix predicate on the "tax_id" field.
func TaxIDHasPrefix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasPrefix(FieldTaxID, v))
}

// TaxIDHasSuffix applies the HasSuffix predicate on the "tax_id" field.
func TaxIDHasSuffix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasSuffix(FieldTaxID, v))
}

// TaxIDIsNil applies the IsNil predicate on the "tax_id" field.
func TaxIDIsNil() predicate.Visitor {
	return predicate.Visitor(sql.FieldIsNull(FieldTaxID))
}

// TaxIDNotNil applies the NotNil predicate on the "tax_id" field.
func TaxIDNotNil() predicate.Visitor {
	return predicate.Visitor(sql.FieldNotNull(FieldTaxID))
}

// TaxIDEqualFold applies the EqualFold predicate on the "tax_id" field.
func TaxIDEqualFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEqualFold(FieldTaxID, v))
}

// TaxIDContainsFold applies the ContainsFold predicate on the "tax_id" field.
func TaxIDContainsFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContainsFold(FieldTaxID, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateContains applies the Contains predicate on the "birth_date" field.
func BirthDateContains(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContains(FieldBirthDate, v))
}

// BirthDateHasPrefix applies the HasPrefix predicate on the "birth_date" field.
func BirthDateHasPrefix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasPrefix(FieldBirthDate, v))
}

// BirthDateHasSuffix applies the HasSuffix predicate on the "birth_date" field.
func BirthDateHasSuffix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasSuffix(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.Visitor {
	return predicate.Visitor(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.Visitor {
	return predicate.Visitor(sql.FieldNotNull(FieldBirthDate))
}

// BirthDateEqualFold applies the EqualFold predicate on the "birth_date" field.
func BirthDateEqualFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEqualFold(FieldBirthDate, v))
}

// BirthDateContainsFold applies the ContainsFold predicate on the "birth_date" field.
func BirthDateContainsFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContainsFold(FieldBirthDate, v))
}

// PhotoPathEQ applies the EQ predicate on the "photo_path" field.
func PhotoPathEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldPhotoPath, v))
}

// PhotoPathNEQ applies the NEQ predicate on the "photo_path" field.
func PhotoPathNEQ(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldPhotoPath, v))
}

// PhotoPathIn applies the In predicate on the "photo_path" field.
func PhotoPathIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldPhotoPath, vs...))
}

// PhotoPathNotIn applies the NotIn predicate on the "photo_path" field.
func PhotoPathNotIn(vs ...string) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldPhotoPath, vs...))
}

// PhotoPathGT applies the GT predicate on the "photo_path" field.
func PhotoPathGT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldPhotoPath, v))
}

// PhotoPathGTE applies the GTE predicate on the "photo_path" field.
func PhotoPathGTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldPhotoPath, v))
}

// PhotoPathLT applies the LT predicate on the "photo_path" field.
func PhotoPathLT(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldPhotoPath, v))
}

// PhotoPathLTE applies the LTE predicate on the "photo_path" field.
func PhotoPathLTE(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldPhotoPath, v))
}

// PhotoPathContains applies the Contains predicate on the "photo_path" field.
func PhotoPathContains(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContains(FieldPhotoPath, v))
}

// PhotoPathHasPrefix applies the HasPrefix predicate on the "photo_path" field.
func PhotoPathHasPrefix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasPrefix(FieldPhotoPath, v))
}

// PhotoPathHasSuffix applies the HasSuffix predicate on the "photo_path" field.
func PhotoPathHasSuffix(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldHasSuffix(FieldPhotoPath, v))
}

// PhotoPathIsNil applies the IsNil predicate on the "photo_path" field.
func PhotoPathIsNil() predicate.Visitor {
	return predicate.Visitor(sql.FieldIsNull(FieldPhotoPath))
}

// PhotoPathNotNil applies the NotNil predicate on the "photo_path" field.
func PhotoPathNotNil() predicate.Visitor {
	return predicate.Visitor(sql.FieldNotNull(FieldPhotoPath))
}

// PhotoPathEqualFold applies the EqualFold predicate on the "photo_path" field.
func PhotoPathEqualFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldEqualFold(FieldPhotoPath, v))
}

// PhotoPathContainsFold applies the ContainsFold predicate on the "photo_path" field.
func PhotoPathContainsFold(v string) predicate.Visitor {
	return predicate.Visitor(sql.FieldContainsFold(FieldPhotoPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Visitor {
	return predicate.Visitor(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVisits applies the HasEdge predicate on the "visits" edge.
func HasVisits() predicate.Visitor {
	return predicate.Visitor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VisitsTable, VisitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitsWith applies the HasEdge predicate on the "visits" edge with a given conditions (other predicates).
func HasVisitsWith(preds ...predicate.Visit) predicate.Visitor {
	return predicate.Visitor(func(s *sql.Selector) {
		step := newVisitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Visitor {
	return predicate.Visitor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ScanJob) predicate.Visitor {
	return predicate.Visitor(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Visitor) predicate.Visitor {
	return predicate.Visitor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Visitor) predicate.Visitor {
	return predicate.Visitor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Visitor) predicate.Visitor {
	return predicate.Visitor(sql.NotPredicates(p))
}
