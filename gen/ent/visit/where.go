// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/portaria-digital/concierge/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldID, id))
}

// VisitorID applies equality check predicate on the "visitor_id" field. It's identical to VisitorIDEQ.
func VisitorID(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitorID, v))
}

// EntryAt applies equality check predicate on the "entry_at" field. It's identical to EntryAtEQ.
func EntryAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldEntryAt, v))
}

// ExitAt applies equality check predicate on the "exit_at" field. It's identical to ExitAtEQ.
func ExitAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldExitAt, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldMethod, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldConfidence, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// VisitorIDEQ applies the EQ predicate on the "visitor_id" field.
func VisitorIDEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitorID, v))
}

// VisitorIDNEQ applies the NEQ predicate on the "visitor_id" field.
func VisitorIDNEQ(v uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitorID, v))
}

// VisitorIDIn applies the In predicate on the "visitor_id" field.
func VisitorIDIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitorID, vs...))
}

// VisitorIDNotIn applies the NotIn predicate on the "visitor_id" field.
func VisitorIDNotIn(vs ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitorID, vs...))
}

// EntryAtEQ applies the EQ predicate on the "entry_at" field.
func EntryAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldEntryAt, v))
}

// EntryAtNEQ applies the NEQ predicate on the "entry_at" field.
func EntryAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldEntryAt, v))
}

// EntryAtIn applies the In predicate on the "entry_at" field.
func EntryAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldEntryAt, vs...))
}

// EntryAtNotIn applies the NotIn predicate on the "entry_at" field.
func EntryAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldEntryAt, vs...))
}

// EntryAtGT applies the GT predicate on the "entry_at" field.
func EntryAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldEntryAt, v))
}

// EntryAtGTE applies the GTE predicate on the "entry_at" field.
func EntryAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldEntryAt, v))
}

// EntryAtLT applies the LT predicate on the "entry_at" field.
func EntryAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldEntryAt, v))
}

// EntryAtLTE applies the LTE predicate on the "entry_at" field.
func EntryAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldEntryAt, v))
}

// ExitAtEQ applies the EQ predicate on the "exit_at" field.
func ExitAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldExitAt, v))
}

// ExitAtNEQ applies the NEQ predicate on the "exit_at" field.
func ExitAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldExitAt, v))
}

// ExitAtIn applies the In predicate on the "exit_at" field.
func ExitAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldExitAt, vs...))
}

// ExitAtNotIn applies the NotIn predicate on the "exit_at" field.
func ExitAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldExitAt, vs...))
}

// ExitAtGT applies the GT predicate on the "exit_at" field.
func ExitAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldExitAt, v))
}

// ExitAtGTE applies the GTE predicate on the "exit_at" field.
func ExitAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldExitAt, v))
}

// ExitAtLT applies the LT predicate on the "exit_at" field.
func ExitAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldExitAt, v))
}

// ExitAtLTE applies the LTE predicate on the "exit_at" field.
func ExitAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldExitAt, v))
}

// ExitAtIsNil applies the IsNil predicate on the "exit_at" field.
func ExitAtIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldExitAt))
}

// ExitAtNotNil applies the NotNil predicate on the "exit_at" field.
func ExitAtNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldExitAt))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldMethod, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldConfidence))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVisitor applies the HasEdge predicate on the "visitor" edge.
func HasVisitor() predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VisitorTable, VisitorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitorWith applies the HasEdge predicate on the "visitor" edge with a given conditions (other predicates).
func HasVisitorWith(preds ...predicate.Visitor) predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := newVisitorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.NotPredicates(p))
}
