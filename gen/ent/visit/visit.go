// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the visit type in the database.
	Label = "visit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVisitorID holds the string denoting the visitor_id field in the database.
	FieldVisitorID = "visitor_id"
	// FieldEntryAt holds the string denoting the entry_at field in the database.
	FieldEntryAt = "entry_at"
	// FieldExitAt holds the string denoting the exit_at field in the database.
	FieldExitAt = "exit_at"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVisitor holds the string denoting the visitor edge name in mutations.
	EdgeVisitor = "visitor"
	// Table holds the table name of the visit in the database.
	Table = "visits"
	// VisitorTable is the table that holds the visitor relation/edge.
	VisitorTable = "visits"
	// VisitorInverseTable is the table name for the Visitor entity.
	// It exists in this package in order to avoid circular dependency with the "visitor" package.
	VisitorInverseTable = "visitors"
	// VisitorColumn is the table column denoting the visitor relation/edge.
	VisitorColumn = "visitor_id"
)

// Columns holds all SQL columns for visit fields.
var Columns = []string{
	FieldID,
	FieldVisitorID,
	FieldEntryAt,
	FieldExitAt,
	FieldMethod,
	FieldConfidence,
	FieldNotes,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEntryAt holds the default value on creation for the "entry_at" field.
	DefaultEntryAt func() time.Time
	// MethodValidator is a validator for the "method" field. It is called by the builders before save.
	MethodValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Visit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVisitorID orders the results by the visitor_id field.
func ByVisitorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorID, opts...).ToFunc()
}

// ByEntryAt orders the results by the entry_at field.
func ByEntryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryAt, opts...).ToFunc()
}

// ByExitAt orders the results by the exit_at field.
func ByExitAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitAt, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVisitorField orders the results by visitor field.
func ByVisitorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVisitorStep(), sql.OrderByField(field, opts...))
	}
}
func newVisitorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VisitorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VisitorTable, VisitorColumn),
	)
}
