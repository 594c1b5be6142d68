// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/portaria-digital/concierge/gen/ent/visitor"
)

// Visitor is the model entity for the Visitor schema.
type Visitor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// TaxID holds the value of the "tax_id" field.
	TaxID *string `json:"tax_id,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate *string `json:"birth_date,omitempty"`
	// PhotoPath holds the value of the "photo_path" field.
	PhotoPath *string `json:"photo_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VisitorQuery when eager-loading is set.
	Edges        VisitorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VisitorEdges holds the relations/edges for other nodes in the graph.
type VisitorEdges struct {
	// Visits holds the value of the visits edge.
	Visits []*Visit `json:"visits,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ScanJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VisitsOrErr returns the Visits value or an error if the edge
// was not loaded in eager-loading.
func (e VisitorEdges) VisitsOrErr() ([]*Visit, error) {
	if e.loadedTypes[0] {
		return e.Visits, nil
	}
	return nil, &NotLoadedError{edge: "visits"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e VisitorEdges) JobsOrErr() ([]*ScanJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Visitor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case visitor.FieldName, visitor.FieldTaxID, visitor.FieldBirthDate, visitor.FieldPhotoPath:
			values[i] = new(sql.NullString)
		case visitor.FieldCreatedAt, visitor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case visitor.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Visitor fields.
func (_m *Visitor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case visitor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case visitor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case visitor.FieldTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_id", values[i])
			} else if value.Valid {
				_m.TaxID = new(string)
				*_m.TaxID = value.String
			}
		case visitor.FieldBirthDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(string)
				*_m.BirthDate = value.String
			}
		case visitor.FieldPhotoPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field photo_path", values[i])
			} else if value.Valid {
				_m.PhotoPath = new(string)
				*_m.PhotoPath = value.String
			}
		case visitor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case visitor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Visitor.
// This includes values selected through modifiers, order, etc.
func (_m *Visitor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVisits queries the "visits" edge of the Visitor entity.
func (_m *Visitor) QueryVisits() *VisitQuery {
	return NewVisitorClient(_m.config).QueryVisits(_m)
}

// QueryJobs queries the "jobs" edge of the Visitor entity.
func (_m *Visitor) QueryJobs() *ScanJobQuery {
	return NewVisitorClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Visitor.
// Note that you need to call Visitor.Unwrap() before calling this method if this Visitor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Visitor) Update() *VisitorUpdateOne {
	return NewVisitorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Visitor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Visitor) Unwrap() *Visitor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Visitor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Visitor) String() string {
	var builder strings.Builder
	builder.WriteString("Visitor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.TaxID; v != nil {
		builder.WriteString("tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhotoPath; v != nil {
		builder.WriteString("photo_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Visitors is a parsable slice of Visitor.
type Visitors []*Visitor
