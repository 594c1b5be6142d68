// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/portaria-digital/concierge/gen/ent/predicate"
	"github.com/portaria-digital/concierge/gen/ent/visit"
	"github.com/portaria-digital/concierge/gen/ent/visitor"
)

// VisitUpdate is the builder for updating Visit entities.
type VisitUpdate struct {
	config
	hooks    []Hook
	mutation *VisitMutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdate) Where(ps ...predicate.Visit) *VisitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVisitorID sets the "visitor_id" field.
func (_u *VisitUpdate) SetVisitorID(v uuid.UUID) *VisitUpdate {
	_u.mutation.SetVisitorID(v)
	return _u
}

// SetNillableVisitorID sets the "visitor_id" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitorID(v *uuid.UUID) *VisitUpdate {
	if v != nil {
		_u.SetVisitorID(*v)
	}
	return _u
}

// SetEntryAt sets the "entry_at" field.
func (_u *VisitUpdate) SetEntryAt(v time.Time) *VisitUpdate {
	_u.mutation.SetEntryAt(v)
	return _u
}

// SetNillableEntryAt sets the "entry_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableEntryAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetEntryAt(*v)
	}
	return _u
}

// SetExitAt sets the "exit_at" field.
func (_u *VisitUpdate) SetExitAt(v time.Time) *VisitUpdate {
	_u.mutation.SetExitAt(v)
	return _u
}

// SetNillableExitAt sets the "exit_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableExitAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetExitAt(*v)
	}
	return _u
}

// ClearExitAt clears the value of the "exit_at" field.
func (_u *VisitUpdate) ClearExitAt() *VisitUpdate {
	_u.mutation.ClearExitAt()
	return _u
}

// SetMethod sets the "method" field.
func (_u *VisitUpdate) SetMethod(v string) *VisitUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableMethod(v *string) *VisitUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VisitUpdate) SetConfidence(v float32) *VisitUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableConfidence(v *float32) *VisitUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VisitUpdate) AddConfidence(v float32) *VisitUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *VisitUpdate) ClearConfidence() *VisitUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VisitUpdate) SetNotes(v string) *VisitUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableNotes(v *string) *VisitUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VisitUpdate) ClearNotes() *VisitUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VisitUpdate) SetCreatedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableCreatedAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVisitor sets the "visitor" edge to the Visitor entity.
func (_u *VisitUpdate) SetVisitor(v *Visitor) *VisitUpdate {
	return _u.SetVisitorID(v.ID)
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdate) Mutation() *VisitMutation {
	return _u.mutation
}

// ClearVisitor clears the "visitor" edge to the Visitor entity.
func (_u *VisitUpdate) ClearVisitor() *VisitUpdate {
	_u.mutation.ClearVisitor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := visit.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Visit.method": %w`, err)}
		}
	}
	if _u.mutation.VisitorCleared() && len(_u.mutation.VisitorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visit.visitor"`)
	}
	return nil
}

func (_u *VisitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryAt(); ok {
		_spec.SetField(visit.FieldEntryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExitAt(); ok {
		_spec.SetField(visit.FieldExitAt, field.TypeTime, value)
	}
	if _u.mutation.ExitAtCleared() {
		_spec.ClearField(visit.FieldExitAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(visit.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(visit.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(visit.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(visit.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(visit.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(visit.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(visit.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VisitorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.VisitorTable,
			Columns: []string{visit.VisitorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.VisitorTable,
			Columns: []string{visit.VisitorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitUpdateOne is the builder for updating a single Visit entity.
type VisitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitMutation
}

// SetVisitorID sets the "visitor_id" field.
func (_u *VisitUpdateOne) SetVisitorID(v uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetVisitorID(v)
	return _u
}

// SetNillableVisitorID sets the "visitor_id" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitorID(v *uuid.UUID) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitorID(*v)
	}
	return _u
}

// SetEntryAt sets the "entry_at" field.
func (_u *VisitUpdateOne) SetEntryAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetEntryAt(v)
	return _u
}

// SetNillableEntryAt sets the "entry_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableEntryAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetEntryAt(*v)
	}
	return _u
}

// SetExitAt sets the "exit_at" field.
func (_u *VisitUpdateOne) SetExitAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetExitAt(v)
	return _u
}

// SetNillableExitAt sets the "exit_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableExitAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetExitAt(*v)
	}
	return _u
}

// ClearExitAt clears the value of the "exit_at" field.
func (_u *VisitUpdateOne) ClearExitAt() *VisitUpdateOne {
	_u.mutation.ClearExitAt()
	return _u
}

// SetMethod sets the "method" field.
func (_u *VisitUpdateOne) SetMethod(v string) *VisitUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableMethod(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VisitUpdateOne) SetConfidence(v float32) *VisitUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableConfidence(v *float32) *VisitUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VisitUpdateOne) AddConfidence(v float32) *VisitUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *VisitUpdateOne) ClearConfidence() *VisitUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VisitUpdateOne) SetNotes(v string) *VisitUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableNotes(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VisitUpdateOne) ClearNotes() *VisitUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VisitUpdateOne) SetCreatedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableCreatedAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetVisitor sets the "visitor" edge to the Visitor entity.
func (_u *VisitUpdateOne) SetVisitor(v *Visitor) *VisitUpdateOne {
	return _u.SetVisitorID(v.ID)
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdateOne) Mutation() *VisitMutation {
	return _u.mutation
}

// ClearVisitor clears the "visitor" edge to the Visitor entity.
func (_u *VisitUpdateOne) ClearVisitor() *VisitUpdateOne {
	_u.mutation.ClearVisitor()
	return _u
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdateOne) Where(ps ...predicate.Visit) *VisitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitUpdateOne) Select(field string, fields ...string) *VisitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visit entity.
func (_u *VisitUpdateOne) Save(ctx context.Context) (*Visit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdateOne) SaveX(ctx context.Context) *Visit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := visit.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Visit.method": %w`, err)}
		}
	}
	if _u.mutation.VisitorCleared() && len(_u.mutation.VisitorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visit.visitor"`)
	}
	return nil
}

func (_u *VisitUpdateOne) sqlSave(ctx context.Context) (_node *Visit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Visit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visit.FieldID)
		for _, f := range fields {
			if !visit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryAt(); ok {
		_spec.SetField(visit.FieldEntryAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExitAt(); ok {
		_spec.SetField(visit.FieldExitAt, field.TypeTime, value)
	}
	if _u.mutation.ExitAtCleared() {
		_spec.ClearField(visit.FieldExitAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(visit.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(visit.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(visit.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(visit.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(visit.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(visit.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(visit.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.VisitorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.VisitorTable,
			Columns: []string{visit.VisitorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.VisitorTable,
			Columns: []string{visit.VisitorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Visit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
