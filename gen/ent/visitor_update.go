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
	"github.com/portaria-digital/concierge/gen/ent/scanjob"
	"github.com/portaria-digital/concierge/gen/ent/visit"
	"github.com/portaria-digital/concierge/gen/ent/visitor"
)

// VisitorUpdate is the builder for updating Visitor entities.
type VisitorUpdate struct {
	config
	hooks    []Hook
	mutation *VisitorMutation
}

// Where appends a list predicates to the VisitorUpdate builder.
func (_u *VisitorUpdate) Where(ps ...predicate.Visitor) *VisitorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VisitorUpdate) SetName(v string) *VisitorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VisitorUpdate) SetNillableName(v *string) *VisitorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *VisitorUpdate) SetTaxID(v string) *VisitorUpdate {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *VisitorUpdate) SetNillableTaxID(v *string) *VisitorUpdate {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *VisitorUpdate) ClearTaxID() *VisitorUpdate {
	_u.mutation.ClearTaxID()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *VisitorUpdate) SetBirthDate(v string) *VisitorUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *VisitorUpdate) SetNillableBirthDate(v *string) *VisitorUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *VisitorUpdate) ClearBirthDate() *VisitorUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetPhotoPath sets the "photo_path" field.
func (_u *VisitorUpdate) SetPhotoPath(v string) *VisitorUpdate {
	_u.mutation.SetPhotoPath(v)
	return _u
}

// SetNillablePhotoPath sets the "photo_path" field if the given value is not nil.
func (_u *VisitorUpdate) SetNillablePhotoPath(v *string) *VisitorUpdate {
	if v != nil {
		_u.SetPhotoPath(*v)
	}
	return _u
}

// ClearPhotoPath clears the value of the "photo_path" field.
func (_u *VisitorUpdate) ClearPhotoPath() *VisitorUpdate {
	_u.mutation.ClearPhotoPath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VisitorUpdate) SetCreatedAt(v time.Time) *VisitorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VisitorUpdate) SetNillableCreatedAt(v *time.Time) *VisitorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitorUpdate) SetUpdatedAt(v time.Time) *VisitorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *VisitorUpdate) AddVisitIDs(ids ...uuid.UUID) *VisitorUpdate {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *VisitorUpdate) AddVisits(v ...*Visit) *VisitorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by IDs.
func (_u *VisitorUpdate) AddJobIDs(ids ...uuid.UUID) *VisitorUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ScanJob entity.
func (_u *VisitorUpdate) AddJobs(v ...*ScanJob) *VisitorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the VisitorMutation object of the builder.
func (_u *VisitorUpdate) Mutation() *VisitorMutation {
	return _u.mutation
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *VisitorUpdate) ClearVisits() *VisitorUpdate {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *VisitorUpdate) RemoveVisitIDs(ids ...uuid.UUID) *VisitorUpdate {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *VisitorUpdate) RemoveVisits(v ...*Visit) *VisitorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ScanJob entity.
func (_u *VisitorUpdate) ClearJobs() *VisitorUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ScanJob entities by IDs.
func (_u *VisitorUpdate) RemoveJobIDs(ids ...uuid.UUID) *VisitorUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ScanJob entities.
func (_u *VisitorUpdate) RemoveJobs(v ...*ScanJob) *VisitorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visitor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := visitor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Visitor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxID(); ok {
		if err := visitor.TaxIDValidator(v); err != nil {
			return &ValidationError{Name: "tax_id", err: fmt.Errorf(`ent: validator failed for field "Visitor.tax_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthDate(); ok {
		if err := visitor.BirthDateValidator(v); err != nil {
			return &ValidationError{Name: "birth_date", err: fmt.Errorf(`ent: validator failed for field "Visitor.birth_date": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visitor.Table, visitor.Columns, sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(visitor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(visitor.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(visitor.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(visitor.FieldBirthDate, field.TypeString, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(visitor.FieldBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoPath(); ok {
		_spec.SetField(visitor.FieldPhotoPath, field.TypeString, value)
	}
	if _u.mutation.PhotoPathCleared() {
		_spec.ClearField(visitor.FieldPhotoPath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(visitor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visitor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.VisitsTable,
			Columns: []string{visitor.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.VisitsTable,
			Columns: []string{visitor.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.VisitsTable,
			Columns: []string{visitor.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.JobsTable,
			Columns: []string{visitor.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.JobsTable,
			Columns: []string{visitor.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.JobsTable,
			Columns: []string{visitor.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitorUpdateOne is the builder for updating a single Visitor entity.
type VisitorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitorMutation
}

// SetName sets the "name" field.
func (_u *VisitorUpdateOne) SetName(v string) *VisitorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VisitorUpdateOne) SetNillableName(v *string) *VisitorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaxID sets the "tax_id" field.
func (_u *VisitorUpdateOne) SetTaxID(v string) *VisitorUpdateOne {
	_u.mutation.SetTaxID(v)
	return _u
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_u *VisitorUpdateOne) SetNillableTaxID(v *string) *VisitorUpdateOne {
	if v != nil {
		_u.SetTaxID(*v)
	}
	return _u
}

// ClearTaxID clears the value of the "tax_id" field.
func (_u *VisitorUpdateOne) ClearTaxID() *VisitorUpdateOne {
	_u.mutation.ClearTaxID()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *VisitorUpdateOne) SetBirthDate(v string) *VisitorUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *VisitorUpdateOne) SetNillableBirthDate(v *string) *VisitorUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *VisitorUpdateOne) ClearBirthDate() *VisitorUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetPhotoPath sets the "photo_path" field.
func (_u *VisitorUpdateOne) SetPhotoPath(v string) *VisitorUpdateOne {
	_u.mutation.SetPhotoPath(v)
	return _u
}

// SetNillablePhotoPath sets the "photo_path" field if the given value is not nil.
func (_u *VisitorUpdateOne) SetNillablePhotoPath(v *string) *VisitorUpdateOne {
	if v != nil {
		_u.SetPhotoPath(*v)
	}
	return _u
}

// ClearPhotoPath clears the value of the "photo_path" field.
func (_u *VisitorUpdateOne) ClearPhotoPath() *VisitorUpdateOne {
	_u.mutation.ClearPhotoPath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VisitorUpdateOne) SetCreatedAt(v time.Time) *VisitorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VisitorUpdateOne) SetNillableCreatedAt(v *time.Time) *VisitorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitorUpdateOne) SetUpdatedAt(v time.Time) *VisitorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *VisitorUpdateOne) AddVisitIDs(ids ...uuid.UUID) *VisitorUpdateOne {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *VisitorUpdateOne) AddVisits(v ...*Visit) *VisitorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by IDs.
func (_u *VisitorUpdateOne) AddJobIDs(ids ...uuid.UUID) *VisitorUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ScanJob entity.
func (_u *VisitorUpdateOne) AddJobs(v ...*ScanJob) *VisitorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the VisitorMutation object of the builder.
func (_u *VisitorUpdateOne) Mutation() *VisitorMutation {
	return _u.mutation
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *VisitorUpdateOne) ClearVisits() *VisitorUpdateOne {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *VisitorUpdateOne) RemoveVisitIDs(ids ...uuid.UUID) *VisitorUpdateOne {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *VisitorUpdateOne) RemoveVisits(v ...*Visit) *VisitorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ScanJob entity.
func (_u *VisitorUpdateOne) ClearJobs() *VisitorUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ScanJob entities by IDs.
func (_u *VisitorUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *VisitorUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ScanJob entities.
func (_u *VisitorUpdateOne) RemoveJobs(v ...*ScanJob) *VisitorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the VisitorUpdate builder.
func (_u *VisitorUpdateOne) Where(ps ...predicate.Visitor) *VisitorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitorUpdateOne) Select(field string, fields ...string) *VisitorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visitor entity.
func (_u *VisitorUpdateOne) Save(ctx context.Context) (*Visitor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitorUpdateOne) SaveX(ctx context.Context) *Visitor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visitor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := visitor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Visitor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxID(); ok {
		if err := visitor.TaxIDValidator(v); err != nil {
			return &ValidationError{Name: "tax_id", err: fmt.Errorf(`ent: validator failed for field "Visitor.tax_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthDate(); ok {
		if err := visitor.BirthDateValidator(v); err != nil {
			return &ValidationError{Name: "birth_date", err: fmt.Errorf(`ent: validator failed for field "Visitor.birth_date": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitorUpdateOne) sqlSave(ctx context.Context) (_node *Visitor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visitor.Table, visitor.Columns, sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Visitor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visitor.FieldID)
		for _, f := range fields {
			if !visitor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visitor.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(visitor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxID(); ok {
		_spec.SetField(visitor.FieldTaxID, field.TypeString, value)
	}
	if _u.mutation.TaxIDCleared() {
		_spec.ClearField(visitor.FieldTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(visitor.FieldBirthDate, field.TypeString, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(visitor.FieldBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoPath(); ok {
		_spec.SetField(visitor.FieldPhotoPath, field.TypeString, value)
	}
	if _u.mutation.PhotoPathCleared() {
		_spec.ClearField(visitor.FieldPhotoPath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(visitor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visitor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.VisitsTable,
			Columns: []string{visitor.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.VisitsTable,
			Columns: []string{visitor.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.VisitsTable,
			Columns: []string{visitor.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.JobsTable,
			Columns: []string{visitor.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.JobsTable,
			Columns: []string{visitor.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   visitor.JobsTable,
			Columns: []string{visitor.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Visitor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
