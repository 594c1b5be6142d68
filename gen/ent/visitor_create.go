// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/portaria-digital/concierge/gen/ent/scanjob"
	"github.com/portaria-digital/concierge/gen/ent/visit"
	"github.com/portaria-digital/concierge/gen/ent/visitor"
)

// VisitorCreate is the builder for creating a Visitor entity.
type VisitorCreate struct {
	config
	mutation *VisitorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *VisitorCreate) SetName(v string) *VisitorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTaxID sets the "tax_id" field.
func (_c *VisitorCreate) SetTaxID(v string) *VisitorCreate {
	_c.mutation.SetTaxID(v)
	return _c
}

// SetNillableTaxID sets the "tax_id" field if the given value is not nil.
func (_c *VisitorCreate) SetNillableTaxID(v *string) *VisitorCreate {
	if v != nil {
		_c.SetTaxID(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *VisitorCreate) SetBirthDate(v string) *VisitorCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *VisitorCreate) SetNillableBirthDate(v *string) *VisitorCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetPhotoPath sets the "photo_path" field.
func (_c *VisitorCreate) SetPhotoPath(v string) *VisitorCreate {
	_c.mutation.SetPhotoPath(v)
	return _c
}

// SetNillablePhotoPath sets the "photo_path" field if the given value is not nil.
func (_c *VisitorCreate) SetNillablePhotoPath(v *string) *VisitorCreate {
	if v != nil {
		_c.SetPhotoPath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VisitorCreate) SetCreatedAt(v time.Time) *VisitorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VisitorCreate) SetNillableCreatedAt(v *time.Time) *VisitorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VisitorCreate) SetUpdatedAt(v time.Time) *VisitorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VisitorCreate) SetNillableUpdatedAt(v *time.Time) *VisitorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VisitorCreate) SetID(v uuid.UUID) *VisitorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VisitorCreate) SetNillableID(v *uuid.UUID) *VisitorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_c *VisitorCreate) AddVisitIDs(ids ...uuid.UUID) *VisitorCreate {
	_c.mutation.AddVisitIDs(ids...)
	return _c
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_c *VisitorCreate) AddVisits(v ...*Visit) *VisitorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVisitIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by IDs.
func (_c *VisitorCreate) AddJobIDs(ids ...uuid.UUID) *VisitorCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ScanJob entity.
func (_c *VisitorCreate) AddJobs(v ...*ScanJob) *VisitorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the VisitorMutation object of the builder.
func (_c *VisitorCreate) Mutation() *VisitorMutation {
	return _c.mutation
}

// Save creates the Visitor in the database.
func (_c *VisitorCreate) Save(ctx context.Context) (*Visitor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitorCreate) SaveX(ctx context.Context) *Visitor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := visitor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := visitor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := visitor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Visitor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := visitor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Visitor.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TaxID(); ok {
		if err := visitor.TaxIDValidator(v); err != nil {
			return &ValidationError{Name: "tax_id", err: fmt.Errorf(`ent: validator failed for field "Visitor.tax_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BirthDate(); ok {
		if err := visitor.BirthDateValidator(v); err != nil {
			return &ValidationError{Name: "birth_date", err: fmt.Errorf(`ent: validator failed for field "Visitor.birth_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Visitor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Visitor.updated_at"`)}
	}
	return nil
}

func (_c *VisitorCreate) sqlSave(ctx context.Context) (*Visitor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VisitorCreate) createSpec() (*Visitor, *sqlgraph.CreateSpec) {
	var (
		_node = &Visitor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visitor.Table, sqlgraph.NewFieldSpec(visitor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(visitor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TaxID(); ok {
		_spec.SetField(visitor.FieldTaxID, field.TypeString, value)
		_node.TaxID = &value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(visitor.FieldBirthDate, field.TypeString, value)
		_node.BirthDate = &value
	}
	if value, ok := _c.mutation.PhotoPath(); ok {
		_spec.SetField(visitor.FieldPhotoPath, field.TypeString, value)
		_node.PhotoPath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(visitor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(visitor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VisitsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VisitorCreateBulk is the builder for creating many Visitor entities in bulk.
type VisitorCreateBulk struct {
	config
	err      error
	builders []*VisitorCreate
}

// Save creates the Visitor entities in the database.
func (_c *VisitorCreateBulk) Save(ctx context.Context) ([]*Visitor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Visitor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VisitorCreateBulk) SaveX(ctx context.Context) []*Visitor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
