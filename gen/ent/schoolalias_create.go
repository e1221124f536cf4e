// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// SchoolAliasCreate is the builder for creating a SchoolAlias entity.
type SchoolAliasCreate struct {
	config
	mutation *SchoolAliasMutation
	hooks    []Hook
}

// SetSchoolID sets the "school_id" field.
func (_c *SchoolAliasCreate) SetSchoolID(v uuid.UUID) *SchoolAliasCreate {
	_c.mutation.SetSchoolID(v)
	return _c
}

// SetAlias sets the "alias" field.
func (_c *SchoolAliasCreate) SetAlias(v string) *SchoolAliasCreate {
	_c.mutation.SetAlias(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SchoolAliasCreate) SetID(v uuid.UUID) *SchoolAliasCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SchoolAliasCreate) SetNillableID(v *uuid.UUID) *SchoolAliasCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSchool sets the "school" edge to the School entity.
func (_c *SchoolAliasCreate) SetSchool(v *School) *SchoolAliasCreate {
	return _c.SetSchoolID(v.ID)
}

// Mutation returns the SchoolAliasMutation object of the builder.
func (_c *SchoolAliasCreate) Mutation() *SchoolAliasMutation {
	return _c.mutation
}

// Save creates the SchoolAlias in the database.
func (_c *SchoolAliasCreate) Save(ctx context.Context) (*SchoolAlias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchoolAliasCreate) SaveX(ctx context.Context) *SchoolAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchoolAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchoolAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchoolAliasCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := schoolalias.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchoolAliasCreate) check() error {
	if _, ok := _c.mutation.SchoolID(); !ok {
		return &ValidationError{Name: "school_id", err: errors.New(`ent: missing required field "SchoolAlias.school_id"`)}
	}
	if _, ok := _c.mutation.Alias(); !ok {
		return &ValidationError{Name: "alias", err: errors.New(`ent: missing required field "SchoolAlias.alias"`)}
	}
	if v, ok := _c.mutation.Alias(); ok {
		if err := schoolalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "SchoolAlias.alias": %w`, err)}
		}
	}
	if len(_c.mutation.SchoolIDs()) == 0 {
		return &ValidationError{Name: "school", err: errors.New(`ent: missing required edge "SchoolAlias.school"`)}
	}
	return nil
}

func (_c *SchoolAliasCreate) sqlSave(ctx context.Context) (*SchoolAlias, error) {
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

func (_c *SchoolAliasCreate) createSpec() (*SchoolAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &SchoolAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schoolalias.Table, sqlgraph.NewFieldSpec(schoolalias.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Alias(); ok {
		_spec.SetField(schoolalias.FieldAlias, field.TypeString, value)
		_node.Alias = value
	}
	if nodes := _c.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schoolalias.SchoolTable,
			Columns: []string{schoolalias.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SchoolID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SchoolAliasCreateBulk is the builder for creating many SchoolAlias entities in bulk.
type SchoolAliasCreateBulk struct {
	config
	err      error
	builders []*SchoolAliasCreate
}

// Save creates the SchoolAlias entities in the database.
func (_c *SchoolAliasCreateBulk) Save(ctx context.Context) ([]*SchoolAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchoolAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchoolAliasMutation)
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
func (_c *SchoolAliasCreateBulk) SaveX(ctx context.Context) []*SchoolAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchoolAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchoolAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
