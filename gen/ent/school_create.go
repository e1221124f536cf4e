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
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// SchoolCreate is the builder for creating a School entity.
type SchoolCreate struct {
	config
	mutation *SchoolMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *SchoolCreate) SetKey(v string) *SchoolCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SchoolCreate) SetName(v string) *SchoolCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *SchoolCreate) SetCity(v string) *SchoolCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *SchoolCreate) SetNillableCity(v *string) *SchoolCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *SchoolCreate) SetClassification(v string) *SchoolCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *SchoolCreate) SetNillableClassification(v *string) *SchoolCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetConference sets the "conference" field.
func (_c *SchoolCreate) SetConference(v string) *SchoolCreate {
	_c.mutation.SetConference(v)
	return _c
}

// SetNillableConference sets the "conference" field if the given value is not nil.
func (_c *SchoolCreate) SetNillableConference(v *string) *SchoolCreate {
	if v != nil {
		_c.SetConference(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchoolCreate) SetCreatedAt(v time.Time) *SchoolCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchoolCreate) SetNillableCreatedAt(v *time.Time) *SchoolCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SchoolCreate) SetUpdatedAt(v time.Time) *SchoolCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SchoolCreate) SetNillableUpdatedAt(v *time.Time) *SchoolCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchoolCreate) SetID(v uuid.UUID) *SchoolCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SchoolCreate) SetNillableID(v *uuid.UUID) *SchoolCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAliasIDs adds the "aliases" edge to the SchoolAlias entity by IDs.
func (_c *SchoolCreate) AddAliasIDs(ids ...uuid.UUID) *SchoolCreate {
	_c.mutation.AddAliasIDs(ids...)
	return _c
}

// AddAliases adds the "aliases" edges to the SchoolAlias entity.
func (_c *SchoolCreate) AddAliases(v ...*SchoolAlias) *SchoolCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAliasIDs(ids...)
}

// AddPlayerIDs adds the "players" edge to the Player entity by IDs.
func (_c *SchoolCreate) AddPlayerIDs(ids ...uuid.UUID) *SchoolCreate {
	_c.mutation.AddPlayerIDs(ids...)
	return _c
}

// AddPlayers adds the "players" edges to the Player entity.
func (_c *SchoolCreate) AddPlayers(v ...*Player) *SchoolCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlayerIDs(ids...)
}

// AddGameIDs adds the "games" edge to the Game entity by IDs.
func (_c *SchoolCreate) AddGameIDs(ids ...uuid.UUID) *SchoolCreate {
	_c.mutation.AddGameIDs(ids...)
	return _c
}

// AddGames adds the "games" edges to the Game entity.
func (_c *SchoolCreate) AddGames(v ...*Game) *SchoolCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGameIDs(ids...)
}

// Mutation returns the SchoolMutation object of the builder.
func (_c *SchoolCreate) Mutation() *SchoolMutation {
	return _c.mutation
}

// Save creates the School in the database.
func (_c *SchoolCreate) Save(ctx context.Context) (*School, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchoolCreate) SaveX(ctx context.Context) *School {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchoolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchoolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchoolCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := school.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := school.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := school.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchoolCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "School.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := school.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "School.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "School.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := school.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "School.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "School.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "School.updated_at"`)}
	}
	return nil
}

func (_c *SchoolCreate) sqlSave(ctx context.Context) (*School, error) {
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

func (_c *SchoolCreate) createSpec() (*School, *sqlgraph.CreateSpec) {
	var (
		_node = &School{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(school.Table, sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(school.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(school.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(school.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(school.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Conference(); ok {
		_spec.SetField(school.FieldConference, field.TypeString, value)
		_node.Conference = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(school.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(school.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AliasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.AliasesTable,
			Columns: []string{school.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schoolalias.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PlayersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.PlayersTable,
			Columns: []string{school.PlayersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(player.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GamesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   school.GamesTable,
			Columns: []string{school.GamesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(game.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SchoolCreateBulk is the builder for creating many School entities in bulk.
type SchoolCreateBulk struct {
	config
	err      error
	builders []*SchoolCreate
}

// Save creates the School entities in the database.
func (_c *SchoolCreateBulk) Save(ctx context.Context) ([]*School, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*School, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchoolMutation)
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
func (_c *SchoolCreateBulk) SaveX(ctx context.Context) []*School {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchoolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchoolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
