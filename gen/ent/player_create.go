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
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
)

// PlayerCreate is the builder for creating a Player entity.
type PlayerCreate struct {
	config
	mutation *PlayerMutation
	hooks    []Hook
}

// SetSchoolID sets the "school_id" field.
func (_c *PlayerCreate) SetSchoolID(v uuid.UUID) *PlayerCreate {
	_c.mutation.SetSchoolID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PlayerCreate) SetFirstName(v string) *PlayerCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PlayerCreate) SetLastName(v string) *PlayerCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetJerseyNumber sets the "jersey_number" field.
func (_c *PlayerCreate) SetJerseyNumber(v string) *PlayerCreate {
	_c.mutation.SetJerseyNumber(v)
	return _c
}

// SetNillableJerseyNumber sets the "jersey_number" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableJerseyNumber(v *string) *PlayerCreate {
	if v != nil {
		_c.SetJerseyNumber(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *PlayerCreate) SetPosition(v string) *PlayerCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *PlayerCreate) SetNillablePosition(v *string) *PlayerCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *PlayerCreate) SetGrade(v string) *PlayerCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableGrade(v *string) *PlayerCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetHeightFeet sets the "height_feet" field.
func (_c *PlayerCreate) SetHeightFeet(v int) *PlayerCreate {
	_c.mutation.SetHeightFeet(v)
	return _c
}

// SetNillableHeightFeet sets the "height_feet" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableHeightFeet(v *int) *PlayerCreate {
	if v != nil {
		_c.SetHeightFeet(*v)
	}
	return _c
}

// SetHeightInches sets the "height_inches" field.
func (_c *PlayerCreate) SetHeightInches(v int) *PlayerCreate {
	_c.mutation.SetHeightInches(v)
	return _c
}

// SetNillableHeightInches sets the "height_inches" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableHeightInches(v *int) *PlayerCreate {
	if v != nil {
		_c.SetHeightInches(*v)
	}
	return _c
}

// SetWeight sets the "weight" field.
func (_c *PlayerCreate) SetWeight(v int) *PlayerCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableWeight(v *int) *PlayerCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetSport sets the "sport" field.
func (_c *PlayerCreate) SetSport(v string) *PlayerCreate {
	_c.mutation.SetSport(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *PlayerCreate) SetGender(v string) *PlayerCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetSeason sets the "season" field.
func (_c *PlayerCreate) SetSeason(v string) *PlayerCreate {
	_c.mutation.SetSeason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlayerCreate) SetCreatedAt(v time.Time) *PlayerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableCreatedAt(v *time.Time) *PlayerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlayerCreate) SetUpdatedAt(v time.Time) *PlayerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableUpdatedAt(v *time.Time) *PlayerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlayerCreate) SetID(v uuid.UUID) *PlayerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PlayerCreate) SetNillableID(v *uuid.UUID) *PlayerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSchool sets the "school" edge to the School entity.
func (_c *PlayerCreate) SetSchool(v *School) *PlayerCreate {
	return _c.SetSchoolID(v.ID)
}

// Mutation returns the PlayerMutation object of the builder.
func (_c *PlayerCreate) Mutation() *PlayerMutation {
	return _c.mutation
}

// Save creates the Player in the database.
func (_c *PlayerCreate) Save(ctx context.Context) (*Player, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlayerCreate) SaveX(ctx context.Context) *Player {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlayerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := player.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := player.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := player.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlayerCreate) check() error {
	if _, ok := _c.mutation.SchoolID(); !ok {
		return &ValidationError{Name: "school_id", err: errors.New(`ent: missing required field "Player.school_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Player.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := player.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Player.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "Player.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := player.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Player.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sport(); !ok {
		return &ValidationError{Name: "sport", err: errors.New(`ent: missing required field "Player.sport"`)}
	}
	if v, ok := _c.mutation.Sport(); ok {
		if err := player.SportValidator(v); err != nil {
			return &ValidationError{Name: "sport", err: fmt.Errorf(`ent: validator failed for field "Player.sport": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Player.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := player.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Player.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Season(); !ok {
		return &ValidationError{Name: "season", err: errors.New(`ent: missing required field "Player.season"`)}
	}
	if v, ok := _c.mutation.Season(); ok {
		if err := player.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Player.season": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Player.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Player.updated_at"`)}
	}
	if len(_c.mutation.SchoolIDs()) == 0 {
		return &ValidationError{Name: "school", err: errors.New(`ent: missing required edge "Player.school"`)}
	}
	return nil
}

func (_c *PlayerCreate) sqlSave(ctx context.Context) (*Player, error) {
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

func (_c *PlayerCreate) createSpec() (*Player, *sqlgraph.CreateSpec) {
	var (
		_node = &Player{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(player.Table, sqlgraph.NewFieldSpec(player.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(player.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(player.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.JerseyNumber(); ok {
		_spec.SetField(player.FieldJerseyNumber, field.TypeString, value)
		_node.JerseyNumber = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(player.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(player.FieldGrade, field.TypeString, value)
		_node.Grade = &value
	}
	if value, ok := _c.mutation.HeightFeet(); ok {
		_spec.SetField(player.FieldHeightFeet, field.TypeInt, value)
		_node.HeightFeet = &value
	}
	if value, ok := _c.mutation.HeightInches(); ok {
		_spec.SetField(player.FieldHeightInches, field.TypeInt, value)
		_node.HeightInches = &value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(player.FieldWeight, field.TypeInt, value)
		_node.Weight = &value
	}
	if value, ok := _c.mutation.Sport(); ok {
		_spec.SetField(player.FieldSport, field.TypeString, value)
		_node.Sport = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(player.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Season(); ok {
		_spec.SetField(player.FieldSeason, field.TypeString, value)
		_node.Season = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(player.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(player.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   player.SchoolTable,
			Columns: []string{player.SchoolColumn},
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

// PlayerCreateBulk is the builder for creating many Player entities in bulk.
type PlayerCreateBulk struct {
	config
	err      error
	builders []*PlayerCreate
}

// Save creates the Player entities in the database.
func (_c *PlayerCreateBulk) Save(ctx context.Context) ([]*Player, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Player, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlayerMutation)
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
func (_c *PlayerCreateBulk) SaveX(ctx context.Context) []*Player {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
