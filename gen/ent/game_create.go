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
	"github.com/prepsportshq/preps-extract/gen/ent/school"
)

// GameCreate is the builder for creating a Game entity.
type GameCreate struct {
	config
	mutation *GameMutation
	hooks    []Hook
}

// SetSchoolID sets the "school_id" field.
func (_c *GameCreate) SetSchoolID(v uuid.UUID) *GameCreate {
	_c.mutation.SetSchoolID(v)
	return _c
}

// SetSport sets the "sport" field.
func (_c *GameCreate) SetSport(v string) *GameCreate {
	_c.mutation.SetSport(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *GameCreate) SetGender(v string) *GameCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetSeason sets the "season" field.
func (_c *GameCreate) SetSeason(v string) *GameCreate {
	_c.mutation.SetSeason(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *GameCreate) SetDate(v time.Time) *GameCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetGameTime sets the "game_time" field.
func (_c *GameCreate) SetGameTime(v string) *GameCreate {
	_c.mutation.SetGameTime(v)
	return _c
}

// SetNillableGameTime sets the "game_time" field if the given value is not nil.
func (_c *GameCreate) SetNillableGameTime(v *string) *GameCreate {
	if v != nil {
		_c.SetGameTime(*v)
	}
	return _c
}

// SetOpponent sets the "opponent" field.
func (_c *GameCreate) SetOpponent(v string) *GameCreate {
	_c.mutation.SetOpponent(v)
	return _c
}

// SetOpponentCity sets the "opponent_city" field.
func (_c *GameCreate) SetOpponentCity(v string) *GameCreate {
	_c.mutation.SetOpponentCity(v)
	return _c
}

// SetNillableOpponentCity sets the "opponent_city" field if the given value is not nil.
func (_c *GameCreate) SetNillableOpponentCity(v *string) *GameCreate {
	if v != nil {
		_c.SetOpponentCity(*v)
	}
	return _c
}

// SetIsHome sets the "is_home" field.
func (_c *GameCreate) SetIsHome(v bool) *GameCreate {
	_c.mutation.SetIsHome(v)
	return _c
}

// SetNillableIsHome sets the "is_home" field if the given value is not nil.
func (_c *GameCreate) SetNillableIsHome(v *bool) *GameCreate {
	if v != nil {
		_c.SetIsHome(*v)
	}
	return _c
}

// SetIsConference sets the "is_conference" field.
func (_c *GameCreate) SetIsConference(v bool) *GameCreate {
	_c.mutation.SetIsConference(v)
	return _c
}

// SetNillableIsConference sets the "is_conference" field if the given value is not nil.
func (_c *GameCreate) SetNillableIsConference(v *bool) *GameCreate {
	if v != nil {
		_c.SetIsConference(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *GameCreate) SetLocation(v string) *GameCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *GameCreate) SetNillableLocation(v *string) *GameCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetHomeScore sets the "home_score" field.
func (_c *GameCreate) SetHomeScore(v int) *GameCreate {
	_c.mutation.SetHomeScore(v)
	return _c
}

// SetNillableHomeScore sets the "home_score" field if the given value is not nil.
func (_c *GameCreate) SetNillableHomeScore(v *int) *GameCreate {
	if v != nil {
		_c.SetHomeScore(*v)
	}
	return _c
}

// SetAwayScore sets the "away_score" field.
func (_c *GameCreate) SetAwayScore(v int) *GameCreate {
	_c.mutation.SetAwayScore(v)
	return _c
}

// SetNillableAwayScore sets the "away_score" field if the given value is not nil.
func (_c *GameCreate) SetNillableAwayScore(v *int) *GameCreate {
	if v != nil {
		_c.SetAwayScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GameCreate) SetCreatedAt(v time.Time) *GameCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GameCreate) SetNillableCreatedAt(v *time.Time) *GameCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GameCreate) SetID(v uuid.UUID) *GameCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GameCreate) SetNillableID(v *uuid.UUID) *GameCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSchool sets the "school" edge to the School entity.
func (_c *GameCreate) SetSchool(v *School) *GameCreate {
	return _c.SetSchoolID(v.ID)
}

// Mutation returns the GameMutation object of the builder.
func (_c *GameCreate) Mutation() *GameMutation {
	return _c.mutation
}

// Save creates the Game in the database.
func (_c *GameCreate) Save(ctx context.Context) (*Game, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameCreate) SaveX(ctx context.Context) *Game {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameCreate) defaults() {
	if _, ok := _c.mutation.IsHome(); !ok {
		v := game.DefaultIsHome
		_c.mutation.SetIsHome(v)
	}
	if _, ok := _c.mutation.IsConference(); !ok {
		v := game.DefaultIsConference
		_c.mutation.SetIsConference(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := game.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := game.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameCreate) check() error {
	if _, ok := _c.mutation.SchoolID(); !ok {
		return &ValidationError{Name: "school_id", err: errors.New(`ent: missing required field "Game.school_id"`)}
	}
	if _, ok := _c.mutation.Sport(); !ok {
		return &ValidationError{Name: "sport", err: errors.New(`ent: missing required field "Game.sport"`)}
	}
	if v, ok := _c.mutation.Sport(); ok {
		if err := game.SportValidator(v); err != nil {
			return &ValidationError{Name: "sport", err: fmt.Errorf(`ent: validator failed for field "Game.sport": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Game.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := game.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Game.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Season(); !ok {
		return &ValidationError{Name: "season", err: errors.New(`ent: missing required field "Game.season"`)}
	}
	if v, ok := _c.mutation.Season(); ok {
		if err := game.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Game.season": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Game.date"`)}
	}
	if _, ok := _c.mutation.Opponent(); !ok {
		return &ValidationError{Name: "opponent", err: errors.New(`ent: missing required field "Game.opponent"`)}
	}
	if v, ok := _c.mutation.Opponent(); ok {
		if err := game.OpponentValidator(v); err != nil {
			return &ValidationError{Name: "opponent", err: fmt.Errorf(`ent: validator failed for field "Game.opponent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsHome(); !ok {
		return &ValidationError{Name: "is_home", err: errors.New(`ent: missing required field "Game.is_home"`)}
	}
	if _, ok := _c.mutation.IsConference(); !ok {
		return &ValidationError{Name: "is_conference", err: errors.New(`ent: missing required field "Game.is_conference"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Game.created_at"`)}
	}
	if len(_c.mutation.SchoolIDs()) == 0 {
		return &ValidationError{Name: "school", err: errors.New(`ent: missing required edge "Game.school"`)}
	}
	return nil
}

func (_c *GameCreate) sqlSave(ctx context.Context) (*Game, error) {
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

func (_c *GameCreate) createSpec() (*Game, *sqlgraph.CreateSpec) {
	var (
		_node = &Game{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(game.Table, sqlgraph.NewFieldSpec(game.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sport(); ok {
		_spec.SetField(game.FieldSport, field.TypeString, value)
		_node.Sport = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(game.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Season(); ok {
		_spec.SetField(game.FieldSeason, field.TypeString, value)
		_node.Season = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(game.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.GameTime(); ok {
		_spec.SetField(game.FieldGameTime, field.TypeString, value)
		_node.GameTime = value
	}
	if value, ok := _c.mutation.Opponent(); ok {
		_spec.SetField(game.FieldOpponent, field.TypeString, value)
		_node.Opponent = value
	}
	if value, ok := _c.mutation.OpponentCity(); ok {
		_spec.SetField(game.FieldOpponentCity, field.TypeString, value)
		_node.OpponentCity = value
	}
	if value, ok := _c.mutation.IsHome(); ok {
		_spec.SetField(game.FieldIsHome, field.TypeBool, value)
		_node.IsHome = value
	}
	if value, ok := _c.mutation.IsConference(); ok {
		_spec.SetField(game.FieldIsConference, field.TypeBool, value)
		_node.IsConference = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(game.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.HomeScore(); ok {
		_spec.SetField(game.FieldHomeScore, field.TypeInt, value)
		_node.HomeScore = &value
	}
	if value, ok := _c.mutation.AwayScore(); ok {
		_spec.SetField(game.FieldAwayScore, field.TypeInt, value)
		_node.AwayScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(game.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   game.SchoolTable,
			Columns: []string{game.SchoolColumn},
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

// GameCreateBulk is the builder for creating many Game entities in bulk.
type GameCreateBulk struct {
	config
	err      error
	builders []*GameCreate
}

// Save creates the Game entities in the database.
func (_c *GameCreateBulk) Save(ctx context.Context) ([]*Game, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Game, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameMutation)
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
func (_c *GameCreateBulk) SaveX(ctx context.Context) []*Game {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
