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
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
)

// GameUpdate is the builder for updating Game entities.
type GameUpdate struct {
	config
	hooks    []Hook
	mutation *GameMutation
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdate) Where(ps ...predicate.Game) *GameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *GameUpdate) SetSchoolID(v uuid.UUID) *GameUpdate {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *GameUpdate) SetNillableSchoolID(v *uuid.UUID) *GameUpdate {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetSport sets the "sport" field.
func (_u *GameUpdate) SetSport(v string) *GameUpdate {
	_u.mutation.SetSport(v)
	return _u
}

// SetNillableSport sets the "sport" field if the given value is not nil.
func (_u *GameUpdate) SetNillableSport(v *string) *GameUpdate {
	if v != nil {
		_u.SetSport(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *GameUpdate) SetGender(v string) *GameUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *GameUpdate) SetNillableGender(v *string) *GameUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetSeason sets the "season" field.
func (_u *GameUpdate) SetSeason(v string) *GameUpdate {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *GameUpdate) SetNillableSeason(v *string) *GameUpdate {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *GameUpdate) SetDate(v time.Time) *GameUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *GameUpdate) SetNillableDate(v *time.Time) *GameUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetGameTime sets the "game_time" field.
func (_u *GameUpdate) SetGameTime(v string) *GameUpdate {
	_u.mutation.SetGameTime(v)
	return _u
}

// SetNillableGameTime sets the "game_time" field if the given value is not nil.
func (_u *GameUpdate) SetNillableGameTime(v *string) *GameUpdate {
	if v != nil {
		_u.SetGameTime(*v)
	}
	return _u
}

// ClearGameTime clears the value of the "game_time" field.
func (_u *GameUpdate) ClearGameTime() *GameUpdate {
	_u.mutation.ClearGameTime()
	return _u
}

// SetOpponent sets the "opponent" field.
func (_u *GameUpdate) SetOpponent(v string) *GameUpdate {
	_u.mutation.SetOpponent(v)
	return _u
}

// SetNillableOpponent sets the "opponent" field if the given value is not nil.
func (_u *GameUpdate) SetNillableOpponent(v *string) *GameUpdate {
	if v != nil {
		_u.SetOpponent(*v)
	}
	return _u
}

// SetOpponentCity sets the "opponent_city" field.
func (_u *GameUpdate) SetOpponentCity(v string) *GameUpdate {
	_u.mutation.SetOpponentCity(v)
	return _u
}

// SetNillableOpponentCity sets the "opponent_city" field if the given value is not nil.
func (_u *GameUpdate) SetNillableOpponentCity(v *string) *GameUpdate {
	if v != nil {
		_u.SetOpponentCity(*v)
	}
	return _u
}

// ClearOpponentCity clears the value of the "opponent_city" field.
func (_u *GameUpdate) ClearOpponentCity() *GameUpdate {
	_u.mutation.ClearOpponentCity()
	return _u
}

// SetIsHome sets the "is_home" field.
func (_u *GameUpdate) SetIsHome(v bool) *GameUpdate {
	_u.mutation.SetIsHome(v)
	return _u
}

// SetNillableIsHome sets the "is_home" field if the given value is not nil.
func (_u *GameUpdate) SetNillableIsHome(v *bool) *GameUpdate {
	if v != nil {
		_u.SetIsHome(*v)
	}
	return _u
}

// SetIsConference sets the "is_conference" field.
func (_u *GameUpdate) SetIsConference(v bool) *GameUpdate {
	_u.mutation.SetIsConference(v)
	return _u
}

// SetNillableIsConference sets the "is_conference" field if the given value is not nil.
func (_u *GameUpdate) SetNillableIsConference(v *bool) *GameUpdate {
	if v != nil {
		_u.SetIsConference(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *GameUpdate) SetLocation(v string) *GameUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *GameUpdate) SetNillableLocation(v *string) *GameUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *GameUpdate) ClearLocation() *GameUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetHomeScore sets the "home_score" field.
func (_u *GameUpdate) SetHomeScore(v int) *GameUpdate {
	_u.mutation.ResetHomeScore()
	_u.mutation.SetHomeScore(v)
	return _u
}

// SetNillableHomeScore sets the "home_score" field if the given value is not nil.
func (_u *GameUpdate) SetNillableHomeScore(v *int) *GameUpdate {
	if v != nil {
		_u.SetHomeScore(*v)
	}
	return _u
}

// AddHomeScore adds value to the "home_score" field.
func (_u *GameUpdate) AddHomeScore(v int) *GameUpdate {
	_u.mutation.AddHomeScore(v)
	return _u
}

// ClearHomeScore clears the value of the "home_score" field.
func (_u *GameUpdate) ClearHomeScore() *GameUpdate {
	_u.mutation.ClearHomeScore()
	return _u
}

// SetAwayScore sets the "away_score" field.
func (_u *GameUpdate) SetAwayScore(v int) *GameUpdate {
	_u.mutation.ResetAwayScore()
	_u.mutation.SetAwayScore(v)
	return _u
}

// SetNillableAwayScore sets the "away_score" field if the given value is not nil.
func (_u *GameUpdate) SetNillableAwayScore(v *int) *GameUpdate {
	if v != nil {
		_u.SetAwayScore(*v)
	}
	return _u
}

// AddAwayScore adds value to the "away_score" field.
func (_u *GameUpdate) AddAwayScore(v int) *GameUpdate {
	_u.mutation.AddAwayScore(v)
	return _u
}

// ClearAwayScore clears the value of the "away_score" field.
func (_u *GameUpdate) ClearAwayScore() *GameUpdate {
	_u.mutation.ClearAwayScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GameUpdate) SetCreatedAt(v time.Time) *GameUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GameUpdate) SetNillableCreatedAt(v *time.Time) *GameUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *GameUpdate) SetSchool(v *School) *GameUpdate {
	return _u.SetSchoolID(v.ID)
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdate) Mutation() *GameMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *GameUpdate) ClearSchool() *GameUpdate {
	_u.mutation.ClearSchool()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameUpdate) check() error {
	if v, ok := _u.mutation.Sport(); ok {
		if err := game.SportValidator(v); err != nil {
			return &ValidationError{Name: "sport", err: fmt.Errorf(`ent: validator failed for field "Game.sport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := game.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Game.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Season(); ok {
		if err := game.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Game.season": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Opponent(); ok {
		if err := game.OpponentValidator(v); err != nil {
			return &ValidationError{Name: "opponent", err: fmt.Errorf(`ent: validator failed for field "Game.opponent": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Game.school"`)
	}
	return nil
}

func (_u *GameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sport(); ok {
		_spec.SetField(game.FieldSport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(game.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(game.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(game.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GameTime(); ok {
		_spec.SetField(game.FieldGameTime, field.TypeString, value)
	}
	if _u.mutation.GameTimeCleared() {
		_spec.ClearField(game.FieldGameTime, field.TypeString)
	}
	if value, ok := _u.mutation.Opponent(); ok {
		_spec.SetField(game.FieldOpponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.OpponentCity(); ok {
		_spec.SetField(game.FieldOpponentCity, field.TypeString, value)
	}
	if _u.mutation.OpponentCityCleared() {
		_spec.ClearField(game.FieldOpponentCity, field.TypeString)
	}
	if value, ok := _u.mutation.IsHome(); ok {
		_spec.SetField(game.FieldIsHome, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsConference(); ok {
		_spec.SetField(game.FieldIsConference, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(game.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(game.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.HomeScore(); ok {
		_spec.SetField(game.FieldHomeScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHomeScore(); ok {
		_spec.AddField(game.FieldHomeScore, field.TypeInt, value)
	}
	if _u.mutation.HomeScoreCleared() {
		_spec.ClearField(game.FieldHomeScore, field.TypeInt)
	}
	if value, ok := _u.mutation.AwayScore(); ok {
		_spec.SetField(game.FieldAwayScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAwayScore(); ok {
		_spec.AddField(game.FieldAwayScore, field.TypeInt, value)
	}
	if _u.mutation.AwayScoreCleared() {
		_spec.ClearField(game.FieldAwayScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(game.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchoolCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameUpdateOne is the builder for updating a single Game entity.
type GameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameMutation
}

// SetSchoolID sets the "school_id" field.
func (_u *GameUpdateOne) SetSchoolID(v uuid.UUID) *GameUpdateOne {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableSchoolID(v *uuid.UUID) *GameUpdateOne {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetSport sets the "sport" field.
func (_u *GameUpdateOne) SetSport(v string) *GameUpdateOne {
	_u.mutation.SetSport(v)
	return _u
}

// SetNillableSport sets the "sport" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableSport(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetSport(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *GameUpdateOne) SetGender(v string) *GameUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableGender(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetSeason sets the "season" field.
func (_u *GameUpdateOne) SetSeason(v string) *GameUpdateOne {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableSeason(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *GameUpdateOne) SetDate(v time.Time) *GameUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableDate(v *time.Time) *GameUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetGameTime sets the "game_time" field.
func (_u *GameUpdateOne) SetGameTime(v string) *GameUpdateOne {
	_u.mutation.SetGameTime(v)
	return _u
}

// SetNillableGameTime sets the "game_time" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableGameTime(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetGameTime(*v)
	}
	return _u
}

// ClearGameTime clears the value of the "game_time" field.
func (_u *GameUpdateOne) ClearGameTime() *GameUpdateOne {
	_u.mutation.ClearGameTime()
	return _u
}

// SetOpponent sets the "opponent" field.
func (_u *GameUpdateOne) SetOpponent(v string) *GameUpdateOne {
	_u.mutation.SetOpponent(v)
	return _u
}

// SetNillableOpponent sets the "opponent" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableOpponent(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetOpponent(*v)
	}
	return _u
}

// SetOpponentCity sets the "opponent_city" field.
func (_u *GameUpdateOne) SetOpponentCity(v string) *GameUpdateOne {
	_u.mutation.SetOpponentCity(v)
	return _u
}

// SetNillableOpponentCity sets the "opponent_city" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableOpponentCity(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetOpponentCity(*v)
	}
	return _u
}

// ClearOpponentCity clears the value of the "opponent_city" field.
func (_u *GameUpdateOne) ClearOpponentCity() *GameUpdateOne {
	_u.mutation.ClearOpponentCity()
	return _u
}

// SetIsHome sets the "is_home" field.
func (_u *GameUpdateOne) SetIsHome(v bool) *GameUpdateOne {
	_u.mutation.SetIsHome(v)
	return _u
}

// SetNillableIsHome sets the "is_home" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableIsHome(v *bool) *GameUpdateOne {
	if v != nil {
		_u.SetIsHome(*v)
	}
	return _u
}

// SetIsConference sets the "is_conference" field.
func (_u *GameUpdateOne) SetIsConference(v bool) *GameUpdateOne {
	_u.mutation.SetIsConference(v)
	return _u
}

// SetNillableIsConference sets the "is_conference" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableIsConference(v *bool) *GameUpdateOne {
	if v != nil {
		_u.SetIsConference(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *GameUpdateOne) SetLocation(v string) *GameUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableLocation(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *GameUpdateOne) ClearLocation() *GameUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetHomeScore sets the "home_score" field.
func (_u *GameUpdateOne) SetHomeScore(v int) *GameUpdateOne {
	_u.mutation.ResetHomeScore()
	_u.mutation.SetHomeScore(v)
	return _u
}

// SetNillableHomeScore sets the "home_score" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableHomeScore(v *int) *GameUpdateOne {
	if v != nil {
		_u.SetHomeScore(*v)
	}
	return _u
}

// AddHomeScore adds value to the "home_score" field.
func (_u *GameUpdateOne) AddHomeScore(v int) *GameUpdateOne {
	_u.mutation.AddHomeScore(v)
	return _u
}

// ClearHomeScore clears the value of the "home_score" field.
func (_u *GameUpdateOne) ClearHomeScore() *GameUpdateOne {
	_u.mutation.ClearHomeScore()
	return _u
}

// SetAwayScore sets the "away_score" field.
func (_u *GameUpdateOne) SetAwayScore(v int) *GameUpdateOne {
	_u.mutation.ResetAwayScore()
	_u.mutation.SetAwayScore(v)
	return _u
}

// SetNillableAwayScore sets the "away_score" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableAwayScore(v *int) *GameUpdateOne {
	if v != nil {
		_u.SetAwayScore(*v)
	}
	return _u
}

// AddAwayScore adds value to the "away_score" field.
func (_u *GameUpdateOne) AddAwayScore(v int) *GameUpdateOne {
	_u.mutation.AddAwayScore(v)
	return _u
}

// ClearAwayScore clears the value of the "away_score" field.
func (_u *GameUpdateOne) ClearAwayScore() *GameUpdateOne {
	_u.mutation.ClearAwayScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GameUpdateOne) SetCreatedAt(v time.Time) *GameUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableCreatedAt(v *time.Time) *GameUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *GameUpdateOne) SetSchool(v *School) *GameUpdateOne {
	return _u.SetSchoolID(v.ID)
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdateOne) Mutation() *GameMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *GameUpdateOne) ClearSchool() *GameUpdateOne {
	_u.mutation.ClearSchool()
	return _u
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdateOne) Where(ps ...predicate.Game) *GameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameUpdateOne) Select(field string, fields ...string) *GameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Game entity.
func (_u *GameUpdateOne) Save(ctx context.Context) (*Game, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdateOne) SaveX(ctx context.Context) *Game {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameUpdateOne) check() error {
	if v, ok := _u.mutation.Sport(); ok {
		if err := game.SportValidator(v); err != nil {
			return &ValidationError{Name: "sport", err: fmt.Errorf(`ent: validator failed for field "Game.sport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := game.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Game.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Season(); ok {
		if err := game.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Game.season": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Opponent(); ok {
		if err := game.OpponentValidator(v); err != nil {
			return &ValidationError{Name: "opponent", err: fmt.Errorf(`ent: validator failed for field "Game.opponent": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Game.school"`)
	}
	return nil
}

func (_u *GameUpdateOne) sqlSave(ctx context.Context) (_node *Game, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Game.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, game.FieldID)
		for _, f := range fields {
			if !game.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != game.FieldID {
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
	if value, ok := _u.mutation.Sport(); ok {
		_spec.SetField(game.FieldSport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(game.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(game.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(game.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GameTime(); ok {
		_spec.SetField(game.FieldGameTime, field.TypeString, value)
	}
	if _u.mutation.GameTimeCleared() {
		_spec.ClearField(game.FieldGameTime, field.TypeString)
	}
	if value, ok := _u.mutation.Opponent(); ok {
		_spec.SetField(game.FieldOpponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.OpponentCity(); ok {
		_spec.SetField(game.FieldOpponentCity, field.TypeString, value)
	}
	if _u.mutation.OpponentCityCleared() {
		_spec.ClearField(game.FieldOpponentCity, field.TypeString)
	}
	if value, ok := _u.mutation.IsHome(); ok {
		_spec.SetField(game.FieldIsHome, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsConference(); ok {
		_spec.SetField(game.FieldIsConference, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(game.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(game.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.HomeScore(); ok {
		_spec.SetField(game.FieldHomeScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHomeScore(); ok {
		_spec.AddField(game.FieldHomeScore, field.TypeInt, value)
	}
	if _u.mutation.HomeScoreCleared() {
		_spec.ClearField(game.FieldHomeScore, field.TypeInt)
	}
	if value, ok := _u.mutation.AwayScore(); ok {
		_spec.SetField(game.FieldAwayScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAwayScore(); ok {
		_spec.AddField(game.FieldAwayScore, field.TypeInt, value)
	}
	if _u.mutation.AwayScoreCleared() {
		_spec.ClearField(game.FieldAwayScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(game.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchoolCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Game{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
