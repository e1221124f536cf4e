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
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
)

// PlayerUpdate is the builder for updating Player entities.
type PlayerUpdate struct {
	config
	hooks    []Hook
	mutation *PlayerMutation
}

// Where appends a list predicates to the PlayerUpdate builder.
func (_u *PlayerUpdate) Where(ps ...predicate.Player) *PlayerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *PlayerUpdate) SetSchoolID(v uuid.UUID) *PlayerUpdate {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableSchoolID(v *uuid.UUID) *PlayerUpdate {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PlayerUpdate) SetFirstName(v string) *PlayerUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableFirstName(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PlayerUpdate) SetLastName(v string) *PlayerUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableLastName(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetJerseyNumber sets the "jersey_number" field.
func (_u *PlayerUpdate) SetJerseyNumber(v string) *PlayerUpdate {
	_u.mutation.SetJerseyNumber(v)
	return _u
}

// SetNillableJerseyNumber sets the "jersey_number" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableJerseyNumber(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetJerseyNumber(*v)
	}
	return _u
}

// ClearJerseyNumber clears the value of the "jersey_number" field.
func (_u *PlayerUpdate) ClearJerseyNumber() *PlayerUpdate {
	_u.mutation.ClearJerseyNumber()
	return _u
}

// SetPosition sets the "position" field.
func (_u *PlayerUpdate) SetPosition(v string) *PlayerUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillablePosition(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *PlayerUpdate) ClearPosition() *PlayerUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PlayerUpdate) SetGrade(v string) *PlayerUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableGrade(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *PlayerUpdate) ClearGrade() *PlayerUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetHeightFeet sets the "height_feet" field.
func (_u *PlayerUpdate) SetHeightFeet(v int) *PlayerUpdate {
	_u.mutation.ResetHeightFeet()
	_u.mutation.SetHeightFeet(v)
	return _u
}

// SetNillableHeightFeet sets the "height_feet" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableHeightFeet(v *int) *PlayerUpdate {
	if v != nil {
		_u.SetHeightFeet(*v)
	}
	return _u
}

// AddHeightFeet adds value to the "height_feet" field.
func (_u *PlayerUpdate) AddHeightFeet(v int) *PlayerUpdate {
	_u.mutation.AddHeightFeet(v)
	return _u
}

// ClearHeightFeet clears the value of the "height_feet" field.
func (_u *PlayerUpdate) ClearHeightFeet() *PlayerUpdate {
	_u.mutation.ClearHeightFeet()
	return _u
}

// SetHeightInches sets the "height_inches" field.
func (_u *PlayerUpdate) SetHeightInches(v int) *PlayerUpdate {
	_u.mutation.ResetHeightInches()
	_u.mutation.SetHeightInches(v)
	return _u
}

// SetNillableHeightInches sets the "height_inches" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableHeightInches(v *int) *PlayerUpdate {
	if v != nil {
		_u.SetHeightInches(*v)
	}
	return _u
}

// AddHeightInches adds value to the "height_inches" field.
func (_u *PlayerUpdate) AddHeightInches(v int) *PlayerUpdate {
	_u.mutation.AddHeightInches(v)
	return _u
}

// ClearHeightInches clears the value of the "height_inches" field.
func (_u *PlayerUpdate) ClearHeightInches() *PlayerUpdate {
	_u.mutation.ClearHeightInches()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *PlayerUpdate) SetWeight(v int) *PlayerUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableWeight(v *int) *PlayerUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *PlayerUpdate) AddWeight(v int) *PlayerUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *PlayerUpdate) ClearWeight() *PlayerUpdate {
	_u.mutation.ClearWeight()
	return _u
}

// SetSport sets the "sport" field.
func (_u *PlayerUpdate) SetSport(v string) *PlayerUpdate {
	_u.mutation.SetSport(v)
	return _u
}

// SetNillableSport sets the "sport" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableSport(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetSport(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *PlayerUpdate) SetGender(v string) *PlayerUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableGender(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetSeason sets the "season" field.
func (_u *PlayerUpdate) SetSeason(v string) *PlayerUpdate {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableSeason(v *string) *PlayerUpdate {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlayerUpdate) SetCreatedAt(v time.Time) *PlayerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlayerUpdate) SetNillableCreatedAt(v *time.Time) *PlayerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerUpdate) SetUpdatedAt(v time.Time) *PlayerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *PlayerUpdate) SetSchool(v *School) *PlayerUpdate {
	return _u.SetSchoolID(v.ID)
}

// Mutation returns the PlayerMutation object of the builder.
func (_u *PlayerUpdate) Mutation() *PlayerMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *PlayerUpdate) ClearSchool() *PlayerUpdate {
	_u.mutation.ClearSchool()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlayerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlayerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := player.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := player.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Player.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := player.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Player.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sport(); ok {
		if err := player.SportValidator(v); err != nil {
			return &ValidationError{Name: "sport", err: fmt.Errorf(`ent: validator failed for field "Player.sport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := player.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Player.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Season(); ok {
		if err := player.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Player.season": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Player.school"`)
	}
	return nil
}

func (_u *PlayerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(player.Table, player.Columns, sqlgraph.NewFieldSpec(player.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(player.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(player.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JerseyNumber(); ok {
		_spec.SetField(player.FieldJerseyNumber, field.TypeString, value)
	}
	if _u.mutation.JerseyNumberCleared() {
		_spec.ClearField(player.FieldJerseyNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(player.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(player.FieldPosition, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(player.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(player.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.HeightFeet(); ok {
		_spec.SetField(player.FieldHeightFeet, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeightFeet(); ok {
		_spec.AddField(player.FieldHeightFeet, field.TypeInt, value)
	}
	if _u.mutation.HeightFeetCleared() {
		_spec.ClearField(player.FieldHeightFeet, field.TypeInt)
	}
	if value, ok := _u.mutation.HeightInches(); ok {
		_spec.SetField(player.FieldHeightInches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeightInches(); ok {
		_spec.AddField(player.FieldHeightInches, field.TypeInt, value)
	}
	if _u.mutation.HeightInchesCleared() {
		_spec.ClearField(player.FieldHeightInches, field.TypeInt)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(player.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(player.FieldWeight, field.TypeInt, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(player.FieldWeight, field.TypeInt)
	}
	if value, ok := _u.mutation.Sport(); ok {
		_spec.SetField(player.FieldSport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(player.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(player.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(player.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(player.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchoolCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{player.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlayerUpdateOne is the builder for updating a single Player entity.
type PlayerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlayerMutation
}

// SetSchoolID sets the "school_id" field.
func (_u *PlayerUpdateOne) SetSchoolID(v uuid.UUID) *PlayerUpdateOne {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableSchoolID(v *uuid.UUID) *PlayerUpdateOne {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PlayerUpdateOne) SetFirstName(v string) *PlayerUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableFirstName(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PlayerUpdateOne) SetLastName(v string) *PlayerUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableLastName(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetJerseyNumber sets the "jersey_number" field.
func (_u *PlayerUpdateOne) SetJerseyNumber(v string) *PlayerUpdateOne {
	_u.mutation.SetJerseyNumber(v)
	return _u
}

// SetNillableJerseyNumber sets the "jersey_number" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableJerseyNumber(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetJerseyNumber(*v)
	}
	return _u
}

// ClearJerseyNumber clears the value of the "jersey_number" field.
func (_u *PlayerUpdateOne) ClearJerseyNumber() *PlayerUpdateOne {
	_u.mutation.ClearJerseyNumber()
	return _u
}

// SetPosition sets the "position" field.
func (_u *PlayerUpdateOne) SetPosition(v string) *PlayerUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillablePosition(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *PlayerUpdateOne) ClearPosition() *PlayerUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PlayerUpdateOne) SetGrade(v string) *PlayerUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableGrade(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *PlayerUpdateOne) ClearGrade() *PlayerUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetHeightFeet sets the "height_feet" field.
func (_u *PlayerUpdateOne) SetHeightFeet(v int) *PlayerUpdateOne {
	_u.mutation.ResetHeightFeet()
	_u.mutation.SetHeightFeet(v)
	return _u
}

// SetNillableHeightFeet sets the "height_feet" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableHeightFeet(v *int) *PlayerUpdateOne {
	if v != nil {
		_u.SetHeightFeet(*v)
	}
	return _u
}

// AddHeightFeet adds value to the "height_feet" field.
func (_u *PlayerUpdateOne) AddHeightFeet(v int) *PlayerUpdateOne {
	_u.mutation.AddHeightFeet(v)
	return _u
}

// ClearHeightFeet clears the value of the "height_feet" field.
func (_u *PlayerUpdateOne) ClearHeightFeet() *PlayerUpdateOne {
	_u.mutation.ClearHeightFeet()
	return _u
}

// SetHeightInches sets the "height_inches" field.
func (_u *PlayerUpdateOne) SetHeightInches(v int) *PlayerUpdateOne {
	_u.mutation.ResetHeightInches()
	_u.mutation.SetHeightInches(v)
	return _u
}

// SetNillableHeightInches sets the "height_inches" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableHeightInches(v *int) *PlayerUpdateOne {
	if v != nil {
		_u.SetHeightInches(*v)
	}
	return _u
}

// AddHeightInches adds value to the "height_inches" field.
func (_u *PlayerUpdateOne) AddHeightInches(v int) *PlayerUpdateOne {
	_u.mutation.AddHeightInches(v)
	return _u
}

// ClearHeightInches clears the value of the "height_inches" field.
func (_u *PlayerUpdateOne) ClearHeightInches() *PlayerUpdateOne {
	_u.mutation.ClearHeightInches()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *PlayerUpdateOne) SetWeight(v int) *PlayerUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableWeight(v *int) *PlayerUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *PlayerUpdateOne) AddWeight(v int) *PlayerUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *PlayerUpdateOne) ClearWeight() *PlayerUpdateOne {
	_u.mutation.ClearWeight()
	return _u
}

// SetSport sets the "sport" field.
func (_u *PlayerUpdateOne) SetSport(v string) *PlayerUpdateOne {
	_u.mutation.SetSport(v)
	return _u
}

// SetNillableSport sets the "sport" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableSport(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetSport(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *PlayerUpdateOne) SetGender(v string) *PlayerUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableGender(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetSeason sets the "season" field.
func (_u *PlayerUpdateOne) SetSeason(v string) *PlayerUpdateOne {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableSeason(v *string) *PlayerUpdateOne {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlayerUpdateOne) SetCreatedAt(v time.Time) *PlayerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlayerUpdateOne) SetNillableCreatedAt(v *time.Time) *PlayerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerUpdateOne) SetUpdatedAt(v time.Time) *PlayerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *PlayerUpdateOne) SetSchool(v *School) *PlayerUpdateOne {
	return _u.SetSchoolID(v.ID)
}

// Mutation returns the PlayerMutation object of the builder.
func (_u *PlayerUpdateOne) Mutation() *PlayerMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *PlayerUpdateOne) ClearSchool() *PlayerUpdateOne {
	_u.mutation.ClearSchool()
	return _u
}

// Where appends a list predicates to the PlayerUpdate builder.
func (_u *PlayerUpdateOne) Where(ps ...predicate.Player) *PlayerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlayerUpdateOne) Select(field string, fields ...string) *PlayerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Player entity.
func (_u *PlayerUpdateOne) Save(ctx context.Context) (*Player, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerUpdateOne) SaveX(ctx context.Context) *Player {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlayerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := player.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := player.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Player.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := player.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Player.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sport(); ok {
		if err := player.SportValidator(v); err != nil {
			return &ValidationError{Name: "sport", err: fmt.Errorf(`ent: validator failed for field "Player.sport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := player.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Player.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Season(); ok {
		if err := player.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Player.season": %w`, err)}
		}
	}
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Player.school"`)
	}
	return nil
}

func (_u *PlayerUpdateOne) sqlSave(ctx context.Context) (_node *Player, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(player.Table, player.Columns, sqlgraph.NewFieldSpec(player.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Player.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, player.FieldID)
		for _, f := range fields {
			if !player.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != player.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(player.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(player.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JerseyNumber(); ok {
		_spec.SetField(player.FieldJerseyNumber, field.TypeString, value)
	}
	if _u.mutation.JerseyNumberCleared() {
		_spec.ClearField(player.FieldJerseyNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(player.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(player.FieldPosition, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(player.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(player.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.HeightFeet(); ok {
		_spec.SetField(player.FieldHeightFeet, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeightFeet(); ok {
		_spec.AddField(player.FieldHeightFeet, field.TypeInt, value)
	}
	if _u.mutation.HeightFeetCleared() {
		_spec.ClearField(player.FieldHeightFeet, field.TypeInt)
	}
	if value, ok := _u.mutation.HeightInches(); ok {
		_spec.SetField(player.FieldHeightInches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeightInches(); ok {
		_spec.AddField(player.FieldHeightInches, field.TypeInt, value)
	}
	if _u.mutation.HeightInchesCleared() {
		_spec.ClearField(player.FieldHeightInches, field.TypeInt)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(player.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(player.FieldWeight, field.TypeInt, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(player.FieldWeight, field.TypeInt)
	}
	if value, ok := _u.mutation.Sport(); ok {
		_spec.SetField(player.FieldSport, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(player.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(player.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(player.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(player.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchoolCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Player{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{player.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
