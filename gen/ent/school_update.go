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
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// SchoolUpdate is the builder for updating School entities.
type SchoolUpdate struct {
	config
	hooks    []Hook
	mutation *SchoolMutation
}

// Where appends a list predicates to the SchoolUpdate builder.
func (_u *SchoolUpdate) Where(ps ...predicate.School) *SchoolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *SchoolUpdate) SetKey(v string) *SchoolUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableKey(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SchoolUpdate) SetName(v string) *SchoolUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableName(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *SchoolUpdate) SetCity(v string) *SchoolUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableCity(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *SchoolUpdate) ClearCity() *SchoolUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *SchoolUpdate) SetClassification(v string) *SchoolUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableClassification(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *SchoolUpdate) ClearClassification() *SchoolUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetConference sets the "conference" field.
func (_u *SchoolUpdate) SetConference(v string) *SchoolUpdate {
	_u.mutation.SetConference(v)
	return _u
}

// SetNillableConference sets the "conference" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableConference(v *string) *SchoolUpdate {
	if v != nil {
		_u.SetConference(*v)
	}
	return _u
}

// ClearConference clears the value of the "conference" field.
func (_u *SchoolUpdate) ClearConference() *SchoolUpdate {
	_u.mutation.ClearConference()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SchoolUpdate) SetCreatedAt(v time.Time) *SchoolUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SchoolUpdate) SetNillableCreatedAt(v *time.Time) *SchoolUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchoolUpdate) SetUpdatedAt(v time.Time) *SchoolUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAliasIDs adds the "aliases" edge to the SchoolAlias entity by IDs.
func (_u *SchoolUpdate) AddAliasIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.AddAliasIDs(ids...)
	return _u
}

// AddAliases adds the "aliases" edges to the SchoolAlias entity.
func (_u *SchoolUpdate) AddAliases(v ...*SchoolAlias) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAliasIDs(ids...)
}

// AddPlayerIDs adds the "players" edge to the Player entity by IDs.
func (_u *SchoolUpdate) AddPlayerIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.AddPlayerIDs(ids...)
	return _u
}

// AddPlayers adds the "players" edges to the Player entity.
func (_u *SchoolUpdate) AddPlayers(v ...*Player) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlayerIDs(ids...)
}

// AddGameIDs adds the "games" edge to the Game entity by IDs.
func (_u *SchoolUpdate) AddGameIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.AddGameIDs(ids...)
	return _u
}

// AddGames adds the "games" edges to the Game entity.
func (_u *SchoolUpdate) AddGames(v ...*Game) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGameIDs(ids...)
}

// Mutation returns the SchoolMutation object of the builder.
func (_u *SchoolUpdate) Mutation() *SchoolMutation {
	return _u.mutation
}

// ClearAliases clears all "aliases" edges to the SchoolAlias entity.
func (_u *SchoolUpdate) ClearAliases() *SchoolUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// RemoveAliasIDs removes the "aliases" edge to SchoolAlias entities by IDs.
func (_u *SchoolUpdate) RemoveAliasIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.RemoveAliasIDs(ids...)
	return _u
}

// RemoveAliases removes "aliases" edges to SchoolAlias entities.
func (_u *SchoolUpdate) RemoveAliases(v ...*SchoolAlias) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAliasIDs(ids...)
}

// ClearPlayers clears all "players" edges to the Player entity.
func (_u *SchoolUpdate) ClearPlayers() *SchoolUpdate {
	_u.mutation.ClearPlayers()
	return _u
}

// RemovePlayerIDs removes the "players" edge to Player entities by IDs.
func (_u *SchoolUpdate) RemovePlayerIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.RemovePlayerIDs(ids...)
	return _u
}

// RemovePlayers removes "players" edges to Player entities.
func (_u *SchoolUpdate) RemovePlayers(v ...*Player) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlayerIDs(ids...)
}

// ClearGames clears all "games" edges to the Game entity.
func (_u *SchoolUpdate) ClearGames() *SchoolUpdate {
	_u.mutation.ClearGames()
	return _u
}

// RemoveGameIDs removes the "games" edge to Game entities by IDs.
func (_u *SchoolUpdate) RemoveGameIDs(ids ...uuid.UUID) *SchoolUpdate {
	_u.mutation.RemoveGameIDs(ids...)
	return _u
}

// RemoveGames removes "games" edges to Game entities.
func (_u *SchoolUpdate) RemoveGames(v ...*Game) *SchoolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGameIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchoolUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchoolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchoolUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := school.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := school.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "School.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := school.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "School.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SchoolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(school.Table, school.Columns, sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(school.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(school.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(school.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(school.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(school.FieldClassification, field.TypeString, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(school.FieldClassification, field.TypeString)
	}
	if value, ok := _u.mutation.Conference(); ok {
		_spec.SetField(school.FieldConference, field.TypeString, value)
	}
	if _u.mutation.ConferenceCleared() {
		_spec.ClearField(school.FieldConference, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(school.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(school.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AliasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAliasesIDs(); len(nodes) > 0 && !_u.mutation.AliasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AliasesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlayersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlayersIDs(); len(nodes) > 0 && !_u.mutation.PlayersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlayersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GamesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGamesIDs(); len(nodes) > 0 && !_u.mutation.GamesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GamesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{school.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchoolUpdateOne is the builder for updating a single School entity.
type SchoolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchoolMutation
}

// SetKey sets the "key" field.
func (_u *SchoolUpdateOne) SetKey(v string) *SchoolUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableKey(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SchoolUpdateOne) SetName(v string) *SchoolUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableName(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *SchoolUpdateOne) SetCity(v string) *SchoolUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableCity(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *SchoolUpdateOne) ClearCity() *SchoolUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *SchoolUpdateOne) SetClassification(v string) *SchoolUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableClassification(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *SchoolUpdateOne) ClearClassification() *SchoolUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetConference sets the "conference" field.
func (_u *SchoolUpdateOne) SetConference(v string) *SchoolUpdateOne {
	_u.mutation.SetConference(v)
	return _u
}

// SetNillableConference sets the "conference" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableConference(v *string) *SchoolUpdateOne {
	if v != nil {
		_u.SetConference(*v)
	}
	return _u
}

// ClearConference clears the value of the "conference" field.
func (_u *SchoolUpdateOne) ClearConference() *SchoolUpdateOne {
	_u.mutation.ClearConference()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SchoolUpdateOne) SetCreatedAt(v time.Time) *SchoolUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SchoolUpdateOne) SetNillableCreatedAt(v *time.Time) *SchoolUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchoolUpdateOne) SetUpdatedAt(v time.Time) *SchoolUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAliasIDs adds the "aliases" edge to the SchoolAlias entity by IDs.
func (_u *SchoolUpdateOne) AddAliasIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.AddAliasIDs(ids...)
	return _u
}

// AddAliases adds the "aliases" edges to the SchoolAlias entity.
func (_u *SchoolUpdateOne) AddAliases(v ...*SchoolAlias) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAliasIDs(ids...)
}

// AddPlayerIDs adds the "players" edge to the Player entity by IDs.
func (_u *SchoolUpdateOne) AddPlayerIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.AddPlayerIDs(ids...)
	return _u
}

// AddPlayers adds the "players" edges to the Player entity.
func (_u *SchoolUpdateOne) AddPlayers(v ...*Player) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlayerIDs(ids...)
}

// AddGameIDs adds the "games" edge to the Game entity by IDs.
func (_u *SchoolUpdateOne) AddGameIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.AddGameIDs(ids...)
	return _u
}

// AddGames adds the "games" edges to the Game entity.
func (_u *SchoolUpdateOne) AddGames(v ...*Game) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGameIDs(ids...)
}

// Mutation returns the SchoolMutation object of the builder.
func (_u *SchoolUpdateOne) Mutation() *SchoolMutation {
	return _u.mutation
}

// ClearAliases clears all "aliases" edges to the SchoolAlias entity.
func (_u *SchoolUpdateOne) ClearAliases() *SchoolUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// RemoveAliasIDs removes the "aliases" edge to SchoolAlias entities by IDs.
func (_u *SchoolUpdateOne) RemoveAliasIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.RemoveAliasIDs(ids...)
	return _u
}

// RemoveAliases removes "aliases" edges to SchoolAlias entities.
func (_u *SchoolUpdateOne) RemoveAliases(v ...*SchoolAlias) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAliasIDs(ids...)
}

// ClearPlayers clears all "players" edges to the Player entity.
func (_u *SchoolUpdateOne) ClearPlayers() *SchoolUpdateOne {
	_u.mutation.ClearPlayers()
	return _u
}

// RemovePlayerIDs removes the "players" edge to Player entities by IDs.
func (_u *SchoolUpdateOne) RemovePlayerIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.RemovePlayerIDs(ids...)
	return _u
}

// RemovePlayers removes "players" edges to Player entities.
func (_u *SchoolUpdateOne) RemovePlayers(v ...*Player) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlayerIDs(ids...)
}

// ClearGames clears all "games" edges to the Game entity.
func (_u *SchoolUpdateOne) ClearGames() *SchoolUpdateOne {
	_u.mutation.ClearGames()
	return _u
}

// RemoveGameIDs removes the "games" edge to Game entities by IDs.
func (_u *SchoolUpdateOne) RemoveGameIDs(ids ...uuid.UUID) *SchoolUpdateOne {
	_u.mutation.RemoveGameIDs(ids...)
	return _u
}

// RemoveGames removes "games" edges to Game entities.
func (_u *SchoolUpdateOne) RemoveGames(v ...*Game) *SchoolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGameIDs(ids...)
}

// Where appends a list predicates to the SchoolUpdate builder.
func (_u *SchoolUpdateOne) Where(ps ...predicate.School) *SchoolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchoolUpdateOne) Select(field string, fields ...string) *SchoolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated School entity.
func (_u *SchoolUpdateOne) Save(ctx context.Context) (*School, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolUpdateOne) SaveX(ctx context.Context) *School {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchoolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchoolUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := school.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := school.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "School.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := school.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "School.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SchoolUpdateOne) sqlSave(ctx context.Context) (_node *School, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(school.Table, school.Columns, sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "School.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, school.FieldID)
		for _, f := range fields {
			if !school.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != school.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(school.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(school.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(school.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(school.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(school.FieldClassification, field.TypeString, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(school.FieldClassification, field.TypeString)
	}
	if value, ok := _u.mutation.Conference(); ok {
		_spec.SetField(school.FieldConference, field.TypeString, value)
	}
	if _u.mutation.ConferenceCleared() {
		_spec.ClearField(school.FieldConference, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(school.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(school.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AliasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAliasesIDs(); len(nodes) > 0 && !_u.mutation.AliasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AliasesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlayersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlayersIDs(); len(nodes) > 0 && !_u.mutation.PlayersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlayersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GamesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGamesIDs(); len(nodes) > 0 && !_u.mutation.GamesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GamesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &School{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{school.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
