// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGame        = "Game"
	TypePlayer      = "Player"
	TypeSchool      = "School"
	TypeSchoolAlias = "SchoolAlias"
)

// GameMutation represents an operation that mutates the Game nodes in the graph.
type GameMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	sport         *string
	gender        *string
	season        *string
	date          *time.Time
	game_time     *string
	opponent      *string
	opponent_city *string
	is_home       *bool
	is_conference *bool
	location      *string
	home_score    *int
	addhome_score *int
	away_score    *int
	addaway_score *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	school        *uuid.UUID
	clearedschool bool
	done          bool
	oldValue      func(context.Context) (*Game, error)
	predicates    []predicate.Game
}

var _ ent.Mutation = (*GameMutation)(nil)

// gameOption allows management of the mutation configuration using functional options.
type gameOption func(*GameMutation)

// newGameMutation creates new mutation for the Game entity.
func newGameMutation(c config, op Op, opts ...gameOption) *GameMutation {
	m := &GameMutation{
		config:        c,
		op:            op,
		typ:           TypeGame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameID sets the ID field of the mutation.
func withGameID(id uuid.UUID) gameOption {
	return func(m *GameMutation) {
		var (
			err   error
			once  sync.Once
			value *Game
		)
		m.oldValue = func(ctx context.Context) (*Game, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Game.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGame sets the old Game of the mutation.
func withGame(node *Game) gameOption {
	return func(m *GameMutation) {
		m.oldValue = func(context.Context) (*Game, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Game entities.
func (m *GameMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Game.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSchoolID sets the "school_id" field.
func (m *GameMutation) SetSchoolID(u uuid.UUID) {
	m.school = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *GameMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *GameMutation) ResetSchoolID() {
	m.school = nil
}

// SetSport sets the "sport" field.
func (m *GameMutation) SetSport(s string) {
	m.sport = &s
}

// Sport returns the value of the "sport" field in the mutation.
func (m *GameMutation) Sport() (r string, exists bool) {
	v := m.sport
	if v == nil {
		return
	}
	return *v, true
}

// OldSport returns the old "sport" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldSport(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSport: %w", err)
	}
	return oldValue.Sport, nil
}

// ResetSport resets all changes to the "sport" field.
func (m *GameMutation) ResetSport() {
	m.sport = nil
}

// SetGender sets the "gender" field.
func (m *GameMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *GameMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *GameMutation) ResetGender() {
	m.gender = nil
}

// SetSeason sets the "season" field.
func (m *GameMutation) SetSeason(s string) {
	m.season = &s
}

// Season returns the value of the "season" field in the mutation.
func (m *GameMutation) Season() (r string, exists bool) {
	v := m.season
	if v == nil {
		return
	}
	return *v, true
}

// OldSeason returns the old "season" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldSeason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeason: %w", err)
	}
	return oldValue.Season, nil
}

// ResetSeason resets all changes to the "season" field.
func (m *GameMutation) ResetSeason() {
	m.season = nil
}

// SetDate sets the "date" field.
func (m *GameMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *GameMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *GameMutation) ResetDate() {
	m.date = nil
}

// SetGameTime sets the "game_time" field.
func (m *GameMutation) SetGameTime(s string) {
	m.game_time = &s
}

// GameTime returns the value of the "game_time" field in the mutation.
func (m *GameMutation) GameTime() (r string, exists bool) {
	v := m.game_time
	if v == nil {
		return
	}
	return *v, true
}

// OldGameTime returns the old "game_time" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldGameTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameTime: %w", err)
	}
	return oldValue.GameTime, nil
}

// ClearGameTime clears the value of the "game_time" field.
func (m *GameMutation) ClearGameTime() {
	m.game_time = nil
	m.clearedFields[game.FieldGameTime] = struct{}{}
}

// GameTimeCleared returns if the "game_time" field was cleared in this mutation.
func (m *GameMutation) GameTimeCleared() bool {
	_, ok := m.clearedFields[game.FieldGameTime]
	return ok
}

// ResetGameTime resets all changes to the "game_time" field.
func (m *GameMutation) ResetGameTime() {
	m.game_time = nil
	delete(m.clearedFields, game.FieldGameTime)
}

// SetOpponent sets the "opponent" field.
func (m *GameMutation) SetOpponent(s string) {
	m.opponent = &s
}

// Opponent returns the value of the "opponent" field in the mutation.
func (m *GameMutation) Opponent() (r string, exists bool) {
	v := m.opponent
	if v == nil {
		return
	}
	return *v, true
}

// OldOpponent returns the old "opponent" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldOpponent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpponent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpponent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpponent: %w", err)
	}
	return oldValue.Opponent, nil
}

// ResetOpponent resets all changes to the "opponent" field.
func (m *GameMutation) ResetOpponent() {
	m.opponent = nil
}

// SetOpponentCity sets the "opponent_city" field.
func (m *GameMutation) SetOpponentCity(s string) {
	m.opponent_city = &s
}

// OpponentCity returns the value of the "opponent_city" field in the mutation.
func (m *GameMutation) OpponentCity() (r string, exists bool) {
	v := m.opponent_city
	if v == nil {
		return
	}
	return *v, true
}

// OldOpponentCity returns the old "opponent_city" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldOpponentCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpponentCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpponentCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpponentCity: %w", err)
	}
	return oldValue.OpponentCity, nil
}

// ClearOpponentCity clears the value of the "opponent_city" field.
func (m *GameMutation) ClearOpponentCity() {
	m.opponent_city = nil
	m.clearedFields[game.FieldOpponentCity] = struct{}{}
}

// OpponentCityCleared returns if the "opponent_city" field was cleared in this mutation.
func (m *GameMutation) OpponentCityCleared() bool {
	_, ok := m.clearedFields[game.FieldOpponentCity]
	return ok
}

// ResetOpponentCity resets all changes to the "opponent_city" field.
func (m *GameMutation) ResetOpponentCity() {
	m.opponent_city = nil
	delete(m.clearedFields, game.FieldOpponentCity)
}

// SetIsHome sets the "is_home" field.
func (m *GameMutation) SetIsHome(b bool) {
	m.is_home = &b
}

// IsHome returns the value of the "is_home" field in the mutation.
func (m *GameMutation) IsHome() (r bool, exists bool) {
	v := m.is_home
	if v == nil {
		return
	}
	return *v, true
}

// OldIsHome returns the old "is_home" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldIsHome(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsHome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsHome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsHome: %w", err)
	}
	return oldValue.IsHome, nil
}

// ResetIsHome resets all changes to the "is_home" field.
func (m *GameMutation) ResetIsHome() {
	m.is_home = nil
}

// SetIsConference sets the "is_conference" field.
func (m *GameMutation) SetIsConference(b bool) {
	m.is_conference = &b
}

// IsConference returns the value of the "is_conference" field in the mutation.
func (m *GameMutation) IsConference() (r bool, exists bool) {
	v := m.is_conference
	if v == nil {
		return
	}
	return *v, true
}

// OldIsConference returns the old "is_conference" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldIsConference(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsConference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsConference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsConference: %w", err)
	}
	return oldValue.IsConference, nil
}

// ResetIsConference resets all changes to the "is_conference" field.
func (m *GameMutation) ResetIsConference() {
	m.is_conference = nil
}

// SetLocation sets the "location" field.
func (m *GameMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *GameMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *GameMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[game.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *GameMutation) LocationCleared() bool {
	_, ok := m.clearedFields[game.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *GameMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, game.FieldLocation)
}

// SetHomeScore sets the "home_score" field.
func (m *GameMutation) SetHomeScore(i int) {
	m.home_score = &i
	m.addhome_score = nil
}

// HomeScore returns the value of the "home_score" field in the mutation.
func (m *GameMutation) HomeScore() (r int, exists bool) {
	v := m.home_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHomeScore returns the old "home_score" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldHomeScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHomeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHomeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHomeScore: %w", err)
	}
	return oldValue.HomeScore, nil
}

// AddHomeScore adds i to the "home_score" field.
func (m *GameMutation) AddHomeScore(i int) {
	if m.addhome_score != nil {
		*m.addhome_score += i
	} else {
		m.addhome_score = &i
	}
}

// AddedHomeScore returns the value that was added to the "home_score" field in this mutation.
func (m *GameMutation) AddedHomeScore() (r int, exists bool) {
	v := m.addhome_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearHomeScore clears the value of the "home_score" field.
func (m *GameMutation) ClearHomeScore() {
	m.home_score = nil
	m.addhome_score = nil
	m.clearedFields[game.FieldHomeScore] = struct{}{}
}

// HomeScoreCleared returns if the "home_score" field was cleared in this mutation.
func (m *GameMutation) HomeScoreCleared() bool {
	_, ok := m.clearedFields[game.FieldHomeScore]
	return ok
}

// ResetHomeScore resets all changes to the "home_score" field.
func (m *GameMutation) ResetHomeScore() {
	m.home_score = nil
	m.addhome_score = nil
	delete(m.clearedFields, game.FieldHomeScore)
}

// SetAwayScore sets the "away_score" field.
func (m *GameMutation) SetAwayScore(i int) {
	m.away_score = &i
	m.addaway_score = nil
}

// AwayScore returns the value of the "away_score" field in the mutation.
func (m *GameMutation) AwayScore() (r int, exists bool) {
	v := m.away_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAwayScore returns the old "away_score" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldAwayScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwayScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwayScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwayScore: %w", err)
	}
	return oldValue.AwayScore, nil
}

// AddAwayScore adds i to the "away_score" field.
func (m *GameMutation) AddAwayScore(i int) {
	if m.addaway_score != nil {
		*m.addaway_score += i
	} else {
		m.addaway_score = &i
	}
}

// AddedAwayScore returns the value that was added to the "away_score" field in this mutation.
func (m *GameMutation) AddedAwayScore() (r int, exists bool) {
	v := m.addaway_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearAwayScore clears the value of the "away_score" field.
func (m *GameMutation) ClearAwayScore() {
	m.away_score = nil
	m.addaway_score = nil
	m.clearedFields[game.FieldAwayScore] = struct{}{}
}

// AwayScoreCleared returns if the "away_score" field was cleared in this mutation.
func (m *GameMutation) AwayScoreCleared() bool {
	_, ok := m.clearedFields[game.FieldAwayScore]
	return ok
}

// ResetAwayScore resets all changes to the "away_score" field.
func (m *GameMutation) ResetAwayScore() {
	m.away_score = nil
	m.addaway_score = nil
	delete(m.clearedFields, game.FieldAwayScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *GameMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GameMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GameMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSchool clears the "school" edge to the School entity.
func (m *GameMutation) ClearSchool() {
	m.clearedschool = true
	m.clearedFields[game.FieldSchoolID] = struct{}{}
}

// SchoolCleared reports if the "school" edge to the School entity was cleared.
func (m *GameMutation) SchoolCleared() bool {
	return m.clearedschool
}

// SchoolIDs returns the "school" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SchoolID instead. It exists only for internal usage by the builders.
func (m *GameMutation) SchoolIDs() (ids []uuid.UUID) {
	if id := m.school; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchool resets all changes to the "school" edge.
func (m *GameMutation) ResetSchool() {
	m.school = nil
	m.clearedschool = false
}

// Where appends a list predicates to the GameMutation builder.
func (m *GameMutation) Where(ps ...predicate.Game) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Game, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Game).
func (m *GameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.school != nil {
		fields = append(fields, game.FieldSchoolID)
	}
	if m.sport != nil {
		fields = append(fields, game.FieldSport)
	}
	if m.gender != nil {
		fields = append(fields, game.FieldGender)
	}
	if m.season != nil {
		fields = append(fields, game.FieldSeason)
	}
	if m.date != nil {
		fields = append(fields, game.FieldDate)
	}
	if m.game_time != nil {
		fields = append(fields, game.FieldGameTime)
	}
	if m.opponent != nil {
		fields = append(fields, game.FieldOpponent)
	}
	if m.opponent_city != nil {
		fields = append(fields, game.FieldOpponentCity)
	}
	if m.is_home != nil {
		fields = append(fields, game.FieldIsHome)
	}
	if m.is_conference != nil {
		fields = append(fields, game.FieldIsConference)
	}
	if m.location != nil {
		fields = append(fields, game.FieldLocation)
	}
	if m.home_score != nil {
		fields = append(fields, game.FieldHomeScore)
	}
	if m.away_score != nil {
		fields = append(fields, game.FieldAwayScore)
	}
	if m.created_at != nil {
		fields = append(fields, game.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case game.FieldSchoolID:
		return m.SchoolID()
	case game.FieldSport:
		return m.Sport()
	case game.FieldGender:
		return m.Gender()
	case game.FieldSeason:
		return m.Season()
	case game.FieldDate:
		return m.Date()
	case game.FieldGameTime:
		return m.GameTime()
	case game.FieldOpponent:
		return m.Opponent()
	case game.FieldOpponentCity:
		return m.OpponentCity()
	case game.FieldIsHome:
		return m.IsHome()
	case game.FieldIsConference:
		return m.IsConference()
	case game.FieldLocation:
		return m.Location()
	case game.FieldHomeScore:
		return m.HomeScore()
	case game.FieldAwayScore:
		return m.AwayScore()
	case game.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case game.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case game.FieldSport:
		return m.OldSport(ctx)
	case game.FieldGender:
		return m.OldGender(ctx)
	case game.FieldSeason:
		return m.OldSeason(ctx)
	case game.FieldDate:
		return m.OldDate(ctx)
	case game.FieldGameTime:
		return m.OldGameTime(ctx)
	case game.FieldOpponent:
		return m.OldOpponent(ctx)
	case game.FieldOpponentCity:
		return m.OldOpponentCity(ctx)
	case game.FieldIsHome:
		return m.OldIsHome(ctx)
	case game.FieldIsConference:
		return m.OldIsConference(ctx)
	case game.FieldLocation:
		return m.OldLocation(ctx)
	case game.FieldHomeScore:
		return m.OldHomeScore(ctx)
	case game.FieldAwayScore:
		return m.OldAwayScore(ctx)
	case game.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Game field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case game.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case game.FieldSport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSport(v)
		return nil
	case game.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case game.FieldSeason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeason(v)
		return nil
	case game.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case game.FieldGameTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameTime(v)
		return nil
	case game.FieldOpponent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpponent(v)
		return nil
	case game.FieldOpponentCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpponentCity(v)
		return nil
	case game.FieldIsHome:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsHome(v)
		return nil
	case game.FieldIsConference:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsConference(v)
		return nil
	case game.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case game.FieldHomeScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHomeScore(v)
		return nil
	case game.FieldAwayScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwayScore(v)
		return nil
	case game.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Game field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameMutation) AddedFields() []string {
	var fields []string
	if m.addhome_score != nil {
		fields = append(fields, game.FieldHomeScore)
	}
	if m.addaway_score != nil {
		fields = append(fields, game.FieldAwayScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case game.FieldHomeScore:
		return m.AddedHomeScore()
	case game.FieldAwayScore:
		return m.AddedAwayScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameMutation) AddField(name string, value ent.Value) error {
	switch name {
	case game.FieldHomeScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHomeScore(v)
		return nil
	case game.FieldAwayScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAwayScore(v)
		return nil
	}
	return fmt.Errorf("unknown Game numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(game.FieldGameTime) {
		fields = append(fields, game.FieldGameTime)
	}
	if m.FieldCleared(game.FieldOpponentCity) {
		fields = append(fields, game.FieldOpponentCity)
	}
	if m.FieldCleared(game.FieldLocation) {
		fields = append(fields, game.FieldLocation)
	}
	if m.FieldCleared(game.FieldHomeScore) {
		fields = append(fields, game.FieldHomeScore)
	}
	if m.FieldCleared(game.FieldAwayScore) {
		fields = append(fields, game.FieldAwayScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameMutation) ClearField(name string) error {
	switch name {
	case game.FieldGameTime:
		m.ClearGameTime()
		return nil
	case game.FieldOpponentCity:
		m.ClearOpponentCity()
		return nil
	case game.FieldLocation:
		m.ClearLocation()
		return nil
	case game.FieldHomeScore:
		m.ClearHomeScore()
		return nil
	case game.FieldAwayScore:
		m.ClearAwayScore()
		return nil
	}
	return fmt.Errorf("unknown Game nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameMutation) ResetField(name string) error {
	switch name {
	case game.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case game.FieldSport:
		m.ResetSport()
		return nil
	case game.FieldGender:
		m.ResetGender()
		return nil
	case game.FieldSeason:
		m.ResetSeason()
		return nil
	case game.FieldDate:
		m.ResetDate()
		return nil
	case game.FieldGameTime:
		m.ResetGameTime()
		return nil
	case game.FieldOpponent:
		m.ResetOpponent()
		return nil
	case game.FieldOpponentCity:
		m.ResetOpponentCity()
		return nil
	case game.FieldIsHome:
		m.ResetIsHome()
		return nil
	case game.FieldIsConference:
		m.ResetIsConference()
		return nil
	case game.FieldLocation:
		m.ResetLocation()
		return nil
	case game.FieldHomeScore:
		m.ResetHomeScore()
		return nil
	case game.FieldAwayScore:
		m.ResetAwayScore()
		return nil
	case game.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Game field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.school != nil {
		edges = append(edges, game.EdgeSchool)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case game.EdgeSchool:
		if id := m.school; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedschool {
		edges = append(edges, game.EdgeSchool)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameMutation) EdgeCleared(name string) bool {
	switch name {
	case game.EdgeSchool:
		return m.clearedschool
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameMutation) ClearEdge(name string) error {
	switch name {
	case game.EdgeSchool:
		m.ClearSchool()
		return nil
	}
	return fmt.Errorf("unknown Game unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameMutation) ResetEdge(name string) error {
	switch name {
	case game.EdgeSchool:
		m.ResetSchool()
		return nil
	}
	return fmt.Errorf("unknown Game edge %s", name)
}

// PlayerMutation represents an operation that mutates the Player nodes in the graph.
type PlayerMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	first_name       *string
	last_name        *string
	jersey_number    *string
	position         *string
	grade            *string
	height_feet      *int
	addheight_feet   *int
	height_inches    *int
	addheight_inches *int
	weight           *int
	addweight        *int
	sport            *string
	gender           *string
	season           *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	school           *uuid.UUID
	clearedschool    bool
	done             bool
	oldValue         func(context.Context) (*Player, error)
	predicates       []predicate.Player
}

var _ ent.Mutation = (*PlayerMutation)(nil)

// playerOption allows management of the mutation configuration using functional options.
type playerOption func(*PlayerMutation)

// newPlayerMutation creates new mutation for the Player entity.
func newPlayerMutation(c config, op Op, opts ...playerOption) *PlayerMutation {
	m := &PlayerMutation{
		config:        c,
		op:            op,
		typ:           TypePlayer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlayerID sets the ID field of the mutation.
func withPlayerID(id uuid.UUID) playerOption {
	return func(m *PlayerMutation) {
		var (
			err   error
			once  sync.Once
			value *Player
		)
		m.oldValue = func(ctx context.Context) (*Player, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Player.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlayer sets the old Player of the mutation.
func withPlayer(node *Player) playerOption {
	return func(m *PlayerMutation) {
		m.oldValue = func(context.Context) (*Player, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlayerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlayerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Player entities.
func (m *PlayerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlayerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlayerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Player.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSchoolID sets the "school_id" field.
func (m *PlayerMutation) SetSchoolID(u uuid.UUID) {
	m.school = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *PlayerMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *PlayerMutation) ResetSchoolID() {
	m.school = nil
}

// SetFirstName sets the "first_name" field.
func (m *PlayerMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PlayerMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PlayerMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PlayerMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PlayerMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PlayerMutation) ResetLastName() {
	m.last_name = nil
}

// SetJerseyNumber sets the "jersey_number" field.
func (m *PlayerMutation) SetJerseyNumber(s string) {
	m.jersey_number = &s
}

// JerseyNumber returns the value of the "jersey_number" field in the mutation.
func (m *PlayerMutation) JerseyNumber() (r string, exists bool) {
	v := m.jersey_number
	if v == nil {
		return
	}
	return *v, true
}

// OldJerseyNumber returns the old "jersey_number" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldJerseyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJerseyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJerseyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJerseyNumber: %w", err)
	}
	return oldValue.JerseyNumber, nil
}

// ClearJerseyNumber clears the value of the "jersey_number" field.
func (m *PlayerMutation) ClearJerseyNumber() {
	m.jersey_number = nil
	m.clearedFields[player.FieldJerseyNumber] = struct{}{}
}

// JerseyNumberCleared returns if the "jersey_number" field was cleared in this mutation.
func (m *PlayerMutation) JerseyNumberCleared() bool {
	_, ok := m.clearedFields[player.FieldJerseyNumber]
	return ok
}

// ResetJerseyNumber resets all changes to the "jersey_number" field.
func (m *PlayerMutation) ResetJerseyNumber() {
	m.jersey_number = nil
	delete(m.clearedFields, player.FieldJerseyNumber)
}

// SetPosition sets the "position" field.
func (m *PlayerMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *PlayerMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ClearPosition clears the value of the "position" field.
func (m *PlayerMutation) ClearPosition() {
	m.position = nil
	m.clearedFields[player.FieldPosition] = struct{}{}
}

// PositionCleared returns if the "position" field was cleared in this mutation.
func (m *PlayerMutation) PositionCleared() bool {
	_, ok := m.clearedFields[player.FieldPosition]
	return ok
}

// ResetPosition resets all changes to the "position" field.
func (m *PlayerMutation) ResetPosition() {
	m.position = nil
	delete(m.clearedFields, player.FieldPosition)
}

// SetGrade sets the "grade" field.
func (m *PlayerMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *PlayerMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldGrade(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ClearGrade clears the value of the "grade" field.
func (m *PlayerMutation) ClearGrade() {
	m.grade = nil
	m.clearedFields[player.FieldGrade] = struct{}{}
}

// GradeCleared returns if the "grade" field was cleared in this mutation.
func (m *PlayerMutation) GradeCleared() bool {
	_, ok := m.clearedFields[player.FieldGrade]
	return ok
}

// ResetGrade resets all changes to the "grade" field.
func (m *PlayerMutation) ResetGrade() {
	m.grade = nil
	delete(m.clearedFields, player.FieldGrade)
}

// SetHeightFeet sets the "height_feet" field.
func (m *PlayerMutation) SetHeightFeet(i int) {
	m.height_feet = &i
	m.addheight_feet = nil
}

// HeightFeet returns the value of the "height_feet" field in the mutation.
func (m *PlayerMutation) HeightFeet() (r int, exists bool) {
	v := m.height_feet
	if v == nil {
		return
	}
	return *v, true
}

// OldHeightFeet returns the old "height_feet" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldHeightFeet(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeightFeet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeightFeet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeightFeet: %w", err)
	}
	return oldValue.HeightFeet, nil
}

// AddHeightFeet adds i to the "height_feet" field.
func (m *PlayerMutation) AddHeightFeet(i int) {
	if m.addheight_feet != nil {
		*m.addheight_feet += i
	} else {
		m.addheight_feet = &i
	}
}

// AddedHeightFeet returns the value that was added to the "height_feet" field in this mutation.
func (m *PlayerMutation) AddedHeightFeet() (r int, exists bool) {
	v := m.addheight_feet
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeightFeet clears the value of the "height_feet" field.
func (m *PlayerMutation) ClearHeightFeet() {
	m.height_feet = nil
	m.addheight_feet = nil
	m.clearedFields[player.FieldHeightFeet] = struct{}{}
}

// HeightFeetCleared returns if the "height_feet" field was cleared in this mutation.
func (m *PlayerMutation) HeightFeetCleared() bool {
	_, ok := m.clearedFields[player.FieldHeightFeet]
	return ok
}

// ResetHeightFeet resets all changes to the "height_feet" field.
func (m *PlayerMutation) ResetHeightFeet() {
	m.height_feet = nil
	m.addheight_feet = nil
	delete(m.clearedFields, player.FieldHeightFeet)
}

// SetHeightInches sets the "height_inches" field.
func (m *PlayerMutation) SetHeightInches(i int) {
	m.height_inches = &i
	m.addheight_inches = nil
}

// HeightInches returns the value of the "height_inches" field in the mutation.
func (m *PlayerMutation) HeightInches() (r int, exists bool) {
	v := m.height_inches
	if v == nil {
		return
	}
	return *v, true
}

// OldHeightInches returns the old "height_inches" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldHeightInches(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeightInches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeightInches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeightInches: %w", err)
	}
	return oldValue.HeightInches, nil
}

// AddHeightInches adds i to the "height_inches" field.
func (m *PlayerMutation) AddHeightInches(i int) {
	if m.addheight_inches != nil {
		*m.addheight_inches += i
	} else {
		m.addheight_inches = &i
	}
}

// AddedHeightInches returns the value that was added to the "height_inches" field in this mutation.
func (m *PlayerMutation) AddedHeightInches() (r int, exists bool) {
	v := m.addheight_inches
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeightInches clears the value of the "height_inches" field.
func (m *PlayerMutation) ClearHeightInches() {
	m.height_inches = nil
	m.addheight_inches = nil
	m.clearedFields[player.FieldHeightInches] = struct{}{}
}

// HeightInchesCleared returns if the "height_inches" field was cleared in this mutation.
func (m *PlayerMutation) HeightInchesCleared() bool {
	_, ok := m.clearedFields[player.FieldHeightInches]
	return ok
}

// ResetHeightInches resets all changes to the "height_inches" field.
func (m *PlayerMutation) ResetHeightInches() {
	m.height_inches = nil
	m.addheight_inches = nil
	delete(m.clearedFields, player.FieldHeightInches)
}

// SetWeight sets the "weight" field.
func (m *PlayerMutation) SetWeight(i int) {
	m.weight = &i
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *PlayerMutation) Weight() (r int, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldWeight(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds i to the "weight" field.
func (m *PlayerMutation) AddWeight(i int) {
	if m.addweight != nil {
		*m.addweight += i
	} else {
		m.addweight = &i
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *PlayerMutation) AddedWeight() (r int, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ClearWeight clears the value of the "weight" field.
func (m *PlayerMutation) ClearWeight() {
	m.weight = nil
	m.addweight = nil
	m.clearedFields[player.FieldWeight] = struct{}{}
}

// WeightCleared returns if the "weight" field was cleared in this mutation.
func (m *PlayerMutation) WeightCleared() bool {
	_, ok := m.clearedFields[player.FieldWeight]
	return ok
}

// ResetWeight resets all changes to the "weight" field.
func (m *PlayerMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
	delete(m.clearedFields, player.FieldWeight)
}

// SetSport sets the "sport" field.
func (m *PlayerMutation) SetSport(s string) {
	m.sport = &s
}

// Sport returns the value of the "sport" field in the mutation.
func (m *PlayerMutation) Sport() (r string, exists bool) {
	v := m.sport
	if v == nil {
		return
	}
	return *v, true
}

// OldSport returns the old "sport" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldSport(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSport: %w", err)
	}
	return oldValue.Sport, nil
}

// ResetSport resets all changes to the "sport" field.
func (m *PlayerMutation) ResetSport() {
	m.sport = nil
}

// SetGender sets the "gender" field.
func (m *PlayerMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PlayerMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *PlayerMutation) ResetGender() {
	m.gender = nil
}

// SetSeason sets the "season" field.
func (m *PlayerMutation) SetSeason(s string) {
	m.season = &s
}

// Season returns the value of the "season" field in the mutation.
func (m *PlayerMutation) Season() (r string, exists bool) {
	v := m.season
	if v == nil {
		return
	}
	return *v, true
}

// OldSeason returns the old "season" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldSeason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeason: %w", err)
	}
	return oldValue.Season, nil
}

// ResetSeason resets all changes to the "season" field.
func (m *PlayerMutation) ResetSeason() {
	m.season = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlayerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlayerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlayerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlayerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlayerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Player entity.
// If the Player object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlayerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSchool clears the "school" edge to the School entity.
func (m *PlayerMutation) ClearSchool() {
	m.clearedschool = true
	m.clearedFields[player.FieldSchoolID] = struct{}{}
}

// SchoolCleared reports if the "school" edge to the School entity was cleared.
func (m *PlayerMutation) SchoolCleared() bool {
	return m.clearedschool
}

// SchoolIDs returns the "school" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SchoolID instead. It exists only for internal usage by the builders.
func (m *PlayerMutation) SchoolIDs() (ids []uuid.UUID) {
	if id := m.school; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchool resets all changes to the "school" edge.
func (m *PlayerMutation) ResetSchool() {
	m.school = nil
	m.clearedschool = false
}

// Where appends a list predicates to the PlayerMutation builder.
func (m *PlayerMutation) Where(ps ...predicate.Player) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlayerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlayerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Player, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlayerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlayerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Player).
func (m *PlayerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlayerMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.school != nil {
		fields = append(fields, player.FieldSchoolID)
	}
	if m.first_name != nil {
		fields = append(fields, player.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, player.FieldLastName)
	}
	if m.jersey_number != nil {
		fields = append(fields, player.FieldJerseyNumber)
	}
	if m.position != nil {
		fields = append(fields, player.FieldPosition)
	}
	if m.grade != nil {
		fields = append(fields, player.FieldGrade)
	}
	if m.height_feet != nil {
		fields = append(fields, player.FieldHeightFeet)
	}
	if m.height_inches != nil {
		fields = append(fields, player.FieldHeightInches)
	}
	if m.weight != nil {
		fields = append(fields, player.FieldWeight)
	}
	if m.sport != nil {
		fields = append(fields, player.FieldSport)
	}
	if m.gender != nil {
		fields = append(fields, player.FieldGender)
	}
	if m.season != nil {
		fields = append(fields, player.FieldSeason)
	}
	if m.created_at != nil {
		fields = append(fields, player.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, player.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlayerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case player.FieldSchoolID:
		return m.SchoolID()
	case player.FieldFirstName:
		return m.FirstName()
	case player.FieldLastName:
		return m.LastName()
	case player.FieldJerseyNumber:
		return m.JerseyNumber()
	case player.FieldPosition:
		return m.Position()
	case player.FieldGrade:
		return m.Grade()
	case player.FieldHeightFeet:
		return m.HeightFeet()
	case player.FieldHeightInches:
		return m.HeightInches()
	case player.FieldWeight:
		return m.Weight()
	case player.FieldSport:
		return m.Sport()
	case player.FieldGender:
		return m.Gender()
	case player.FieldSeason:
		return m.Season()
	case player.FieldCreatedAt:
		return m.CreatedAt()
	case player.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlayerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case player.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case player.FieldFirstName:
		return m.OldFirstName(ctx)
	case player.FieldLastName:
		return m.OldLastName(ctx)
	case player.FieldJerseyNumber:
		return m.OldJerseyNumber(ctx)
	case player.FieldPosition:
		return m.OldPosition(ctx)
	case player.FieldGrade:
		return m.OldGrade(ctx)
	case player.FieldHeightFeet:
		return m.OldHeightFeet(ctx)
	case player.FieldHeightInches:
		return m.OldHeightInches(ctx)
	case player.FieldWeight:
		return m.OldWeight(ctx)
	case player.FieldSport:
		return m.OldSport(ctx)
	case player.FieldGender:
		return m.OldGender(ctx)
	case player.FieldSeason:
		return m.OldSeason(ctx)
	case player.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case player.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Player field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case player.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case player.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case player.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case player.FieldJerseyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJerseyNumber(v)
		return nil
	case player.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case player.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case player.FieldHeightFeet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeightFeet(v)
		return nil
	case player.FieldHeightInches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeightInches(v)
		return nil
	case player.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case player.FieldSport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSport(v)
		return nil
	case player.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case player.FieldSeason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeason(v)
		return nil
	case player.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case player.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Player field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlayerMutation) AddedFields() []string {
	var fields []string
	if m.addheight_feet != nil {
		fields = append(fields, player.FieldHeightFeet)
	}
	if m.addheight_inches != nil {
		fields = append(fields, player.FieldHeightInches)
	}
	if m.addweight != nil {
		fields = append(fields, player.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlayerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case player.FieldHeightFeet:
		return m.AddedHeightFeet()
	case player.FieldHeightInches:
		return m.AddedHeightInches()
	case player.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case player.FieldHeightFeet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeightFeet(v)
		return nil
	case player.FieldHeightInches:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeightInches(v)
		return nil
	case player.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown Player numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlayerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(player.FieldJerseyNumber) {
		fields = append(fields, player.FieldJerseyNumber)
	}
	if m.FieldCleared(player.FieldPosition) {
		fields = append(fields, player.FieldPosition)
	}
	if m.FieldCleared(player.FieldGrade) {
		fields = append(fields, player.FieldGrade)
	}
	if m.FieldCleared(player.FieldHeightFeet) {
		fields = append(fields, player.FieldHeightFeet)
	}
	if m.FieldCleared(player.FieldHeightInches) {
		fields = append(fields, player.FieldHeightInches)
	}
	if m.FieldCleared(player.FieldWeight) {
		fields = append(fields, player.FieldWeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlayerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlayerMutation) ClearField(name string) error {
	switch name {
	case player.FieldJerseyNumber:
		m.ClearJerseyNumber()
		return nil
	case player.FieldPosition:
		m.ClearPosition()
		return nil
	case player.FieldGrade:
		m.ClearGrade()
		return nil
	case player.FieldHeightFeet:
		m.ClearHeightFeet()
		return nil
	case player.FieldHeightInches:
		m.ClearHeightInches()
		return nil
	case player.FieldWeight:
		m.ClearWeight()
		return nil
	}
	return fmt.Errorf("unknown Player nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlayerMutation) ResetField(name string) error {
	switch name {
	case player.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case player.FieldFirstName:
		m.ResetFirstName()
		return nil
	case player.FieldLastName:
		m.ResetLastName()
		return nil
	case player.FieldJerseyNumber:
		m.ResetJerseyNumber()
		return nil
	case player.FieldPosition:
		m.ResetPosition()
		return nil
	case player.FieldGrade:
		m.ResetGrade()
		return nil
	case player.FieldHeightFeet:
		m.ResetHeightFeet()
		return nil
	case player.FieldHeightInches:
		m.ResetHeightInches()
		return nil
	case player.FieldWeight:
		m.ResetWeight()
		return nil
	case player.FieldSport:
		m.ResetSport()
		return nil
	case player.FieldGender:
		m.ResetGender()
		return nil
	case player.FieldSeason:
		m.ResetSeason()
		return nil
	case player.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case player.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Player field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlayerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.school != nil {
		edges = append(edges, player.EdgeSchool)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlayerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case player.EdgeSchool:
		if id := m.school; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlayerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlayerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlayerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedschool {
		edges = append(edges, player.EdgeSchool)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlayerMutation) EdgeCleared(name string) bool {
	switch name {
	case player.EdgeSchool:
		return m.clearedschool
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlayerMutation) ClearEdge(name string) error {
	switch name {
	case player.EdgeSchool:
		m.ClearSchool()
		return nil
	}
	return fmt.Errorf("unknown Player unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlayerMutation) ResetEdge(name string) error {
	switch name {
	case player.EdgeSchool:
		m.ResetSchool()
		return nil
	}
	return fmt.Errorf("unknown Player edge %s", name)
}

// SchoolMutation represents an operation that mutates the School nodes in the graph.
type SchoolMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	key            *string
	name           *string
	city           *string
	classification *string
	conference     *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	aliases        map[uuid.UUID]struct{}
	removedaliases map[uuid.UUID]struct{}
	clearedaliases bool
	players        map[uuid.UUID]struct{}
	removedplayers map[uuid.UUID]struct{}
	clearedplayers bool
	games          map[uuid.UUID]struct{}
	removedgames   map[uuid.UUID]struct{}
	clearedgames   bool
	done           bool
	oldValue       func(context.Context) (*School, error)
	predicates     []predicate.School
}

var _ ent.Mutation = (*SchoolMutation)(nil)

// schoolOption allows management of the mutation configuration using functional options.
type schoolOption func(*SchoolMutation)

// newSchoolMutation creates new mutation for the School entity.
func newSchoolMutation(c config, op Op, opts ...schoolOption) *SchoolMutation {
	m := &SchoolMutation{
		config:        c,
		op:            op,
		typ:           TypeSchool,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchoolID sets the ID field of the mutation.
func withSchoolID(id uuid.UUID) schoolOption {
	return func(m *SchoolMutation) {
		var (
			err   error
			once  sync.Once
			value *School
		)
		m.oldValue = func(ctx context.Context) (*School, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().School.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchool sets the old School of the mutation.
func withSchool(node *School) schoolOption {
	return func(m *SchoolMutation) {
		m.oldValue = func(context.Context) (*School, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchoolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchoolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of School entities.
func (m *SchoolMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchoolMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchoolMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().School.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SchoolMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SchoolMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SchoolMutation) ResetKey() {
	m.key = nil
}

// SetName sets the "name" field.
func (m *SchoolMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchoolMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchoolMutation) ResetName() {
	m.name = nil
}

// SetCity sets the "city" field.
func (m *SchoolMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *SchoolMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *SchoolMutation) ClearCity() {
	m.city = nil
	m.clearedFields[school.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *SchoolMutation) CityCleared() bool {
	_, ok := m.clearedFields[school.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *SchoolMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, school.FieldCity)
}

// SetClassification sets the "classification" field.
func (m *SchoolMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *SchoolMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ClearClassification clears the value of the "classification" field.
func (m *SchoolMutation) ClearClassification() {
	m.classification = nil
	m.clearedFields[school.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *SchoolMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[school.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *SchoolMutation) ResetClassification() {
	m.classification = nil
	delete(m.clearedFields, school.FieldClassification)
}

// SetConference sets the "conference" field.
func (m *SchoolMutation) SetConference(s string) {
	m.conference = &s
}

// Conference returns the value of the "conference" field in the mutation.
func (m *SchoolMutation) Conference() (r string, exists bool) {
	v := m.conference
	if v == nil {
		return
	}
	return *v, true
}

// OldConference returns the old "conference" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldConference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConference: %w", err)
	}
	return oldValue.Conference, nil
}

// ClearConference clears the value of the "conference" field.
func (m *SchoolMutation) ClearConference() {
	m.conference = nil
	m.clearedFields[school.FieldConference] = struct{}{}
}

// ConferenceCleared returns if the "conference" field was cleared in this mutation.
func (m *SchoolMutation) ConferenceCleared() bool {
	_, ok := m.clearedFields[school.FieldConference]
	return ok
}

// ResetConference resets all changes to the "conference" field.
func (m *SchoolMutation) ResetConference() {
	m.conference = nil
	delete(m.clearedFields, school.FieldConference)
}

// SetCreatedAt sets the "created_at" field.
func (m *SchoolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchoolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SchoolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SchoolMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SchoolMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the School entity.
// If the School object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SchoolMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAliasIDs adds the "aliases" edge to the SchoolAlias entity by ids.
func (m *SchoolMutation) AddAliasIDs(ids ...uuid.UUID) {
	if m.aliases == nil {
		m.aliases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.aliases[ids[i]] = struct{}{}
	}
}

// ClearAliases clears the "aliases" edge to the SchoolAlias entity.
func (m *SchoolMutation) ClearAliases() {
	m.clearedaliases = true
}

// AliasesCleared reports if the "aliases" edge to the SchoolAlias entity was cleared.
func (m *SchoolMutation) AliasesCleared() bool {
	return m.clearedaliases
}

// RemoveAliasIDs removes the "aliases" edge to the SchoolAlias entity by IDs.
func (m *SchoolMutation) RemoveAliasIDs(ids ...uuid.UUID) {
	if m.removedaliases == nil {
		m.removedaliases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.aliases, ids[i])
		m.removedaliases[ids[i]] = struct{}{}
	}
}

// RemovedAliases returns the removed IDs of the "aliases" edge to the SchoolAlias entity.
func (m *SchoolMutation) RemovedAliasesIDs() (ids []uuid.UUID) {
	for id := range m.removedaliases {
		ids = append(ids, id)
	}
	return
}

// AliasesIDs returns the "aliases" edge IDs in the mutation.
func (m *SchoolMutation) AliasesIDs() (ids []uuid.UUID) {
	for id := range m.aliases {
		ids = append(ids, id)
	}
	return
}

// ResetAliases resets all changes to the "aliases" edge.
func (m *SchoolMutation) ResetAliases() {
	m.aliases = nil
	m.clearedaliases = false
	m.removedaliases = nil
}

// AddPlayerIDs adds the "players" edge to the Player entity by ids.
func (m *SchoolMutation) AddPlayerIDs(ids ...uuid.UUID) {
	if m.players == nil {
		m.players = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.players[ids[i]] = struct{}{}
	}
}

// ClearPlayers clears the "players" edge to the Player entity.
func (m *SchoolMutation) ClearPlayers() {
	m.clearedplayers = true
}

// PlayersCleared reports if the "players" edge to the Player entity was cleared.
func (m *SchoolMutation) PlayersCleared() bool {
	return m.clearedplayers
}

// RemovePlayerIDs removes the "players" edge to the Player entity by IDs.
func (m *SchoolMutation) RemovePlayerIDs(ids ...uuid.UUID) {
	if m.removedplayers == nil {
		m.removedplayers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.players, ids[i])
		m.removedplayers[ids[i]] = struct{}{}
	}
}

// RemovedPlayers returns the removed IDs of the "players" edge to the Player entity.
func (m *SchoolMutation) RemovedPlayersIDs() (ids []uuid.UUID) {
	for id := range m.removedplayers {
		ids = append(ids, id)
	}
	return
}

// PlayersIDs returns the "players" edge IDs in the mutation.
func (m *SchoolMutation) PlayersIDs() (ids []uuid.UUID) {
	for id := range m.players {
		ids = append(ids, id)
	}
	return
}

// ResetPlayers resets all changes to the "players" edge.
func (m *SchoolMutation) ResetPlayers() {
	m.players = nil
	m.clearedplayers = false
	m.removedplayers = nil
}

// AddGameIDs adds the "games" edge to the Game entity by ids.
func (m *SchoolMutation) AddGameIDs(ids ...uuid.UUID) {
	if m.games == nil {
		m.games = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.games[ids[i]] = struct{}{}
	}
}

// ClearGames clears the "games" edge to the Game entity.
func (m *SchoolMutation) ClearGames() {
	m.clearedgames = true
}

// GamesCleared reports if the "games" edge to the Game entity was cleared.
func (m *SchoolMutation) GamesCleared() bool {
	return m.clearedgames
}

// RemoveGameIDs removes the "games" edge to the Game entity by IDs.
func (m *SchoolMutation) RemoveGameIDs(ids ...uuid.UUID) {
	if m.removedgames == nil {
		m.removedgames = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.games, ids[i])
		m.removedgames[ids[i]] = struct{}{}
	}
}

// RemovedGames returns the removed IDs of the "games" edge to the Game entity.
func (m *SchoolMutation) RemovedGamesIDs() (ids []uuid.UUID) {
	for id := range m.removedgames {
		ids = append(ids, id)
	}
	return
}

// GamesIDs returns the "games" edge IDs in the mutation.
func (m *SchoolMutation) GamesIDs() (ids []uuid.UUID) {
	for id := range m.games {
		ids = append(ids, id)
	}
	return
}

// ResetGames resets all changes to the "games" edge.
func (m *SchoolMutation) ResetGames() {
	m.games = nil
	m.clearedgames = false
	m.removedgames = nil
}

// Where appends a list predicates to the SchoolMutation builder.
func (m *SchoolMutation) Where(ps ...predicate.School) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchoolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchoolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.School, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchoolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchoolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (School).
func (m *SchoolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchoolMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.key != nil {
		fields = append(fields, school.FieldKey)
	}
	if m.name != nil {
		fields = append(fields, school.FieldName)
	}
	if m.city != nil {
		fields = append(fields, school.FieldCity)
	}
	if m.classification != nil {
		fields = append(fields, school.FieldClassification)
	}
	if m.conference != nil {
		fields = append(fields, school.FieldConference)
	}
	if m.created_at != nil {
		fields = append(fields, school.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, school.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchoolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case school.FieldKey:
		return m.Key()
	case school.FieldName:
		return m.Name()
	case school.FieldCity:
		return m.City()
	case school.FieldClassification:
		return m.Classification()
	case school.FieldConference:
		return m.Conference()
	case school.FieldCreatedAt:
		return m.CreatedAt()
	case school.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchoolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case school.FieldKey:
		return m.OldKey(ctx)
	case school.FieldName:
		return m.OldName(ctx)
	case school.FieldCity:
		return m.OldCity(ctx)
	case school.FieldClassification:
		return m.OldClassification(ctx)
	case school.FieldConference:
		return m.OldConference(ctx)
	case school.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case school.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown School field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchoolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case school.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case school.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case school.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case school.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case school.FieldConference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConference(v)
		return nil
	case school.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case school.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown School field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchoolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchoolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchoolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown School numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchoolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(school.FieldCity) {
		fields = append(fields, school.FieldCity)
	}
	if m.FieldCleared(school.FieldClassification) {
		fields = append(fields, school.FieldClassification)
	}
	if m.FieldCleared(school.FieldConference) {
		fields = append(fields, school.FieldConference)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchoolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchoolMutation) ClearField(name string) error {
	switch name {
	case school.FieldCity:
		m.ClearCity()
		return nil
	case school.FieldClassification:
		m.ClearClassification()
		return nil
	case school.FieldConference:
		m.ClearConference()
		return nil
	}
	return fmt.Errorf("unknown School nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchoolMutation) ResetField(name string) error {
	switch name {
	case school.FieldKey:
		m.ResetKey()
		return nil
	case school.FieldName:
		m.ResetName()
		return nil
	case school.FieldCity:
		m.ResetCity()
		return nil
	case school.FieldClassification:
		m.ResetClassification()
		return nil
	case school.FieldConference:
		m.ResetConference()
		return nil
	case school.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case school.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown School field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchoolMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.aliases != nil {
		edges = append(edges, school.EdgeAliases)
	}
	if m.players != nil {
		edges = append(edges, school.EdgePlayers)
	}
	if m.games != nil {
		edges = append(edges, school.EdgeGames)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchoolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case school.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.aliases))
		for id := range m.aliases {
			ids = append(ids, id)
		}
		return ids
	case school.EdgePlayers:
		ids := make([]ent.Value, 0, len(m.players))
		for id := range m.players {
			ids = append(ids, id)
		}
		return ids
	case school.EdgeGames:
		ids := make([]ent.Value, 0, len(m.games))
		for id := range m.games {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchoolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedaliases != nil {
		edges = append(edges, school.EdgeAliases)
	}
	if m.removedplayers != nil {
		edges = append(edges, school.EdgePlayers)
	}
	if m.removedgames != nil {
		edges = append(edges, school.EdgeGames)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchoolMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case school.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.removedaliases))
		for id := range m.removedaliases {
			ids = append(ids, id)
		}
		return ids
	case school.EdgePlayers:
		ids := make([]ent.Value, 0, len(m.removedplayers))
		for id := range m.removedplayers {
			ids = append(ids, id)
		}
		return ids
	case school.EdgeGames:
		ids := make([]ent.Value, 0, len(m.removedgames))
		for id := range m.removedgames {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchoolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedaliases {
		edges = append(edges, school.EdgeAliases)
	}
	if m.clearedplayers {
		edges = append(edges, school.EdgePlayers)
	}
	if m.clearedgames {
		edges = append(edges, school.EdgeGames)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchoolMutation) EdgeCleared(name string) bool {
	switch name {
	case school.EdgeAliases:
		return m.clearedaliases
	case school.EdgePlayers:
		return m.clearedplayers
	case school.EdgeGames:
		return m.clearedgames
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchoolMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown School unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchoolMutation) ResetEdge(name string) error {
	switch name {
	case school.EdgeAliases:
		m.ResetAliases()
		return nil
	case school.EdgePlayers:
		m.ResetPlayers()
		return nil
	case school.EdgeGames:
		m.ResetGames()
		return nil
	}
	return fmt.Errorf("unknown School edge %s", name)
}

// SchoolAliasMutation represents an operation that mutates the SchoolAlias nodes in the graph.
type SchoolAliasMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	alias         *string
	clearedFields map[string]struct{}
	school        *uuid.UUID
	clearedschool bool
	done          bool
	oldValue      func(context.Context) (*SchoolAlias, error)
	predicates    []predicate.SchoolAlias
}

var _ ent.Mutation = (*SchoolAliasMutation)(nil)

// schoolaliasOption allows management of the mutation configuration using functional options.
type schoolaliasOption func(*SchoolAliasMutation)

// newSchoolAliasMutation creates new mutation for the SchoolAlias entity.
func newSchoolAliasMutation(c config, op Op, opts ...schoolaliasOption) *SchoolAliasMutation {
	m := &SchoolAliasMutation{
		config:        c,
		op:            op,
		typ:           TypeSchoolAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchoolAliasID sets the ID field of the mutation.
func withSchoolAliasID(id uuid.UUID) schoolaliasOption {
	return func(m *SchoolAliasMutation) {
		var (
			err   error
			once  sync.Once
			value *SchoolAlias
		)
		m.oldValue = func(ctx context.Context) (*SchoolAlias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchoolAlias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchoolAlias sets the old SchoolAlias of the mutation.
func withSchoolAlias(node *SchoolAlias) schoolaliasOption {
	return func(m *SchoolAliasMutation) {
		m.oldValue = func(context.Context) (*SchoolAlias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchoolAliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchoolAliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchoolAlias entities.
func (m *SchoolAliasMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchoolAliasMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchoolAliasMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchoolAlias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSchoolID sets the "school_id" field.
func (m *SchoolAliasMutation) SetSchoolID(u uuid.UUID) {
	m.school = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *SchoolAliasMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the SchoolAlias entity.
// If the SchoolAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolAliasMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *SchoolAliasMutation) ResetSchoolID() {
	m.school = nil
}

// SetAlias sets the "alias" field.
func (m *SchoolAliasMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *SchoolAliasMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the SchoolAlias entity.
// If the SchoolAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchoolAliasMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *SchoolAliasMutation) ResetAlias() {
	m.alias = nil
}

// ClearSchool clears the "school" edge to the School entity.
func (m *SchoolAliasMutation) ClearSchool() {
	m.clearedschool = true
	m.clearedFields[schoolalias.FieldSchoolID] = struct{}{}
}

// SchoolCleared reports if the "school" edge to the School entity was cleared.
func (m *SchoolAliasMutation) SchoolCleared() bool {
	return m.clearedschool
}

// SchoolIDs returns the "school" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SchoolID instead. It exists only for internal usage by the builders.
func (m *SchoolAliasMutation) SchoolIDs() (ids []uuid.UUID) {
	if id := m.school; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchool resets all changes to the "school" edge.
func (m *SchoolAliasMutation) ResetSchool() {
	m.school = nil
	m.clearedschool = false
}

// Where appends a list predicates to the SchoolAliasMutation builder.
func (m *SchoolAliasMutation) Where(ps ...predicate.SchoolAlias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchoolAliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchoolAliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchoolAlias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchoolAliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchoolAliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchoolAlias).
func (m *SchoolAliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchoolAliasMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.school != nil {
		fields = append(fields, schoolalias.FieldSchoolID)
	}
	if m.alias != nil {
		fields = append(fields, schoolalias.FieldAlias)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchoolAliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schoolalias.FieldSchoolID:
		return m.SchoolID()
	case schoolalias.FieldAlias:
		return m.Alias()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchoolAliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schoolalias.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case schoolalias.FieldAlias:
		return m.OldAlias(ctx)
	}
	return nil, fmt.Errorf("unknown SchoolAlias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchoolAliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schoolalias.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case schoolalias.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	}
	return fmt.Errorf("unknown SchoolAlias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchoolAliasMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchoolAliasMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchoolAliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SchoolAlias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchoolAliasMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchoolAliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchoolAliasMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SchoolAlias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchoolAliasMutation) ResetField(name string) error {
	switch name {
	case schoolalias.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case schoolalias.FieldAlias:
		m.ResetAlias()
		return nil
	}
	return fmt.Errorf("unknown SchoolAlias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchoolAliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.school != nil {
		edges = append(edges, schoolalias.EdgeSchool)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchoolAliasMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schoolalias.EdgeSchool:
		if id := m.school; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchoolAliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchoolAliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchoolAliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedschool {
		edges = append(edges, schoolalias.EdgeSchool)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchoolAliasMutation) EdgeCleared(name string) bool {
	switch name {
	case schoolalias.EdgeSchool:
		return m.clearedschool
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchoolAliasMutation) ClearEdge(name string) error {
	switch name {
	case schoolalias.EdgeSchool:
		m.ClearSchool()
		return nil
	}
	return fmt.Errorf("unknown SchoolAlias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchoolAliasMutation) ResetEdge(name string) error {
	switch name {
	case schoolalias.EdgeSchool:
		m.ResetSchool()
		return nil
	}
	return fmt.Errorf("unknown SchoolAlias edge %s", name)
}
