// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
)

// Game is the model entity for the Game schema.
type Game struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SchoolID holds the value of the "school_id" field.
	SchoolID uuid.UUID `json:"school_id,omitempty"`
	// Sport holds the value of the "sport" field.
	Sport string `json:"sport,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender string `json:"gender,omitempty"`
	// Season holds the value of the "season" field.
	Season string `json:"season,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// GameTime holds the value of the "game_time" field.
	GameTime string `json:"game_time,omitempty"`
	// Opponent holds the value of the "opponent" field.
	Opponent string `json:"opponent,omitempty"`
	// OpponentCity holds the value of the "opponent_city" field.
	OpponentCity string `json:"opponent_city,omitempty"`
	// IsHome holds the value of the "is_home" field.
	IsHome bool `json:"is_home,omitempty"`
	// IsConference holds the value of the "is_conference" field.
	IsConference bool `json:"is_conference,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// HomeScore holds the value of the "home_score" field.
	HomeScore *int `json:"home_score,omitempty"`
	// AwayScore holds the value of the "away_score" field.
	AwayScore *int `json:"away_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GameQuery when eager-loading is set.
	Edges        GameEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GameEdges holds the relations/edges for other nodes in the graph.
type GameEdges struct {
	// School holds the value of the school edge.
	School *School `json:"school,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SchoolOrErr returns the School value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GameEdges) SchoolOrErr() (*School, error) {
	if e.School != nil {
		return e.School, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: school.Label}
	}
	return nil, &NotLoadedError{edge: "school"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Game) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case game.FieldIsHome, game.FieldIsConference:
			values[i] = new(sql.NullBool)
		case game.FieldHomeScore, game.FieldAwayScore:
			values[i] = new(sql.NullInt64)
		case game.FieldSport, game.FieldGender, game.FieldSeason, game.FieldGameTime, game.FieldOpponent, game.FieldOpponentCity, game.FieldLocation:
			values[i] = new(sql.NullString)
		case game.FieldDate, game.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case game.FieldID, game.FieldSchoolID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Game fields.
func (_m *Game) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case game.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case game.FieldSchoolID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field school_id", values[i])
			} else if value != nil {
				_m.SchoolID = *value
			}
		case game.FieldSport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sport", values[i])
			} else if value.Valid {
				_m.Sport = value.String
			}
		case game.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = value.String
			}
		case game.FieldSeason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field season", values[i])
			} else if value.Valid {
				_m.Season = value.String
			}
		case game.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case game.FieldGameTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_time", values[i])
			} else if value.Valid {
				_m.GameTime = value.String
			}
		case game.FieldOpponent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opponent", values[i])
			} else if value.Valid {
				_m.Opponent = value.String
			}
		case game.FieldOpponentCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opponent_city", values[i])
			} else if value.Valid {
				_m.OpponentCity = value.String
			}
		case game.FieldIsHome:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_home", values[i])
			} else if value.Valid {
				_m.IsHome = value.Bool
			}
		case game.FieldIsConference:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_conference", values[i])
			} else if value.Valid {
				_m.IsConference = value.Bool
			}
		case game.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case game.FieldHomeScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field home_score", values[i])
			} else if value.Valid {
				_m.HomeScore = new(int)
				*_m.HomeScore = int(value.Int64)
			}
		case game.FieldAwayScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field away_score", values[i])
			} else if value.Valid {
				_m.AwayScore = new(int)
				*_m.AwayScore = int(value.Int64)
			}
		case game.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Game.
// This includes values selected through modifiers, order, etc.
func (_m *Game) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySchool queries the "school" edge of the Game entity.
func (_m *Game) QuerySchool() *SchoolQuery {
	return NewGameClient(_m.config).QuerySchool(_m)
}

// Update returns a builder for updating this Game.
// Note that you need to call Game.Unwrap() before calling this method if this Game
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Game) Update() *GameUpdateOne {
	return NewGameClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Game entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Game) Unwrap() *Game {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Game is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Game) String() string {
	var builder strings.Builder
	builder.WriteString("Game(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("school_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchoolID))
	builder.WriteString(", ")
	builder.WriteString("sport=")
	builder.WriteString(_m.Sport)
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(_m.Gender)
	builder.WriteString(", ")
	builder.WriteString("season=")
	builder.WriteString(_m.Season)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("game_time=")
	builder.WriteString(_m.GameTime)
	builder.WriteString(", ")
	builder.WriteString("opponent=")
	builder.WriteString(_m.Opponent)
	builder.WriteString(", ")
	builder.WriteString("opponent_city=")
	builder.WriteString(_m.OpponentCity)
	builder.WriteString(", ")
	builder.WriteString("is_home=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsHome))
	builder.WriteString(", ")
	builder.WriteString("is_conference=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsConference))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	if v := _m.HomeScore; v != nil {
		builder.WriteString("home_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AwayScore; v != nil {
		builder.WriteString("away_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Games is a parsable slice of Game.
type Games []*Game
