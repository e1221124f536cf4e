// Code generated by ent, DO NOT EDIT.

package game

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the game type in the database.
	Label = "game"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSchoolID holds the string denoting the school_id field in the database.
	FieldSchoolID = "school_id"
	// FieldSport holds the string denoting the sport field in the database.
	FieldSport = "sport"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldSeason holds the string denoting the season field in the database.
	FieldSeason = "season"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldGameTime holds the string denoting the game_time field in the database.
	FieldGameTime = "game_time"
	// FieldOpponent holds the string denoting the opponent field in the database.
	FieldOpponent = "opponent"
	// FieldOpponentCity holds the string denoting the opponent_city field in the database.
	FieldOpponentCity = "opponent_city"
	// FieldIsHome holds the string denoting the is_home field in the database.
	FieldIsHome = "is_home"
	// FieldIsConference holds the string denoting the is_conference field in the database.
	FieldIsConference = "is_conference"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldHomeScore holds the string denoting the home_score field in the database.
	FieldHomeScore = "home_score"
	// FieldAwayScore holds the string denoting the away_score field in the database.
	FieldAwayScore = "away_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSchool holds the string denoting the school edge name in mutations.
	EdgeSchool = "school"
	// Table holds the table name of the game in the database.
	Table = "games"
	// SchoolTable is the table that holds the school relation/edge.
	SchoolTable = "games"
	// SchoolInverseTable is the table name for the School entity.
	// It exists in this package in order to avoid circular dependency with the "school" package.
	SchoolInverseTable = "schools"
	// SchoolColumn is the table column denoting the school relation/edge.
	SchoolColumn = "school_id"
)

// Columns holds all SQL columns for game fields.
var Columns = []string{
	FieldID,
	FieldSchoolID,
	FieldSport,
	FieldGender,
	FieldSeason,
	FieldDate,
	FieldGameTime,
	FieldOpponent,
	FieldOpponentCity,
	FieldIsHome,
	FieldIsConference,
	FieldLocation,
	FieldHomeScore,
	FieldAwayScore,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SportValidator is a validator for the "sport" field. It is called by the builders before save.
	SportValidator func(string) error
	// GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	GenderValidator func(string) error
	// SeasonValidator is a validator for the "season" field. It is called by the builders before save.
	SeasonValidator func(string) error
	// OpponentValidator is a validator for the "opponent" field. It is called by the builders before save.
	OpponentValidator func(string) error
	// DefaultIsHome holds the default value on creation for the "is_home" field.
	DefaultIsHome bool
	// DefaultIsConference holds the default value on creation for the "is_conference" field.
	DefaultIsConference bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Game queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySchoolID orders the results by the school_id field.
func BySchoolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchoolID, opts...).ToFunc()
}

// BySport orders the results by the sport field.
func BySport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSport, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// BySeason orders the results by the season field.
func BySeason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeason, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByGameTime orders the results by the game_time field.
func ByGameTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameTime, opts...).ToFunc()
}

// ByOpponent orders the results by the opponent field.
func ByOpponent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpponent, opts...).ToFunc()
}

// ByOpponentCity orders the results by the opponent_city field.
func ByOpponentCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpponentCity, opts...).ToFunc()
}

// ByIsHome orders the results by the is_home field.
func ByIsHome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsHome, opts...).ToFunc()
}

// ByIsConference orders the results by the is_conference field.
func ByIsConference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsConference, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByHomeScore orders the results by the home_score field.
func ByHomeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHomeScore, opts...).ToFunc()
}

// ByAwayScore orders the results by the away_score field.
func ByAwayScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwayScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySchoolField orders the results by school field.
func BySchoolField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSchoolStep(), sql.OrderByField(field, opts...))
	}
}
func newSchoolStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SchoolInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SchoolTable, SchoolColumn),
	)
}
