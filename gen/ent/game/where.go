// Code generated by ent, DO NOT EDIT.

package game

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldID, id))
}

// SchoolID applies equality check predicate on the "school_id" field. It's identical to SchoolIDEQ.
func SchoolID(v uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSchoolID, v))
}

// Sport applies equality check predicate on the "sport" field. It's identical to SportEQ.
func Sport(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSport, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGender, v))
}

// Season applies equality check predicate on the "season" field. It's identical to SeasonEQ.
func Season(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSeason, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDate, v))
}

// GameTime applies equality check predicate on the "game_time" field. It's identical to GameTimeEQ.
func GameTime(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGameTime, v))
}

// Opponent applies equality check predicate on the "opponent" field. It's identical to OpponentEQ.
func Opponent(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldOpponent, v))
}

// OpponentCity applies equality check predicate on the "opponent_city" field. It's identical to OpponentCityEQ.
func OpponentCity(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldOpponentCity, v))
}

// IsHome applies equality check predicate on the "is_home" field. It's identical to IsHomeEQ.
func IsHome(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldIsHome, v))
}

// IsConference applies equality check predicate on the "is_conference" field. It's identical to IsConferenceEQ.
func IsConference(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldIsConference, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldLocation, v))
}

// HomeScore applies equality check predicate on the "home_score" field. It's identical to HomeScoreEQ.
func HomeScore(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldHomeScore, v))
}

// AwayScore applies equality check predicate on the "away_score" field. It's identical to AwayScoreEQ.
func AwayScore(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldAwayScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCreatedAt, v))
}

// SchoolIDEQ applies the EQ predicate on the "school_id" field.
func SchoolIDEQ(v uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSchoolID, v))
}

// SchoolIDNEQ applies the NEQ predicate on the "school_id" field.
func SchoolIDNEQ(v uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldSchoolID, v))
}

// SchoolIDIn applies the In predicate on the "school_id" field.
func SchoolIDIn(vs ...uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldSchoolID, vs...))
}

// SchoolIDNotIn applies the NotIn predicate on the "school_id" field.
func SchoolIDNotIn(vs ...uuid.UUID) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldSchoolID, vs...))
}

// SportEQ applies the EQ predicate on the "sport" field.
func SportEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSport, v))
}

// SportNEQ applies the NEQ predicate on the "sport" field.
func SportNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldSport, v))
}

// SportIn applies the In predicate on the "sport" field.
func SportIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldSport, vs...))
}

// SportNotIn applies the NotIn predicate on the "sport" field.
func SportNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldSport, vs...))
}

// SportGT applies the GT predicate on the "sport" field.
func SportGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldSport, v))
}

// SportGTE applies the GTE predicate on the "sport" field.
func SportGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldSport, v))
}

// SportLT applies the LT predicate on the "sport" field.
func SportLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldSport, v))
}

// SportLTE applies the LTE predicate on the "sport" field.
func SportLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldSport, v))
}

// SportContains applies the Contains predicate on the "sport" field.
func SportContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldSport, v))
}

// SportHasPrefix applies the HasPrefix predicate on the "sport" field.
func SportHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldSport, v))
}

// SportHasSuffix applies the HasSuffix predicate on the "sport" field.
func SportHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldSport, v))
}

// SportEqualFold applies the EqualFold predicate on the "sport" field.
func SportEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldSport, v))
}

// SportContainsFold applies the ContainsFold predicate on the "sport" field.
func SportContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldSport, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldGender, v))
}

// SeasonEQ applies the EQ predicate on the "season" field.
func SeasonEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSeason, v))
}

// SeasonNEQ applies the NEQ predicate on the "season" field.
func SeasonNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldSeason, v))
}

// SeasonIn applies the In predicate on the "season" field.
func SeasonIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldSeason, vs...))
}

// SeasonNotIn applies the NotIn predicate on the "season" field.
func SeasonNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldSeason, vs...))
}

// SeasonGT applies the GT predicate on the "season" field.
func SeasonGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldSeason, v))
}

// SeasonGTE applies the GTE predicate on the "season" field.
func SeasonGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldSeason, v))
}

// SeasonLT applies the LT predicate on the "season" field.
func SeasonLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldSeason, v))
}

// SeasonLTE applies the LTE predicate on the "season" field.
func SeasonLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldSeason, v))
}

// SeasonContains applies the Contains predicate on the "season" field.
func SeasonContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldSeason, v))
}

// SeasonHasPrefix applies the HasPrefix predicate on the "season" field.
func SeasonHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldSeason, v))
}

// SeasonHasSuffix applies the HasSuffix predicate on the "season" field.
func SeasonHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldSeason, v))
}

// SeasonEqualFold applies the EqualFold predicate on the "season" field.
func SeasonEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldSeason, v))
}

// SeasonContainsFold applies the ContainsFold predicate on the "season" field.
func SeasonContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldSeason, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldDate, v))
}

// GameTimeEQ applies the EQ predicate on the "game_time" field.
func GameTimeEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGameTime, v))
}

// GameTimeNEQ applies the NEQ predicate on the "game_time" field.
func GameTimeNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldGameTime, v))
}

// GameTimeIn applies the In predicate on the "game_time" field.
func GameTimeIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldGameTime, vs...))
}

// GameTimeNotIn applies the NotIn predicate on the "game_time" field.
func GameTimeNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldGameTime, vs...))
}

// GameTimeGT applies the GT predicate on the "game_time" field.
func GameTimeGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldGameTime, v))
}

// GameTimeGTE applies the GTE predicate on the "game_time" field.
func GameTimeGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldGameTime, v))
}

// GameTimeLT applies the LT predicate on the "game_time" field.
func GameTimeLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldGameTime, v))
}

// GameTimeLTE applies the LTE predicate on the "game_time" field.
func GameTimeLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldGameTime, v))
}

// GameTimeContains applies the Contains predicate on the "game_time" field.
func GameTimeContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldGameTime, v))
}

// GameTimeHasPrefix applies the HasPrefix predicate on the "game_time" field.
func GameTimeHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldGameTime, v))
}

// GameTimeHasSuffix applies the HasSuffix predicate on the "game_time" field.
func GameTimeHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldGameTime, v))
}

// GameTimeIsNil applies the IsNil predicate on the "game_time" field.
func GameTimeIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldGameTime))
}

// GameTimeNotNil applies the NotNil predicate on the "game_time" field.
func GameTimeNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldGameTime))
}

// GameTimeEqualFold applies the EqualFold predicate on the "game_time" field.
func GameTimeEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldGameTime, v))
}

// GameTimeContainsFold applies the ContainsFold predicate on the "game_time" field.
func GameTimeContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldGameTime, v))
}

// OpponentEQ applies the EQ predicate on the "opponent" field.
func OpponentEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldOpponent, v))
}

// OpponentNEQ applies the NEQ predicate on the "opponent" field.
func OpponentNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldOpponent, v))
}

// OpponentIn applies the In predicate on the "opponent" field.
func OpponentIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldOpponent, vs...))
}

// OpponentNotIn applies the NotIn predicate on the "opponent" field.
func OpponentNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldOpponent, vs...))
}

// OpponentGT applies the GT predicate on the "opponent" field.
func OpponentGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldOpponent, v))
}

// OpponentGTE applies the GTE predicate on the "opponent" field.
func OpponentGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldOpponent, v))
}

// OpponentLT applies the LT predicate on the "opponent" field.
func OpponentLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldOpponent, v))
}

// OpponentLTE applies the LTE predicate on the "opponent" field.
func OpponentLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldOpponent, v))
}

// OpponentContains applies the Contains predicate on the "opponent" field.
func OpponentContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldOpponent, v))
}

// OpponentHasPrefix applies the HasPrefix predicate on the "opponent" field.
func OpponentHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldOpponent, v))
}

// OpponentHasSuffix applies the HasSuffix predicate on the "opponent" field.
func OpponentHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldOpponent, v))
}

// OpponentEqualFold applies the EqualFold predicate on the "opponent" field.
func OpponentEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldOpponent, v))
}

// OpponentContainsFold applies the ContainsFold predicate on the "opponent" field.
func OpponentContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldOpponent, v))
}

// OpponentCityEQ applies the EQ predicate on the "opponent_city" field.
func OpponentCityEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldOpponentCity, v))
}

// OpponentCityNEQ applies the NEQ predicate on the "opponent_city" field.
func OpponentCityNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldOpponentCity, v))
}

// OpponentCityIn applies the In predicate on the "opponent_city" field.
func OpponentCityIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldOpponentCity, vs...))
}

// OpponentCityNotIn applies the NotIn predicate on the "opponent_city" field.
func OpponentCityNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldOpponentCity, vs...))
}

// OpponentCityGT applies the GT predicate on the "opponent_city" field.
func OpponentCityGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldOpponentCity, v))
}

// OpponentCityGTE applies the GTE predicate on the "opponent_city" field.
func OpponentCityGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldOpponentCity, v))
}

// OpponentCityLT applies the LT predicate on the "opponent_city" field.
func OpponentCityLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldOpponentCity, v))
}

// OpponentCityLTE applies the LTE predicate on the "opponent_city" field.
func OpponentCityLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldOpponentCity, v))
}

// OpponentCityContains applies the Contains predicate on the "opponent_city" field.
func OpponentCityContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldOpponentCity, v))
}

// OpponentCityHasPrefix applies the HasPrefix predicate on the "opponent_city" field.
func OpponentCityHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldOpponentCity, v))
}

// OpponentCityHasSuffix applies the HasSuffix predicate on the "opponent_city" field.
func OpponentCityHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldOpponentCity, v))
}

// OpponentCityIsNil applies the IsNil predicate on the "opponent_city" field.
func OpponentCityIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldOpponentCity))
}

// OpponentCityNotNil applies the NotNil predicate on the "opponent_city" field.
func OpponentCityNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldOpponentCity))
}

// OpponentCityEqualFold applies the EqualFold predicate on the "opponent_city" field.
func OpponentCityEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldOpponentCity, v))
}

// OpponentCityContainsFold applies the ContainsFold predicate on the "opponent_city" field.
func OpponentCityContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldOpponentCity, v))
}

// IsHomeEQ applies the EQ predicate on the "is_home" field.
func IsHomeEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldIsHome, v))
}

// IsHomeNEQ applies the NEQ predicate on the "is_home" field.
func IsHomeNEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldIsHome, v))
}

// IsConferenceEQ applies the EQ predicate on the "is_conference" field.
func IsConferenceEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldIsConference, v))
}

// IsConferenceNEQ applies the NEQ predicate on the "is_conference" field.
func IsConferenceNEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldIsConference, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldLocation, v))
}

// HomeScoreEQ applies the EQ predicate on the "home_score" field.
func HomeScoreEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldHomeScore, v))
}

// HomeScoreNEQ applies the NEQ predicate on the "home_score" field.
func HomeScoreNEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldHomeScore, v))
}

// HomeScoreIn applies the In predicate on the "home_score" field.
func HomeScoreIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldHomeScore, vs...))
}

// HomeScoreNotIn applies the NotIn predicate on the "home_score" field.
func HomeScoreNotIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldHomeScore, vs...))
}

// HomeScoreGT applies the GT predicate on the "home_score" field.
func HomeScoreGT(v int) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldHomeScore, v))
}

// HomeScoreGTE applies the GTE predicate on the "home_score" field.
func HomeScoreGTE(v int) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldHomeScore, v))
}

// HomeScoreLT applies the LT predicate on the "home_score" field.
func HomeScoreLT(v int) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldHomeScore, v))
}

// HomeScoreLTE applies the LTE predicate on the "home_score" field.
func HomeScoreLTE(v int) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldHomeScore, v))
}

// HomeScoreIsNil applies the IsNil predicate on the "home_score" field.
func HomeScoreIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldHomeScore))
}

// HomeScoreNotNil applies the NotNil predicate on the "home_score" field.
func HomeScoreNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldHomeScore))
}

// AwayScoreEQ applies the EQ predicate on the "away_score" field.
func AwayScoreEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldAwayScore, v))
}

// AwayScoreNEQ applies the NEQ predicate on the "away_score" field.
func AwayScoreNEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldAwayScore, v))
}

// AwayScoreIn applies the In predicate on the "away_score" field.
func AwayScoreIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldAwayScore, vs...))
}

// AwayScoreNotIn applies the NotIn predicate on the "away_score" field.
func AwayScoreNotIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldAwayScore, vs...))
}

// AwayScoreGT applies the GT predicate on the "away_score" field.
func AwayScoreGT(v int) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldAwayScore, v))
}

// AwayScoreGTE applies the GTE predicate on the "away_score" field.
func AwayScoreGTE(v int) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldAwayScore, v))
}

// AwayScoreLT applies the LT predicate on the "away_score" field.
func AwayScoreLT(v int) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldAwayScore, v))
}

// AwayScoreLTE applies the LTE predicate on the "away_score" field.
func AwayScoreLTE(v int) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldAwayScore, v))
}

// AwayScoreIsNil applies the IsNil predicate on the "away_score" field.
func AwayScoreIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldAwayScore))
}

// AwayScoreNotNil applies the NotNil predicate on the "away_score" field.
func AwayScoreNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldAwayScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSchool applies the HasEdge predicate on the "school" edge.
func HasSchool() predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SchoolTable, SchoolColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchoolWith applies the HasEdge predicate on the "school" edge with a given conditions (other predicates).
func HasSchoolWith(preds ...predicate.School) predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := newSchoolStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Game) predicate.Game {
	return predicate.Game(sql.NotPredicates(p))
}
