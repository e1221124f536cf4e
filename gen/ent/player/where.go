// Code generated by ent, DO NOT EDIT.

package player

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldID, id))
}

// SchoolID applies equality check predicate on the "school_id" field. It's identical to SchoolIDEQ.
func SchoolID(v uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldSchoolID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldLastName, v))
}

// JerseyNumber applies equality check predicate on the "jersey_number" field. It's identical to JerseyNumberEQ.
func JerseyNumber(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldJerseyNumber, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldPosition, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldGrade, v))
}

// HeightFeet applies equality check predicate on the "height_feet" field. It's identical to HeightFeetEQ.
func HeightFeet(v int) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldHeightFeet, v))
}

// HeightInches applies equality check predicate on the "height_inches" field. It's identical to HeightInchesEQ.
func HeightInches(v int) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldHeightInches, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v int) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldWeight, v))
}

// Sport applies equality check predicate on the "sport" field. It's identical to SportEQ.
func Sport(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldSport, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldGender, v))
}

// Season applies equality check predicate on the "season" field. It's identical to SeasonEQ.
func Season(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldSeason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldUpdatedAt, v))
}

// SchoolIDEQ applies the EQ predicate on the "school_id" field.
func SchoolIDEQ(v uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldSchoolID, v))
}

// SchoolIDNEQ applies the NEQ predicate on the "school_id" field.
func SchoolIDNEQ(v uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldSchoolID, v))
}

// SchoolIDIn applies the In predicate on the "school_id" field.
func SchoolIDIn(vs ...uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldSchoolID, vs...))
}

// SchoolIDNotIn applies the NotIn predicate on the "school_id" field.
func SchoolIDNotIn(vs ...uuid.UUID) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldSchoolID, vs...))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldLastName, v))
}

// JerseyNumberEQ applies the EQ predicate on the "jersey_number" field.
func JerseyNumberEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldJerseyNumber, v))
}

// JerseyNumberNEQ applies the NEQ predicate on the "jersey_number" field.
func JerseyNumberNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldJerseyNumber, v))
}

// JerseyNumberIn applies the In predicate on the "jersey_number" field.
func JerseyNumberIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldJerseyNumber, vs...))
}

// JerseyNumberNotIn applies the NotIn predicate on the "jersey_number" field.
func JerseyNumberNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldJerseyNumber, vs...))
}

// JerseyNumberGT applies the GT predicate on the "jersey_number" field.
func JerseyNumberGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldJerseyNumber, v))
}

// JerseyNumberGTE applies the GTE predicate on the "jersey_number" field.
func JerseyNumberGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldJerseyNumber, v))
}

// JerseyNumberLT applies the LT predicate on the "jersey_number" field.
func JerseyNumberLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldJerseyNumber, v))
}

// JerseyNumberLTE applies the LTE predicate on the "jersey_number" field.
func JerseyNumberLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldJerseyNumber, v))
}

// JerseyNumberContains applies the Contains predicate on the "jersey_number" field.
func JerseyNumberContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldJerseyNumber, v))
}

// JerseyNumberHasPrefix applies the HasPrefix predicate on the "jersey_number" field.
func JerseyNumberHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldJerseyNumber, v))
}

// JerseyNumberHasSuffix applies the HasSuffix predicate on the "jersey_number" field.
func JerseyNumberHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldJerseyNumber, v))
}

// JerseyNumberIsNil applies the IsNil predicate on the "jersey_number" field.
func JerseyNumberIsNil() predicate.Player {
	return predicate.Player(sql.FieldIsNull(FieldJerseyNumber))
}

// JerseyNumberNotNil applies the NotNil predicate on the "jersey_number" field.
func JerseyNumberNotNil() predicate.Player {
	return predicate.Player(sql.FieldNotNull(FieldJerseyNumber))
}

// JerseyNumberEqualFold applies the EqualFold predicate on the "jersey_number" field.
func JerseyNumberEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldJerseyNumber, v))
}

// JerseyNumberContainsFold applies the ContainsFold predicate on the "jersey_number" field.
func JerseyNumberContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldJerseyNumber, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionIsNil applies the IsNil predicate on the "position" field.
func PositionIsNil() predicate.Player {
	return predicate.Player(sql.FieldIsNull(FieldPosition))
}

// PositionNotNil applies the NotNil predicate on the "position" field.
func PositionNotNil() predicate.Player {
	return predicate.Player(sql.FieldNotNull(FieldPosition))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldPosition, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeIsNil applies the IsNil predicate on the "grade" field.
func GradeIsNil() predicate.Player {
	return predicate.Player(sql.FieldIsNull(FieldGrade))
}

// GradeNotNil applies the NotNil predicate on the "grade" field.
func GradeNotNil() predicate.Player {
	return predicate.Player(sql.FieldNotNull(FieldGrade))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldGrade, v))
}

// HeightFeetEQ applies the EQ predicate on the "height_feet" field.
func HeightFeetEQ(v int) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldHeightFeet, v))
}

// HeightFeetNEQ applies the NEQ predicate on the "height_feet" field.
func HeightFeetNEQ(v int) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldHeightFeet, v))
}

// HeightFeetIn applies the In predicate on the "height_feet" field.
func HeightFeetIn(vs ...int) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldHeightFeet, vs...))
}

// HeightFeetNotIn applies the NotIn predicate on the "height_feet" field.
func HeightFeetNotIn(vs ...int) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldHeightFeet, vs...))
}

// HeightFeetGT applies the GT predicate on the "height_feet" field.
func HeightFeetGT(v int) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldHeightFeet, v))
}

// HeightFeetGTE applies the GTE predicate on the "height_feet" field.
func HeightFeetGTE(v int) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldHeightFeet, v))
}

// HeightFeetLT applies the LT predicate on the "height_feet" field.
func HeightFeetLT(v int) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldHeightFeet, v))
}

// HeightFeetLTE applies the LTE predicate on the "height_feet" field.
func HeightFeetLTE(v int) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldHeightFeet, v))
}

// HeightFeetIsNil applies the IsNil predicate on the "height_feet" field.
func HeightFeetIsNil() predicate.Player {
	return predicate.Player(sql.FieldIsNull(FieldHeightFeet))
}

// HeightFeetNotNil applies the NotNil predicate on the "height_feet" field.
func HeightFeetNotNil() predicate.Player {
	return predicate.Player(sql.FieldNotNull(FieldHeightFeet))
}

// HeightInchesEQ applies the EQ predicate on the "height_inches" field.
func HeightInchesEQ(v int) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldHeightInches, v))
}

// HeightInchesNEQ applies the NEQ predicate on the "height_inches" field.
func HeightInchesNEQ(v int) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldHeightInches, v))
}

// HeightInchesIn applies the In predicate on the "height_inches" field.
func HeightInchesIn(vs ...int) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldHeightInches, vs...))
}

// HeightInchesNotIn applies the NotIn predicate on the "height_inches" field.
func HeightInchesNotIn(vs ...int) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldHeightInches, vs...))
}

// HeightInchesGT applies the GT predicate on the "height_inches" field.
func HeightInchesGT(v int) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldHeightInches, v))
}

// HeightInchesGTE applies the GTE predicate on the "height_inches" field.
func HeightInchesGTE(v int) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldHeightInches, v))
}

// HeightInchesLT applies the LT predicate on the "height_inches" field.
func HeightInchesLT(v int) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldHeightInches, v))
}

// HeightInchesLTE applies the LTE predicate on the "height_inches" field.
func HeightInchesLTE(v int) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldHeightInches, v))
}

// HeightInchesIsNil applies the IsNil predicate on the "height_inches" field.
func HeightInchesIsNil() predicate.Player {
	return predicate.Player(sql.FieldIsNull(FieldHeightInches))
}

// HeightInchesNotNil applies the NotNil predicate on the "height_inches" field.
func HeightInchesNotNil() predicate.Player {
	return predicate.Player(sql.FieldNotNull(FieldHeightInches))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v int) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v int) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...int) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...int) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v int) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v int) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v int) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v int) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldWeight, v))
}

// WeightIsNil applies the IsNil predicate on the "weight" field.
func WeightIsNil() predicate.Player {
	return predicate.Player(sql.FieldIsNull(FieldWeight))
}

// WeightNotNil applies the NotNil predicate on the "weight" field.
func WeightNotNil() predicate.Player {
	return predicate.Player(sql.FieldNotNull(FieldWeight))
}

// SportEQ applies the EQ predicate on the "sport" field.
func SportEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldSport, v))
}

// SportNEQ applies the NEQ predicate on the "sport" field.
func SportNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldSport, v))
}

// SportIn applies the In predicate on the "sport" field.
func SportIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldSport, vs...))
}

// SportNotIn applies the NotIn predicate on the "sport" field.
func SportNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldSport, vs...))
}

// SportGT applies the GT predicate on the "sport" field.
func SportGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldSport, v))
}

// SportGTE applies the GTE predicate on the "sport" field.
func SportGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldSport, v))
}

// SportLT applies the LT predicate on the "sport" field.
func SportLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldSport, v))
}

// SportLTE applies the LTE predicate on the "sport" field.
func SportLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldSport, v))
}

// SportContains applies the Contains predicate on the "sport" field.
func SportContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldSport, v))
}

// SportHasPrefix applies the HasPrefix predicate on the "sport" field.
func SportHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldSport, v))
}

// SportHasSuffix applies the HasSuffix predicate on the "sport" field.
func SportHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldSport, v))
}

// SportEqualFold applies the EqualFold predicate on the "sport" field.
func SportEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldSport, v))
}

// SportContainsFold applies the ContainsFold predicate on the "sport" field.
func SportContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldSport, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldGender, v))
}

// SeasonEQ applies the EQ predicate on the "season" field.
func SeasonEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldSeason, v))
}

// SeasonNEQ applies the NEQ predicate on the "season" field.
func SeasonNEQ(v string) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldSeason, v))
}

// SeasonIn applies the In predicate on the "season" field.
func SeasonIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldSeason, vs...))
}

// SeasonNotIn applies the NotIn predicate on the "season" field.
func SeasonNotIn(vs ...string) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldSeason, vs...))
}

// SeasonGT applies the GT predicate on the "season" field.
func SeasonGT(v string) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldSeason, v))
}

// SeasonGTE applies the GTE predicate on the "season" field.
func SeasonGTE(v string) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldSeason, v))
}

// SeasonLT applies the LT predicate on the "season" field.
func SeasonLT(v string) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldSeason, v))
}

// SeasonLTE applies the LTE predicate on the "season" field.
func SeasonLTE(v string) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldSeason, v))
}

// SeasonContains applies the Contains predicate on the "season" field.
func SeasonContains(v string) predicate.Player {
	return predicate.Player(sql.FieldContains(FieldSeason, v))
}

// SeasonHasPrefix applies the HasPrefix predicate on the "season" field.
func SeasonHasPrefix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasPrefix(FieldSeason, v))
}

// SeasonHasSuffix applies the HasSuffix predicate on the "season" field.
func SeasonHasSuffix(v string) predicate.Player {
	return predicate.Player(sql.FieldHasSuffix(FieldSeason, v))
}

// SeasonEqualFold applies the EqualFold predicate on the "season" field.
func SeasonEqualFold(v string) predicate.Player {
	return predicate.Player(sql.FieldEqualFold(FieldSeason, v))
}

// SeasonContainsFold applies the ContainsFold predicate on the "season" field.
func SeasonContainsFold(v string) predicate.Player {
	return predicate.Player(sql.FieldContainsFold(FieldSeason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Player {
	return predicate.Player(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Player {
	return predicate.Player(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Player {
	return predicate.Player(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSchool applies the HasEdge predicate on the "school" edge.
func HasSchool() predicate.Player {
	return predicate.Player(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SchoolTable, SchoolColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSchoolWith applies the HasEdge predicate on the "school" edge with a given conditions (other predicates).
func HasSchoolWith(preds ...predicate.School) predicate.Player {
	return predicate.Player(func(s *sql.Selector) {
		step := newSchoolStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Player) predicate.Player {
	return predicate.Player(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Player) predicate.Player {
	return predicate.Player(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Player) predicate.Player {
	return predicate.Player(sql.NotPredicates(p))
}
