// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/prepsportshq/preps-extract/db/ent/schema"
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gameFields := schema.Game{}.Fields()
	_ = gameFields
	// gameDescSport is the schema descriptor for sport field.
	gameDescSport := gameFields[2].Descriptor()
	// game.SportValidator is a validator for the "sport" field. It is called by the builders before save.
	game.SportValidator = func() func(string) error {
		validators := gameDescSport.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(sport string) error {
			for _, fn := range fns {
				if err := fn(sport); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// gameDescGender is the schema descriptor for gender field.
	gameDescGender := gameFields[3].Descriptor()
	// game.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	game.GenderValidator = func() func(string) error {
		validators := gameDescGender.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(gender string) error {
			for _, fn := range fns {
				if err := fn(gender); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// gameDescSeason is the schema descriptor for season field.
	gameDescSeason := gameFields[4].Descriptor()
	// game.SeasonValidator is a validator for the "season" field. It is called by the builders before save.
	game.SeasonValidator = gameDescSeason.Validators[0].(func(string) error)
	// gameDescOpponent is the schema descriptor for opponent field.
	gameDescOpponent := gameFields[7].Descriptor()
	// game.OpponentValidator is a validator for the "opponent" field. It is called by the builders before save.
	game.OpponentValidator = gameDescOpponent.Validators[0].(func(string) error)
	// gameDescIsHome is the schema descriptor for is_home field.
	gameDescIsHome := gameFields[9].Descriptor()
	// game.DefaultIsHome holds the default value on creation for the is_home field.
	game.DefaultIsHome = gameDescIsHome.Default.(bool)
	// gameDescIsConference is the schema descriptor for is_conference field.
	gameDescIsConference := gameFields[10].Descriptor()
	// game.DefaultIsConference holds the default value on creation for the is_conference field.
	game.DefaultIsConference = gameDescIsConference.Default.(bool)
	// gameDescCreatedAt is the schema descriptor for created_at field.
	gameDescCreatedAt := gameFields[14].Descriptor()
	// game.DefaultCreatedAt holds the default value on creation for the created_at field.
	game.DefaultCreatedAt = gameDescCreatedAt.Default.(func() time.Time)
	// gameDescID is the schema descriptor for id field.
	gameDescID := gameFields[0].Descriptor()
	// game.DefaultID holds the default value on creation for the id field.
	game.DefaultID = gameDescID.Default.(func() uuid.UUID)
	playerFields := schema.Player{}.Fields()
	_ = playerFields
	// playerDescFirstName is the schema descriptor for first_name field.
	playerDescFirstName := playerFields[2].Descriptor()
	// player.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	player.FirstNameValidator = playerDescFirstName.Validators[0].(func(string) error)
	// playerDescLastName is the schema descriptor for last_name field.
	playerDescLastName := playerFields[3].Descriptor()
	// player.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	player.LastNameValidator = playerDescLastName.Validators[0].(func(string) error)
	// playerDescSport is the schema descriptor for sport field.
	playerDescSport := playerFields[10].Descriptor()
	// player.SportValidator is a validator for the "sport" field. It is called by the builders before save.
	player.SportValidator = func() func(string) error {
		validators := playerDescSport.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(sport string) error {
			for _, fn := range fns {
				if err := fn(sport); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// playerDescGender is the schema descriptor for gender field.
	playerDescGender := playerFields[11].Descriptor()
	// player.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	player.GenderValidator = func() func(string) error {
		validators := playerDescGender.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(gender string) error {
			for _, fn := range fns {
				if err := fn(gender); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// playerDescSeason is the schema descriptor for season field.
	playerDescSeason := playerFields[12].Descriptor()
	// player.SeasonValidator is a validator for the "season" field. It is called by the builders before save.
	player.SeasonValidator = playerDescSeason.Validators[0].(func(string) error)
	// playerDescCreatedAt is the schema descriptor for created_at field.
	playerDescCreatedAt := playerFields[13].Descriptor()
	// player.DefaultCreatedAt holds the default value on creation for the created_at field.
	player.DefaultCreatedAt = playerDescCreatedAt.Default.(func() time.Time)
	// playerDescUpdatedAt is the schema descriptor for updated_at field.
	playerDescUpdatedAt := playerFields[14].Descriptor()
	// player.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	player.DefaultUpdatedAt = playerDescUpdatedAt.Default.(func() time.Time)
	// player.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	player.UpdateDefaultUpdatedAt = playerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// playerDescID is the schema descriptor for id field.
	playerDescID := playerFields[0].Descriptor()
	// player.DefaultID holds the default value on creation for the id field.
	player.DefaultID = playerDescID.Default.(func() uuid.UUID)
	schoolFields := schema.School{}.Fields()
	_ = schoolFields
	// schoolDescKey is the schema descriptor for key field.
	schoolDescKey := schoolFields[1].Descriptor()
	// school.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	school.KeyValidator = schoolDescKey.Validators[0].(func(string) error)
	// schoolDescName is the schema descriptor for name field.
	schoolDescName := schoolFields[2].Descriptor()
	// school.NameValidator is a validator for the "name" field. It is called by the builders before save.
	school.NameValidator = schoolDescName.Validators[0].(func(string) error)
	// schoolDescCreatedAt is the schema descriptor for created_at field.
	schoolDescCreatedAt := schoolFields[6].Descriptor()
	// school.DefaultCreatedAt holds the default value on creation for the created_at field.
	school.DefaultCreatedAt = schoolDescCreatedAt.Default.(func() time.Time)
	// schoolDescUpdatedAt is the schema descriptor for updated_at field.
	schoolDescUpdatedAt := schoolFields[7].Descriptor()
	// school.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	school.DefaultUpdatedAt = schoolDescUpdatedAt.Default.(func() time.Time)
	// school.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	school.UpdateDefaultUpdatedAt = schoolDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schoolDescID is the schema descriptor for id field.
	schoolDescID := schoolFields[0].Descriptor()
	// school.DefaultID holds the default value on creation for the id field.
	school.DefaultID = schoolDescID.Default.(func() uuid.UUID)
	schoolaliasFields := schema.SchoolAlias{}.Fields()
	_ = schoolaliasFields
	// schoolaliasDescAlias is the schema descriptor for alias field.
	schoolaliasDescAlias := schoolaliasFields[2].Descriptor()
	// schoolalias.AliasValidator is a validator for the "alias" field. It is called by the builders before save.
	schoolalias.AliasValidator = schoolaliasDescAlias.Validators[0].(func(string) error)
	// schoolaliasDescID is the schema descriptor for id field.
	schoolaliasDescID := schoolaliasFields[0].Descriptor()
	// schoolalias.DefaultID holds the default value on creation for the id field.
	schoolalias.DefaultID = schoolaliasDescID.Default.(func() uuid.UUID)
}
