package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepsportshq/preps-extract/constants"
)

func validRoster() *ExtractedRoster {
	return &ExtractedRoster{
		SchoolName:   "Cannon",
		Sport:        constants.Basketball,
		Gender:       constants.Boys,
		SourceSeason: "2024-25",
		TargetSeason: "2025-26",
		Players: []ExtractedPlayer{
			{JerseyNumber: "3", FirstName: "Jalen", LastName: "Smith"},
			{JerseyNumber: "24", FirstName: "Tre", LastName: "Brown"},
		},
	}
}

func TestValidateRosterPasses(t *testing.T) {
	assert.Empty(t, ValidateRoster(validRoster()))
}

func TestValidateRosterMissingSchoolName(t *testing.T) {
	r := validRoster()
	r.SchoolName = " "

	issues := ValidateRoster(r)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeMissingSchoolName, issues[0].Code)
	assert.Equal(t, "schoolName", issues[0].FieldPath)
}

func TestValidateRosterNoPlayers(t *testing.T) {
	r := validRoster()
	r.Players = nil

	issues := ValidateRoster(r)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeNoPlayers, issues[0].Code)
}

func TestValidateRosterMissingPlayerNames(t *testing.T) {
	r := validRoster()
	r.Players[0].FirstName = ""
	r.Players[1].LastName = "  "

	issues := ValidateRoster(r)
	require.Len(t, issues, 2)
	assert.Equal(t, CodeMissingPlayerName, issues[0].Code)
	assert.Equal(t, "players[0].firstName", issues[0].FieldPath)
	assert.Contains(t, issues[0].Message, "player 1")
	assert.Equal(t, "players[1].lastName", issues[1].FieldPath)
	assert.Contains(t, issues[1].Message, "player 2")
}

func TestValidateRosterNil(t *testing.T) {
	assert.Empty(t, ValidateRoster(nil))
}
