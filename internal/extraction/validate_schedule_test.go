package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepsportshq/preps-extract/constants"
)

func validSchedule() *ExtractedSchedule {
	return &ExtractedSchedule{
		TeamName: "Cannon",
		Sport:    constants.Basketball,
		Gender:   constants.Boys,
		Season:   "2024-25",
		Games: []ExtractedGame{
			{Date: "2024-12-05", Opponent: "Concord", IsHome: true},
			{Date: "2024-12-12", Opponent: "Hickory Ridge"},
			{Date: "2025-01-09", Opponent: "Concord"},
		},
	}
}

func TestValidateSchedulePasses(t *testing.T) {
	assert.Empty(t, ValidateSchedule(validSchedule()))
}

func TestValidateScheduleMissingTeamAndGames(t *testing.T) {
	s := &ExtractedSchedule{}

	issues := ValidateSchedule(s)
	require.Len(t, issues, 2)
	assert.Equal(t, CodeMissingTeamName, issues[0].Code)
	assert.Equal(t, "teamName", issues[0].FieldPath)
	assert.Equal(t, CodeNoGames, issues[1].Code)
}

func TestValidateScheduleInvalidDate(t *testing.T) {
	s := validSchedule()
	s.Games[1].Date = "12/12"

	issues := ValidateSchedule(s)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidDate, issues[0].Code)
	assert.Equal(t, "games[1].date", issues[0].FieldPath)
	assert.Contains(t, issues[0].Message, "game 2")
}

func TestValidateScheduleImpossibleDate(t *testing.T) {
	s := validSchedule()
	s.Games[0].Date = "2024-02-30"

	issues := ValidateSchedule(s)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidDate, issues[0].Code)
	assert.Contains(t, issues[0].Message, "calendar")
}

func TestValidateScheduleDuplicateGame(t *testing.T) {
	s := validSchedule()
	s.Games = append(s.Games, ExtractedGame{Date: "2024-12-05", Opponent: "CONCORD"})

	issues := ValidateSchedule(s)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeDuplicateGame, issues[0].Code)
	assert.Equal(t, "games[3]", issues[0].FieldPath)
	assert.Contains(t, issues[0].Message, "game 4 duplicates game 1")
}

func TestValidateScheduleSameOpponentDifferentDates(t *testing.T) {
	// Home-and-home series are normal; only exact (date, opponent) repeats count.
	assert.Empty(t, ValidateSchedule(validSchedule()))
}

func TestValidateScheduleMissingOpponentSkipsDuplicateCheck(t *testing.T) {
	s := validSchedule()
	s.Games = []ExtractedGame{
		{Date: "2024-12-05", Opponent: ""},
		{Date: "2024-12-05", Opponent: " "},
	}

	issues := ValidateSchedule(s)
	require.Len(t, issues, 2)
	assert.Equal(t, CodeMissingOpponent, issues[0].Code)
	assert.Equal(t, CodeMissingOpponent, issues[1].Code)
}
