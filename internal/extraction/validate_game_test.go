package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGame() *BasketballGame {
	return &BasketballGame{
		Date: "2025-01-14",
		HomeTeam: TeamResult{
			Name:  "Eagles",
			Score: 52,
			Players: []PlayerLine{
				{Name: "J. Smith", Points: 20, Fouls: 3},
				{Name: "T. Brown", Points: 18, Fouls: 2},
				{Name: "M. Davis", Points: 14, Fouls: 4},
			},
		},
		AwayTeam: TeamResult{
			Name:  "Falcons",
			Score: 47,
			Players: []PlayerLine{
				{Name: "A. Lee", Points: 30, Fouls: 1},
				{Name: "R. King", Points: 17, Fouls: 5},
			},
		},
		QuarterScores: [][2]int{{12, 10}, {14, 12}, {13, 11}, {13, 14}},
	}
}

func TestValidateGamePasses(t *testing.T) {
	issues := ValidateGame(validGame())
	assert.Empty(t, issues)
	assert.True(t, Passed(issues))
}

func TestValidateGamePointsMismatch(t *testing.T) {
	g := validGame()
	g.HomeTeam.Players[0].Points = 18 // total now 50, score still 52

	issues := ValidateGame(g)
	require.Len(t, issues, 1)
	assert.Equal(t, CodePointsMismatch, issues[0].Code)
	assert.Equal(t, "homeTeam.score", issues[0].FieldPath)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "50")
	assert.Contains(t, issues[0].Message, "52")
	assert.False(t, Passed(issues))
}

func TestValidateGameFoulBounds(t *testing.T) {
	g := validGame()
	g.HomeTeam.Players[1].Fouls = 6
	g.AwayTeam.Players[0].Fouls = -1

	issues := ValidateGame(g)
	require.Len(t, issues, 2)
	assert.Equal(t, CodeFoulsExceedMax, issues[0].Code)
	assert.Equal(t, "homeTeam.players[1].fouls", issues[0].FieldPath)
	assert.Equal(t, CodeNegativeFouls, issues[1].Code)
	assert.Equal(t, "awayTeam.players[0].fouls", issues[1].FieldPath)
}

func TestValidateGameQuarterScoreMismatch(t *testing.T) {
	g := validGame()
	g.QuarterScores[3] = [2]int{10, 14} // home quarters now sum to 49

	issues := ValidateGame(g)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeQuarterScoreMismatch, issues[0].Code)
	assert.Equal(t, "quarterScores", issues[0].FieldPath)
	assert.Contains(t, issues[0].Message, "home")
}

func TestValidateGameQuarterCountWarning(t *testing.T) {
	g := validGame()
	g.Overtime = true // four entries recorded but OT declared

	issues := ValidateGame(g)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeUnexpectedQuarterCount, issues[0].Code)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	// Warnings never block approval.
	assert.True(t, Passed(issues))
}

func TestValidateGameNoQuarterScores(t *testing.T) {
	g := validGame()
	g.QuarterScores = nil

	assert.Empty(t, ValidateGame(g))
}

func TestValidateGameRequiredFields(t *testing.T) {
	g := validGame()
	g.HomeTeam.Name = "  "
	g.Date = "01/14/2025"

	issues := ValidateGame(g)
	require.Len(t, issues, 2)
	assert.Equal(t, CodeMissingTeamName, issues[0].Code)
	assert.Equal(t, "homeTeam.name", issues[0].FieldPath)
	assert.Equal(t, CodeInvalidDate, issues[1].Code)
	assert.Equal(t, "date", issues[1].FieldPath)
}

func TestValidateGameNil(t *testing.T) {
	assert.Empty(t, ValidateGame(nil))
}
