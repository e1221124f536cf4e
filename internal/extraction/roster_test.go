package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepsportshq/preps-extract/constants"
)

func strPtr(s string) *string { return &s }

func TestNormalizeRosterGradeProgression(t *testing.T) {
	r := &ExtractedRoster{
		SchoolName:   "Cannon",
		Sport:        "basketball",
		Gender:       "boys",
		SourceSeason: "2024-25",
		Players: []ExtractedPlayer{
			{FirstName: "A", LastName: "One", Grade: strPtr("9")},
			{FirstName: "B", LastName: "Two", Grade: strPtr("Soph")},
			{FirstName: "C", LastName: "Three", Grade: strPtr("Jr.")},
			{FirstName: "D", LastName: "Four", Grade: strPtr("Senior")},
			{FirstName: "E", LastName: "Five", Grade: nil},
		},
	}

	NormalizeRoster(r, RosterOverrides{})

	require.NotNil(t, r.Players[0].ProgressedGrade)
	assert.Equal(t, "FR", *r.Players[0].Grade)
	assert.Equal(t, "SO", *r.Players[0].ProgressedGrade)
	assert.False(t, r.Players[0].Dropped)

	assert.Equal(t, "JR", *r.Players[1].ProgressedGrade)
	assert.Equal(t, "SR", *r.Players[2].ProgressedGrade)

	// Seniors graduate: kept in the result for review, flagged dropped.
	assert.Equal(t, "SR", *r.Players[3].ProgressedGrade)
	assert.True(t, r.Players[3].Dropped)

	// Unknown grade: never assume graduation.
	assert.Nil(t, r.Players[4].Grade)
	assert.Nil(t, r.Players[4].ProgressedGrade)
	assert.False(t, r.Players[4].Dropped)
}

func TestNormalizeRosterAdvancesSeason(t *testing.T) {
	r := &ExtractedRoster{SourceSeason: "2024-25"}
	NormalizeRoster(r, RosterOverrides{})
	assert.Equal(t, "2025-26", r.TargetSeason)
}

func TestNormalizeRosterCanonicalizesSportAndGender(t *testing.T) {
	r := &ExtractedRoster{Sport: "hoops", Gender: "male"}
	NormalizeRoster(r, RosterOverrides{})
	assert.Equal(t, constants.Basketball, r.Sport)
	assert.Equal(t, constants.Boys, r.Gender)
}

func TestNormalizeRosterOverridesWin(t *testing.T) {
	r := &ExtractedRoster{Sport: "basketball", Gender: "boys"}
	NormalizeRoster(r, RosterOverrides{Sport: "lacrosse", Gender: "girls"})
	assert.Equal(t, constants.Lacrosse, r.Sport)
	assert.Equal(t, constants.Girls, r.Gender)
}

func TestNormalizeRosterUnrecognizedOverrideFallsBack(t *testing.T) {
	r := &ExtractedRoster{Sport: "basketball"}
	NormalizeRoster(r, RosterOverrides{Sport: "underwater hockey"})
	assert.Equal(t, constants.Basketball, r.Sport)
}

func TestNormalizeRosterNil(t *testing.T) {
	NormalizeRoster(nil, RosterOverrides{})
}
