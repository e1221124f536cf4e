package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepsportshq/preps-extract/internal/vision"
)

// fakeClient replays a canned model response.
type fakeClient struct {
	content string
	err     error
}

func (f *fakeClient) Extract(_ context.Context, _ vision.ImageInput, _ string, _ vision.Options) (vision.Response, error) {
	if f.err != nil {
		return vision.Response{}, f.err
	}
	return vision.Response{
		Content: f.content,
		Usage:   vision.Usage{InputTokens: 1200, OutputTokens: 300},
	}, nil
}

func testImage() vision.ImageInput {
	return vision.ImageInput{SourceType: "base64", Data: "aGk=", MediaType: "image/jpeg"}
}

const scorebookMismatchJSON = "```json\n" + `{
  "date": "2025-01-14",
  "home_team": {
    "name": "Eagles",
    "score": 52,
    "players": [
      {"number": "3", "name": "J. Smith", "points": 20, "fouls": 3},
      {"number": "24", "name": "T. Brown", "points": 16, "fouls": 2},
      {"number": "11", "name": "M. Davis", "points": 14, "fouls": 4}
    ]
  },
  "away_team": {
    "name": "Falcons",
    "score": 47,
    "players": [
      {"number": "5", "name": "A. Lee", "points": 30, "fouls": 1},
      {"number": "12", "name": "R. King", "points": 17, "fouls": 5}
    ]
  },
  "overtime": false
}` + "\n```"

func TestScorebookExtractValidationFailureKeepsData(t *testing.T) {
	extractor := NewScorebookExtractor(&fakeClient{content: scorebookMismatchJSON}, nil)

	result, err := extractor.Extract(context.Background(), testImage())
	require.NoError(t, err)

	// Player points sum to 50 against a team score of 52.
	assert.False(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Equal(t, "Eagles", result.Data.HomeTeam.Name)
	assert.Equal(t, 52, result.Data.HomeTeam.Score)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, CodePointsMismatch, result.Issues[0].Code)
	assert.Equal(t, "homeTeam.score", result.Issues[0].FieldPath)
	assert.NotEmpty(t, result.Raw)
}

func TestScorebookExtractDecodeFailure(t *testing.T) {
	extractor := NewScorebookExtractor(&fakeClient{content: "I could not read the image, sorry."}, nil)

	result, err := extractor.Extract(context.Background(), testImage())
	require.Error(t, err)

	var decodeErr *vision.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, CodeDecodeFailed, result.Issues[0].Code)
	assert.NotEmpty(t, result.Raw)
}

func TestScorebookExtractRequestFailure(t *testing.T) {
	reqErr := &vision.RequestError{Provider: "anthropic", Status: 429, Message: "rate limited"}
	extractor := NewScorebookExtractor(&fakeClient{err: reqErr}, nil)

	result, err := extractor.Extract(context.Background(), testImage())
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, CodeExtractionFailed, result.Issues[0].Code)
}

const rosterJSON = "```json\n" + `{
  "school_name": "Cannon",
  "sport": "basketball",
  "gender": "boys",
  "source_season": "2024-25",
  "players": [
    {"jersey_number": "3", "first_name": "Jalen", "last_name": "Smith", "grade": "9", "height_feet": 6, "height_inches": 1},
    {"jersey_number": "24", "first_name": "Tre", "last_name": "Brown", "grade": "Senior"},
    {"jersey_number": "10", "first_name": "Cam", "last_name": "White"}
  ]
}` + "\n```"

func TestRosterExtractEndToEnd(t *testing.T) {
	extractor := NewRosterExtractor(&fakeClient{content: rosterJSON}, nil)

	result, err := extractor.Extract(context.Background(), testImage(), RosterOverrides{})
	require.NoError(t, err)
	require.NotNil(t, result.Data)
	assert.True(t, result.Success)

	r := result.Data
	assert.Equal(t, "2025-26", r.TargetSeason)
	require.Len(t, r.Players, 3)

	assert.Equal(t, "SO", *r.Players[0].ProgressedGrade)
	assert.False(t, r.Players[0].Dropped)

	assert.True(t, r.Players[1].Dropped)

	assert.Nil(t, r.Players[2].Grade)
	assert.False(t, r.Players[2].Dropped)
}

const scheduleJSON = "```json\n" + `{
  "team_name": "Cannon",
  "sport": "basketball",
  "gender": "boys",
  "season": "2024-25",
  "games": [
    {"date": "2024-12-05", "opponent": "Concord", "is_home": true},
    {"date": "2024-01-09", "opponent": "Hickory Ridge", "is_home": false}
  ]
}` + "\n```"

func TestScheduleExtractEndToEnd(t *testing.T) {
	extractor := NewScheduleExtractor(&fakeClient{content: scheduleJSON}, nil)

	result, err := extractor.Extract(context.Background(), testImage(), ScheduleOverrides{})
	require.NoError(t, err)
	require.NotNil(t, result.Data)
	assert.True(t, result.Success)

	// January game year corrected to the season's second calendar year.
	assert.Equal(t, "2024-12-05", result.Data.Games[0].Date)
	assert.Equal(t, "2025-01-09", result.Data.Games[1].Date)
}
