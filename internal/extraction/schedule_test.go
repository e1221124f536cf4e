package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepsportshq/preps-extract/constants"
)

func TestNormalizeScheduleCorrectsYears(t *testing.T) {
	s := &ExtractedSchedule{
		TeamName: "Cannon",
		Sport:    "basketball",
		Season:   "2024-25",
		Games: []ExtractedGame{
			{Date: "12/5", Opponent: "Concord"},
			{Date: "1/9", Opponent: "Hickory Ridge"},
			{Date: "2024-01-15", Opponent: "Cox Mill"}, // wrong year for a Jan game
			{Date: "TBD", Opponent: "Jay M. Robinson"},
		},
	}

	NormalizeSchedule(s, ScheduleOverrides{})

	assert.Equal(t, constants.Basketball, s.Sport)
	assert.Equal(t, "2024-12-05", s.Games[0].Date)
	assert.Equal(t, "2025-01-09", s.Games[1].Date)
	assert.Equal(t, "2025-01-15", s.Games[2].Date)
	assert.Equal(t, "TBD", s.Games[3].Date)
}

func TestNormalizeScheduleSpringSport(t *testing.T) {
	s := &ExtractedSchedule{
		Sport:  "lacrosse",
		Season: "2025-26",
		Games:  []ExtractedGame{{Date: "3/14", Opponent: "Concord"}},
	}

	NormalizeSchedule(s, ScheduleOverrides{})
	assert.Equal(t, "2026-03-14", s.Games[0].Date)
}

func TestNormalizeScheduleOverridesWin(t *testing.T) {
	s := &ExtractedSchedule{Sport: "basketball", Gender: "boys"}
	NormalizeSchedule(s, ScheduleOverrides{Sport: "football", Gender: "girls"})
	assert.Equal(t, constants.Football, s.Sport)
	assert.Equal(t, constants.Girls, s.Gender)
}

func TestCorrectGameDatesIdempotent(t *testing.T) {
	s := &ExtractedSchedule{
		Sport:  constants.Basketball,
		Season: "2024-25",
		Games:  []ExtractedGame{{Date: "12/5", Opponent: "Concord"}},
	}

	CorrectGameDates(s)
	first := s.Games[0].Date
	CorrectGameDates(s)
	assert.Equal(t, first, s.Games[0].Date)
}

func TestNormalizeScheduleNil(t *testing.T) {
	NormalizeSchedule(nil, ScheduleOverrides{})
}
