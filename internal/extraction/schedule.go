package extraction

import (
	"context"
	"log/slog"

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/internal/season"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

// ScheduleOverrides are caller-supplied values that win over whatever the
// model read from the document header.
type ScheduleOverrides struct {
	Sport  string
	Gender string
}

// ScheduleExtractor reads season schedule documents.
type ScheduleExtractor struct {
	client vision.Client
	logger *slog.Logger
}

func NewScheduleExtractor(client vision.Client, logger *slog.Logger) *ScheduleExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleExtractor{client: client, logger: logger}
}

func (e *ScheduleExtractor) Extract(ctx context.Context, img vision.ImageInput, overrides ScheduleOverrides) (Result[ExtractedSchedule], error) {
	sport, _ := constants.CanonicalizeSport(overrides.Sport)

	result, err := runExtract[ExtractedSchedule](ctx, e.client, e.logger, "schedule", img, BuildSchedulePrompt(sport), ScheduleJSONSchema(), vision.Options{})
	if err != nil {
		return result, err
	}

	NormalizeSchedule(result.Data, overrides)
	result.Issues = append(result.Issues, ValidateSchedule(result.Data)...)
	result.Success = Passed(result.Issues)

	e.logger.Info("extract.schedule.ok",
		"team", result.Data.TeamName,
		"sport", result.Data.Sport,
		"season", result.Data.Season,
		"games", len(result.Data.Games),
		"issues", len(result.Issues),
		"success", result.Success,
	)
	return result, nil
}

// NormalizeSchedule applies override precedence for sport/gender and then
// re-derives every game date's calendar year from the season rule. The model
// is prompted with the same rule, but its output is re-verified here as a
// safety net; the correction is idempotent and runs before validation so
// mis-dated duplicates still collide.
func NormalizeSchedule(s *ExtractedSchedule, overrides ScheduleOverrides) {
	if s == nil {
		return
	}

	if sp, ok := constants.CanonicalizeSport(overrides.Sport); ok {
		s.Sport = sp
	} else if sp, ok := constants.CanonicalizeSport(string(s.Sport)); ok {
		s.Sport = sp
	}
	if g, ok := constants.CanonicalizeGender(overrides.Gender); ok {
		s.Gender = g
	} else if g, ok := constants.CanonicalizeGender(string(s.Gender)); ok {
		s.Gender = g
	}

	CorrectGameDates(s)
}

// CorrectGameDates rewrites each game date so its calendar year agrees with
// the sport's fall/winter/spring rule for the schedule's season.
func CorrectGameDates(s *ExtractedSchedule) {
	for i := range s.Games {
		s.Games[i].Date = season.NormalizeDate(s.Games[i].Date, s.Sport, s.Season)
	}
}
