package extraction

import (
	"context"
	"log/slog"

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/internal/season"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

// RosterOverrides are caller-supplied values that win over whatever the
// model read from the document header.
type RosterOverrides struct {
	Sport  string
	Gender string
}

// RosterExtractor reads roster PDFs/photos and advances them one school
// year for the next-season import.
type RosterExtractor struct {
	client vision.Client
	logger *slog.Logger
}

func NewRosterExtractor(client vision.Client, logger *slog.Logger) *RosterExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterExtractor{client: client, logger: logger}
}

func (e *RosterExtractor) Extract(ctx context.Context, img vision.ImageInput, overrides RosterOverrides) (Result[ExtractedRoster], error) {
	sport, _ := constants.CanonicalizeSport(overrides.Sport)
	gender, _ := constants.CanonicalizeGender(overrides.Gender)

	result, err := runExtract[ExtractedRoster](ctx, e.client, e.logger, "roster", img, BuildRosterPrompt(sport, gender), RosterJSONSchema(), vision.Options{})
	if err != nil {
		return result, err
	}

	NormalizeRoster(result.Data, overrides)
	result.Issues = append(result.Issues, ValidateRoster(result.Data)...)
	result.Success = Passed(result.Issues)

	e.logger.Info("extract.roster.ok",
		"school", result.Data.SchoolName,
		"sport", result.Data.Sport,
		"source_season", result.Data.SourceSeason,
		"target_season", result.Data.TargetSeason,
		"players", len(result.Data.Players),
		"issues", len(result.Issues),
		"success", result.Success,
	)
	return result, nil
}

// NormalizeRoster applies the deterministic post-decode transforms: override
// precedence for sport/gender, grade canonicalization and one-year
// progression, and season advancement. Pure; runs before validation.
func NormalizeRoster(r *ExtractedRoster, overrides RosterOverrides) {
	if r == nil {
		return
	}

	if s, ok := constants.CanonicalizeSport(overrides.Sport); ok {
		r.Sport = s
	} else if s, ok := constants.CanonicalizeSport(string(r.Sport)); ok {
		r.Sport = s
	}
	if g, ok := constants.CanonicalizeGender(overrides.Gender); ok {
		r.Gender = g
	} else if g, ok := constants.CanonicalizeGender(string(r.Gender)); ok {
		r.Gender = g
	}

	for i := range r.Players {
		p := &r.Players[i]
		if p.Grade == nil || constants.CanonicalizeGrade(*p.Grade) == "" {
			// Cannot determine the grade; never assume graduation.
			p.Grade = nil
			p.ProgressedGrade = nil
			p.Dropped = false
			continue
		}
		grade := constants.CanonicalizeGrade(*p.Grade)
		next, dropped := constants.ProgressGrade(grade)
		p.Grade = &grade
		p.ProgressedGrade = &next
		p.Dropped = dropped
	}

	r.TargetSeason = season.Advance(r.SourceSeason)
}
