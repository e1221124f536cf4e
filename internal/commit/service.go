// Package commit performs the relational writes for human-approved
// extraction results: school resolution first, then player/game rows.
package commit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/extraction"
	"github.com/prepsportshq/preps-extract/internal/repository"
	"github.com/prepsportshq/preps-extract/internal/schools"
)

// Summary reports what a commit actually did so the review UI can show
// created/updated/skipped counts.
type Summary struct {
	SchoolID      string `json:"school_id"`
	SchoolCreated bool   `json:"school_created"`
	Created       int    `json:"created"`
	Updated       int    `json:"updated"`
	Skipped       int    `json:"skipped"`
}

type Service struct {
	resolver *schools.Resolver
	players  repository.PlayerRepository
	games    repository.GameRepository
	logger   *slog.Logger
}

func NewService(resolver *schools.Resolver, players repository.PlayerRepository, games repository.GameRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resolver: resolver, players: players, games: games, logger: logger}
}

// CommitRoster writes the reviewed roster into the target season. Players
// flagged dropped (graduating seniors) are skipped; existing entries for the
// same school/sport/gender/season are updated in place.
func (s *Service) CommitRoster(ctx context.Context, r *extraction.ExtractedRoster) (Summary, error) {
	if issues := extraction.ValidateRoster(r); !extraction.Passed(issues) {
		return Summary{}, common.NewAppError("VALIDATION_FAILED",
			fmt.Sprintf("roster has %d blocking issues", countErrors(issues)), common.ErrValidation)
	}

	res, err := s.resolver.Resolve(ctx, r.SchoolName, schools.ResolveOptions{})
	if err != nil {
		return Summary{}, fmt.Errorf("resolve school: %w", err)
	}
	schoolID, err := uuid.Parse(res.ID)
	if err != nil {
		return Summary{}, fmt.Errorf("parse school id: %w", err)
	}

	summary := Summary{SchoolID: res.ID, SchoolCreated: res.Created}
	for _, p := range r.Players {
		if p.Dropped {
			summary.Skipped++
			continue
		}
		req := &repository.CreatePlayerRequest{
			SchoolID:     schoolID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			JerseyNumber: p.JerseyNumber,
			Position:     p.Position,
			Grade:        p.ProgressedGrade,
			HeightFeet:   p.HeightFeet,
			HeightInches: p.HeightInches,
			Weight:       p.Weight,
			Sport:        string(r.Sport),
			Gender:       string(r.Gender),
			Season:       r.TargetSeason,
		}
		existing, err := s.players.Find(ctx, req)
		if err != nil {
			return summary, fmt.Errorf("find player %s %s: %w", p.FirstName, p.LastName, err)
		}
		if existing != nil {
			if _, err := s.players.Update(ctx, existing.ID, req); err != nil {
				return summary, fmt.Errorf("update player %s %s: %w", p.FirstName, p.LastName, err)
			}
			summary.Updated++
			continue
		}
		if _, err := s.players.Create(ctx, req); err != nil {
			return summary, fmt.Errorf("create player %s %s: %w", p.FirstName, p.LastName, err)
		}
		summary.Created++
	}

	s.logger.Info("commit.roster.ok",
		"school_id", summary.SchoolID,
		"school_created", summary.SchoolCreated,
		"season", r.TargetSeason,
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

// CommitSchedule writes the reviewed schedule. Games already present for the
// school (same date and opponent) are skipped, never overwritten.
func (s *Service) CommitSchedule(ctx context.Context, sched *extraction.ExtractedSchedule) (Summary, error) {
	if issues := extraction.ValidateSchedule(sched); !extraction.Passed(issues) {
		return Summary{}, common.NewAppError("VALIDATION_FAILED",
			fmt.Sprintf("schedule has %d blocking issues", countErrors(issues)), common.ErrValidation)
	}

	res, err := s.resolver.Resolve(ctx, sched.TeamName, schools.ResolveOptions{
		City:           sched.City,
		Classification: sched.Classification,
		Conference:     sched.Conference,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("resolve school: %w", err)
	}
	schoolID, err := uuid.Parse(res.ID)
	if err != nil {
		return Summary{}, fmt.Errorf("parse school id: %w", err)
	}

	summary := Summary{SchoolID: res.ID, SchoolCreated: res.Created}
	for _, g := range sched.Games {
		date, err := time.Parse("2006-01-02", g.Date)
		if err != nil {
			return summary, fmt.Errorf("parse game date %q: %w", g.Date, err)
		}
		exists, err := s.games.Exists(ctx, schoolID, date, g.Opponent)
		if err != nil {
			return summary, fmt.Errorf("check game %s vs %s: %w", g.Date, g.Opponent, err)
		}
		if exists {
			summary.Skipped++
			continue
		}
		_, err = s.games.Create(ctx, &repository.CreateGameRequest{
			SchoolID:     schoolID,
			Sport:        string(sched.Sport),
			Gender:       string(sched.Gender),
			Season:       sched.Season,
			Date:         date,
			Time:         g.Time,
			Opponent:     g.Opponent,
			OpponentCity: g.OpponentCity,
			IsHome:       g.IsHome,
			IsConference: g.IsConference,
			Location:     g.Location,
		})
		if err != nil {
			return summary, fmt.Errorf("create game %s vs %s: %w", g.Date, g.Opponent, err)
		}
		summary.Created++
	}

	s.logger.Info("commit.schedule.ok",
		"school_id", summary.SchoolID,
		"season", sched.Season,
		"created", summary.Created,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

// CommitGameRequest carries the reviewed scorebook game plus the context the
// scorebook page itself does not show.
type CommitGameRequest struct {
	Game   *extraction.BasketballGame
	Gender string
	Season string
}

// CommitGame writes a completed game from the home team's perspective. The
// away school is resolved too so its identity exists for later imports.
func (s *Service) CommitGame(ctx context.Context, req CommitGameRequest) (Summary, error) {
	g := req.Game
	if issues := extraction.ValidateGame(g); !extraction.Passed(issues) {
		return Summary{}, common.NewAppError("VALIDATION_FAILED",
			fmt.Sprintf("game has %d blocking issues", countErrors(issues)), common.ErrValidation)
	}
	gender, ok := constants.CanonicalizeGender(req.Gender)
	if !ok {
		return Summary{}, common.NewAppError("INVALID_GENDER", req.Gender, common.ErrInvalidInput)
	}

	res, err := s.resolver.Resolve(ctx, g.HomeTeam.Name, schools.ResolveOptions{})
	if err != nil {
		return Summary{}, fmt.Errorf("resolve home school: %w", err)
	}
	if _, err := s.resolver.Resolve(ctx, g.AwayTeam.Name, schools.ResolveOptions{}); err != nil {
		return Summary{}, fmt.Errorf("resolve away school: %w", err)
	}
	schoolID, err := uuid.Parse(res.ID)
	if err != nil {
		return Summary{}, fmt.Errorf("parse school id: %w", err)
	}

	date, err := time.Parse("2006-01-02", g.Date)
	if err != nil {
		return Summary{}, fmt.Errorf("parse game date %q: %w", g.Date, err)
	}

	summary := Summary{SchoolID: res.ID, SchoolCreated: res.Created}
	exists, err := s.games.Exists(ctx, schoolID, date, g.AwayTeam.Name)
	if err != nil {
		return summary, fmt.Errorf("check game: %w", err)
	}
	if exists {
		summary.Skipped++
		return summary, nil
	}

	homeScore, awayScore := g.HomeTeam.Score, g.AwayTeam.Score
	location := ""
	if g.Location != nil {
		location = *g.Location
	}
	_, err = s.games.Create(ctx, &repository.CreateGameRequest{
		SchoolID:  schoolID,
		Sport:     string(constants.Basketball),
		Gender:    string(gender),
		Season:    req.Season,
		Date:      date,
		Opponent:  g.AwayTeam.Name,
		IsHome:    true,
		Location:  location,
		HomeScore: &homeScore,
		AwayScore: &awayScore,
	})
	if err != nil {
		return summary, fmt.Errorf("create game: %w", err)
	}
	summary.Created++

	s.logger.Info("commit.game.ok",
		"school_id", summary.SchoolID,
		"date", g.Date,
		"opponent", g.AwayTeam.Name,
	)
	return summary, nil
}

func countErrors(issues []extraction.ValidationIssue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == extraction.SeverityError {
			n++
		}
	}
	return n
}
