package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/gen/ent"
	"github.com/prepsportshq/preps-extract/gen/ent/game"
	"github.com/prepsportshq/preps-extract/internal/entity"
)

// CreateGameRequest wraps parameters for creating a game row.
type CreateGameRequest struct {
	SchoolID     uuid.UUID
	Sport        string
	Gender       string
	Season       string
	Date         time.Time
	Time         string
	Opponent     string
	OpponentCity string
	IsHome       bool
	IsConference bool
	Location     string
	HomeScore    *int
	AwayScore    *int
}

type GameRepository interface {
	// Exists reports whether a game with the same school, date, and
	// opponent (case-insensitive) is already recorded.
	Exists(ctx context.Context, schoolID uuid.UUID, date time.Time, opponent string) (bool, error)
	Create(ctx context.Context, req *CreateGameRequest) (*entity.Game, error)
	ListSeason(ctx context.Context, schoolID uuid.UUID, sport, gender, season string) ([]*entity.Game, error)
}

type gameRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGameRepository(client *ent.Client, logger *slog.Logger) GameRepository {
	return &gameRepository{client: client, logger: logger}
}

func (r *gameRepository) Exists(ctx context.Context, schoolID uuid.UUID, date time.Time, opponent string) (bool, error) {
	return r.client.Game.Query().
		Where(
			game.SchoolID(schoolID),
			game.DateEQ(date),
			game.OpponentEqualFold(opponent),
		).
		Exist(ctx)
}

func (r *gameRepository) Create(ctx context.Context, req *CreateGameRequest) (*entity.Game, error) {
	builder := r.client.Game.Create().
		SetSchoolID(req.SchoolID).
		SetSport(req.Sport).
		SetGender(req.Gender).
		SetSeason(req.Season).
		SetDate(req.Date).
		SetGameTime(req.Time).
		SetOpponent(req.Opponent).
		SetOpponentCity(req.OpponentCity).
		SetIsHome(req.IsHome).
		SetIsConference(req.IsConference).
		SetLocation(req.Location).
		SetNillableHomeScore(req.HomeScore).
		SetNillableAwayScore(req.AwayScore)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create game",
			"school_id", req.SchoolID,
			"date", req.Date.Format("2006-01-02"),
			"opponent", req.Opponent,
			"error", err,
		)
		return nil, err
	}
	return toGame(row), nil
}

func (r *gameRepository) ListSeason(ctx context.Context, schoolID uuid.UUID, sport, gender, season string) ([]*entity.Game, error) {
	rows, err := r.client.Game.Query().
		Where(
			game.SchoolID(schoolID),
			game.Sport(sport),
			game.Gender(gender),
			game.Season(season),
		).
		Order(game.ByDate()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Game, len(rows))
	for i, row := range rows {
		result[i] = toGame(row)
	}
	return result, nil
}

func toGame(row *ent.Game) *entity.Game {
	return &entity.Game{
		ID:           row.ID,
		SchoolID:     row.SchoolID,
		Sport:        row.Sport,
		Gender:       row.Gender,
		Season:       row.Season,
		Date:         row.Date,
		Time:         row.GameTime,
		Opponent:     row.Opponent,
		OpponentCity: row.OpponentCity,
		IsHome:       row.IsHome,
		IsConference: row.IsConference,
		Location:     row.Location,
		HomeScore:    row.HomeScore,
		AwayScore:    row.AwayScore,
		CreatedAt:    row.CreatedAt,
	}
}
