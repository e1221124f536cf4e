package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/gen/ent"
	"github.com/prepsportshq/preps-extract/gen/ent/player"
	"github.com/prepsportshq/preps-extract/internal/entity"
)

// CreatePlayerRequest wraps parameters for creating or updating a roster entry.
type CreatePlayerRequest struct {
	SchoolID     uuid.UUID
	FirstName    string
	LastName     string
	JerseyNumber string
	Position     string
	Grade        *string
	HeightFeet   *int
	HeightInches *int
	Weight       *int
	Sport        string
	Gender       string
	Season       string
}

type PlayerRepository interface {
	// Find locates an existing roster entry by identity within one
	// school/sport/gender/season roster.
	Find(ctx context.Context, req *CreatePlayerRequest) (*entity.Player, error)
	Create(ctx context.Context, req *CreatePlayerRequest) (*entity.Player, error)
	Update(ctx context.Context, id uuid.UUID, req *CreatePlayerRequest) (*entity.Player, error)
	ListRoster(ctx context.Context, schoolID uuid.UUID, sport, gender, season string) ([]*entity.Player, error)
}

type playerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPlayerRepository(client *ent.Client, logger *slog.Logger) PlayerRepository {
	return &playerRepository{client: client, logger: logger}
}

func (r *playerRepository) Find(ctx context.Context, req *CreatePlayerRequest) (*entity.Player, error) {
	row, err := r.client.Player.Query().
		Where(
			player.SchoolID(req.SchoolID),
			player.Sport(req.Sport),
			player.Gender(req.Gender),
			player.Season(req.Season),
			player.FirstNameEqualFold(req.FirstName),
			player.LastNameEqualFold(req.LastName),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toPlayer(row), nil
}

func (r *playerRepository) Create(ctx context.Context, req *CreatePlayerRequest) (*entity.Player, error) {
	row, err := r.builder(r.client.Player.Create(), req).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create player",
			"school_id", req.SchoolID,
			"name", req.FirstName+" "+req.LastName,
			"error", err,
		)
		return nil, err
	}
	return toPlayer(row), nil
}

func (r *playerRepository) Update(ctx context.Context, id uuid.UUID, req *CreatePlayerRequest) (*entity.Player, error) {
	builder := r.client.Player.UpdateOneID(id).
		SetJerseyNumber(req.JerseyNumber).
		SetPosition(req.Position).
		SetNillableGrade(req.Grade).
		SetNillableHeightFeet(req.HeightFeet).
		SetNillableHeightInches(req.HeightInches).
		SetNillableWeight(req.Weight)
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update player", "player_id", id, "error", err)
		return nil, err
	}
	return toPlayer(row), nil
}

func (r *playerRepository) ListRoster(ctx context.Context, schoolID uuid.UUID, sport, gender, season string) ([]*entity.Player, error) {
	rows, err := r.client.Player.Query().
		Where(
			player.SchoolID(schoolID),
			player.Sport(sport),
			player.Gender(gender),
			player.Season(season),
		).
		Order(player.ByLastName(), player.ByFirstName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Player, len(rows))
	for i, row := range rows {
		result[i] = toPlayer(row)
	}
	return result, nil
}

func (r *playerRepository) builder(b *ent.PlayerCreate, req *CreatePlayerRequest) *ent.PlayerCreate {
	return b.
		SetSchoolID(req.SchoolID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetJerseyNumber(req.JerseyNumber).
		SetPosition(req.Position).
		SetNillableGrade(req.Grade).
		SetNillableHeightFeet(req.HeightFeet).
		SetNillableHeightInches(req.HeightInches).
		SetNillableWeight(req.Weight).
		SetSport(req.Sport).
		SetGender(req.Gender).
		SetSeason(req.Season)
}

func toPlayer(row *ent.Player) *entity.Player {
	return &entity.Player{
		ID:           row.ID,
		SchoolID:     row.SchoolID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		JerseyNumber: row.JerseyNumber,
		Position:     row.Position,
		Grade:        row.Grade,
		HeightFeet:   row.HeightFeet,
		HeightInches: row.HeightInches,
		Weight:       row.Weight,
		Sport:        row.Sport,
		Gender:       row.Gender,
		Season:       row.Season,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
