package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/gen/ent"
	"github.com/prepsportshq/preps-extract/gen/ent/school"
	"github.com/prepsportshq/preps-extract/gen/ent/schoolalias"
	"github.com/prepsportshq/preps-extract/internal/entity"
	"github.com/prepsportshq/preps-extract/internal/schools"
)

// SchoolRepository implements schools.Store over ent.
type SchoolRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSchoolRepository(client *ent.Client, logger *slog.Logger) *SchoolRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchoolRepository{client: client, logger: logger}
}

var _ schools.Store = (*SchoolRepository)(nil)

func (r *SchoolRepository) GetByName(ctx context.Context, name string) (*entity.School, error) {
	row, err := r.client.School.Query().
		Where(school.NameEqualFold(name)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toSchool(row), nil
}

func (r *SchoolRepository) GetByAlias(ctx context.Context, alias string) (*entity.School, error) {
	row, err := r.client.SchoolAlias.Query().
		Where(schoolalias.AliasEqualFold(alias)).
		QuerySchool().
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toSchool(row), nil
}

func (r *SchoolRepository) ListNames(ctx context.Context) ([]string, error) {
	return r.client.School.Query().
		Order(school.ByName()).
		Select(school.FieldName).
		Strings(ctx)
}

func (r *SchoolRepository) List(ctx context.Context) ([]*entity.School, error) {
	rows, err := r.client.School.Query().
		Order(school.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list schools", "error", err)
		return nil, err
	}
	result := make([]*entity.School, len(rows))
	for i, row := range rows {
		result[i] = toSchool(row)
	}
	return result, nil
}

func (r *SchoolRepository) Create(ctx context.Context, s schools.CreateSchool) (*entity.School, error) {
	builder := r.client.School.Create().
		SetKey(s.Key).
		SetName(s.Name)
	if s.City != "" {
		builder = builder.SetCity(s.City)
	}
	if s.Classification != "" {
		builder = builder.SetClassification(s.Classification)
	}
	if s.Conference != "" {
		builder = builder.SetConference(s.Conference)
	}

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, schools.ErrKeyExists
	}
	if err != nil {
		r.logger.Error("failed to create school", "name", s.Name, "key", s.Key, "error", err)
		return nil, err
	}
	return toSchool(row), nil
}

func (r *SchoolRepository) AddAlias(ctx context.Context, schoolID uuid.UUID, alias string) error {
	err := r.client.SchoolAlias.Create().
		SetSchoolID(schoolID).
		SetAlias(alias).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return schools.ErrAliasExists
	}
	return err
}

// Aliases returns the recorded spellings for one school.
func (r *SchoolRepository) Aliases(ctx context.Context, schoolID uuid.UUID) ([]string, error) {
	return r.client.SchoolAlias.Query().
		Where(schoolalias.SchoolID(schoolID)).
		Order(schoolalias.ByAlias()).
		Select(schoolalias.FieldAlias).
		Strings(ctx)
}

func toSchool(row *ent.School) *entity.School {
	return &entity.School{
		ID:             row.ID,
		Key:            row.Key,
		Name:           row.Name,
		City:           row.City,
		Classification: row.Classification,
		Conference:     row.Conference,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
