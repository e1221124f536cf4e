package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/prepsportshq/preps-extract/gen/proto/extraction/v1"
	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/repository"
	"github.com/prepsportshq/preps-extract/internal/schools"
)

type SchoolsService struct {
	v1.UnimplementedSchoolsServiceServer
	resolver   *schools.Resolver
	schoolRepo *repository.SchoolRepository
	logger     *slog.Logger
}

func NewSchoolsService(resolver *schools.Resolver, schoolRepo *repository.SchoolRepository, logger *slog.Logger) *SchoolsService {
	return &SchoolsService{
		resolver:   resolver,
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

func (s *SchoolsService) ResolveSchool(ctx context.Context, req *v1.ResolveSchoolRequest) (*v1.ResolveSchoolResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("name", name, common.Required).
		Field("name", name, maxLen(255))); err != nil {
		s.logger.Error("invalid resolve request", "error", err)
		return nil, err
	}

	res, err := s.resolver.Resolve(ctx, name, schools.ResolveOptions{
		City:           strings.TrimSpace(req.GetCity()),
		Classification: strings.TrimSpace(req.GetClassification()),
		Conference:     strings.TrimSpace(req.GetConference()),
	})
	if err != nil {
		s.logger.Error("failed to resolve school", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "resolve school: %v", err)
	}

	return &v1.ResolveSchoolResponse{
		Id:          res.ID,
		Name:        res.Name,
		Created:     res.Created,
		Method:      string(res.Method),
		AliasAdded:  res.AliasAdded,
		Suggestions: res.Suggestions,
	}, nil
}

func (s *SchoolsService) ListSchools(ctx context.Context, _ *v1.ListSchoolsRequest) (*v1.ListSchoolsResponse, error) {
	rows, err := s.schoolRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list schools", "error", err)
		return nil, status.Errorf(codes.Internal, "list schools: %v", err)
	}

	out := make([]*v1.School, 0, len(rows))
	for _, row := range rows {
		out = append(out, &v1.School{
			Id:             row.ID.String(),
			Key:            row.Key,
			Name:           row.Name,
			City:           row.City,
			Classification: row.Classification,
			Conference:     row.Conference,
			CreatedAt:      row.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:      row.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &v1.ListSchoolsResponse{Schools: out}, nil
}

func (s *SchoolsService) AddAlias(ctx context.Context, req *v1.AddAliasRequest) (*v1.AddAliasResponse, error) {
	alias := strings.TrimSpace(req.GetAlias())
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("school_id", req.GetSchoolId(), common.UUID).
		Field("alias", alias, common.Required)); err != nil {
		s.logger.Error("invalid add alias request", "error", err)
		return nil, err
	}
	schoolID, err := uuid.Parse(strings.TrimSpace(req.GetSchoolId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "school_id must be a UUID")
	}

	if err := s.schoolRepo.AddAlias(ctx, schoolID, alias); err != nil {
		if err == schools.ErrAliasExists {
			return nil, status.Error(codes.AlreadyExists, "alias already recorded")
		}
		s.logger.Error("failed to add alias", "school_id", schoolID, "alias", alias, "error", err)
		return nil, status.Errorf(codes.Internal, "add alias: %v", err)
	}

	s.logger.Info("alias added", "school_id", schoolID, "alias", alias)
	return &v1.AddAliasResponse{}, nil
}

func maxLen(n int) common.ValidationRule {
	return func(fieldName string, value interface{}) *common.ValidationError {
		return common.MaxLength(fieldName, value, n)
	}
}
