package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/prepsportshq/preps-extract/gen/proto/extraction/v1"
	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportRoster(ctx context.Context, req *v1.ExportRosterRequest) (*v1.ExportResponse, error) {
	schoolID, sport, gender, season, err := exportParams(req.GetSchoolId(), req.GetSport(), req.GetGender(), req.GetSeason())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.RosterXLSX(ctx, schoolID, sport, gender, season)
	if err != nil {
		s.logger.Error("export.roster.failed", "school_id", schoolID, "err", err)
		return nil, status.Errorf(codes.Internal, "export roster: %v", err)
	}
	return &v1.ExportResponse{Xlsx: xlsx}, nil
}

func (s *ExportService) ExportSchedule(ctx context.Context, req *v1.ExportScheduleRequest) (*v1.ExportResponse, error) {
	schoolID, sport, gender, season, err := exportParams(req.GetSchoolId(), req.GetSport(), req.GetGender(), req.GetSeason())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ScheduleXLSX(ctx, schoolID, sport, gender, season)
	if err != nil {
		s.logger.Error("export.schedule.failed", "school_id", schoolID, "err", err)
		return nil, status.Errorf(codes.Internal, "export schedule: %v", err)
	}
	return &v1.ExportResponse{Xlsx: xlsx}, nil
}

func exportParams(rawID, rawSport, rawGender, rawSeason string) (uuid.UUID, string, string, string, error) {
	schoolID, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return uuid.Nil, "", "", "", status.Error(codes.InvalidArgument, "school_id must be a UUID")
	}
	sport, ok := constants.CanonicalizeSport(rawSport)
	if !ok {
		return uuid.Nil, "", "", "", status.Errorf(codes.InvalidArgument, "unknown sport %q", rawSport)
	}
	gender, ok := constants.CanonicalizeGender(rawGender)
	if !ok {
		return uuid.Nil, "", "", "", status.Errorf(codes.InvalidArgument, "unknown gender %q", rawGender)
	}
	season := strings.TrimSpace(rawSeason)
	if season == "" {
		return uuid.Nil, "", "", "", status.Error(codes.InvalidArgument, "season is required")
	}
	return schoolID, string(sport), string(gender), season, nil
}
