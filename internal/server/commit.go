package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/prepsportshq/preps-extract/gen/proto/extraction/v1"
	"github.com/prepsportshq/preps-extract/internal/commit"
	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/extraction"
)

type CommitService struct {
	v1.UnimplementedCommitServiceServer
	svc    *commit.Service
	logger *slog.Logger
}

func NewCommitService(svc *commit.Service, logger *slog.Logger) *CommitService {
	return &CommitService{svc: svc, logger: logger}
}

func (s *CommitService) CommitRoster(ctx context.Context, req *v1.CommitRosterRequest) (*v1.CommitResponse, error) {
	var roster extraction.ExtractedRoster
	if err := decodePayload(req.GetRosterJson(), &roster); err != nil {
		return nil, err
	}

	summary, err := s.svc.CommitRoster(ctx, &roster)
	if err != nil {
		return nil, commitStatus(s.logger, "roster", err)
	}
	return toCommitResponse(summary), nil
}

func (s *CommitService) CommitSchedule(ctx context.Context, req *v1.CommitScheduleRequest) (*v1.CommitResponse, error) {
	var sched extraction.ExtractedSchedule
	if err := decodePayload(req.GetScheduleJson(), &sched); err != nil {
		return nil, err
	}

	summary, err := s.svc.CommitSchedule(ctx, &sched)
	if err != nil {
		return nil, commitStatus(s.logger, "schedule", err)
	}
	return toCommitResponse(summary), nil
}

func (s *CommitService) CommitGame(ctx context.Context, req *v1.CommitGameRequest) (*v1.CommitResponse, error) {
	var game extraction.BasketballGame
	if err := decodePayload(req.GetGameJson(), &game); err != nil {
		return nil, err
	}
	season := strings.TrimSpace(req.GetSeason())
	if season == "" {
		return nil, status.Error(codes.InvalidArgument, "season is required")
	}

	summary, err := s.svc.CommitGame(ctx, commit.CommitGameRequest{
		Game:   &game,
		Gender: req.GetGender(),
		Season: season,
	})
	if err != nil {
		return nil, commitStatus(s.logger, "game", err)
	}
	return toCommitResponse(summary), nil
}

func decodePayload(raw string, v any) error {
	if strings.TrimSpace(raw) == "" {
		return status.Error(codes.InvalidArgument, "payload is required")
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return status.Errorf(codes.InvalidArgument, "payload is not valid JSON: %v", err)
	}
	return nil
}

func commitStatus(logger *slog.Logger, kind string, err error) error {
	var appErr *common.AppError
	if errors.As(err, &appErr) && errors.Is(err, common.ErrValidation) {
		return status.Errorf(codes.FailedPrecondition, "%s: %s", appErr.Code, appErr.Message)
	}
	if errors.As(err, &appErr) && errors.Is(err, common.ErrInvalidInput) {
		return status.Errorf(codes.InvalidArgument, "%s: %s", appErr.Code, appErr.Message)
	}
	logger.Error("commit failed", "kind", kind, "error", err)
	return status.Errorf(codes.Internal, "commit %s: %v", kind, err)
}

func toCommitResponse(summary commit.Summary) *v1.CommitResponse {
	return &v1.CommitResponse{
		SchoolId:      summary.SchoolID,
		SchoolCreated: summary.SchoolCreated,
		Created:       int32(summary.Created),
		Updated:       int32(summary.Updated),
		Skipped:       int32(summary.Skipped),
	}
}
