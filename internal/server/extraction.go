// Package server exposes the extraction pipeline over gRPC.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/prepsportshq/preps-extract/gen/proto/extraction/v1"
	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/extraction"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	scorebook *extraction.ScorebookExtractor
	roster    *extraction.RosterExtractor
	schedule  *extraction.ScheduleExtractor
	logger    *slog.Logger
}

func NewExtractionService(scorebook *extraction.ScorebookExtractor, roster *extraction.RosterExtractor, schedule *extraction.ScheduleExtractor, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{
		scorebook: scorebook,
		roster:    roster,
		schedule:  schedule,
		logger:    logger,
	}
}

func (s *ExtractionService) ExtractScorebook(ctx context.Context, req *v1.ExtractScorebookRequest) (*v1.ExtractResponse, error) {
	img, err := imageFromPB(req.GetImage())
	if err != nil {
		return nil, err
	}

	ctx = common.WithRequestID(ctx, uuid.New().String())
	result, err := s.scorebook.Extract(ctx, img)
	if err != nil {
		// Still a response, not a status error: the failed result carries the
		// issue codes and the raw model text the reviewer needs to diagnose.
		s.logger.Error("scorebook extraction failed", "error", err)
	}
	return toExtractResponse(result.Success, result.Data, result.Issues, result.Raw, result.ProcessingTimeMS)
}

func (s *ExtractionService) ExtractRoster(ctx context.Context, req *v1.ExtractRosterRequest) (*v1.ExtractResponse, error) {
	img, err := imageFromPB(req.GetImage())
	if err != nil {
		return nil, err
	}

	overrides := extraction.RosterOverrides{
		Sport:  strings.TrimSpace(req.GetSport()),
		Gender: strings.TrimSpace(req.GetGender()),
	}
	ctx = common.WithRequestID(ctx, uuid.New().String())
	result, err := s.roster.Extract(ctx, img, overrides)
	if err != nil {
		s.logger.Error("roster extraction failed", "error", err)
	}
	return toExtractResponse(result.Success, result.Data, result.Issues, result.Raw, result.ProcessingTimeMS)
}

func (s *ExtractionService) ExtractSchedule(ctx context.Context, req *v1.ExtractScheduleRequest) (*v1.ExtractResponse, error) {
	img, err := imageFromPB(req.GetImage())
	if err != nil {
		return nil, err
	}

	overrides := extraction.ScheduleOverrides{
		Sport:  strings.TrimSpace(req.GetSport()),
		Gender: strings.TrimSpace(req.GetGender()),
	}
	ctx = common.WithRequestID(ctx, uuid.New().String())
	result, err := s.schedule.Extract(ctx, img, overrides)
	if err != nil {
		s.logger.Error("schedule extraction failed", "error", err)
	}
	return toExtractResponse(result.Success, result.Data, result.Issues, result.Raw, result.ProcessingTimeMS)
}

func imageFromPB(img *v1.ImageInput) (vision.ImageInput, error) {
	if img == nil {
		return vision.ImageInput{}, status.Error(codes.InvalidArgument, "image is required")
	}
	sourceType := strings.TrimSpace(img.GetSourceType())
	if sourceType != "url" && sourceType != "base64" {
		return vision.ImageInput{}, status.Error(codes.InvalidArgument, "image.source_type must be url or base64")
	}
	if strings.TrimSpace(img.GetData()) == "" {
		return vision.ImageInput{}, status.Error(codes.InvalidArgument, "image.data is required")
	}
	if sourceType == "base64" && strings.TrimSpace(img.GetMediaType()) == "" {
		return vision.ImageInput{}, status.Error(codes.InvalidArgument, "image.media_type is required for base64 input")
	}
	return vision.ImageInput{
		SourceType: sourceType,
		Data:       img.GetData(),
		MediaType:  img.GetMediaType(),
	}, nil
}

func toExtractResponse[T any](success bool, data *T, issues []extraction.ValidationIssue, raw string, elapsedMS int64) (*v1.ExtractResponse, error) {
	result := &v1.ExtractionResult{
		Success:          success,
		Raw:              raw,
		ProcessingTimeMs: elapsedMS,
		Issues:           make([]*v1.ValidationIssue, 0, len(issues)),
	}
	for _, issue := range issues {
		result.Issues = append(result.Issues, &v1.ValidationIssue{
			Code:      issue.Code,
			Message:   issue.Message,
			FieldPath: issue.FieldPath,
			Severity:  string(issue.Severity),
		})
	}
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "marshal result: %v", err)
		}
		result.DataJson = string(payload)
	}
	return &v1.ExtractResponse{Result: result}, nil
}
