package extraction

import (
	"context"
	"log/slog"

	"github.com/prepsportshq/preps-extract/internal/vision"
)

// ScorebookExtractor reads handwritten basketball scorebook photos.
type ScorebookExtractor struct {
	client vision.Client
	logger *slog.Logger
}

func NewScorebookExtractor(client vision.Client, logger *slog.Logger) *ScorebookExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScorebookExtractor{client: client, logger: logger}
}

func (e *ScorebookExtractor) Extract(ctx context.Context, img vision.ImageInput) (Result[BasketballGame], error) {
	result, err := runExtract[BasketballGame](ctx, e.client, e.logger, "scorebook", img, BuildScorebookPrompt(), ScorebookJSONSchema(), vision.Options{})
	if err != nil {
		return result, err
	}

	result.Issues = append(result.Issues, ValidateGame(result.Data)...)
	result.Success = Passed(result.Issues)

	e.logger.Info("extract.scorebook.ok",
		"home", result.Data.HomeTeam.Name,
		"away", result.Data.AwayTeam.Name,
		"date", result.Data.Date,
		"issues", len(result.Issues),
		"success", result.Success,
	)
	return result, nil
}
