// extract runs one extraction against a local file and prints the result as
// JSON. Useful for prompt and validator iteration without the gRPC server.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/extraction"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage: extract <scorebook|roster|schedule> <file> [sport] [gender]")
		os.Exit(2)
	}
	kind := os.Args[1]
	path := os.Args[2]
	sport, gender := "", ""
	if len(os.Args) >= 4 {
		sport = os.Args[3]
	}
	if len(os.Args) >= 5 {
		gender = os.Args[4]
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		logger.Error("unsupported file extension", "ext", ext)
		os.Exit(2)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}
	img := vision.ImageInput{
		SourceType: "base64",
		Data:       base64.StdEncoding.EncodeToString(raw),
		MediaType:  constants.MediaTypeForExt(ext),
	}

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var out any
	switch kind {
	case "scorebook":
		client := providerClient(cfg.Vision.ScorebookProvider, cfg.Vision, logger)
		result, err := extraction.NewScorebookExtractor(client, logger).Extract(ctx, img)
		if err != nil {
			logger.Error("extract failed", "error", err)
			os.Exit(1)
		}
		out = result
	case "roster":
		client := providerClient(cfg.Vision.DocumentProvider, cfg.Vision, logger)
		result, err := extraction.NewRosterExtractor(client, logger).Extract(ctx, img, extraction.RosterOverrides{Sport: sport, Gender: gender})
		if err != nil {
			logger.Error("extract failed", "error", err)
			os.Exit(1)
		}
		out = result
	case "schedule":
		client := providerClient(cfg.Vision.DocumentProvider, cfg.Vision, logger)
		result, err := extraction.NewScheduleExtractor(client, logger).Extract(ctx, img, extraction.ScheduleOverrides{Sport: sport, Gender: gender})
		if err != nil {
			logger.Error("extract failed", "error", err)
			os.Exit(1)
		}
		out = result
	default:
		logger.Error("unknown kind", "kind", kind)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}

func providerClient(provider string, cfg common.VisionConfig, logger *slog.Logger) vision.Client {
	if provider == "openai" {
		return vision.NewOpenAIClient(vision.OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger)
	}
	return vision.NewAnthropicClient(vision.AnthropicConfig{
		APIKey:      cfg.AnthropicAPIKey,
		BaseURL:     cfg.AnthropicBaseURL,
		Model:       cfg.AnthropicModel,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	}, logger)
}
