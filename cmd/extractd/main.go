package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/prepsportshq/preps-extract/gen/proto/extraction/v1"
	"github.com/prepsportshq/preps-extract/internal/commit"
	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/export"
	"github.com/prepsportshq/preps-extract/internal/extraction"
	repo "github.com/prepsportshq/preps-extract/internal/repository"
	"github.com/prepsportshq/preps-extract/internal/schools"
	svc "github.com/prepsportshq/preps-extract/internal/server"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	scorebookClient := visionClient(cfg.Vision.ScorebookProvider, cfg.Vision, logger)
	documentClient := visionClient(cfg.Vision.DocumentProvider, cfg.Vision, logger)

	scorebook := extraction.NewScorebookExtractor(scorebookClient, logger)
	roster := extraction.NewRosterExtractor(documentClient, logger)
	schedule := extraction.NewScheduleExtractor(documentClient, logger)

	schoolRepo := repo.NewSchoolRepository(entc, logger)
	playerRepo := repo.NewPlayerRepository(entc, logger)
	gameRepo := repo.NewGameRepository(entc, logger)

	resolver := schools.NewResolver(schoolRepo, logger)
	committer := commit.NewService(resolver, playerRepo, gameRepo, logger)
	exporter := export.NewService(playerRepo, gameRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionService(scorebook, roster, schedule, logger))
	v1.RegisterSchoolsServiceServer(grpcServer, svc.NewSchoolsService(resolver, schoolRepo, logger))
	v1.RegisterCommitServiceServer(grpcServer, svc.NewCommitService(committer, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("preps-extract listening",
		"addr", cfg.Server.GRPCAddr,
		"scorebook_provider", cfg.Vision.ScorebookProvider,
		"document_provider", cfg.Vision.DocumentProvider,
	)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

func visionClient(provider string, cfg common.VisionConfig, logger *slog.Logger) vision.Client {
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
