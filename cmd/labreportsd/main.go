package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/async"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/export"
	"github.com/joseph-ayodele/labreports-tracker/internal/extract"
	"github.com/joseph-ayodele/labreports-tracker/internal/jobs"
	"github.com/joseph-ayodele/labreports-tracker/internal/llm"
	"github.com/joseph-ayodele/labreports-tracker/internal/llm/openai"
	"github.com/joseph-ayodele/labreports-tracker/internal/pipeline"
	repo "github.com/joseph-ayodele/labreports-tracker/internal/repository"
	svc "github.com/joseph-ayodele/labreports-tracker/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments pass env directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Ping DB to ensure connectivity
	err = repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger)
	if err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewReportFileRepository(entc, logger)
	jobsRepo := repo.NewAnalysisJobRepository(entc, logger)
	resultsRepo := repo.NewLabResultRepository(entc, logger)

	// Enrichment client
	openaiClient := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	enricher := llm.NewEnricher(openaiClient, logger, llm.WithBatchSize(cfg.LLM.BatchSize))

	// Analysis pipeline
	parser := extract.NewParser(logger, nil)
	processor := pipeline.NewProcessor(
		jobsRepo,
		resultsRepo,
		pipeline.NewExtractStage(filesRepo, parser, logger),
		pipeline.NewEnrichStage(enricher, logger),
		logger,
	)

	queue := async.NewProcessorQueue(processor.Process, processor.MarkFailed, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.JobTimeout),
		async.WithMaxAttempts(cfg.Queue.MaxAttempts),
		async.WithBaseBackoff(cfg.Queue.BaseBackoff),
	)

	manager := jobs.NewManager(jobsRepo, filesRepo, profilesRepo, queue, logger)
	v1.RegisterProfilesServiceServer(grpcServer, svc.NewProfilesServer(profilesRepo, logger))
	v1.RegisterFilesServiceServer(grpcServer, svc.NewFilesServer(filesRepo, profilesRepo, logger))
	v1.RegisterJobsServiceServer(grpcServer, svc.NewJobsServer(manager, logger))

	exporter := export.NewService(resultsRepo, jobsRepo, logger)
	v1.RegisterResultsServiceServer(grpcServer, svc.NewResultsServer(resultsRepo, jobsRepo, exporter, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	logger.Info("labreports-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
