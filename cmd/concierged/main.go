package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/internal/common"
	"github.com/portaria-digital/concierge/internal/docfields"
	"github.com/portaria-digital/concierge/internal/export"
	"github.com/portaria-digital/concierge/internal/extract"
	"github.com/portaria-digital/concierge/internal/facematch"
	"github.com/portaria-digital/concierge/internal/ocr"
	"github.com/portaria-digital/concierge/internal/pipeline/docscan"
	"github.com/portaria-digital/concierge/internal/pipeline/recognize"
	"github.com/portaria-digital/concierge/internal/repository"
	"github.com/portaria-digital/concierge/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	visitorsRepo := repository.NewVisitorRepository(entc, logger)
	visitsRepo := repository.NewVisitRepository(entc, logger)
	jobsRepo := repository.NewScanJobRepository(entc, logger)

	// Document scan pipeline
	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Language,
		TessdataDir:   cfg.OCR.TessdataDir,
		HeicConverter: cfg.OCR.HeicConverter,
	}, logger)
	scanPipeline := docscan.NewPipeline(
		logger,
		docscan.Config{},
		jobsRepo,
		extract.NewOCRAdapter(recognizer, logger),
		extract.NewFieldsAdapter(docfields.NewExtractor(logger)),
	)

	// Face recognition pipeline
	engine := facematch.NewEngine(ctx, facematch.Config{
		EmbedderCmd:   cfg.Face.EmbedderCmd,
		ModelDir:      cfg.Face.ModelDir,
		Threshold:     cfg.Face.Threshold,
		DescriptorDim: cfg.Face.DescriptorDim,
	}, logger)
	cache, err := facematch.OpenCache(cfg.Face.CacheDir)
	if err != nil {
		logger.Error("descriptor cache unavailable", "error", err)
		os.Exit(1)
	}
	defer cache.Close()
	recPipeline := recognize.NewPipeline(logger, visitorsRepo, engine, cache)

	exportSvc := export.NewService(visitsRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewConciergeServer(visitorsRepo, visitsRepo, scanPipeline, recPipeline, exportSvc, logger)
	conciergev1.RegisterConciergeServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "face_mode", engine.Mode())

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
