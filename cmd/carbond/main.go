package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	billspb "github.com/ecotrack-app/carbon-tracker/gen/proto/carbontracker/v1"
	"github.com/ecotrack-app/carbon-tracker/internal/classify"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/emission"
	"github.com/ecotrack-app/carbon-tracker/internal/export"
	"github.com/ecotrack-app/carbon-tracker/internal/metrics"
	"github.com/ecotrack-app/carbon-tracker/internal/ocr"
	"github.com/ecotrack-app/carbon-tracker/internal/parse"
	"github.com/ecotrack-app/carbon-tracker/internal/pipeline"
	repo "github.com/ecotrack-app/carbon-tracker/internal/repository"
	svc "github.com/ecotrack-app/carbon-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
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
	if pool == nil {
		// sqlite: apply the schema in-process
		if err := repo.Migrate(ctx, entc); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
	}

	// Emission-factor table: built-in defaults unless a file overrides them.
	table := emission.DefaultTable()
	if cfg.Emission.FactorsFile != "" {
		table, err = emission.LoadTable(cfg.Emission.FactorsFile)
		if err != nil {
			logger.Error("failed to load emission factors", "path", cfg.Emission.FactorsFile, "error", err)
			os.Exit(1)
		}
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	billsRepo := repo.NewBillRepository(entc, logger)

	extractor := ocr.NewClient(ocr.Config{
		BaseURL:  cfg.OCR.BaseURL,
		APIKey:   cfg.OCR.APIKey,
		Language: cfg.OCR.Language,
		Timeout:  cfg.OCR.Timeout,
	}, logger)

	pipelineMetrics := metrics.NewPipeline(prometheus.DefaultRegisterer)
	processor := pipeline.NewProcessor(
		logger,
		extractor,
		classify.NewClassifier(logger),
		parse.NewParser(logger),
		emission.NewCalculator(table),
		profilesRepo,
		billsRepo,
		pipelineMetrics,
	)

	exporter := export.NewService(billsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	billspb.RegisterCarbonTrackerServiceServer(grpcServer, svc.NewBillService(processor, billsRepo, exporter, logger))
	billspb.RegisterProfilesServiceServer(grpcServer, svc.NewProfileService(profilesRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	var metricsSrv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			logger.Info("metrics listening", "addr", cfg.Metrics.Addr)
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics serve error", "error", err)
			}
		}()
	}

	logger.Info("carbon-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = metricsSrv.Shutdown(shutdownCtx)
		cancel()
	}
}
