package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack-app/carbon-tracker/constants"
	"github.com/ecotrack-app/carbon-tracker/internal/async"
	"github.com/ecotrack-app/carbon-tracker/internal/classify"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/emission"
	"github.com/ecotrack-app/carbon-tracker/internal/export"
	"github.com/ecotrack-app/carbon-tracker/internal/ocr"
	"github.com/ecotrack-app/carbon-tracker/internal/parse"
	"github.com/ecotrack-app/carbon-tracker/internal/pipeline"
	repo "github.com/ecotrack-app/carbon-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file    = flag.String("file", "", "single bill image to scan")
		dir     = flag.String("dir", "", "directory of bill images to scan")
		out     = flag.String("out", "", "output XLSX file path (optional, -dir mode)")
		region  = flag.String("region", "SG", "emission-factor region for the scratch profile")
		workers = flag.Int("workers", 4, "concurrent scans in -dir mode")
	)
	flag.Parse()

	if (*file == "") == (*dir == "") {
		printError("Error: exactly one of --file or --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := common.LoadConfig()
	if cfg.OCR.BaseURL == "" {
		logger.Error("OCR_BASE_URL is required")
		os.Exit(1)
	}

	// Scratch sqlite database: results live for this run (and the export).
	entc, pool, err := repo.Open(ctx, repo.Config{DSN: repo.InMemoryDSN}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)
	if err := repo.Migrate(ctx, entc); err != nil {
		logger.Error("migrate schema", "error", err)
		os.Exit(1)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	billsRepo := repo.NewBillRepository(entc, logger)

	prof, err := profilesRepo.Create(ctx, "Local Scan", *region)
	if err != nil {
		logger.Error("create scratch profile", "error", err)
		os.Exit(1)
	}

	table := emission.DefaultTable()
	if cfg.Emission.FactorsFile != "" {
		if table, err = emission.LoadTable(cfg.Emission.FactorsFile); err != nil {
			logger.Error("load emission factors", "error", err)
			os.Exit(1)
		}
	}

	extractor := ocr.NewClient(ocr.Config{
		BaseURL:  cfg.OCR.BaseURL,
		APIKey:   cfg.OCR.APIKey,
		Language: cfg.OCR.Language,
		Timeout:  cfg.OCR.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		logger,
		extractor,
		classify.NewClassifier(logger),
		parse.NewParser(logger),
		emission.NewCalculator(table),
		profilesRepo,
		billsRepo,
		nil,
	)

	if *file != "" {
		scanOne(ctx, logger, processor, prof.ID, *file)
		return
	}

	// Directory mode: fan files out to the scan queue, then export.
	queue := async.NewScanQueue(processor, logger,
		async.WithWorkers(*workers),
		async.WithScanTimeout(2*time.Minute),
	)
	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	queued := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(e.Name()))]; !ok {
			continue
		}
		_ = queue.Enqueue(ctx, async.Job{
			Path:        filepath.Join(*dir, e.Name()),
			ProfileID:   prof.ID,
			SubmittedAt: time.Now(),
		})
		queued++
	}
	logger.Info("queued bills", "count", queued)
	queue.Shutdown(ctx)

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(*dir), "utility-bills.xlsx")
	}
	data, err := export.NewService(billsRepo, logger).ExportBillsXLSX(ctx, prof.ID, nil, nil)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		logger.Error("write export", "path", outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", outPath)
}

func scanOne(ctx context.Context, logger *slog.Logger, processor *pipeline.Processor, profileID uuid.UUID, path string) {
	image, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read bill file", "path", path, "error", err)
		os.Exit(1)
	}
	rec, err := processor.ScanUpload(ctx, profileID, image, "")
	if err != nil {
		logger.Error("scan failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("scan OK",
		"bill_id", rec.ID,
		"electricity_kwh", deref(rec.ElectricityUsage),
		"water_m3", deref(rec.WaterUsage),
		"gas_kwh", deref(rec.GasUsage),
		"total_carbon_kg", rec.TotalCarbon,
	)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
