package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/assemble"
	"github.com/d-okonkwo/loandocs/internal/common"
	"github.com/d-okonkwo/loandocs/internal/export"
	"github.com/d-okonkwo/loandocs/internal/ingest"
	"github.com/d-okonkwo/loandocs/internal/patterns"
	"github.com/d-okonkwo/loandocs/internal/pipeline"
	"github.com/d-okonkwo/loandocs/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite archive")
		dir   = flag.String("dir", "", "directory to process documents from (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "extractions.xlsx")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.DSN = ""
	}

	db, dialect, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		printError("Error: open archive store: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	runsRepo := repository.NewRunRepository(db, dialect, logger)
	pl := pipeline.New(logger, patterns.Default(), cfg.Output.Dir)

	files, stats, err := ingest.CollectDirectory(*dir, nil, true)
	if err != nil {
		printError("Error: walk directory: %v\n", err)
		os.Exit(1)
	}
	logger.Info("batch.collected", "scanned", stats.Scanned, "matched", stats.Matched, "failed", stats.Failed)

	processed, failed := 0, 0
	for _, fr := range files {
		if fr.Err != "" {
			failed++
			continue
		}
		if processFile(ctx, logger, runsRepo, pl, fr.Path) {
			processed++
		} else {
			failed++
		}
	}

	svc := export.NewService(runsRepo, cfg.Export.SheetName, logger)
	data, err := svc.ExportRunsXLSX(ctx)
	if err != nil {
		printError("Error: export workbook: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: write workbook: %v\n", err)
		os.Exit(1)
	}

	logger.Info("batch.done", "processed", processed, "failed", failed, "xlsx", *out)
	if processed == 0 && failed > 0 {
		os.Exit(1)
	}
}

func processFile(ctx context.Context, logger *slog.Logger, runs repository.RunRepository, pl *pipeline.Pipeline, path string) bool {
	format := strings.ToUpper(constants.NormalizeExt(filepath.Ext(path)))
	run, err := runs.Start(ctx, path, format)
	if err != nil {
		logger.Error("batch.run.start_failed", "path", path, "err", err)
		return false
	}

	stream, err := ingest.Load(path)
	if err != nil {
		logger.Error("batch.run.load_failed", "path", path, "err", err)
		_ = runs.FinishFailure(ctx, run.ID, err.Error())
		return false
	}

	result := pl.Run(ctx, stream)
	if !result.Success {
		logger.Error("batch.run.failed", "path", path, "err", result.Error)
		_ = runs.FinishFailure(ctx, run.ID, result.Error)
		return false
	}

	recordJSON, err := assemble.MarshalRecord(result.Results)
	if err != nil {
		_ = runs.FinishFailure(ctx, run.ID, err.Error())
		return false
	}
	if err := runs.FinishSuccess(ctx, run.ID, result.Results, recordJSON); err != nil {
		logger.Error("batch.run.archive_failed", "path", path, "err", err)
		return false
	}
	return true
}
