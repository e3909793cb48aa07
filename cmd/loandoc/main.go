package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/d-okonkwo/loandocs/internal/common"
	"github.com/d-okonkwo/loandocs/internal/ingest"
	"github.com/d-okonkwo/loandocs/internal/patterns"
	"github.com/d-okonkwo/loandocs/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in  = flag.String("in", "", "input document: element dump (.json) or PDF (required)")
		out = flag.String("out", "", "output directory (defaults to OUTPUT_DIR or ./outputs)")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *out == "" {
		*out = cfg.Output.Dir
	}

	stream, err := ingest.Load(*in)
	if err != nil {
		printError("Error: load input: %v\n", err)
		os.Exit(1)
	}

	pl := pipeline.New(logger, patterns.Default(), *out)
	result := pl.Run(context.Background(), stream)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		printError("Error: encode result: %v\n", err)
		os.Exit(1)
	}
	if !result.Success {
		os.Exit(1)
	}
}
