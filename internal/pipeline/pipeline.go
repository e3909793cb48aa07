// Package pipeline orchestrates one extraction run: page filtering,
// the extractor sequence, assembly, rendering, and output files. The
// whole run sits behind a single failure boundary; partial extraction
// is normal and only an unrecovered failure produces an error result.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/assemble"
	"github.com/d-okonkwo/loandocs/internal/element"
	"github.com/d-okonkwo/loandocs/internal/extract"
	"github.com/d-okonkwo/loandocs/internal/patterns"
	"github.com/d-okonkwo/loandocs/internal/render"
)

// Pipeline runs the full extraction for one element stream at a time.
type Pipeline struct {
	Logger    *slog.Logger
	Extractor *extract.Extractor
	Assembler *assemble.Assembler
	OutputDir string
}

// New wires a pipeline over the given rule set. Output files go to
// outputDir, created on first use.
func New(logger *slog.Logger, rules patterns.Library, outputDir string) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Logger:    logger,
		Extractor: extract.New(logger, rules),
		Assembler: assemble.New(logger),
		OutputDir: outputDir,
	}
}

// ShouldSkipFirstPage reports whether page 1 is a cover/template page:
// true only when the first Title on page 1 contains "template"
// (case-insensitive).
func ShouldSkipFirstPage(stream element.Stream) bool {
	title, ok := stream.First(func(el element.Element) bool {
		return el.Type == constants.ElementTitle && el.Metadata.PageNumber == 1
	})
	if !ok || title.Text == "" {
		return false
	}
	return strings.Contains(strings.ToLower(title.Text), "template")
}

// Extract runs the extractor sequence and assembly over the stream
// (already page-filtered) and returns the record plus the rendered
// markdown. The extractors are independent; the fixed order only
// keeps log interleaving deterministic.
func (p *Pipeline) Extract(stream element.Stream) (*assemble.DocumentRecord, string) {
	docType := p.Extractor.DocumentType(stream)
	loanTerms := p.Extractor.LoanTerms(stream)

	parties := p.Extractor.Parties(stream)
	p.Extractor.ApplyContactTables(stream, parties)
	extract.AssignSignatures(p.Extractor.Signatures(stream), parties)

	rec := p.Assembler.Assemble(assemble.Inputs{
		DocumentType:    docType,
		Parties:         parties,
		LoanTerms:       loanTerms,
		EventsOfDefault: p.Extractor.EventsOfDefault(stream),
		GoverningLaw:    p.Extractor.GoverningLaw(stream),
	})

	return rec, render.Markdown(stream)
}

// Run processes one stream end to end and writes the JSON and
// markdown outputs under timestamped names. Any panic or write error
// inside the run is converted to a failure envelope rather than
// propagated.
func (p *Pipeline) Run(ctx context.Context, stream element.Stream) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("pipeline.panic", "err", r)
			result = failure(fmt.Errorf("document processing failed: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return failure(err)
	}

	start := time.Now()
	filtered := stream
	if ShouldSkipFirstPage(stream) {
		p.Logger.Info("pipeline.skip_first_page")
		filtered = stream.ExcludePage(1)
	}

	rec, markdown := p.Extract(filtered)

	files, err := p.writeOutputs(rec, markdown, start)
	if err != nil {
		p.Logger.Error("pipeline.write_failed", "err", err)
		return failure(err)
	}

	p.Logger.Info("pipeline.ok",
		"document_type", rec.DocumentType,
		"elements", len(filtered),
		"events", len(rec.EventsOfDefault),
		"elapsed", time.Since(start),
	)
	return Result{Success: true, Results: rec, Files: files}
}

func (p *Pipeline) writeOutputs(rec *assemble.DocumentRecord, markdown string, start time.Time) (*OutputFiles, error) {
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	ts := start.Format("20060102_150405")
	files := &OutputFiles{
		JSON:     filepath.Join(p.OutputDir, fmt.Sprintf("output_%s.json", ts)),
		Markdown: filepath.Join(p.OutputDir, fmt.Sprintf("output_%s.md", ts)),
	}

	data, err := assemble.MarshalRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(files.JSON, data, 0o644); err != nil {
		return nil, fmt.Errorf("write json output: %w", err)
	}
	if err := os.WriteFile(files.Markdown, []byte(markdown), 0o644); err != nil {
		return nil, fmt.Errorf("write markdown output: %w", err)
	}
	return files, nil
}
