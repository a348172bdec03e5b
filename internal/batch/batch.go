package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chocothunder5013/coredump-round1a/internal/common"
	"github.com/chocothunder5013/coredump-round1a/internal/extractor"
	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// ProcessBatch discovers PDF files from the given paths, runs the outline
// pipeline over them in parallel and returns the collected results. Writing
// output files is a separate step (Result.WriteOutputs).
func ProcessBatch(ctx context.Context, args []string, cfg *Config) (*Result, error) {
	engine, err := outline.NewEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	if err := validateTitleFallback(cfg.TitleFallback); err != nil {
		return nil, err
	}

	files, err := discoverPDFFiles(args, cfg.Recursive, cfg.IncludePatterns, cfg.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover PDF files: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no PDF files found")
	}

	var progress ProgressCallback
	if cfg.ShowProgress && !cfg.Quiet {
		progress = NewConsoleProgressCallback(os.Stderr, "Processing: ").
			WithUpdateInterval(cfg.ProgressInterval)
	}

	ex := extractor.New()
	process := func(ctx context.Context, path string) (*outline.Outline, error) {
		return ProcessDocument(ctx, ex, engine, path, cfg.TitleFallback)
	}

	start := time.Now()
	outlines, errs := processParallel(ctx, files, cfg, process, progress)

	return &Result{
		Files:    files,
		Outlines: outlines,
		Errors:   errs,
		Duration: time.Since(start),
		Workers:  cfg.Workers,
	}, nil
}

// ProcessDocument runs the full pipeline for a single PDF: extract runs,
// detect the outline, apply the title fallback. A document without
// extractable text recovers locally with a minimal outline instead of
// failing.
func ProcessDocument(
	ctx context.Context,
	ex *extractor.Extractor,
	engine *outline.Engine,
	path string,
	titleFallback string,
) (*outline.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	extractTimer := common.NewNamedTimer("extract")
	doc, err := ex.Extract(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("runs extracted",
		"file", path, "runs", len(doc.Runs), "pages", len(doc.Pages), "duration", extractTimer.Stop())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detectTimer := common.NewNamedTimer("detect")
	o, err := engine.Extract(doc)
	if errors.Is(err, outline.ErrNoRuns) {
		slog.Debug("document has no extractable text", "file", path)
		o = &outline.Outline{Nodes: []outline.OutlineNode{}}
	} else if err != nil {
		return nil, fmt.Errorf("outline extraction failed for %s: %w", path, err)
	} else {
		slog.Debug("outline detected",
			"file", path, "headings", len(o.Nodes), "duration", detectTimer.Stop())
	}

	if o.Title == "" {
		o.Title = fallbackTitle(o, path, titleFallback)
	}
	return o, nil
}

// fallbackTitle resolves the document title when no title cluster was
// detected.
func fallbackTitle(o *outline.Outline, path, policy string) string {
	switch policy {
	case TitleFromFirstHeading:
		if len(o.Nodes) > 0 {
			return o.Nodes[0].Text
		}
		return ""
	case TitleEmpty:
		return ""
	default:
		return humanizeStem(path)
	}
}

// humanizeStem turns "annual_report-2024.pdf" into "Annual Report 2024".
func humanizeStem(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	stem = strings.Join(strings.Fields(stem), " ")
	return cases.Title(language.Und).String(stem)
}

func validateTitleFallback(policy string) error {
	switch policy {
	case TitleFromFilename, TitleFromFirstHeading, TitleEmpty:
		return nil
	}
	return fmt.Errorf("invalid title fallback policy: %q (must be one of: %s, %s, %s)",
		policy, TitleFromFilename, TitleFromFirstHeading, TitleEmpty)
}
