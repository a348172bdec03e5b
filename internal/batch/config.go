// Package batch drives outline extraction over many independent documents:
// file discovery, a bounded worker pool, per-document failure isolation and
// one JSON output file per input PDF.
package batch

import (
	"time"

	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// Title fallback policies applied when the engine finds no distinct title
// cluster.
const (
	TitleFromFilename     = "filename"      // humanized file stem
	TitleFromFirstHeading = "first-heading" // text of the first heading node
	TitleEmpty            = "empty"
)

// Config holds all configuration for a batch run.
type Config struct {
	// Engine is the per-document pipeline configuration.
	Engine outline.Config

	// TitleFallback selects the title policy for documents without a
	// detected title cluster.
	TitleFallback string

	// OutputDir receives one <stem>.json per processed input file.
	OutputDir string

	// Workers bounds the worker pool (0 = number of CPU cores). Each worker
	// owns one document's entire pipeline invocation exclusively.
	Workers int

	// Timeout abandons a single pathological document without affecting
	// others (0 = no limit).
	Timeout time.Duration

	// ContinueOnError keeps the batch going past per-document failures.
	ContinueOnError bool

	// File discovery settings.
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Progress settings.
	ShowProgress     bool
	Quiet            bool
	ShowStats        bool
	ProgressInterval time.Duration
}

// DefaultConfig returns batch defaults.
func DefaultConfig() Config {
	return Config{
		Engine:           outline.DefaultConfig(),
		TitleFallback:    TitleFromFilename,
		OutputDir:        "output",
		Workers:          0,
		ContinueOnError:  true,
		IncludePatterns:  []string{"*.pdf"},
		ProgressInterval: 500 * time.Millisecond,
	}
}
