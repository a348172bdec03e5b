package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// Result holds the outcome of a batch run. Outlines and Errors are indexed
// like Files; a failed document has a nil outline and a non-nil error.
type Result struct {
	Files    []string
	Outlines []*outline.Outline
	Errors   []error
	Duration time.Duration
	Workers  int
}

// Succeeded counts documents with an outline.
func (r *Result) Succeeded() int {
	n := 0
	for _, o := range r.Outlines {
		if o != nil {
			n++
		}
	}
	return n
}

// Failed counts documents with an error.
func (r *Result) Failed() int {
	n := 0
	for _, err := range r.Errors {
		if err != nil {
			n++
		}
	}
	return n
}

// FirstError returns the first per-document error, if any.
func (r *Result) FirstError() error {
	for i, err := range r.Errors {
		if err != nil {
			return fmt.Errorf("%s: %w", r.Files[i], err)
		}
	}
	return nil
}

// WriteOutputs emits one <stem>.json per succeeded document into outputDir,
// creating the directory if needed. Failed documents are skipped; they were
// already reported during processing.
func (r *Result) WriteOutputs(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, o := range r.Outlines {
		if o == nil {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(r.Files[i]), filepath.Ext(r.Files[i])) + ".json"
		if err := WriteOutline(filepath.Join(outputDir, name), o); err != nil {
			return err
		}
	}
	return nil
}

// WriteOutline serializes one outline to path as indented UTF-8 JSON.
func WriteOutline(path string, o *outline.Outline) error {
	data, err := MarshalOutline(o)
	if err != nil {
		return fmt.Errorf("failed to serialize outline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// MarshalOutline renders the outline JSON with multilingual text kept as
// literal UTF-8 rather than \u escapes.
func MarshalOutline(o *outline.Outline) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrintStats prints a processing summary to stdout.
func (r *Result) PrintStats(quiet bool) {
	if quiet {
		return
	}
	throughput := 0.0
	if r.Duration > 0 {
		throughput = float64(r.Succeeded()) / r.Duration.Seconds()
	}
	_, _ = fmt.Fprintf(os.Stdout, "\nProcessing Statistics:\n")
	_, _ = fmt.Fprintf(os.Stdout, "  Total documents: %d\n", len(r.Files))
	_, _ = fmt.Fprintf(os.Stdout, "  Processed: %d\n", r.Succeeded())
	_, _ = fmt.Fprintf(os.Stdout, "  Failed: %d\n", r.Failed())
	_, _ = fmt.Fprintf(os.Stdout, "  Duration: %v\n", r.Duration.Round(time.Millisecond))
	_, _ = fmt.Fprintf(os.Stdout, "  Throughput: %.1f documents/sec\n", throughput)
}
