package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// ProcessFunc runs the full pipeline for one document. Implementations must
// not share mutable state across invocations: each worker owns one
// document's pipeline exclusively.
type ProcessFunc func(ctx context.Context, path string) (*outline.Outline, error)

// documentJob is a single document processing job.
type documentJob struct {
	index int
	path  string
}

// documentResult is the outcome for one document.
type documentResult struct {
	index   int
	outline *outline.Outline
	err     error
}

// processParallel fans the files out over a bounded worker pool and returns
// outlines and errors indexed like the input. Documents are fully
// independent; a failure only cancels the batch when continueOnError is
// false.
func processParallel(
	ctx context.Context,
	files []string,
	cfg *Config,
	fn ProcessFunc,
	progress ProgressCallback,
) ([]*outline.Outline, []error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	if progress == nil {
		progress = NoOpProgressCallback{}
	}
	progress.OnStart(len(files))
	defer progress.OnComplete()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan documentJob, len(files))
	results := make(chan documentResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, jobs, results, cfg, fn)
		}()
	}

	go func() {
		defer close(jobs)
		for i, path := range files {
			select {
			case jobs <- documentJob{index: i, path: path}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outlines := make([]*outline.Outline, len(files))
	errs := make([]error, len(files))
	done := 0
	for res := range results {
		outlines[res.index] = res.outline
		errs[res.index] = res.err
		done++
		progress.OnProgress(done, len(files))
		if res.err != nil {
			progress.OnError(res.index, res.err)
			if !cfg.ContinueOnError {
				cancel()
			}
		}
	}

	return outlines, errs
}

// worker drains the job channel, applying the per-document timeout.
func worker(
	ctx context.Context,
	jobs <-chan documentJob,
	results chan<- documentResult,
	cfg *Config,
	fn ProcessFunc,
) {
	for {
		select {
		case job, ok := <-jobs:
			if !ok {
				return
			}

			docCtx := ctx
			cancel := context.CancelFunc(func() {})
			if cfg.Timeout > 0 {
				docCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			}
			o, err := fn(docCtx, job.path)
			cancel()

			select {
			case results <- documentResult{index: job.index, outline: o, err: err}:
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
