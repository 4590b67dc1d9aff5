// Package batch dispatches conversion jobs across a bounded worker pool and
// aggregates per-file outcomes into a run summary.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"heicvert/internal/codec"
	"heicvert/internal/logging"
)

// Runner executes conversion jobs. Workers share only the codec handle and
// read-only job descriptors; every job writes to a distinct output path, so
// no locking is needed around the filesystem.
type Runner struct {
	Codec    *codec.Codec
	Logger   *slog.Logger
	Parallel bool
	// Workers overrides the pool size when positive; zero selects one worker
	// per CPU, capped at the job count.
	Workers int
	// Progress receives the progress bar when non-nil. The bar is cosmetic
	// and never alters job outcomes.
	Progress io.Writer
}

// Run converts all jobs and returns one result per submitted job plus the
// aggregated summary.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, Summary) {
	start := time.Now()
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	workers := r.workerCount(len(jobs))
	logger.Debug("dispatching jobs", logging.Args(
		logging.Int("jobs", len(jobs)),
		logging.Int("workers", workers),
	)...)

	bar := r.newBar(len(jobs))
	var results []Result
	if workers == 1 {
		results = r.runSequential(ctx, jobs, bar)
	} else {
		results = r.runParallel(ctx, jobs, workers, bar)
	}
	finishBar(bar)

	summary := Summarize(results, time.Since(start))
	for _, res := range results {
		if res.Status == StatusFailed {
			logger.Warn("conversion failed", logging.Args(logging.String("detail", res.Message))...)
		}
	}
	return results, summary
}

func (r *Runner) workerCount(jobCount int) int {
	if !r.Parallel || jobCount <= 1 {
		return 1
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > jobCount {
		workers = jobCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func (r *Runner) runSequential(ctx context.Context, jobs []Job, bar progressTicker) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.runJob(job))
		tick(bar)
	}
	return results
}

func (r *Runner) runParallel(ctx context.Context, jobs []Job, workers int, bar progressTicker) []Result {
	jobCh := make(chan Job)
	resCh := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resCh <- r.runJob(job)
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			if ctx.Err() != nil {
				return
			}
			jobCh <- job
		}
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	results := make([]Result, 0, len(jobs))
	for res := range resCh {
		results = append(results, res)
		tick(bar)
	}
	return results
}

// runJob performs one conversion. All codec failures, including panics from
// the decoder runtime, surface as a failed result so a bad file never aborts
// the batch.
func (r *Runner) runJob(job Job) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = failure(job.Source, fmt.Errorf("codec panic: %v", rec))
		}
	}()

	outputPath, err := job.OutputPath()
	if err != nil {
		return failure(job.Source, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return failure(job.Source, fmt.Errorf("create output directory: %w", err))
	}

	if upToDate(job.Source, outputPath) {
		return Result{Status: StatusSkipped, Message: fmt.Sprintf("Skipped (already up-to-date): %s", job.Source)}
	}

	img, err := r.Codec.DecodeFile(job.Source)
	if err != nil {
		return failure(job.Source, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return failure(job.Source, fmt.Errorf("create output: %w", err))
	}
	if err := r.Codec.Encode(out, img, job.Format, job.Quality); err != nil {
		_ = out.Close()
		// Do not leave a fresh partial file behind: its mtime would defeat
		// the up-to-date check on the next run.
		_ = os.Remove(outputPath)
		return failure(job.Source, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(outputPath)
		return failure(job.Source, fmt.Errorf("close output: %w", err))
	}

	if job.Verbose {
		return Result{Status: StatusConverted, Message: fmt.Sprintf("Converted: %s -> %s", job.Source, outputPath)}
	}
	return Result{Status: StatusConverted}
}

func failure(source string, err error) Result {
	return Result{Status: StatusFailed, Message: fmt.Sprintf("Error converting %s: %v", source, err)}
}
