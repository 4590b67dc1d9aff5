package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"heicvert/internal/batch"
	"heicvert/internal/codec"
	"heicvert/internal/history"
	"heicvert/internal/logging"
	"heicvert/internal/preflight"
	"heicvert/internal/scan"
)

const lockFileName = ".heicvert.lock"

type convertOptions struct {
	format     string
	quality    int
	verbose    bool
	noParallel bool
	dryRun     bool
}

func runConvert(cmd *cobra.Command, ctx *commandContext, opts *convertOptions, inputDir, outputDir string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	formatName := opts.format
	if !cmd.Flags().Changed("format") {
		formatName = cfg.Conversion.Format
	}
	format, err := codec.ParseFormat(formatName)
	if err != nil {
		return err
	}

	quality := opts.quality
	if !cmd.Flags().Changed("quality") {
		quality = cfg.Conversion.Quality
	}

	if err := preflight.FirstFailure(preflight.RunAll(inputDir, outputDir, quality)); err != nil {
		return err
	}

	files, err := scan.Find(inputDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintf(out, "No HEIC files found in %q\n", inputDir)
		return nil
	}

	jobs := batch.BuildJobs(files, inputDir, outputDir, format, quality, opts.verbose)

	if opts.dryRun {
		return printDryRun(out, jobs, format)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Two concurrent runs against the same output tree would race on shared
	// output paths, so a real run holds an advisory lock for its duration.
	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another heicvert run is already writing to %s", outputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	parallel := !opts.noParallel
	workers := effectiveWorkers(parallel, cfg.Conversion.Workers, len(jobs))

	fmt.Fprintf(out, "Converting %d HEIC file(s) to %s...\n", len(jobs), format)
	if workers > 1 {
		fmt.Fprintf(out, "Using %d parallel workers...\n", workers)
	}

	runner := &batch.Runner{
		Codec:    codec.New(),
		Logger:   logger,
		Parallel: parallel,
		Workers:  cfg.Conversion.Workers,
		Progress: progressWriter(opts.verbose),
	}

	started := time.Now()
	results, summary := runner.Run(cmd.Context(), jobs)
	finished := time.Now()

	if opts.verbose {
		for _, res := range results {
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
			}
		}
	}

	printSummary(out, summary)

	if cfg.History.Enabled {
		recordRun(cmd.Context(), logger, cfg.History.Path, history.Record{
			StartedAt:  started,
			FinishedAt: finished,
			InputDir:   inputDir,
			OutputDir:  outputDir,
			Format:     string(format),
			Quality:    quality,
			Workers:    workers,
			Converted:  summary.Converted,
			Skipped:    summary.Skipped,
			Failed:     summary.Failed,
			Duration:   summary.Elapsed,
		})
	}
	return nil
}

// effectiveWorkers mirrors the runner's pool sizing for display and history.
func effectiveWorkers(parallel bool, configured, jobCount int) int {
	if !parallel || jobCount <= 1 {
		return 1
	}
	workers := configured
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

func printDryRun(out io.Writer, jobs []batch.Job, format codec.Format) error {
	planned, remaining, err := batch.Preview(jobs, batch.PreviewLimit)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "DRY RUN: Would convert %d HEIC file(s) to %s\n", len(jobs), format)
	for _, plan := range planned {
		fmt.Fprintf(out, "  %s -> %s\n", plan.Source, plan.Output)
	}
	if remaining > 0 {
		fmt.Fprintf(out, "  ... and %d more files\n", remaining)
	}
	return nil
}

func printSummary(out io.Writer, summary batch.Summary) {
	fmt.Fprintf(out, "\nConversion complete in %.1fs:\n", summary.Elapsed.Seconds())
	fmt.Fprintf(out, "  Successfully converted: %d\n", summary.Converted)
	if summary.Skipped > 0 {
		fmt.Fprintf(out, "  Skipped (up-to-date): %d\n", summary.Skipped)
	}
	if summary.Failed > 0 {
		fmt.Fprintf(out, "  Errors: %d\n", summary.Failed)
	}
}

// recordRun appends the run to the history database. History is bookkeeping:
// failures are logged, never fatal to a completed batch.
func recordRun(ctx context.Context, logger *slog.Logger, path string, rec history.Record) {
	store, err := history.Open(path)
	if err != nil {
		logger.Warn("history unavailable", logging.Args(logging.Error(err))...)
		return
	}
	defer store.Close()

	if _, err := store.Append(ctx, rec); err != nil {
		logger.Warn("record run history", logging.Args(
			logging.Error(err),
			logging.String("path", store.Path()),
		)...)
	}
}

// progressWriter enables the progress bar only for interactive stderr and
// only when per-file lines are not already being printed.
func progressWriter(verbose bool) io.Writer {
	if verbose {
		return nil
	}
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return os.Stderr
}
