package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"heicvert/internal/codec"
)

// Job describes one source-file-to-output-file conversion. Jobs are built
// once per discovered file and never mutated after dispatch.
type Job struct {
	Source     string
	InputRoot  string
	OutputRoot string
	Format     codec.Format
	Quality    int
	Verbose    bool
}

// Status classifies a job outcome.
type Status int

const (
	StatusConverted Status = iota
	StatusSkipped
	StatusFailed
)

// Result is produced by a worker for exactly one job. Message carries the
// per-file outcome line; converted jobs populate it only in verbose mode.
type Result struct {
	Status  Status
	Message string
}

// BuildJobs maps discovered files onto immutable job descriptors.
func BuildJobs(files []string, inputRoot, outputRoot string, format codec.Format, quality int, verbose bool) []Job {
	jobs := make([]Job, 0, len(files))
	for _, file := range files {
		jobs = append(jobs, Job{
			Source:     file,
			InputRoot:  inputRoot,
			OutputRoot: outputRoot,
			Format:     format,
			Quality:    quality,
			Verbose:    verbose,
		})
	}
	return jobs
}

// OutputPath derives the destination for the job: the source's path relative
// to the input root, re-rooted under the output root, with the extension
// swapped for the target format's canonical lowercase extension. The mapping
// is 1:1 for distinct sources, so parallel workers never share an output.
func (j Job) OutputPath() (string, error) {
	rel, err := filepath.Rel(j.InputRoot, j.Source)
	if err != nil {
		return "", fmt.Errorf("relativize %s against %s: %w", j.Source, j.InputRoot, err)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + "." + j.Format.Extension()
	return filepath.Join(j.OutputRoot, rel), nil
}

// upToDate reports whether output already exists with a modification time
// strictly newer than the source's. This is a freshness heuristic, not a
// content check: rewriting the input with an older timestamp yields a false
// skip.
func upToDate(source, output string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}
	srcInfo, err := os.Stat(source)
	if err != nil {
		return false
	}
	return outInfo.ModTime().After(srcInfo.ModTime())
}
