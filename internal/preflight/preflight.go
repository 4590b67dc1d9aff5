// Package preflight validates a conversion run's inputs before any work
// begins. Failures here abort the whole run; everything past preflight is
// isolated per file.
package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for a conversion run.
func RunAll(inputDir, outputDir string, quality int) []Result {
	return []Result{
		CheckInputDirectory(inputDir),
		CheckOutputPath(outputDir),
		CheckQuality(quality),
	}
}

// FirstFailure returns an error for the first failed check, or nil when all
// checks passed.
func FirstFailure(results []Result) error {
	for _, res := range results {
		if !res.Passed {
			return fmt.Errorf("%s: %s", res.Name, res.Detail)
		}
	}
	return nil
}

// CheckInputDirectory verifies the input root exists and is a directory.
func CheckInputDirectory(path string) Result {
	const name = "input directory"
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%q does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("cannot inspect %q (%v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%q is not a directory", path)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckOutputPath verifies the output root, if it already exists, is a
// directory. A missing output root passes; it is created when conversion
// starts.
func CheckOutputPath(path string) Result {
	const name = "output directory"
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Passed: true, Detail: "will be created"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("cannot inspect %q (%v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%q exists and is not a directory", path)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckQuality verifies the lossy-encoder quality parameter is in [1,100].
func CheckQuality(quality int) Result {
	const name = "quality"
	if quality < 1 || quality > 100 {
		return Result{Name: name, Detail: fmt.Sprintf("must be between 1 and 100 (got %d)", quality)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d", quality)}
}
