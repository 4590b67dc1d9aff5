// Package scan discovers HEIC source files under an input root.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the extension (matched case-insensitively) that identifies
// input images.
const SourceExt = ".heic"

var (
	// ErrNotFound reports that the input root does not exist.
	ErrNotFound = errors.New("input directory not found")
	// ErrNotADirectory reports that the input root is not a directory.
	ErrNotADirectory = errors.New("input path is not a directory")
)

// Find walks root and returns every file whose extension equals SourceExt,
// case-insensitively, at any depth. The result is sorted lexicographically by
// full path so repeated runs process files in the same order.
func Find(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("stat input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
