package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"heicvert/internal/preflight"
)

func TestCheckInputDirectory(t *testing.T) {
	dir := t.TempDir()

	if res := preflight.CheckInputDirectory(dir); !res.Passed {
		t.Fatalf("existing directory should pass: %+v", res)
	}

	if res := preflight.CheckInputDirectory(filepath.Join(dir, "absent")); res.Passed {
		t.Fatal("missing directory should fail")
	}

	file := filepath.Join(dir, "file.heic")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	res := preflight.CheckInputDirectory(file)
	if res.Passed {
		t.Fatal("plain file should fail the directory check")
	}
	if !strings.Contains(res.Detail, "not a directory") {
		t.Fatalf("unexpected detail: %q", res.Detail)
	}
}

func TestCheckOutputPath(t *testing.T) {
	dir := t.TempDir()

	if res := preflight.CheckOutputPath(filepath.Join(dir, "new")); !res.Passed {
		t.Fatalf("missing output path should pass: %+v", res)
	}
	if res := preflight.CheckOutputPath(dir); !res.Passed {
		t.Fatalf("existing directory should pass: %+v", res)
	}

	file := filepath.Join(dir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if res := preflight.CheckOutputPath(file); res.Passed {
		t.Fatal("file at output path should fail")
	}
}

func TestCheckQuality(t *testing.T) {
	for _, quality := range []int{1, 50, 100} {
		if res := preflight.CheckQuality(quality); !res.Passed {
			t.Fatalf("quality %d should pass: %+v", quality, res)
		}
	}
	for _, quality := range []int{0, -5, 101, 150} {
		if res := preflight.CheckQuality(quality); res.Passed {
			t.Fatalf("quality %d should fail", quality)
		}
	}
}

func TestFirstFailure(t *testing.T) {
	dir := t.TempDir()
	results := preflight.RunAll(dir, filepath.Join(dir, "out"), 85)
	if err := preflight.FirstFailure(results); err != nil {
		t.Fatalf("all-pass run should yield nil, got %v", err)
	}

	results = preflight.RunAll(dir, filepath.Join(dir, "out"), 150)
	err := preflight.FirstFailure(results)
	if err == nil {
		t.Fatal("expected quality failure")
	}
	if !strings.Contains(err.Error(), "quality") {
		t.Fatalf("error should name the failed check: %v", err)
	}
}
