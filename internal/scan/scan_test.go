package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"heicvert/internal/scan"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindMatchesCaseInsensitivelyAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.HEIC"))
	writeFile(t, filepath.Join(root, "a.heic"))
	writeFile(t, filepath.Join(root, "nested", "deep", "c.Heic"))
	writeFile(t, filepath.Join(root, "ignored.jpg"))
	writeFile(t, filepath.Join(root, "noext"))

	files, err := scan.Find(root)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.heic"),
		filepath.Join(root, "b.HEIC"),
		filepath.Join(root, "nested", "deep", "c.Heic"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("position %d: got %q want %q", i, files[i], want[i])
		}
	}
}

func TestFindIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "z.heic"))
	writeFile(t, filepath.Join(root, "sub", "y.heic"))

	first, err := scan.Find(root)
	if err != nil {
		t.Fatalf("first Find: %v", err)
	}
	second, err := scan.Find(root)
	if err != nil {
		t.Fatalf("second Find: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ordering changed at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestFindEmptyDirectory(t *testing.T) {
	files, err := scan.Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %v", files)
	}
}

func TestFindMissingRoot(t *testing.T) {
	_, err := scan.Find(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, scan.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindRootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.heic")
	writeFile(t, path)

	_, err := scan.Find(path)
	if !errors.Is(err, scan.ErrNotADirectory) {
		t.Fatalf("expected ErrNotADirectory, got %v", err)
	}
}
