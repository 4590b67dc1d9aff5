package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"heicvert/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndRecentRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	id, err := store.Append(ctx, history.Record{
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		InputDir:   "/photos",
		OutputDir:  "/converted",
		Format:     "JPG",
		Quality:    90,
		Workers:    4,
		Converted:  12,
		Skipped:    3,
		Failed:     1,
		Duration:   3 * time.Second,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id == "" {
		t.Fatal("expected assigned run ID")
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != id {
		t.Fatalf("id mismatch: %q vs %q", rec.ID, id)
	}
	if !rec.StartedAt.Equal(started) {
		t.Fatalf("started_at mismatch: %v", rec.StartedAt)
	}
	if rec.Converted != 12 || rec.Skipped != 3 || rec.Failed != 1 {
		t.Fatalf("counters mismatch: %+v", rec)
	}
	if rec.Duration != 3*time.Second {
		t.Fatalf("duration mismatch: %v", rec.Duration)
	}
}

func TestRecentOrdersNewestFirstAndHonorsLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		started := base.Add(time.Duration(i) * time.Minute)
		if _, err := store.Append(ctx, history.Record{
			StartedAt:  started,
			FinishedAt: started.Add(time.Second),
			InputDir:   "/in",
			OutputDir:  "/out",
			Format:     "PNG",
			Quality:    85,
			Workers:    1,
			Converted:  i,
		}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Converted != 4 || records[2].Converted != 2 {
		t.Fatalf("unexpected ordering: %+v", records)
	}
}

func TestPathReportsBackingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if store.Path() != path {
		t.Fatalf("Path() = %q, want %q", store.Path(), path)
	}
}

func TestRecentEmptyStore(t *testing.T) {
	store := openStore(t)
	records, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
