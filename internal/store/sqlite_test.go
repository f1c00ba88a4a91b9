package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadProgress_Empty(t *testing.T) {
	s := openStore(t)

	_, err := s.LoadProgress(context.Background())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveProgress_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	records := map[int]progress.Record{
		1: {},
		2: {Seen: true, CorrectCount: 2, IncorrectCount: 1, AttemptCount: 3, TotalTimeMs: 12345},
	}
	if err := s.SaveProgress(ctx, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}
	if loaded[2] != records[2] {
		t.Errorf("expected %+v, got %+v", records[2], loaded[2])
	}
}

func TestSaveProgress_OverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	s.SaveProgress(ctx, map[int]progress.Record{1: {}, 2: {}, 3: {}})
	if err := s.SaveProgress(ctx, map[int]progress.Record{1: {}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("expected 1 record after overwrite, got %d", len(loaded))
	}
}

func TestSaveRecord(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	s.SaveProgress(ctx, map[int]progress.Record{1: {}, 2: {}})

	updated := progress.Record{Seen: true, CorrectCount: 1, AttemptCount: 1, TotalTimeMs: 2000}
	if err := s.SaveRecord(ctx, 2, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := s.LoadProgress(ctx)
	if loaded[2] != updated {
		t.Errorf("expected %+v, got %+v", updated, loaded[2])
	}
	if loaded[1] != (progress.Record{}) {
		t.Errorf("expected record 1 untouched, got %+v", loaded[1])
	}
}

func TestCursor(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	if _, err := s.LoadCursor(ctx, store.SequentialCursor); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	s.SaveCursor(ctx, store.SequentialCursor, 17)
	s.SaveCursor(ctx, store.SequentialCursor, 42)

	pos, err := s.LoadCursor(ctx, store.SequentialCursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != 42 {
		t.Errorf("expected cursor 42, got %d", pos)
	}
}

func TestReopenKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	s.SaveProgress(ctx, map[int]progress.Record{7: {Seen: true, IncorrectCount: 1, AttemptCount: 1}})
	s.SaveCursor(ctx, store.SequentialCursor, 3)
	s.Close()

	reopened, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded[7].IncorrectCount != 1 {
		t.Errorf("expected persisted record, got %+v", loaded[7])
	}
	if pos, _ := reopened.LoadCursor(ctx, store.SequentialCursor); pos != 3 {
		t.Errorf("expected cursor 3, got %d", pos)
	}
}
