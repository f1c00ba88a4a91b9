package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	practicesession "github.com/Eldoprano/test-drive-peru-A1/internal/domain/practice_session"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
	"github.com/Eldoprano/test-drive-peru-A1/internal/service"
	"github.com/Eldoprano/test-drive-peru-A1/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createBank(n int) *questionbank.Bank {
	bank := questionbank.New()
	for i := 0; i < n; i++ {
		bank.AddQuestion(fmt.Sprintf("Question %d", i+1), nil, []questionbank.Choice{
			{Text: "Right", Correct: true},
			{Text: "Wrong"},
		})
	}
	return bank
}

func openStore(t *testing.T, path string) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func loadedProgress(t *testing.T, n int) (*service.ProgressService, *store.SQLiteStore) {
	t.Helper()
	db := openStore(t, filepath.Join(t.TempDir(), "progress.db"))
	ps := service.NewProgressService(db, createBank(n), discardLogger())
	if _, err := ps.Load(context.Background()); err != nil {
		t.Fatalf("failed to load progress: %v", err)
	}
	return ps, db
}

// ── ProgressService ─────────────────────────────────────────────────────────

func TestLoad_FirstRunInitialisesAndPersists(t *testing.T) {
	ctx := context.Background()
	ps, db := loadedProgress(t, 200)

	if got := len(ps.Snapshot()); got != 200 {
		t.Errorf("expected 200 records, got %d", got)
	}

	stored, err := db.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("expected defaults to be persisted: %v", err)
	}
	if len(stored) != 200 {
		t.Errorf("expected 200 stored records, got %d", len(stored))
	}
	for id, r := range stored {
		if r != (progress.Record{}) {
			t.Errorf("expected zero record for %d, got %+v", id, r)
		}
	}
}

func TestLoad_CorruptStateReinitialises(t *testing.T) {
	ctx := context.Background()
	db := openStore(t, filepath.Join(t.TempDir(), "corrupt.db"))
	db.SaveProgress(ctx, map[int]progress.Record{
		1: {Seen: true, CorrectCount: 1, AttemptCount: 1},
		2: {Seen: true, CorrectCount: 3, IncorrectCount: 1, AttemptCount: 2},
	})

	ps := service.NewProgressService(db, createBank(3), discardLogger())
	records, err := ps.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for id, r := range records {
		if r != (progress.Record{}) {
			t.Errorf("expected reset record for %d, got %+v", id, r)
		}
	}
}

func TestLoad_ReconcilesWithBank(t *testing.T) {
	ctx := context.Background()
	db := openStore(t, filepath.Join(t.TempDir(), "reconcile.db"))
	kept := progress.Record{Seen: true, CorrectCount: 2, AttemptCount: 2, TotalTimeMs: 5000}
	db.SaveProgress(ctx, map[int]progress.Record{
		1:   kept,
		999: {Seen: true, IncorrectCount: 1, AttemptCount: 1},
	})

	ps := service.NewProgressService(db, createBank(3), discardLogger())
	records, err := ps.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1] != kept {
		t.Errorf("expected record 1 kept, got %+v", records[1])
	}
	if _, ok := records[999]; ok {
		t.Error("expected unknown question to be dropped")
	}

	stored, _ := db.LoadProgress(ctx)
	if len(stored) != 3 {
		t.Errorf("expected reconciled state persisted, got %d records", len(stored))
	}
}

func TestRecord_InvariantAndCap(t *testing.T) {
	ctx := context.Background()
	ps, db := loadedProgress(t, 5)

	r, err := ps.Record(ctx, 3, false, 50*time.Second, 10*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalTimeMs != 10000 {
		t.Errorf("expected capped time 10000ms, got %d", r.TotalTimeMs)
	}

	r, _ = ps.Record(ctx, 3, true, 2*time.Second, 10*time.Second)
	if r.AttemptCount != r.CorrectCount+r.IncorrectCount || r.AttemptCount != 2 {
		t.Errorf("attempt invariant broken: %+v", r)
	}

	stored, _ := db.LoadProgress(ctx)
	if stored[3] != r {
		t.Errorf("expected stored %+v, got %+v", r, stored[3])
	}
	if got, _ := ps.Get(3); got != r {
		t.Errorf("expected in-memory %+v, got %+v", r, got)
	}
}

func TestRecord_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reload.db")
	bank := createBank(5)

	db := openStore(t, path)
	ps := service.NewProgressService(db, bank, discardLogger())
	ps.Load(ctx)
	ps.Record(ctx, 2, true, time.Second, 10*time.Second)
	db.Close()

	reopened := openStore(t, path)
	again := service.NewProgressService(reopened, bank, discardLogger())
	records, err := again.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[2].CorrectCount != 1 {
		t.Errorf("expected persisted attempt, got %+v", records[2])
	}
}

func TestRecord_UnknownQuestion(t *testing.T) {
	ps, _ := loadedProgress(t, 5)

	_, err := ps.Record(context.Background(), 6, true, time.Second, 10*time.Second)
	if !errors.Is(err, service.ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestRecord_BeforeLoad(t *testing.T) {
	db := openStore(t, filepath.Join(t.TempDir(), "unloaded.db"))
	ps := service.NewProgressService(db, createBank(2), discardLogger())

	_, err := ps.Record(context.Background(), 1, true, time.Second, 10*time.Second)
	if !errors.Is(err, service.ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestSave_Validates(t *testing.T) {
	ctx := context.Background()
	ps, _ := loadedProgress(t, 3)

	err := ps.Save(ctx, map[int]progress.Record{4: {}})
	if !errors.Is(err, service.ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}

	err = ps.Save(ctx, map[int]progress.Record{1: {Seen: true, AttemptCount: 2}})
	if !errors.Is(err, service.ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}

	good := progress.Record{Seen: true, CorrectCount: 1, AttemptCount: 1, TotalTimeMs: 3000}
	if err := ps.Save(ctx, map[int]progress.Record{2: good}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := ps.Snapshot()
	if len(snapshot) != 3 || snapshot[2] != good {
		t.Errorf("unexpected snapshot after save: %+v", snapshot)
	}
}

func TestCursor_DefaultsToZero(t *testing.T) {
	ctx := context.Background()
	ps, _ := loadedProgress(t, 3)

	pos, err := ps.LoadCursor(ctx)
	if err != nil || pos != 0 {
		t.Errorf("expected cursor 0, got %d (%v)", pos, err)
	}

	ps.SaveCursor(ctx, 2)
	if pos, _ := ps.LoadCursor(ctx); pos != 2 {
		t.Errorf("expected cursor 2, got %d", pos)
	}
}

// ── QuizService ─────────────────────────────────────────────────────────────

func newQuizService(t *testing.T, n int) *service.QuizService {
	t.Helper()
	ps, _ := loadedProgress(t, n)
	qs := service.NewQuizService(ps.Bank(), ps, practicesession.DefaultConfig(), nil, discardLogger())
	t.Cleanup(qs.Shutdown)
	return qs
}

func TestStartSession_PresentsFirstQuestion(t *testing.T) {
	qs := newQuizService(t, 10)

	s, err := qs.StartSession(context.Background(), practicesession.ModeSequential, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := s.State()
	if st.Status != practicesession.StatusRunning {
		t.Errorf("expected running, got %s", st.Status)
	}
	if st.Current == nil || st.Current.ID != 1 {
		t.Errorf("expected question 1 presented, got %+v", st.Current)
	}

	found, err := qs.Session(s.ID)
	if err != nil || found != s {
		t.Errorf("expected to find session, got %v", err)
	}
}

func TestStartSession_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	qs := newQuizService(t, 10)

	first, _ := qs.StartSession(ctx, practicesession.ModeTest, false)
	second, err := qs.StartSession(ctx, practicesession.ModeRandom, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := first.State().Status; got != practicesession.StatusExited {
		t.Errorf("expected first session exited, got %s", got)
	}
	if _, err := qs.Session(first.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("expected first session forgotten, got %v", err)
	}
	if _, err := qs.Session(second.ID); err != nil {
		t.Errorf("expected second session live, got %v", err)
	}
}

func TestExitSession(t *testing.T) {
	ctx := context.Background()
	qs := newQuizService(t, 10)

	s, _ := qs.StartSession(ctx, practicesession.ModeRandom, false)
	s.Answer(ctx, 0)

	state, err := qs.ExitSession(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Status != practicesession.StatusExited || state.AnsweredCount != 1 {
		t.Errorf("unexpected final state %+v", state)
	}

	if _, err := qs.ExitSession(s.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStartSession_UnknownMode(t *testing.T) {
	qs := newQuizService(t, 3)

	_, err := qs.StartSession(context.Background(), practicesession.Mode("nope"), false)
	if !errors.Is(err, practicesession.ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}
