// internal/service/progress.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
	"github.com/Eldoprano/test-drive-peru-A1/internal/store"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidRecord   = errors.New("invalid progress record")
	ErrNotLoaded       = errors.New("progress not loaded")
)

// ProgressService owns per-question progress. Every attempt is written
// through to the store before Record returns; writes are serialised so the
// attempt counts stay consistent under concurrent requests.
type ProgressService struct {
	store  store.Store
	bank   *questionbank.Bank
	logger *slog.Logger

	mu      sync.RWMutex
	records map[int]progress.Record // nil until Load
}

// NewProgressService creates a ProgressService. Call Load before use.
func NewProgressService(s store.Store, bank *questionbank.Bank, logger *slog.Logger) *ProgressService {
	return &ProgressService{
		store:  s,
		bank:   bank,
		logger: logger,
	}
}

// Load reads stored progress. Missing or corrupt state is replaced by one
// zero record per bank question and persisted immediately.
func (ps *ProgressService) Load(ctx context.Context) (map[int]progress.Record, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	stored, err := ps.store.LoadProgress(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		ps.logger.Info("no stored progress, initialising", "questions", ps.bank.Len())
		return ps.resetLocked(ctx)
	case err != nil:
		return nil, fmt.Errorf("load progress: %w", err)
	}

	records, changed, err := ps.reconcile(stored)
	if err != nil {
		ps.logger.Warn("stored progress is corrupt, reinitialising", "error", err)
		return ps.resetLocked(ctx)
	}

	if changed {
		if err := ps.store.SaveProgress(ctx, records); err != nil {
			return nil, fmt.Errorf("save progress: %w", err)
		}
	}

	ps.records = records
	return maps.Clone(records), nil
}

// reconcile aligns stored records with the bank: unknown ids are dropped,
// missing ids get zero records. Any inconsistent record fails the whole set.
func (ps *ProgressService) reconcile(stored map[int]progress.Record) (map[int]progress.Record, bool, error) {
	records := make(map[int]progress.Record, ps.bank.Len())
	changed := false

	for id, r := range stored {
		if !r.Valid() {
			return nil, false, fmt.Errorf("%w: question %d: %+v", ErrInvalidRecord, id, r)
		}
		if _, ok := ps.bank.Get(id); !ok {
			ps.logger.Warn("dropping progress for unknown question", "question_id", id)
			changed = true
			continue
		}
		records[id] = r
	}

	for _, id := range ps.bank.IDs() {
		if _, ok := records[id]; !ok {
			records[id] = progress.Record{}
			changed = true
		}
	}

	return records, changed, nil
}

func (ps *ProgressService) resetLocked(ctx context.Context) (map[int]progress.Record, error) {
	records := make(map[int]progress.Record, ps.bank.Len())
	for _, id := range ps.bank.IDs() {
		records[id] = progress.Record{}
	}

	if err := ps.store.SaveProgress(ctx, records); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	ps.records = records
	return maps.Clone(records), nil
}

// Save replaces all progress. Every record must be consistent and belong to
// a bank question; questions left out are reset to zero.
func (ps *ProgressService) Save(ctx context.Context, records map[int]progress.Record) error {
	next := make(map[int]progress.Record, ps.bank.Len())
	for _, id := range ps.bank.IDs() {
		next[id] = progress.Record{}
	}

	for id, r := range records {
		if _, ok := ps.bank.Get(id); !ok {
			return fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
		}
		if !r.Valid() {
			return fmt.Errorf("%w: question %d", ErrInvalidRecord, id)
		}
		next[id] = r
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if err := ps.store.SaveProgress(ctx, next); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	ps.records = next
	return nil
}

// Record applies one attempt to a question and persists it.
func (ps *ProgressService) Record(ctx context.Context, questionID int, correct bool, elapsed, timeCap time.Duration) (progress.Record, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.records == nil {
		return progress.Record{}, ErrNotLoaded
	}

	r, ok := ps.records[questionID]
	if !ok {
		return progress.Record{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}

	r.Apply(correct, elapsed, timeCap)

	if err := ps.store.SaveRecord(ctx, questionID, r); err != nil {
		return progress.Record{}, fmt.Errorf("save question %d: %w", questionID, err)
	}
	ps.records[questionID] = r

	ps.logger.Debug("attempt recorded",
		"question_id", questionID,
		"correct", correct,
		"elapsed_ms", elapsed.Milliseconds(),
		"tier", progress.Classify(r),
	)
	return r, nil
}

// Get returns the progress of one question.
func (ps *ProgressService) Get(questionID int) (progress.Record, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	r, ok := ps.records[questionID]
	return r, ok
}

// Snapshot returns a copy of all progress.
func (ps *ProgressService) Snapshot() map[int]progress.Record {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return maps.Clone(ps.records)
}

// Bank returns the question bank progress is tracked against.
func (ps *ProgressService) Bank() *questionbank.Bank {
	return ps.bank
}

// LoadCursor returns the persisted sequential position, 0 if none.
func (ps *ProgressService) LoadCursor(ctx context.Context) (int, error) {
	pos, err := ps.store.LoadCursor(ctx, store.SequentialCursor)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load cursor: %w", err)
	}
	return pos, nil
}

func (ps *ProgressService) SaveCursor(ctx context.Context, position int) error {
	return ps.store.SaveCursor(ctx, store.SequentialCursor, position)
}
