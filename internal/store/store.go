package store

import (
	"context"
	"errors"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
)

var (
	ErrNotFound = errors.New("not found")
)

// SequentialCursor is the cursor slot used by sequential review.
const SequentialCursor = "sequential"

// Store is the durable state behind the quiz engine: one slot for
// per-question progress and named integer cursors.
type Store interface {
	// LoadProgress returns ErrNotFound when no progress has been saved yet.
	LoadProgress(ctx context.Context) (map[int]progress.Record, error)
	// SaveProgress replaces all stored progress.
	SaveProgress(ctx context.Context, records map[int]progress.Record) error
	// SaveRecord overwrites the progress of a single question.
	SaveRecord(ctx context.Context, questionID int, record progress.Record) error

	// LoadCursor returns ErrNotFound when the cursor was never saved.
	LoadCursor(ctx context.Context, name string) (int, error)
	SaveCursor(ctx context.Context, name string, position int) error
}
