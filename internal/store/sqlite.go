// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
)

const schema = `
CREATE TABLE IF NOT EXISTS progress (
    question_id INTEGER PRIMARY KEY,
    seen BOOLEAN NOT NULL DEFAULT FALSE,
    correct_count INTEGER NOT NULL DEFAULT 0,
    incorrect_count INTEGER NOT NULL DEFAULT 0,
    attempt_count INTEGER NOT NULL DEFAULT 0,
    total_time_ms INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS cursors (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL
);
`

const upsertRecord = `
INSERT INTO progress (question_id, seen, correct_count, incorrect_count, attempt_count, total_time_ms)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(question_id) DO UPDATE SET
    seen = excluded.seen,
    correct_count = excluded.correct_count,
    incorrect_count = excluded.incorrect_count,
    attempt_count = excluded.attempt_count,
    total_time_ms = excluded.total_time_ms
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one connection keeps every write ordered.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Progress
// ============================================================================

func (s *SQLiteStore) LoadProgress(ctx context.Context) (map[int]progress.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT question_id, seen, correct_count, incorrect_count, attempt_count, total_time_ms FROM progress",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[int]progress.Record)
	for rows.Next() {
		var id int
		var r progress.Record
		if err := rows.Scan(&id, &r.Seen, &r.CorrectCount, &r.IncorrectCount, &r.AttemptCount, &r.TotalTimeMs); err != nil {
			return nil, err
		}
		records[id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

func (s *SQLiteStore) SaveProgress(ctx context.Context, records map[int]progress.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM progress"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, upsertRecord)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, r := range records {
		if _, err := stmt.ExecContext(ctx, id, r.Seen, r.CorrectCount, r.IncorrectCount, r.AttemptCount, r.TotalTimeMs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, questionID int, r progress.Record) error {
	_, err := s.db.ExecContext(ctx, upsertRecord,
		questionID, r.Seen, r.CorrectCount, r.IncorrectCount, r.AttemptCount, r.TotalTimeMs,
	)
	return err
}

// ============================================================================
// Cursors
// ============================================================================

func (s *SQLiteStore) LoadCursor(ctx context.Context, name string) (int, error) {
	var position int
	err := s.db.QueryRowContext(ctx, "SELECT position FROM cursors WHERE name = ?", name).Scan(&position)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return position, nil
}

func (s *SQLiteStore) SaveCursor(ctx context.Context, name string, position int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO cursors (name, position) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET position = excluded.position",
		name, position,
	)
	return err
}
