// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	practicesession "github.com/Eldoprano/test-drive-peru-A1/internal/domain/practice_session"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
)

var ErrSessionNotFound = errors.New("session not found")

// QuizService runs practice sessions against the loaded bank. Only one
// session is live at a time: starting a new one exits the others.
type QuizService struct {
	bank     *questionbank.Bank
	progress *ProgressService
	config   practicesession.SessionConfig
	clock    practicesession.Clock
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*practicesession.PracticeSession
}

// NewQuizService creates a QuizService. A nil clock means the system clock.
func NewQuizService(
	bank *questionbank.Bank,
	progress *ProgressService,
	config practicesession.SessionConfig,
	clock practicesession.Clock,
	logger *slog.Logger,
) *QuizService {
	if clock == nil {
		clock = practicesession.SystemClock()
	}
	return &QuizService{
		bank:     bank,
		progress: progress,
		config:   config,
		clock:    clock,
		logger:   logger,
		sessions: make(map[string]*practicesession.PracticeSession),
	}
}

// StartSession starts a run and presents its first question.
func (qs *QuizService) StartSession(ctx context.Context, mode practicesession.Mode, resume bool) (*practicesession.PracticeSession, error) {
	session := practicesession.NewWithConfig(qs.bank, practicesession.Dependencies{
		Progress: qs.progress,
		Cursors:  qs.progress,
		Clock:    qs.clock,
		OnFinish: qs.onFinish,
	}, qs.config)

	if err := session.Start(ctx, mode, resume); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	if _, err := session.Advance(ctx); err != nil {
		session.Exit()
		return nil, fmt.Errorf("first question: %w", err)
	}

	qs.mu.Lock()
	previous := qs.sessions
	qs.sessions = map[string]*practicesession.PracticeSession{session.ID: session}
	qs.mu.Unlock()

	for id, s := range previous {
		s.Exit()
		qs.logger.Info("session replaced", "session_id", id)
	}

	qs.logger.Info("session started",
		"session_id", session.ID,
		"mode", mode,
		"resume", resume,
	)
	return session, nil
}

// Session looks up a live session.
func (qs *QuizService) Session(id string) (*practicesession.PracticeSession, error) {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	s, ok := qs.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// ExitSession stops a session and forgets it.
func (qs *QuizService) ExitSession(id string) (practicesession.State, error) {
	qs.mu.Lock()
	s, ok := qs.sessions[id]
	delete(qs.sessions, id)
	qs.mu.Unlock()

	if !ok {
		return practicesession.State{}, ErrSessionNotFound
	}

	s.Exit()
	state := s.State()
	qs.logger.Info("session exited",
		"session_id", id,
		"answered", state.AnsweredCount,
		"correct", state.CorrectCount,
	)
	return state, nil
}

// Shutdown exits every live session so no countdown outlives the server.
func (qs *QuizService) Shutdown() {
	qs.mu.Lock()
	sessions := qs.sessions
	qs.sessions = make(map[string]*practicesession.PracticeSession)
	qs.mu.Unlock()

	for _, s := range sessions {
		s.Exit()
	}
}

// Bank returns the loaded question bank.
func (qs *QuizService) Bank() *questionbank.Bank {
	return qs.bank
}

// Progress returns the progress service backing the sessions.
func (qs *QuizService) Progress() *ProgressService {
	return qs.progress
}

func (qs *QuizService) onFinish(state practicesession.State) {
	qs.logger.Info("session finished",
		"session_id", state.ID,
		"mode", state.Mode,
		"presented", state.Position,
		"correct", state.CorrectCount,
	)
}
