package practicesession

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
	"github.com/Eldoprano/test-drive-peru-A1/internal/id"
)

var (
	ErrEmptyPool         = errors.New("no questions to select from")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrAlreadyStarted    = errors.New("session already started")
	ErrNotStarted        = errors.New("session not started")
	ErrSessionClosed     = errors.New("session is closed")
	ErrSessionFinished   = errors.New("session finished")
	ErrNoPendingQuestion = errors.New("no unanswered question")
	ErrInvalidChoice     = errors.New("invalid choice")
)

type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
	StatusExited   Status = "exited"
)

// ProgressView gives read access to per-question progress.
type ProgressView interface {
	Get(questionID int) (progress.Record, bool)
}

// ProgressRecorder records attempts durably and returns the updated record.
type ProgressRecorder interface {
	ProgressView
	Record(ctx context.Context, questionID int, correct bool, elapsed, timeCap time.Duration) (progress.Record, error)
}

// CursorStore persists the sequential review position.
type CursorStore interface {
	LoadCursor(ctx context.Context) (int, error)
	SaveCursor(ctx context.Context, position int) error
}

// Dependencies are the collaborators a session calls into.
type Dependencies struct {
	Progress ProgressRecorder
	Cursors  CursorStore
	Clock    Clock
	Rand     *rand.Rand

	// OnFinish runs once when the session reaches StatusFinished, outside the
	// session lock.
	OnFinish func(State)
}

// AnswerResult describes a recorded attempt.
type AnswerResult struct {
	QuestionID   int
	Correct      bool
	CorrectIndex int
	Elapsed      time.Duration
	Record       progress.Record
	Tier         progress.Tier
	Weight       float64
	AdvanceAfter time.Duration // zero means wait for an explicit advance
}

// State is a snapshot of a session.
type State struct {
	ID            string
	Mode          Mode
	Status        Status
	Current       *questionbank.Question
	Answered      bool // the current question already has an attempt
	Position      int  // questions presented so far
	Total         int  // test length; bank size in sequential mode; 0 in random mode
	AnsweredCount int  // attempts this session, random and sequential only
	CorrectCount  int
	StartedAt     time.Time
	Deadline      time.Time
	Remaining     time.Duration
}

// Counter renders the question counter shown in the quiz header.
func (st State) Counter() string {
	if st.Current == nil {
		return ""
	}
	switch st.Mode {
	case ModeTest:
		return fmt.Sprintf("Question %d/%d", st.Position, st.Total)
	case ModeSequential:
		return fmt.Sprintf("Question %d/%d", st.Current.ID, st.Total)
	default:
		return fmt.Sprintf("Question %d", st.Current.ID)
	}
}

// PracticeSession is one quiz run. All methods are safe for concurrent use;
// operations are applied one at a time.
type PracticeSession struct {
	ID string

	mu     sync.Mutex
	bank   *questionbank.Bank
	deps   Dependencies
	config SessionConfig

	mode          Mode
	status        Status
	random        *RandomSelector
	sequential    *SequentialSelector
	test          *TestSelector
	current       *questionbank.Question
	answered      bool
	questionStart time.Time
	startedAt     time.Time
	deadline      time.Time
	position      int
	answeredCount int
	correctCount  int

	stopTimer context.CancelFunc
	timerDone chan struct{}
}

// New creates an idle session with the default exam policy.
func New(bank *questionbank.Bank, deps Dependencies) *PracticeSession {
	return NewWithConfig(bank, deps, DefaultConfig())
}

// NewWithConfig creates an idle session with the given configuration.
func NewWithConfig(bank *questionbank.Bank, deps Dependencies, config SessionConfig) *PracticeSession {
	if deps.Clock == nil {
		deps.Clock = SystemClock()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &PracticeSession{
		ID:     id.GenerateID(),
		bank:   bank,
		deps:   deps,
		config: config,
		status: StatusIdle,
	}
}

// Start begins a run in the given mode. For sequential mode, resume
// continues from the persisted cursor; otherwise the cursor is reset to 0.
func (s *PracticeSession) Start(ctx context.Context, mode Mode, resume bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusIdle {
		return ErrAlreadyStarted
	}
	if s.bank.Len() == 0 {
		return ErrEmptyPool
	}

	s.position = 0
	s.answeredCount = 0
	s.correctCount = 0
	s.current = nil

	switch mode {
	case ModeRandom:
		s.random = NewRandomSelector(s.bank, s.deps.Progress, s.deps.Rand)

	case ModeSequential:
		start := 0
		if resume {
			saved, err := s.deps.Cursors.LoadCursor(ctx)
			if err != nil {
				return fmt.Errorf("load cursor: %w", err)
			}
			start = saved
		} else if err := s.deps.Cursors.SaveCursor(ctx, 0); err != nil {
			return fmt.Errorf("reset cursor: %w", err)
		}
		s.sequential = NewSequentialSelector(s.bank, start)

	case ModeTest:
		s.test = NewTestSelector(s.bank, s.config.TestLength, s.deps.Rand)
		s.startedAt = s.deps.Clock.Now()
		s.deadline = s.startedAt.Add(s.config.TestDuration)
		s.startCountdown()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if s.startedAt.IsZero() {
		s.startedAt = s.deps.Clock.Now()
	}
	s.mode = mode
	s.status = StatusRunning
	return nil
}

// Advance presents the next question. When a test runs out of questions or
// time the session finishes and ErrSessionFinished is returned.
func (s *PracticeSession) Advance(ctx context.Context) (questionbank.Question, error) {
	s.mu.Lock()
	q, err := s.advanceLocked(ctx)
	state, finished := s.snapshotIfFinished(err)
	s.mu.Unlock()

	if finished {
		s.notifyFinished(state)
	}
	return q, err
}

// Answer records the chosen option for the current question. The caller
// decides when to advance; AdvanceAfter carries the suggested delay.
func (s *PracticeSession) Answer(ctx context.Context, choiceIndex int) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRunning(); err != nil {
		return AnswerResult{}, err
	}
	if s.current == nil || s.answered {
		return AnswerResult{}, ErrNoPendingQuestion
	}
	if choiceIndex < 0 || choiceIndex >= len(s.current.Choices) {
		return AnswerResult{}, fmt.Errorf("%w: %d", ErrInvalidChoice, choiceIndex)
	}

	return s.recordLocked(ctx, s.current.Choices[choiceIndex].Correct)
}

// Skip records the current question as an incorrect attempt and advances.
// A question that was already answered is not recorded twice.
func (s *PracticeSession) Skip(ctx context.Context) (questionbank.Question, error) {
	s.mu.Lock()
	q, err := s.skipLocked(ctx)
	state, finished := s.snapshotIfFinished(err)
	s.mu.Unlock()

	if finished {
		s.notifyFinished(state)
	}
	return q, err
}

func (s *PracticeSession) skipLocked(ctx context.Context) (questionbank.Question, error) {
	if err := s.checkRunning(); err != nil {
		return questionbank.Question{}, err
	}
	if s.current != nil && !s.answered {
		if _, err := s.recordLocked(ctx, false); err != nil {
			return questionbank.Question{}, err
		}
	}
	return s.advanceLocked(ctx)
}

// Exit ends the run. The countdown goroutine has stopped when Exit returns.
func (s *PracticeSession) Exit() {
	s.mu.Lock()
	if s.status == StatusIdle || s.status == StatusRunning {
		s.status = StatusExited
	}
	stop, done := s.stopTimer, s.timerDone
	s.stopTimer, s.timerDone = nil, nil
	s.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}
}

// State returns a snapshot of the session.
func (s *PracticeSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Sequence returns the generated test order, nil outside test mode.
func (s *PracticeSession) Sequence() []questionbank.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.test == nil {
		return nil
	}
	return s.test.Sequence()
}

func (s *PracticeSession) checkRunning() error {
	switch s.status {
	case StatusRunning:
		return nil
	case StatusIdle:
		return ErrNotStarted
	default:
		return ErrSessionClosed
	}
}

func (s *PracticeSession) advanceLocked(ctx context.Context) (questionbank.Question, error) {
	if err := s.checkRunning(); err != nil {
		return questionbank.Question{}, err
	}

	var q questionbank.Question
	switch s.mode {
	case ModeRandom:
		excluded := 0
		if s.current != nil {
			excluded = s.current.ID
		}
		next, err := s.random.Next(excluded)
		if err != nil {
			return questionbank.Question{}, err
		}
		q = next

	case ModeSequential:
		next, index, err := s.sequential.Next()
		if err != nil {
			return questionbank.Question{}, err
		}
		// Persist the presented index so an unanswered question is shown
		// again on resume.
		if err := s.deps.Cursors.SaveCursor(ctx, index); err != nil {
			return questionbank.Question{}, fmt.Errorf("save cursor: %w", err)
		}
		q = next

	case ModeTest:
		if !s.deps.Clock.Now().Before(s.deadline) {
			s.finishLocked()
			return questionbank.Question{}, ErrSessionFinished
		}
		next, ok := s.test.Next()
		if !ok {
			s.finishLocked()
			return questionbank.Question{}, ErrSessionFinished
		}
		q = next
	}

	s.current = &q
	s.answered = false
	s.questionStart = s.deps.Clock.Now()
	s.position++
	return q, nil
}

func (s *PracticeSession) recordLocked(ctx context.Context, correct bool) (AnswerResult, error) {
	elapsed := s.deps.Clock.Now().Sub(s.questionStart)

	record, err := s.deps.Progress.Record(ctx, s.current.ID, correct, elapsed, s.config.TimeCap)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("record question %d: %w", s.current.ID, err)
	}

	s.answered = true
	if s.mode != ModeTest {
		s.answeredCount++
	}
	if correct {
		s.correctCount++
	}

	if s.mode == ModeSequential {
		if err := s.deps.Cursors.SaveCursor(ctx, s.sequential.Cursor()); err != nil {
			return AnswerResult{}, fmt.Errorf("save cursor: %w", err)
		}
	}

	result := AnswerResult{
		QuestionID:   s.current.ID,
		Correct:      correct,
		CorrectIndex: s.current.CorrectIndex(),
		Elapsed:      elapsed,
		Record:       record,
		Tier:         progress.Classify(record),
		Weight:       progress.Weight(record),
	}
	if correct {
		result.AdvanceAfter = s.config.CorrectAdvanceDelay
	}
	return result, nil
}

// finishLocked moves a running session to StatusFinished and cancels the
// countdown without waiting for it, since the countdown itself may be the
// caller.
func (s *PracticeSession) finishLocked() {
	if s.status != StatusRunning {
		return
	}
	s.status = StatusFinished
	if s.stopTimer != nil {
		s.stopTimer()
	}
}

func (s *PracticeSession) snapshotIfFinished(err error) (State, bool) {
	if !errors.Is(err, ErrSessionFinished) {
		return State{}, false
	}
	return s.stateLocked(), true
}

func (s *PracticeSession) notifyFinished(state State) {
	if s.deps.OnFinish != nil {
		s.deps.OnFinish(state)
	}
}

// startCountdown launches the per-second tick that ends a test at its
// deadline. Caller holds s.mu.
func (s *PracticeSession) startCountdown() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ticker := s.deps.Clock.NewTicker(s.config.TickInterval)

	s.stopTimer = cancel
	s.timerDone = done

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				if s.tick(ctx) {
					return
				}
			}
		}
	}()
}

// tick checks the deadline and reports whether the countdown should stop.
func (s *PracticeSession) tick(ctx context.Context) bool {
	s.mu.Lock()
	if ctx.Err() != nil || s.status != StatusRunning {
		s.mu.Unlock()
		return true
	}
	if s.deps.Clock.Now().Before(s.deadline) {
		s.mu.Unlock()
		return false
	}

	s.finishLocked()
	state := s.stateLocked()
	s.mu.Unlock()

	s.notifyFinished(state)
	return true
}

func (s *PracticeSession) stateLocked() State {
	st := State{
		ID:            s.ID,
		Mode:          s.mode,
		Status:        s.status,
		Answered:      s.answered,
		Position:      s.position,
		AnsweredCount: s.answeredCount,
		CorrectCount:  s.correctCount,
		StartedAt:     s.startedAt,
	}
	if s.current != nil {
		q := *s.current
		st.Current = &q
	}

	switch s.mode {
	case ModeSequential:
		st.Total = s.bank.Len()
	case ModeTest:
		st.Total = s.test.Len()
		st.Deadline = s.deadline
		if s.status == StatusRunning {
			st.Remaining = max(0, s.deadline.Sub(s.deps.Clock.Now()))
		}
	}
	return st
}
