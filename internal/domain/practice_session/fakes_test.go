package practicesession_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	practicesession "github.com/Eldoprano/test-drive-peru-A1/internal/domain/practice_session"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
)

// createBankWithQuestions builds a bank whose first choice is always correct.
func createBankWithQuestions(n int) *questionbank.Bank {
	bank := questionbank.New()
	for i := 0; i < n; i++ {
		bank.AddQuestion(
			fmt.Sprintf("Question %d", i+1),
			nil,
			[]questionbank.Choice{
				{Text: "Right", Correct: true},
				{Text: "Wrong"},
			},
		)
	}
	return bank
}

type recordCall struct {
	questionID int
	correct    bool
	elapsed    time.Duration
}

type fakeProgress struct {
	mu      sync.Mutex
	records map[int]progress.Record
	calls   []recordCall
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{records: make(map[int]progress.Record)}
}

func (p *fakeProgress) Get(questionID int) (progress.Record, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.records[questionID]
	return r, ok
}

func (p *fakeProgress) Record(ctx context.Context, questionID int, correct bool, elapsed, timeCap time.Duration) (progress.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := p.records[questionID]
	r.Apply(correct, elapsed, timeCap)
	p.records[questionID] = r
	p.calls = append(p.calls, recordCall{questionID: questionID, correct: correct, elapsed: elapsed})
	return r, nil
}

func (p *fakeProgress) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

type fakeCursors struct {
	position int
	saves    int
}

func (c *fakeCursors) LoadCursor(ctx context.Context) (int, error) {
	return c.position, nil
}

func (c *fakeCursors) SaveCursor(ctx context.Context, position int) error {
	c.position = position
	c.saves++
	return nil
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	ticker *fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) NewTicker(d time.Duration) practicesession.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticker = &fakeTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
	return c.ticker
}

type fakeTicker struct {
	ch       chan time.Time
	stopOnce sync.Once
	stopped  chan struct{}
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stopped) })
}
