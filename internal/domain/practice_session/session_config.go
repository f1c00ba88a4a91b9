package practicesession

import (
	"fmt"
	"time"
)

type Mode string

const (
	ModeRandom     Mode = "random"
	ModeSequential Mode = "sequential"
	ModeTest       Mode = "test"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRandom, ModeSequential, ModeTest:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// SessionConfig holds the timing and length policy of a session.
type SessionConfig struct {
	TestLength          int           // questions per test, capped by bank size
	TestDuration        time.Duration // countdown budget of a test
	TimeCap             time.Duration // per-attempt cap on recorded answer time
	TickInterval        time.Duration // countdown tick period
	CorrectAdvanceDelay time.Duration // how long a correct answer stays on screen
}

// DefaultConfig returns the exam policy: 40 questions in 40 minutes.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		TestLength:          40,
		TestDuration:        40 * time.Minute,
		TimeCap:             30 * time.Second,
		TickInterval:        time.Second,
		CorrectAdvanceDelay: time.Second,
	}
}
