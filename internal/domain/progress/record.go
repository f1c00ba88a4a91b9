package progress

import "time"

// Record tracks performance statistics for a single question.
// AttemptCount always equals CorrectCount + IncorrectCount.
type Record struct {
	Seen           bool  `json:"seen"`
	CorrectCount   int   `json:"correct_count"`
	IncorrectCount int   `json:"incorrect_count"`
	AttemptCount   int   `json:"attempt_count"`
	TotalTimeMs    int64 `json:"total_time_ms"`
}

// Apply records one attempt. Elapsed time is clamped to [0, timeCap]
// before it is accumulated.
func (r *Record) Apply(correct bool, elapsed, timeCap time.Duration) {
	r.Seen = true
	if correct {
		r.CorrectCount++
	} else {
		r.IncorrectCount++
	}
	r.AttemptCount++

	if elapsed > timeCap {
		elapsed = timeCap
	}
	if elapsed < 0 {
		elapsed = 0
	}
	r.TotalTimeMs += elapsed.Milliseconds()
}

// Accuracy is the share of correct attempts, 0 when never attempted.
func (r Record) Accuracy() float64 {
	if r.AttemptCount == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.AttemptCount)
}

// AvgTimeMs is the mean capped answer time in milliseconds.
func (r Record) AvgTimeMs() float64 {
	if r.AttemptCount == 0 {
		return 0
	}
	return float64(r.TotalTimeMs) / float64(r.AttemptCount)
}

// Valid reports whether the record is internally consistent.
func (r Record) Valid() bool {
	if r.CorrectCount < 0 || r.IncorrectCount < 0 || r.TotalTimeMs < 0 {
		return false
	}
	if r.AttemptCount != r.CorrectCount+r.IncorrectCount {
		return false
	}
	// A seen record has at least one attempt and an unseen one has none.
	return r.Seen == (r.AttemptCount > 0)
}
