package progress

import "math"

// Summary aggregates statistics across every tracked question.
type Summary struct {
	TotalQuestions int
	Seen           int
	Correct        int
	Attempts       int
	Accuracy       int // rounded percentage, 0 when nothing was attempted
	Tiers          map[Tier]int
}

func Summarize(records map[int]Record) Summary {
	s := Summary{
		TotalQuestions: len(records),
		Tiers: map[Tier]int{
			TierNotSeen:    0,
			TierStruggling: 0,
			TierLearning:   0,
			TierMastered:   0,
		},
	}

	for _, r := range records {
		s.Tiers[Classify(r)]++
		if !r.Seen {
			continue
		}
		s.Seen++
		s.Correct += r.CorrectCount
		s.Attempts += r.AttemptCount
	}

	if s.Attempts > 0 {
		s.Accuracy = int(math.Round(float64(s.Correct) / float64(s.Attempts) * 100))
	}
	return s
}
