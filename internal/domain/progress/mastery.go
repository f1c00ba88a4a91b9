package progress

import "math"

type Tier string

const (
	TierNotSeen    Tier = "not-seen"
	TierStruggling Tier = "struggling"
	TierLearning   Tier = "learning"
	TierMastered   Tier = "mastered"
)

// Policy thresholds. Accuracy dominates; latency only matters when it is
// extreme in either direction.
const (
	strugglingAccuracy = 0.5
	slowAvgTimeMs      = 15000
	slowAccuracy       = 0.7
	steadyAccuracy     = 0.85
	steadyMinAttempts  = 3
	steadyMaxAvgTimeMs = 12000
	perfectMinAttempts = 2

	unseenWeight = 100
)

type band int

const (
	bandUnseen band = iota
	bandStruggling
	bandSlow
	bandPerfect
	bandSteady
	bandLearning
)

// assess is the single rule table shared by Classify and Weight, so tiers and
// sampling weights cannot disagree. First match wins.
func assess(r Record) band {
	if !r.Seen || r.AttemptCount == 0 {
		return bandUnseen
	}

	accuracy := r.Accuracy()
	avgTime := r.AvgTimeMs()

	switch {
	case accuracy < strugglingAccuracy:
		return bandStruggling
	case avgTime > slowAvgTimeMs && accuracy < slowAccuracy:
		return bandSlow
	case r.CorrectCount == r.AttemptCount && r.AttemptCount >= perfectMinAttempts:
		return bandPerfect
	case accuracy >= steadyAccuracy && r.AttemptCount >= steadyMinAttempts && avgTime <= steadyMaxAvgTimeMs:
		return bandSteady
	default:
		return bandLearning
	}
}

// Classify derives the mastery tier of a record.
func Classify(r Record) Tier {
	switch assess(r) {
	case bandUnseen:
		return TierNotSeen
	case bandStruggling, bandSlow:
		return TierStruggling
	case bandPerfect, bandSteady:
		return TierMastered
	default:
		return TierLearning
	}
}

// Weight is the relative sampling priority of a question in random mode.
// It is always positive and falls as demonstrated competence rises:
// unseen 100, struggling (55,90], learning (20,50], mastered [1,14].
func Weight(r Record) float64 {
	miss := 1 - r.Accuracy()

	switch assess(r) {
	case bandUnseen:
		return unseenWeight
	case bandStruggling:
		return 60 + miss*30
	case bandSlow:
		return 55 + miss*20
	case bandPerfect:
		return math.Max(1, float64(12-r.AttemptCount))
	case bandSteady:
		return math.Max(1, float64(15-r.AttemptCount))
	default:
		return 20 + miss*30
	}
}
