package practicesession

import (
	"math/rand"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
)

// RandomSelector draws questions with probability proportional to their
// progress weight.
type RandomSelector struct {
	bank     *questionbank.Bank
	progress ProgressView
	rand     *rand.Rand
}

func NewRandomSelector(bank *questionbank.Bank, view ProgressView, rnd *rand.Rand) *RandomSelector {
	return &RandomSelector{
		bank:     bank,
		progress: view,
		rand:     rnd,
	}
}

// Next picks a question other than excludeID (0 excludes nothing). When the
// bank holds only the excluded question, that question is returned again.
func (s *RandomSelector) Next(excludeID int) (questionbank.Question, error) {
	if s.bank.Len() == 0 {
		return questionbank.Question{}, ErrEmptyPool
	}

	candidates := make([]questionbank.Question, 0, s.bank.Len())
	weights := make([]float64, 0, s.bank.Len())
	total := 0.0

	for _, q := range s.bank.Questions {
		if q.ID == excludeID {
			continue
		}
		record, _ := s.progress.Get(q.ID)
		w := progress.Weight(record)
		candidates = append(candidates, q)
		weights = append(weights, w)
		total += w
	}

	if len(candidates) == 0 {
		q, _ := s.bank.Get(excludeID)
		return q, nil
	}

	return candidates[pickWeighted(weights, s.rand.Float64()*total)], nil
}

// pickWeighted subtracts weights in order until r is used up. The last
// candidate wins when rounding leaves a positive remainder.
func pickWeighted(weights []float64, r float64) int {
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// SequentialSelector walks the bank in load order and wraps around.
type SequentialSelector struct {
	bank   *questionbank.Bank
	cursor int // index of the next question
}

// NewSequentialSelector starts at the given zero-based index. Out of range
// positions restart from the beginning.
func NewSequentialSelector(bank *questionbank.Bank, start int) *SequentialSelector {
	if start < 0 || start > bank.Len() {
		start = 0
	}
	return &SequentialSelector{
		bank:   bank,
		cursor: start,
	}
}

// Next returns the question at the cursor and its index.
func (s *SequentialSelector) Next() (questionbank.Question, int, error) {
	if s.bank.Len() == 0 {
		return questionbank.Question{}, 0, ErrEmptyPool
	}
	if s.cursor >= s.bank.Len() {
		s.cursor = 0
	}

	index := s.cursor
	s.cursor++
	return s.bank.At(index), index, nil
}

// Cursor is the index the next call to Next will return.
func (s *SequentialSelector) Cursor() int {
	return s.cursor
}

// TestSelector iterates a fixed shuffled sequence without repeats.
type TestSelector struct {
	sequence []questionbank.Question
	position int
}

// NewTestSelector shuffles the bank and keeps the first length questions.
func NewTestSelector(bank *questionbank.Bank, length int, rnd *rand.Rand) *TestSelector {
	questions := shuffleQuestions(bank.Questions, rnd)

	if length > 0 && length < len(questions) {
		questions = questions[:length]
	}

	return &TestSelector{sequence: questions}
}

// Next returns the next question, or false once the sequence is exhausted.
func (s *TestSelector) Next() (questionbank.Question, bool) {
	if s.position >= len(s.sequence) {
		return questionbank.Question{}, false
	}
	q := s.sequence[s.position]
	s.position++
	return q, true
}

func (s *TestSelector) Len() int {
	return len(s.sequence)
}

// Sequence returns a copy of the generated question order.
func (s *TestSelector) Sequence() []questionbank.Question {
	out := make([]questionbank.Question, len(s.sequence))
	copy(out, s.sequence)
	return out
}

// shuffleQuestions returns a new slice with questions in random order.
func shuffleQuestions(questions []questionbank.Question, rnd *rand.Rand) []questionbank.Question {
	shuffled := make([]questionbank.Question, len(questions))
	copy(shuffled, questions)

	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
