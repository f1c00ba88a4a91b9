package questionbank

import (
	"errors"
	"fmt"
)

// MaxQuestions is the number of entries kept from the source bank.
// Entries past this position are ignored.
const MaxQuestions = 200

var ErrBankFull = errors.New("question bank is full")

// Bank holds the immutable question set in load order.
// Question IDs are 1-based positions, so Questions[i].ID == i+1.
type Bank struct {
	Questions []Question
}

func New() *Bank {
	return &Bank{
		Questions: []Question{},
	}
}

// AddQuestion validates and appends a question, assigning the next
// sequential ID.
func (b *Bank) AddQuestion(prompt string, images []string, choices []Choice) error {
	if len(b.Questions) >= MaxQuestions {
		return ErrBankFull
	}

	number := len(b.Questions) + 1
	if len(choices) == 0 {
		return fmt.Errorf("question %d: no choices", number)
	}

	correct := 0
	for _, c := range choices {
		if c.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("question %d: expected exactly one correct choice, got %d", number, correct)
	}

	b.Questions = append(b.Questions, Question{
		ID:      number,
		Prompt:  prompt,
		Images:  append([]string(nil), images...),
		Choices: append([]Choice(nil), choices...),
	})
	return nil
}

func (b *Bank) Len() int {
	return len(b.Questions)
}

// Get returns the question with the given ID.
func (b *Bank) Get(id int) (Question, bool) {
	if id < 1 || id > len(b.Questions) {
		return Question{}, false
	}
	return b.Questions[id-1], true
}

// At returns the question at a zero-based load-order index.
func (b *Bank) At(index int) Question {
	return b.Questions[index]
}

// IDs lists every question ID in load order.
func (b *Bank) IDs() []int {
	ids := make([]int, len(b.Questions))
	for i, q := range b.Questions {
		ids[i] = q.ID
	}
	return ids
}
