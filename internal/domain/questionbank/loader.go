package questionbank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadError is returned when the question bank cannot be read or parsed.
// It is fatal to starting any session.
type LoadError struct {
	Reason  string
	Wrapped error
}

func (e *LoadError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("load question bank: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("load question bank: %s", e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

type rawChoice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// rawQuestion is the on-disk shape. Any embedded id is ignored; IDs come
// from load order.
type rawQuestion struct {
	Question *string     `json:"question"`
	Images   []string    `json:"images"`
	Choices  []rawChoice `json:"choices"`
}

// Parse reads a JSON array of questions, keeping the first MaxQuestions
// entries.
func Parse(r io.Reader) (*Bank, error) {
	var entries []json.RawMessage
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, &LoadError{Reason: "invalid json", Wrapped: err}
	}

	if len(entries) > MaxQuestions {
		entries = entries[:MaxQuestions]
	}

	bank := New()
	for i, entry := range entries {
		var raw rawQuestion
		if err := json.Unmarshal(entry, &raw); err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("entry %d", i+1), Wrapped: err}
		}

		prompt := ""
		if raw.Question != nil {
			prompt = *raw.Question
		}

		choices := make([]Choice, len(raw.Choices))
		for j, c := range raw.Choices {
			choices[j] = Choice{Text: c.Text, Correct: c.IsCorrect}
		}

		if err := bank.AddQuestion(prompt, raw.Images, choices); err != nil {
			return nil, &LoadError{Reason: "invalid question", Wrapped: err}
		}
	}

	if bank.Len() == 0 {
		return nil, &LoadError{Reason: "no questions"}
	}
	return bank, nil
}

// LoadFile opens and parses a question bank file.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Reason: "open " + path, Wrapped: err}
	}
	defer f.Close()

	return Parse(f)
}
