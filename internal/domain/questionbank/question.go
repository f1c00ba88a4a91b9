package questionbank

import "strings"

// DefaultPrompt is shown when a question carries no prompt text of its own
// (image-only questions).
const DefaultPrompt = "Select the correct answer:"

type Choice struct {
	Text    string
	Correct bool
}

type Question struct {
	ID      int
	Prompt  string
	Images  []string
	Choices []Choice
}

// DisplayPrompt returns the prompt to present, falling back to DefaultPrompt
// for blank prompts.
func (q Question) DisplayPrompt() string {
	if strings.TrimSpace(q.Prompt) == "" {
		return DefaultPrompt
	}
	return q.Prompt
}

// CorrectIndex returns the index of the correct choice, or -1.
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c.Correct {
			return i
		}
	}
	return -1
}
