package api

import (
	"net/http"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/questionbank"
)

// ── Response types ──────────────────────────────────────────────────────────

// QuestionResponse is a question as shown to the learner. Correctness flags
// are never exposed here.
type QuestionResponse struct {
	ID      int      `json:"id" example:"12"`
	Prompt  string   `json:"prompt" example:"¿Qué indica una luz ámbar intermitente?"`
	Images  []string `json:"images"`
	Choices []string `json:"choices"`
}

func toQuestionResponse(q questionbank.Question) QuestionResponse {
	choices := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		choices[i] = c.Text
	}
	images := q.Images
	if images == nil {
		images = []string{}
	}
	return QuestionResponse{
		ID:      q.ID,
		Prompt:  q.DisplayPrompt(),
		Images:  images,
		Choices: choices,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions lists the question bank.
// @Summary      List questions
// @Description  Returns every question in bank order, without the answers.
// @Tags         Questions
// @Produce      json
// @Success      200  {array}  QuestionResponse
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	bank := h.quiz.Bank()

	response := make([]QuestionResponse, bank.Len())
	for i := range response {
		response[i] = toQuestionResponse(bank.At(i))
	}

	respondJSON(w, http.StatusOK, response)
}

// getQuestion returns a single question.
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        questionID  path      int  true  "Question ID"
// @Success      200         {object}  QuestionResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathInt(w, r, "questionID")
	if !ok {
		return
	}

	q, found := h.quiz.Bank().Get(questionID)
	if !found {
		respondError(w, http.StatusNotFound, "question not found")
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponse(q))
}
