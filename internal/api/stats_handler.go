package api

import (
	"net/http"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
)

// ── Response types ──────────────────────────────────────────────────────────

type StatsResponse struct {
	TotalQuestions int            `json:"total_questions" example:"200"`
	Seen           int            `json:"seen" example:"57"`
	Correct        int            `json:"correct" example:"80"`
	Attempts       int            `json:"attempts" example:"127"`
	Accuracy       int            `json:"accuracy" example:"63"`
	Tiers          map[string]int `json:"tiers"`
}

type QuestionStatsResponse struct {
	QuestionID     int     `json:"question_id" example:"12"`
	Tier           string  `json:"tier" example:"learning"`
	Weight         float64 `json:"weight" example:"35"`
	CorrectCount   int     `json:"correct_count" example:"2"`
	IncorrectCount int     `json:"incorrect_count" example:"1"`
	AttemptCount   int     `json:"attempt_count" example:"3"`
	AvgTimeMs      float64 `json:"avg_time_ms" example:"8400"`
	CorrectAnswer  string  `json:"correct_answer" example:"Disminuir la velocidad"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns aggregate progress.
// @Summary      Progress summary
// @Description  Totals across the bank with the number of questions per mastery tier.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	summary := progress.Summarize(h.quiz.Progress().Snapshot())

	tiers := make(map[string]int, len(summary.Tiers))
	for tier, n := range summary.Tiers {
		tiers[string(tier)] = n
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		TotalQuestions: summary.TotalQuestions,
		Seen:           summary.Seen,
		Correct:        summary.Correct,
		Attempts:       summary.Attempts,
		Accuracy:       summary.Accuracy,
		Tiers:          tiers,
	})
}

// getQuestionStats returns the per-question mastery grid.
// @Summary      Per-question stats
// @Description  Mastery tier, selection weight and answer history of every question, in bank order.
// @Tags         Stats
// @Produce      json
// @Success      200  {array}  QuestionStatsResponse
// @Router       /stats/questions [get]
func (h *Handler) getQuestionStats(w http.ResponseWriter, r *http.Request) {
	bank := h.quiz.Bank()
	records := h.quiz.Progress().Snapshot()

	response := make([]QuestionStatsResponse, 0, bank.Len())
	for i := 0; i < bank.Len(); i++ {
		q := bank.At(i)
		rec := records[q.ID]

		var answer string
		if idx := q.CorrectIndex(); idx >= 0 {
			answer = q.Choices[idx].Text
		}

		response = append(response, QuestionStatsResponse{
			QuestionID:     q.ID,
			Tier:           string(progress.Classify(rec)),
			Weight:         progress.Weight(rec),
			CorrectCount:   rec.CorrectCount,
			IncorrectCount: rec.IncorrectCount,
			AttemptCount:   rec.AttemptCount,
			AvgTimeMs:      rec.AvgTimeMs(),
			CorrectAnswer:  answer,
		})
	}

	respondJSON(w, http.StatusOK, response)
}
