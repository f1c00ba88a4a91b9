package api

import (
	"errors"
	"net/http"

	practicesession "github.com/Eldoprano/test-drive-peru-A1/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Mode   string `json:"mode" example:"sequential"`
	Resume bool   `json:"resume" example:"true"`
}

type SessionResponse struct {
	ID            string            `json:"id" example:"0b6f1c9e-4c1a-4f7e-9a51-8f3f2b7d6c10"`
	Mode          string            `json:"mode" example:"test"`
	Status        string            `json:"status" example:"running"`
	Counter       string            `json:"counter" example:"Question 3/40"`
	Question      *QuestionResponse `json:"question,omitempty"`
	Answered      bool              `json:"answered"`
	Position      int               `json:"position" example:"3"`
	Total         int               `json:"total" example:"40"`
	AnsweredCount int               `json:"answered_count" example:"2"`
	CorrectCount  int               `json:"correct_count" example:"1"`
	Remaining     string            `json:"remaining,omitempty" example:"38:12"`
	RemainingMs   int64             `json:"remaining_ms,omitempty" example:"2292000"`
}

type SubmitAnswerRequest struct {
	ChoiceIndex *int `json:"choice_index" example:"1"`
}

type SubmitAnswerResponse struct {
	Correct        bool            `json:"correct"`
	CorrectIndex   int             `json:"correct_index" example:"2"`
	CorrectAnswer  string          `json:"correct_answer" example:"Ceder el paso"`
	ElapsedMs      int64           `json:"elapsed_ms" example:"6400"`
	Tier           string          `json:"tier" example:"learning"`
	Weight         float64         `json:"weight" example:"35"`
	AdvanceAfterMs int64           `json:"advance_after_ms" example:"1000"`
	Session        SessionResponse `json:"session"`
}

func toSessionResponse(st practicesession.State) SessionResponse {
	resp := SessionResponse{
		ID:            st.ID,
		Mode:          string(st.Mode),
		Status:        string(st.Status),
		Counter:       st.Counter(),
		Answered:      st.Answered,
		Position:      st.Position,
		Total:         st.Total,
		AnsweredCount: st.AnsweredCount,
		CorrectCount:  st.CorrectCount,
	}
	if st.Current != nil && st.Status == practicesession.StatusRunning {
		q := toQuestionResponse(*st.Current)
		resp.Question = &q
	}
	if st.Mode == practicesession.ModeTest {
		resp.Remaining = practicesession.FormatRemaining(st.Remaining)
		resp.RemainingMs = st.Remaining.Milliseconds()
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a practice session and presents its first question.
// @Summary      Start a session
// @Description  Starts a random, sequential or test session. Resume continues sequential mode from the saved position. Any other live session is exited.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session options"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mode, err := practicesession.ParseMode(req.Mode)
	if h.handleServiceError(w, err, "session") {
		return
	}

	session, err := h.quiz.StartSession(r.Context(), mode, req.Resume)
	if h.handleServiceError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(session.State()))
}

// getSession returns the current state of a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Session(r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session.State()))
}

// nextQuestion advances to the next question.
// @Summary      Next question
// @Description  Presents the next question. A test that runs out of questions or time comes back finished.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/next [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Session(r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "session") {
		return
	}

	_, err = session.Advance(r.Context())
	if err != nil && !errors.Is(err, practicesession.ErrSessionFinished) {
		h.handleServiceError(w, err, "session")
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session.State()))
}

// submitAnswer records the learner's choice for the current question.
// @Summary      Answer the current question
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Chosen option"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "already answered or session not running"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Session(r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "session") {
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ChoiceIndex == nil {
		respondError(w, http.StatusBadRequest, "choice_index is required")
		return
	}

	result, err := session.Answer(r.Context(), *req.ChoiceIndex)
	if h.handleServiceError(w, err, "session") {
		return
	}

	var answer string
	if q, ok := h.quiz.Bank().Get(result.QuestionID); ok && result.CorrectIndex >= 0 {
		answer = q.Choices[result.CorrectIndex].Text
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Correct:        result.Correct,
		CorrectIndex:   result.CorrectIndex,
		CorrectAnswer:  answer,
		ElapsedMs:      result.Elapsed.Milliseconds(),
		Tier:           string(result.Tier),
		Weight:         result.Weight,
		AdvanceAfterMs: result.AdvanceAfter.Milliseconds(),
		Session:        toSessionResponse(session.State()),
	})
}

// skipQuestion counts the current question as missed and moves on.
// @Summary      Skip the current question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/skip [post]
func (h *Handler) skipQuestion(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Session(r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "session") {
		return
	}

	_, err = session.Skip(r.Context())
	if err != nil && !errors.Is(err, practicesession.ErrSessionFinished) {
		h.handleServiceError(w, err, "session")
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session.State()))
}

// exitSession ends a session.
// @Summary      Exit a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/exit [post]
func (h *Handler) exitSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.quiz.ExitSession(r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(state))
}
