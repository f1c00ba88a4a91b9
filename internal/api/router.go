// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questions
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /questions/{questionID}", h.getQuestion)

	// Stats
	mux.HandleFunc("GET /stats", h.getStats)
	mux.HandleFunc("GET /stats/questions", h.getQuestionStats)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/next", h.nextQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/skip", h.skipQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/exit", h.exitSession)

	// Progress backup
	mux.HandleFunc("GET /progress/export", h.exportProgress)
	mux.HandleFunc("POST /progress/import", h.importProgress)
}
