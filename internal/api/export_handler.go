package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Eldoprano/test-drive-peru-A1/internal/domain/progress"
	"github.com/Eldoprano/test-drive-peru-A1/internal/service"
)

const exportVersion = "1.0"

// ── Request / Response types ────────────────────────────────────────────────

type ExportRecord struct {
	QuestionID     int   `json:"question_id" example:"12"`
	Seen           bool  `json:"seen" example:"true"`
	CorrectCount   int   `json:"correct_count" example:"2"`
	IncorrectCount int   `json:"incorrect_count" example:"1"`
	AttemptCount   int   `json:"attempt_count" example:"3"`
	TotalTimeMs    int64 `json:"total_time_ms" example:"25200"`
}

type ExportData struct {
	Version    string         `json:"version" example:"1.0"`
	ExportedAt string         `json:"exported_at" example:"2025-01-31T18:04:05Z"`
	Records    []ExportRecord `json:"records"`
}

type ImportResult struct {
	RecordsImported int `json:"records_imported" example:"200"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportProgress downloads all progress as JSON.
// @Summary      Export progress
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  ExportData
// @Router       /progress/export [get]
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	records := h.quiz.Progress().Snapshot()

	data := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Records:    make([]ExportRecord, 0, len(records)),
	}
	for id, rec := range records {
		data.Records = append(data.Records, ExportRecord{
			QuestionID:     id,
			Seen:           rec.Seen,
			CorrectCount:   rec.CorrectCount,
			IncorrectCount: rec.IncorrectCount,
			AttemptCount:   rec.AttemptCount,
			TotalTimeMs:    rec.TotalTimeMs,
		})
	}
	sort.Slice(data.Records, func(i, j int) bool {
		return data.Records[i].QuestionID < data.Records[j].QuestionID
	})

	w.Header().Set("Content-Disposition", `attachment; filename="progress.json"`)
	respondJSON(w, http.StatusOK, data)
}

// importProgress replaces all progress with a previous export.
// @Summary      Import progress
// @Description  Replaces stored progress. Questions missing from the file are reset.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Exported progress"
// @Success      200   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /progress/import [post]
func (h *Handler) importProgress(w http.ResponseWriter, r *http.Request) {
	var data ExportData
	if !decodeJSON(w, r, &data) {
		return
	}
	if data.Version != exportVersion {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export version %q", data.Version))
		return
	}

	records := make(map[int]progress.Record, len(data.Records))
	for _, rec := range data.Records {
		if _, dup := records[rec.QuestionID]; dup {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("duplicate question_id %d", rec.QuestionID))
			return
		}
		records[rec.QuestionID] = progress.Record{
			Seen:           rec.Seen,
			CorrectCount:   rec.CorrectCount,
			IncorrectCount: rec.IncorrectCount,
			AttemptCount:   rec.AttemptCount,
			TotalTimeMs:    rec.TotalTimeMs,
		}
	}

	err := h.quiz.Progress().Save(r.Context(), records)
	if errors.Is(err, service.ErrUnknownQuestion) || errors.Is(err, service.ErrInvalidRecord) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleServiceError(w, err, "progress") {
		return
	}

	h.logger.Info("progress imported", "records", len(records))
	respondJSON(w, http.StatusOK, ImportResult{RecordsImported: len(records)})
}
