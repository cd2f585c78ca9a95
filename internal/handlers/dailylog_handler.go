// File: internal/handlers/dailylog_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"lifeboard/internal/domain"
	"lifeboard/internal/repository/dailylog"
)

type DailyLogHandler struct {
	Repo dailylog.DailyLogRepository
}

func NewDailyLogHandler(repo dailylog.DailyLogRepository) *DailyLogHandler {
	return &DailyLogHandler{Repo: repo}
}

// CreateLog records minutes spent on a domain for a given day.
func (h *DailyLogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var entry domain.DailyLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	created, err := h.Repo.Create(r.Context(), &entry)
	if err != nil {
		if errors.Is(err, dailylog.ErrInvalidEntry) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "Could not save log entry", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetLogsByDate returns all entries for /api/logs/{date} (YYYY-MM-DD).
func (h *DailyLogHandler) GetLogsByDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	entries, err := h.Repo.FindByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, dailylog.ErrInvalidEntry) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "Could not retrieve log entries", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []domain.DailyLog{}
	}
	writeJSON(w, http.StatusOK, entries)
}
