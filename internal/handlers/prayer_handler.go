// File: internal/handlers/prayer_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"lifeboard/internal/services"
	"lifeboard/internal/services/prayer"
)

type PrayerHandler struct {
	PrayerService *services.PrayerService
}

func NewPrayerHandler(ps *services.PrayerService) *PrayerHandler {
	return &PrayerHandler{PrayerService: ps}
}

// GetToday returns today's prayer schedule.
func (h *PrayerHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	summary, err := h.PrayerService.Today(r.Context())
	if err != nil {
		writePrayerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetMonth returns the schedule for ?year=&month=, defaulting to the current
// month.
func (h *PrayerHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	month := queryInt(r, "month")

	days, err := h.PrayerService.Month(r.Context(), year, month)
	if err != nil {
		writePrayerError(w, err)
		return
	}
	if days == nil {
		days = []prayer.DayTimes{}
	}
	writeJSON(w, http.StatusOK, days)
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

// writePrayerError maps service error types to HTTP statuses. Upstream
// failures surface as 502 since the data comes from a third-party API.
func writePrayerError(w http.ResponseWriter, err error) {
	if perr, ok := err.(*prayer.PrayerError); ok {
		switch perr.Type {
		case prayer.ErrTypeValidation:
			writeError(w, perr.Message, http.StatusBadRequest)
			return
		case prayer.ErrTypeNotFound:
			writeError(w, perr.Message, http.StatusNotFound)
			return
		case prayer.ErrTypeNetwork, prayer.ErrTypeProvider:
			writeError(w, "Prayer times are temporarily unavailable", http.StatusBadGateway)
			return
		}
	}
	writeError(w, "Could not retrieve prayer times", http.StatusInternalServerError)
}
