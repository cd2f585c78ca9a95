// File: internal/handlers/status_handler.go
package handlers

import (
	"net/http"
	"time"

	"lifeboard/internal/services"
)

type StatusHandler struct {
	Assistant     *services.AssistantService
	DomainService *services.DomainService
	startedAt     time.Time
}

func NewStatusHandler(as *services.AssistantService, ds *services.DomainService) *StatusHandler {
	return &StatusHandler{
		Assistant:     as,
		DomainService: ds,
		startedAt:     time.Now(),
	}
}

// GetStatus reports service health: whether the assistant runs against a real
// provider or its fallback table, and whether storage answers.
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	mode := "FALLBACK"
	if h.Assistant.HasProvider() {
		mode = "AI"
	}

	dbStatus := "ok"
	domainCount, err := h.DomainService.Count(r.Context())
	if err != nil {
		dbStatus = "error"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"mode":         mode,
		"db":           dbStatus,
		"domains":      domainCount,
		"prayerSource": services.PrayerSource,
		"uptime":       time.Since(h.startedAt).Round(time.Second).String(),
		"time":         time.Now().Format(time.RFC3339),
	})
}
