// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lifeboard/internal/domain"
	"lifeboard/internal/services"
	"lifeboard/internal/services/assistant"
)

type ChatHandler struct {
	Assistant     *services.AssistantService
	DomainService *services.DomainService
}

func NewChatHandler(as *services.AssistantService, ds *services.DomainService) *ChatHandler {
	return &ChatHandler{
		Assistant:     as,
		DomainService: ds,
	}
}

// HandleChatMessage runs one assistant round. The client may supply its own
// domain snapshot and history; when it doesn't, both are loaded from storage.
func (h *ChatHandler) HandleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string               `json:"message"`
		Domains []domain.Domain      `json:"domains"`
		History []domain.ChatMessage `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	domainList := req.Domains
	if domainList == nil {
		loaded, err := h.DomainService.List(r.Context())
		if err != nil {
			writeError(w, "Could not load domains", http.StatusInternalServerError)
			return
		}
		domainList = loaded
	}

	history := req.History
	if history == nil {
		loaded, err := h.Assistant.RecentHistory(r.Context(), 50)
		if err != nil {
			writeError(w, "Could not load chat history", http.StatusInternalServerError)
			return
		}
		history = loaded
	}

	result, err := h.Assistant.Respond(r.Context(), services.ChatRequest{
		Message: req.Message,
		Domains: domainList,
		History: history,
	})
	if err != nil {
		if assistant.IsValidation(err) {
			writeError(w, "Message is required", http.StatusBadRequest)
			return
		}
		writeError(w, "Error processing chat", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetChatHistory returns the newest messages in chronological order.
// Optional ?limit= caps the count.
func (h *ChatHandler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	history, err := h.Assistant.RecentHistory(r.Context(), limit)
	if err != nil {
		writeError(w, "Could not retrieve chat history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
