// File: internal/handlers/domain_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lifeboard/internal/repository/domains"
	"lifeboard/internal/services"
)

type DomainHandler struct {
	DomainService *services.DomainService
}

func NewDomainHandler(ds *services.DomainService) *DomainHandler {
	return &DomainHandler{DomainService: ds}
}

// ListDomains returns every tracker in creation order.
func (h *DomainHandler) ListDomains(w http.ResponseWriter, r *http.Request) {
	list, err := h.DomainService.List(r.Context())
	if err != nil {
		writeError(w, "Could not retrieve domains", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// UpdateDomain handles PUT /api/domains/{id}. A body with "progress" set
// updates that single field; any other body updates the mutable columns.
func (h *DomainHandler) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, "Invalid domain ID", http.StatusBadRequest)
		return
	}

	var update services.DomainUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.DomainService.Update(r.Context(), id, update); err != nil {
		if err == domains.ErrDomainNotFound {
			writeError(w, "Domain not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not update domain", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ResetProgress zeroes every domain's progress bar.
func (h *DomainHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.DomainService.ResetAll(r.Context()); err != nil {
		writeError(w, "Could not reset progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
