package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.services.ViewService.ListViews(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing views")
		return
	}

	respond(w, r, views)
}

func (h *Handler) listViewsByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		writeError(w, r, err, "malformed email segment")
		return
	}

	views, err := h.services.ViewService.ListViewsByEmail(r.Context(), email)
	if err != nil {
		writeError(w, r, err, "error listing views by email")
		return
	}

	respond(w, r, views)
}

func (h *Handler) getViewByID(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.ViewService.GetViewByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error finding view")
		return
	}

	respond(w, r, view)
}

func (h *Handler) createView(w http.ResponseWriter, r *http.Request) {
	var view models.View
	if err := utils.DecodeJSON(r, &view); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid view body")
		return
	}

	result, err := h.services.ViewService.CreateView(r.Context(), view)
	if err != nil {
		writeError(w, r, err, "error creating view")
		return
	}

	respond(w, r, result)
}

func (h *Handler) deleteView(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.ViewService.DeleteView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error deleting view")
		return
	}

	respond(w, r, result)
}
