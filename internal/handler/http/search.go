package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/service"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
)

const (
	searchQueryMissing = "Query parameter missing"
	searchFailed       = "Failed to fetch search results"
)

// search handles GET /search?q=. Errors keep the {"error": "..."} body the
// browser client expects.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	if query == "" {
		log.Err(service.ErrEmptySearchQuery).Send()
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: searchQueryMissing}, http.StatusBadRequest)
		return
	}

	results, err := h.services.SearchService.Search(r.Context(), query, h.callerEmail(r))
	if err != nil {
		if timedOut(r) {
			log.Err(err).Msg("search aborted by request timeout")
			return
		}

		status := statusFromError(err)
		msg := searchFailed
		if errors.Is(err, service.ErrEmptySearchQuery) {
			msg = searchQueryMissing
		}

		log.Err(err).Int("status", status).Msg("search failed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
		return
	}

	respond(w, r, results)
}

func (h *Handler) listSearchLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.services.SearchService.ListSearchLogs(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing search logs")
		return
	}

	respond(w, r, logs)
}

// callerEmail returns the email of a valid bearer token, or "" for anonymous
// or invalid credentials. Search itself is public.
func (h *Handler) callerEmail(r *http.Request) string {
	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return ""
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil || token.Claims == nil {
		return ""
	}

	return token.Claims.Email
}
