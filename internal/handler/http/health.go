package http

import (
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
)

const rootMessage = "Oyou server is running"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteText(w, rootMessage, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.HealthStatus{Status: "ok"})
}

// readyz reports 503 while the store does not answer pings.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("store is not ready")
		_, _ = utils.WriteJSON(w, models.HealthStatus{
			Status: "unavailable",
			Checks: map[string]string{"store": err.Error()},
		}, http.StatusServiceUnavailable)
		return
	}

	respond(w, r, models.HealthStatus{
		Status: "ok",
		Checks: map[string]string{"store": "ok"},
	})
}
