package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
)

// createToken handles POST /jwt. The body is the identity payload; the
// answer is {"token": "..."}.
func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	var identity models.IdentityPayload
	if err := utils.DecodeJSON(r, &identity); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid identity payload")
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token")
	}
}
