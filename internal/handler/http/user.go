package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	respond(w, r, users)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error finding user by id")
		return
	}

	respond(w, r, user)
}

func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := emailParam(r)
	if err != nil {
		writeError(w, r, err, "malformed email segment")
		return
	}

	user, err := h.services.UserService.GetUserByEmail(r.Context(), email)
	if err != nil {
		writeError(w, r, err, "error finding user by email")
		return
	}

	respond(w, r, user)
}

// getAdminStatus handles GET /user/admin/{email}. requireSelf and
// requireAdmin have already run, so reaching it means the caller is an admin.
func (h *Handler) getAdminStatus(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.AdminStatus{Admin: true})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid user body")
		return
	}

	result, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "error creating user")
		return
	}

	respond(w, r, result)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.UserService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	respond(w, r, result)
}

// respond writes v as a 200 JSON response.
func respond(w http.ResponseWriter, r *http.Request, v any) {
	if _, err := utils.WriteJSON(w, v, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
