package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/service"
	"github.com/MKhiriev/oyou-server/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the verified
// claims in the request context (see [utils.ClaimsFromContext]).
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent
// or malformed, or the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, token.Claims)))
	})
}

// requireSelf rejects requests whose {email} path segment differs from the
// email claim. It must run after auth.
func (h *Handler) requireSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoClaims, "self check without claims")
			return
		}

		email, err := emailParam(r)
		if err != nil {
			writeError(w, r, err, "malformed email segment")
			return
		}

		if email != claims.Email {
			writeError(w, r, ErrForbidden, "path email does not match token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdmin looks up the caller's stored role on every request. It must
// run after auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoClaims, "admin check without claims")
			return
		}

		isAdmin, err := h.services.AuthService.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			writeError(w, r, err, "role lookup failed")
			return
		}
		if !isAdmin {
			writeError(w, r, ErrForbidden, "caller is not an admin")
			return
		}

		next.ServeHTTP(w, r)
	})
}
