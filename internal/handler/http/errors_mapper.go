package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/service"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrNoClaims:                         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,

	ErrForbidden: http.StatusForbidden,

	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidPathParam:            http.StatusBadRequest,
	utils.ErrEmptyBody:             http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmptySearchQuery:    http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,

	service.ErrSearchFailed:        http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

func timedOut(r *http.Request) bool {
	return errors.Is(r.Context().Err(), context.DeadlineExceeded)
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Client errors
// carry the error text; server errors only the status text. Nothing is
// written once the request deadline has passed: middleware.Timeout answers
// 504 itself.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if timedOut(r) {
		logger.FromRequest(r).Err(err).Msg(msg + ": request timed out")
		return
	}

	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	body := err.Error()
	if status >= http.StatusInternalServerError {
		body = http.StatusText(status)
	}
	http.Error(w, body, status)
}
