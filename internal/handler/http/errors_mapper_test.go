package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/oyou-server/internal/service"
	"github.com/MKhiriev/oyou-server/internal/store"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty auth header", err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "bad auth header", err: utils.ErrInvalidAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "expired token wrapped", err: fmt.Errorf("parse: %w", service.ErrTokenIsExpired), want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "invalid json", err: fmt.Errorf("%w: eof", ErrInvalidJSON), want: http.StatusBadRequest},
		{name: "validation", err: fmt.Errorf("%w: email", service.ErrInvalidDataProvided), want: http.StatusBadRequest},
		{name: "duplicate email", err: fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists), want: http.StatusConflict},
		{name: "search failure", err: service.ErrSearchFailed, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("client error carries the message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		writeError(rr, req, store.ErrEmailAlreadyExists, "duplicate")

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), store.ErrEmailAlreadyExists.Error())
	})

	t.Run("server error hides the cause", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		writeError(rr, req, errors.New("connection string with password"), "oops")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", rr.Body.String())
	})

	t.Run("nothing is written after the deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		rr := httptest.NewRecorder()
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

		writeError(rr, req, service.ErrSearchFailed, "late")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Zero(t, rr.Body.Len())
		assert.Empty(t, rr.Header().Get("Content-Type"))
	})
}
