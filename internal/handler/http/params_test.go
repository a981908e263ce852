package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithEmailParam(raw string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("email", raw)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestEmailParam(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "ann@example.com", want: "ann@example.com"},
		{name: "encoded at sign", raw: "ann%40example.com", want: "ann@example.com"},
		{name: "encoded plus", raw: "ann%2Btag%40example.com", want: "ann+tag@example.com"},
		{name: "broken escape", raw: "ann%ZZexample.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := emailParam(requestWithEmailParam(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPathParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireSelf_BrokenEscape(t *testing.T) {
	h := newTestHandler(nil)

	req := injectNopLogger(requestWithEmailParam("ann%ZZ"))
	rr := httptest.NewRecorder()

	h.requireSelf(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})).ServeHTTP(rr, req.WithContext(utils.WithClaims(req.Context(), &models.Claims{Email: "ann@example.com"})))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
