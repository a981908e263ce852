// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) SearchAdapter {
	t.Helper()

	a, err := NewHTTPSearchAdapter(config.Search{
		APIKey:   "test-key",
		EngineID: "test-cx",
		BaseURL:  serverURL + "/customsearch/v1",
		Timeout:  time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

const providerResponse = `{
	"kind": "customsearch#search",
	"items": [
		{
			"title": "The Go Programming Language",
			"link": "https://go.dev/",
			"snippet": "Go is an open source programming language.",
			"displayLink": "go.dev",
			"htmlTitle": "dropped",
			"pagemap": {"cse_image": [{"src": "https://go.dev/images/go-logo.png"}]}
		},
		{
			"title": "Go (programming language)",
			"link": "https://en.wikipedia.org/wiki/Go_(programming_language)",
			"snippet": "Go is a statically typed language.",
			"displayLink": "en.wikipedia.org"
		}
	]
}`

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customsearch/v1", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		assert.Equal(t, "golang & more", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(providerResponse))
	}))
	defer srv.Close()

	results, err := newTestAdapter(t, srv.URL).Search(context.Background(), "golang & more")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "The Go Programming Language", results[0].Title)
	assert.Equal(t, "go.dev", results[0].DisplayLink)
	require.NotNil(t, results[0].Image)
	assert.Equal(t, "https://go.dev/images/go-logo.png", *results[0].Image)

	assert.Equal(t, "en.wikipedia.org", results[1].DisplayLink)
	assert.Nil(t, results[1].Image)
}

func TestSearch_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"customsearch#search","searchInformation":{"totalResults":"0"}}`))
	}))
	defer srv.Close()

	results, err := newTestAdapter(t, srv.URL).Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "quota", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrProviderUnavailable},
		{name: "other", status: http.StatusTeapot, wantErr: ErrSearchRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Search(context.Background(), "golang")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestSearch_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Search(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrDecodingResponse)
}

func TestSearch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Search(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrSearchRequest)
}

func TestNewHTTPSearchAdapter_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "no-scheme", "http://"} {
		_, err := NewHTTPSearchAdapter(config.Search{BaseURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidProviderURL, raw)
	}
}

func Test_splitProviderURL(t *testing.T) {
	base, path, err := splitProviderURL("https://www.googleapis.com/customsearch/v1")
	require.NoError(t, err)
	assert.Equal(t, "https://www.googleapis.com", base)
	assert.Equal(t, "/customsearch/v1", path)

	base, path, err = splitProviderURL("http://127.0.0.1:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", base)
	assert.Equal(t, "/", path)
}
