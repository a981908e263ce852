package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, bool) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, called
}

func TestWithTraceID(t *testing.T) {
	h := newTestHandler(nil)

	t.Run("incoming id is echoed", func(t *testing.T) {
		rr, called := executeWithTraceID(h, "my-custom-trace-id")

		assert.True(t, called)
		assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		rr, called := executeWithTraceID(h, "")

		assert.True(t, called)
		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		require.NoError(t, err)
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		long := strings.Repeat("a", maxTraceIDLength+1)
		rr, _ := executeWithTraceID(h, long)

		got := rr.Header().Get(traceIDHeader)
		assert.NotEqual(t, long, got)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
	})

	t.Run("id with unsafe characters is replaced", func(t *testing.T) {
		rr, _ := executeWithTraceID(h, "abc\"\nforged")

		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		require.NoError(t, err)
	})

	t.Run("generated ids differ", func(t *testing.T) {
		first, _ := executeWithTraceID(h, "")
		second, _ := executeWithTraceID(h, "")

		assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
	})
}
