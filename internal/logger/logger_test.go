// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("oyou-test")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "oyou-test", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	l := NewLogger("level")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level   string
		changed bool
		want    zerolog.Level
	}{
		{level: "WARN", changed: true, want: zerolog.WarnLevel},
		{level: " error ", changed: true, want: zerolog.ErrorLevel},
		{level: "loud", changed: false, want: zerolog.ErrorLevel},
		{level: "", changed: false, want: zerolog.ErrorLevel},
		{level: "info", changed: true, want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.changed, l.SetLevel(tt.level))
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.WithTraceID("abc-123")
	child.Info().Msg("traced")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc-123", entry[TraceIDField])
	assert.Equal(t, "server", entry["role"])

	buf.Reset()
	parent.Info().Msg("untouched")
	assert.NotContains(t, decodeEntry(t, &buf), TraceIDField)
}

func TestFromContextAndRequest(t *testing.T) {
	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
		req := httptest.NewRequest(http.MethodGet, "/view", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		FromRequest(req).Info().Msg("from request")
		assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])

		buf.Reset()
		FromContext(req.Context()).Info().Msg("from context")
		assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("bare context never yields nil", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
	})
}
