package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/books-api/internal/config"
	"github.com/phrazzld/books-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLines parses each JSON log line written to buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := logger.ParseLevel(tt.input)
		assert.Equal(t, tt.want, got, "level for %q", tt.input)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.input)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		l := logger.New(&buf, "warn")

		l.Info("hidden")
		l.Warn("shown", "book_id", "42")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0]["msg"])
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, "42", entries[0]["book_id"])
	})

	t.Run("invalid level falls back to info with a warning", func(t *testing.T) {
		var buf bytes.Buffer
		l := logger.New(&buf, "chatty")

		l.Debug("hidden")
		l.Info("shown")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 2)
		assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
		assert.Equal(t, "chatty", entries[0]["configured_level"])
		assert.Equal(t, "shown", entries[1]["msg"])
	})
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	l, err := logger.Setup(config.ServerConfig{LogLevel: "debug"})

	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	stored := logger.New(&buf, "info").With("trace_id", "abc")
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	ctx := logger.WithLogger(context.Background(), stored)

	assert.Same(t, stored, logger.FromContext(ctx))
	assert.Same(t, stored, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))

	logger.FromContext(ctx).Info("hello")
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
}
