package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Config{Writer: &buf, Level: "warn", Format: "json"})
	defer closer.Close()

	logger.Info("skipped")
	logger.Warn("kept", "book_id", "b1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "b1", rec["book_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Config{Writer: &buf, Level: "debug"})

	logger.Debug("drain done", "pushed", 3)
	assert.Contains(t, buf.String(), "msg=\"drain done\"")
	assert.Contains(t, buf.String(), "pushed=3")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")
	logger, closer := New(Config{File: path})

	logger.Info("started")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "started")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
