package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docanalyzer/internal/config"
	"docanalyzer/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, config.LogConfig{Level: "info", Format: "json"})

	logger.Debug("hidden")
	logger.Info("shown", "session_id", "abc")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "abc", entry["session_id"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, config.LogConfig{Level: "debug", Format: "console"})

	logger.Debug("detail", "k", "v")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "k=v")
}
