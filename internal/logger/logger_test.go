package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureJSON(t, "info")

	Info("test message", "gym_id", 7, "path", "/api/gyms")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["gym_id"])
	assert.Equal(t, "/api/gyms", entry["path"])
}

func TestError(t *testing.T) {
	buf := captureJSON(t, "info")

	Error("query failed", "error", errors.New("connection refused"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestOddFieldCount(t *testing.T) {
	buf := captureJSON(t, "info")

	Info("odd", "lonely")

	assert.Contains(t, buf.String(), `"extra":"lonely"`)
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := captureJSON(t, "info")

	Debug("hidden")
	Debugf("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestFormattedVariants(t *testing.T) {
	buf := captureJSON(t, "debug")

	Infof("server on %s", ":8080")
	Errorf("failed: %v", "boom")
	Debugf("n=%d", 3)

	out := buf.String()
	assert.Contains(t, out, "server on :8080")
	assert.Contains(t, out, "failed: boom")
	assert.Contains(t, out, "n=3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "info", parseLevel("nonsense").String())
}
