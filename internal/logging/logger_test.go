package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWith_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWith(Options{Level: slog.LevelDebug, Output: &buf})

	logger.Debug("asset missing", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=")
}

func TestNewWith_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWith(Options{Level: slog.LevelWarn, JSON: true, Output: &buf})

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "state", "IDLE")
	assert.Contains(t, buf.String(), `"state":"IDLE"`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
