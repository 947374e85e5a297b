package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "LCDCLOCK.logs")

	log, err := NewLogger(path, zapcore.InfoLevel)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("Uploaded glyphs", zap.Int("slots", 8))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Uploaded glyphs")
	assert.Contains(t, string(data), "slots")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerTeesToExtraSinks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LCDCLOCK.logs")
	var echo bytes.Buffer

	log, err := NewLogger(path, zapcore.DebugLevel, &echo)
	require.NoError(t, err)
	assert.FileExists(t, path)

	log.Warn("Resyncing serial port")
	require.NoError(t, log.Sync())

	assert.Contains(t, echo.String(), "Resyncing serial port")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, echo.String(), string(data))
}

func TestNewLoggerFailsOnUnusablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := NewLogger(filepath.Join(blocker, "LCDCLOCK.logs"), zapcore.DebugLevel)
	assert.Error(t, err)
}
