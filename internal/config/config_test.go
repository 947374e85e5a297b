package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, "LCDCLOCK.logs", cfg.LogFile)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.Port)
	assert.False(t, cfg.TwelveHour)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		ENV_PORT:         "/dev/ttyUSB0",
		ENV_BAUD:         "9600",
		ENV_LOG_FILE:     "clock.log",
		ENV_LOG_LEVEL:    "warn",
		ENV_READ_TIMEOUT: "500ms",
		ENV_TWELVE_HOUR:  "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:        "/dev/ttyUSB0",
		BaudRate:    9600,
		LogFile:     "clock.log",
		LogLevel:    zapcore.WarnLevel,
		ReadTimeout: 500 * time.Millisecond,
		TwelveHour:  true,
	}, cfg)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		ENV_BAUD:         "fast",
		ENV_LOG_LEVEL:    "loud",
		ENV_READ_TIMEOUT: "-1s",
		ENV_TWELVE_HOUR:  "sometimes",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(map[string]string{key: value}))
			assert.ErrorContains(t, err, key)
		})
	}
	_, err := FromEnv(lookupFrom(map[string]string{ENV_BAUD: "0"}))
	assert.Error(t, err)
}

// registers cleanup for key and leaves it unset
func unsetForTest(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadReadsEnvFiles(t *testing.T) {
	for _, key := range []string{ENV_PORT, ENV_BAUD, ENV_LOG_FILE, ENV_LOG_LEVEL, ENV_READ_TIMEOUT, ENV_TWELVE_HOUR} {
		unsetForTest(t, key)
	}
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("LCDCLOCK_PORT=/dev/ttyACM1\n"), 0644))
	require.NoError(t, os.WriteFile(shared, []byte("LCDCLOCK_PORT=/dev/ttyACM0\nLCDCLOCK_12H=1\n"), 0644))

	cfg, err := Load(local, shared, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM1", cfg.Port)
	assert.True(t, cfg.TwelveHour)
}

func TestLoadKeepsProcessEnvironment(t *testing.T) {
	unsetForTest(t, ENV_TWELVE_HOUR)
	t.Setenv(ENV_PORT, "/dev/ttyS3")
	dir := t.TempDir()
	shared := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(shared, []byte("LCDCLOCK_PORT=/dev/ttyACM0\n"), 0644))

	cfg, err := Load(shared)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyS3", cfg.Port)
}
