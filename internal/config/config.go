package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// environment variables
const (
	ENV_PORT         = "LCDCLOCK_PORT"
	ENV_BAUD         = "LCDCLOCK_BAUD"
	ENV_LOG_FILE     = "LCDCLOCK_LOG_FILE"
	ENV_LOG_LEVEL    = "LCDCLOCK_LOG_LEVEL"
	ENV_READ_TIMEOUT = "LCDCLOCK_READ_TIMEOUT"
	ENV_TWELVE_HOUR  = "LCDCLOCK_12H"
)

const (
	DEFAULT_BAUD_RATE    = 115200
	DEFAULT_LOG_FILE     = "LCDCLOCK.logs"
	DEFAULT_READ_TIMEOUT = 2 * time.Second
)

// .env.local wins over .env, values already in the environment win over both
var DefaultEnvFiles = []string{".env.local", ".env"}

type Config struct {
	Port        string
	BaudRate    int
	LogFile     string
	LogLevel    zapcore.Level
	ReadTimeout time.Duration
	TwelveHour  bool
}

func Default() Config {
	return Config{
		BaudRate:    DEFAULT_BAUD_RATE,
		LogFile:     DEFAULT_LOG_FILE,
		LogLevel:    zapcore.DebugLevel,
		ReadTimeout: DEFAULT_READ_TIMEOUT,
	}
}

// Load reads the given env files, skipping the ones that don't exist, and
// builds the config from the environment.
func Load(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds the config from a lookup function, usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(ENV_PORT); ok {
		cfg.Port = v
	}

	if v, ok := lookup(ENV_BAUD); ok {
		baud, err := strconv.Atoi(v)
		if err != nil || baud <= 0 {
			return Config{}, fmt.Errorf("%s: invalid baud rate %q", ENV_BAUD, v)
		}
		cfg.BaudRate = baud
	}

	if v, ok := lookup(ENV_LOG_FILE); ok && v != "" {
		cfg.LogFile = v
	}

	if v, ok := lookup(ENV_LOG_LEVEL); ok {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", ENV_LOG_LEVEL, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(ENV_READ_TIMEOUT); ok {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", ENV_READ_TIMEOUT, err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("%s: timeout must be positive, got %s", ENV_READ_TIMEOUT, timeout)
		}
		cfg.ReadTimeout = timeout
	}

	if v, ok := lookup(ENV_TWELVE_HOUR); ok {
		twelve, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", ENV_TWELVE_HOUR, err)
		}
		cfg.TwelveHour = twelve
	}

	return cfg, nil
}
