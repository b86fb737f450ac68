package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvLevel selects the log level (debug, info, warn, error)
	EnvLevel = "MINIGREP_LOG_LEVEL"
	// EnvFormat selects the log format (text or json)
	EnvFormat = "MINIGREP_LOG_FORMAT"
)

// Config holds logger settings
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
	Output io.Writer
}

// DefaultConfig logs warnings and errors as text to stderr
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// ConfigFromEnv applies MINIGREP_LOG_LEVEL and MINIGREP_LOG_FORMAT to the defaults.
// Unknown values are ignored.
func ConfigFromEnv(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvLevel); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			cfg.Level = level
		}
	}

	if v, ok := lookup(EnvFormat); ok {
		switch f := strings.ToLower(strings.TrimSpace(v)); f {
		case "text", "json":
			cfg.Format = f
		}
	}

	return cfg
}

// New creates a logger and sets it as the default logger
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default: // "text"
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
