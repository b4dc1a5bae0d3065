package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v6"
)

// LogLevel controls log verbosity on stderr.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel maps l onto slog. Unknown values map to warn.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogInfo:
		return slog.LevelInfo
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type Config struct {
	LogLevel LogLevel `env:"LOG_LEVEL" envDefault:"warn"`

	// Chat responder
	ChatBotName string `env:"CHATBOT_NAME" envDefault:"GoBot"`
	// ChatSeed makes reply variants reproducible when non-zero.
	ChatSeed uint64 `env:"CHATBOT_SEED" envDefault:"0"`

	// Grade book
	GradeBookCapacity     int    `env:"GRADEBOOK_CAPACITY" envDefault:"50"`
	GradeBookReportFormat string `env:"GRADEBOOK_REPORT_FORMAT" envDefault:"table"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if !cfg.LogLevel.IsValid() {
		return nil, fmt.Errorf("config: invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.GradeBookCapacity <= 0 {
		return nil, fmt.Errorf("config: GRADEBOOK_CAPACITY must be positive, got %d", cfg.GradeBookCapacity)
	}
	return cfg, nil
}
