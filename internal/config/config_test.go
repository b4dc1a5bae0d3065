package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "CHATBOT_NAME", "CHATBOT_SEED", "GRADEBOOK_CAPACITY", "GRADEBOOK_REPORT_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, LogWarn, cfg.LogLevel)
	require.Equal(t, "GoBot", cfg.ChatBotName)
	require.Zero(t, cfg.ChatSeed)
	require.Equal(t, 50, cfg.GradeBookCapacity)
	require.Equal(t, "table", cfg.GradeBookReportFormat)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHATBOT_NAME", "Ada")
	t.Setenv("CHATBOT_SEED", "7")
	t.Setenv("GRADEBOOK_CAPACITY", "3")
	t.Setenv("GRADEBOOK_REPORT_FORMAT", "yaml")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, LogDebug, cfg.LogLevel)
	require.Equal(t, "Ada", cfg.ChatBotName)
	require.Equal(t, uint64(7), cfg.ChatSeed)
	require.Equal(t, 3, cfg.GradeBookCapacity)
	require.Equal(t, "yaml", cfg.GradeBookReportFormat)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("GRADEBOOK_CAPACITY", "0")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("GRADEBOOK_CAPACITY", "many")
	_, err = Load()
	require.Error(t, err)
}

func TestLogLevel_SlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, LogDebug.SlogLevel())
	require.Equal(t, slog.LevelInfo, LogInfo.SlogLevel())
	require.Equal(t, slog.LevelWarn, LogWarn.SlogLevel())
	require.Equal(t, slog.LevelError, LogError.SlogLevel())
	require.Equal(t, slog.LevelWarn, LogLevel("x").SlogLevel())
}
