package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "OUTPUT_FORMAT", "OUTPUT_INDENT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 2, cfg.OutputIndent)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OUTPUT_FORMAT", "yaml")
	t.Setenv("OUTPUT_INDENT", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, 4, cfg.OutputIndent)
}

func TestLoadConfig_InvalidIndent(t *testing.T) {
	t.Setenv("OUTPUT_INDENT", "dos")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{AppEnv: "production", LogLevel: "error"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	cfg = &Config{AppEnv: "development", LogLevel: "debug"}
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := &Config{LogLevel: "loud"}
	_, err := cfg.NewLogger()
	require.Error(t, err)
}
