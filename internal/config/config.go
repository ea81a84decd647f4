package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config centraliza la configuración de la demo.
type Config struct {
	AppEnv       string `env:"APP_ENV" envDefault:"production"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"json"`
	OutputIndent int    `env:"OUTPUT_INDENT" envDefault:"2"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewLogger arma el logger zap según APP_ENV y LOG_LEVEL.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	if c.AppEnv == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
