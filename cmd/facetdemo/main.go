package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"faceted-builder/internal/builder"
	"faceted-builder/internal/config"
	"faceted-builder/internal/render"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(os.Stdout, cfg, logger); err != nil {
		logger.Fatal("facet demo", zap.Error(err))
	}
}

func run(out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	format, err := render.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	b := builder.NewPersonBuilder(builder.WithLogger(logger))
	b.CommonInfo().
		WithAge(21).
		Address().
		At("Street Address").
		WithPostalCode("050822").
		In("HCM City").
		Employment().
		At("MoMo").
		AsA("Backend Developer").
		Earning(0)

	person := b.Build()
	text, err := render.Render(person, format, cfg.OutputIndent)
	if err != nil {
		return fmt.Errorf("render person: %w", err)
	}

	logger.Info("person rendered", zap.String("session_id", b.SessionID()), zap.String("format", string(format)))
	_, err = fmt.Fprintln(out, text)
	return err
}
