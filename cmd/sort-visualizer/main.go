package main

import (
	"os"

	"sort-visualizer/internal/app"
	"sort-visualizer/internal/config"
	"sort-visualizer/internal/logger"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zlog.Fatal().Err(err).Msg("configuration invalid")
	}

	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)

	if cfg.Headless {
		if err := app.RunHeadless(cfg, appLogger); err != nil {
			appLogger.Error("Main", err, nil)
			os.Exit(1)
		}
		return
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, map[string]interface{}{"stage": "init"})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}
}
