package main

import (
	"log"
	"runtime"

	"deskclock/internal/app"
	"deskclock/internal/config"
	"deskclock/internal/logger"
)

func main() {
	cfg := config.Load()

	appLogger := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		UseJSON: cfg.JSONLogs,
	})

	appLogger.Info("Main", "configuration loaded", map[string]interface{}{
		"log_level":  cfg.LogLevel.String(),
		"json_logs":  cfg.JSONLogs,
		"mute":       cfg.Mute,
		"go_version": runtime.Version(),
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
}
