// Package config reads the start-up settings from the environment.
package config

import (
	"os"
	"strings"

	"deskclock/internal/assets"
	"deskclock/internal/logger"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel = "DESKCLOCK_LOG_LEVEL"
	EnvJSONLogs = "DESKCLOCK_JSON_LOGS"
	EnvDebug    = "DESKCLOCK_DEBUG"
	EnvMute     = "DESKCLOCK_MUTE"
)

type Config struct {
	LogLevel   zerolog.Level
	JSONLogs   bool
	Mute       bool
	AlertSound string
	EventQueue int
}

func Default() Config {
	return Config{
		LogLevel:   zerolog.InfoLevel,
		AlertSound: assets.AlertSound,
		EventQueue: 64,
	}
}

// FromEnv overlays environment settings on Default. lookup is os.LookupEnv in
// production.
func FromEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup(EnvDebug); ok && v == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}

	if v, ok := lookup(EnvLogLevel); ok {
		if level, known := logger.ParseLevel(v); known {
			cfg.LogLevel = level
		}
	}

	cfg.JSONLogs = flag(lookup, EnvJSONLogs)
	cfg.Mute = flag(lookup, EnvMute)

	return cfg
}

func Load() Config {
	return FromEnv(os.LookupEnv)
}

func flag(lookup func(string) (string, bool), key string) bool {
	v, ok := lookup(key)
	if !ok {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
