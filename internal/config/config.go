// Package config reads ftracker settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for ftracker.
type Config struct {
	DBPath          string
	HTTPAddress     string
	ShutdownTimeout time.Duration
	DefaultWeightKg float64 // Used for GPX imports when no weight is given.
}

// Load reads environment variables into Config, falling back to local defaults.
func Load() Config {
	return Config{
		DBPath:          getEnv("FTRACKER_DB", "./ftracker.db"),
		HTTPAddress:     getEnv("FTRACKER_HTTP_ADDRESS", ":8222"),
		ShutdownTimeout: getDurationEnv("FTRACKER_SHUTDOWN_TIMEOUT", 5*time.Second),
		DefaultWeightKg: getFloatEnv("FTRACKER_DEFAULT_WEIGHT_KG", 75),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
