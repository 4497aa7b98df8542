package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FTRACKER_DB", "")
	t.Setenv("FTRACKER_HTTP_ADDRESS", "")
	t.Setenv("FTRACKER_SHUTDOWN_TIMEOUT", "")
	t.Setenv("FTRACKER_DEFAULT_WEIGHT_KG", "")

	cfg := Load()
	assert.Equal(t, "./ftracker.db", cfg.DBPath)
	assert.Equal(t, ":8222", cfg.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 75.0, cfg.DefaultWeightKg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FTRACKER_DB", "/tmp/workouts.db")
	t.Setenv("FTRACKER_HTTP_ADDRESS", "127.0.0.1:9000")
	t.Setenv("FTRACKER_SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("FTRACKER_DEFAULT_WEIGHT_KG", "82.5")

	cfg := Load()
	assert.Equal(t, "/tmp/workouts.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddress)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, 82.5, cfg.DefaultWeightKg)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("FTRACKER_SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("FTRACKER_DEFAULT_WEIGHT_KG", "-3")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 75.0, cfg.DefaultWeightKg)
}
