package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 52428800, cfg.UploadMaxSize)
	assert.Equal(t, "./storage/uploads", cfg.UploadPath)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPLOAD_MAX_SIZE", "1024")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 1024, cfg.UploadMaxSize)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
