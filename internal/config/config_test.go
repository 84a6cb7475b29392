package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/citesmart/backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, 0.3, cfg.Match.Threshold)
	assert.Equal(t, 1, cfg.Match.WindowRadius)
	assert.Equal(t, "english", cfg.Match.Language)
	assert.False(t, cfg.Match.Stemming)
	assert.Equal(t, "regex", cfg.Match.Locator)
	assert.False(t, cfg.Metadata.CrossRefEnabled)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MATCH_THRESHOLD", "0.5")
	t.Setenv("MATCH_STEMMING", "true")
	t.Setenv("METADATA_CROSSREF_TIMEOUT", "10s")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Match.Threshold)
	assert.True(t, cfg.Match.Stemming)
	assert.Equal(t, 10*time.Second, cfg.Metadata.CrossRefTimeout)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "not-a-number")
	t.Setenv("MATCH_WINDOW_RADIUS", "wide")

	cfg := config.Load()

	assert.Equal(t, 0.3, cfg.Match.Threshold)
	assert.Equal(t, 1, cfg.Match.WindowRadius)
}
