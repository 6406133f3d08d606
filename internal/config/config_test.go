package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Std())
	assert.Equal(t, 1.15, cfg.Tuning.AcceptanceRatio)
	assert.Equal(t, 0.05, cfg.Tuning.LongStayDiscount)
	assert.Equal(t, 10, cfg.Tuning.PaddingFloor)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
cache:
  enabled: false
upstream:
  base_url: https://api.example.com
  timeout: 3s
tuning:
  acceptance_ratio: 1.25
  padding_floor: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "https://api.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout.Std())
	assert.Equal(t, 1.25, cfg.Tuning.AcceptanceRatio)
	assert.Equal(t, 5, cfg.Tuning.PaddingFloor)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("UPSTREAM_URL", "https://env.example.com")
	t.Setenv("PADDING_FLOOR", "15")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "https://env.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 15, cfg.Tuning.PaddingFloor)
}

func TestMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
