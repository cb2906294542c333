package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "NODE_ENV", "SERVER_REDIRECT_UNKNOWN",
		"GEMINI_API_KEY", "GEMINI_BASE_URL", "GEMINI_API_VERSION", "GEMINI_MODEL", "GEMINI_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Address())
	assert.True(t, cfg.Server.RedirectUnknown)
	assert.Equal(t, DefaultBaseURL, cfg.Gemini.BaseURL)
	assert.Equal(t, DefaultAPIVersion, cfg.Gemini.APIVersion)
	assert.Equal(t, DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, DefaultTimeout, cfg.Gemini.Timeout)
	assert.False(t, cfg.HasAPIKey())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_API_KEY", "  secret  ")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9999/")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("SERVER_REDIRECT_UNKNOWN", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.True(t, cfg.HasAPIKey())
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "http://localhost:9999", cfg.Gemini.BaseURL)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Server.RedirectUnknown)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestValidate_Timeout(t *testing.T) {
	var cfg Config
	cfg.Server.Port = 3000
	cfg.Gemini.BaseURL = DefaultBaseURL
	cfg.Gemini.Model = DefaultModel

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini.timeout")
}
