package health

import (
	"testing"

	"github.com/Ayash-Bera/fortaleza/internal/config"
	"github.com/stretchr/testify/assert"
)

func testConfig(apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	cfg.Gemini.APIKey = apiKey
	cfg.Gemini.Model = config.DefaultModel
	cfg.Gemini.APIVersion = config.DefaultAPIVersion
	return cfg
}

func TestChecker_WithAPIKey(t *testing.T) {
	checker := NewChecker(testConfig("key"))

	report := checker.Check()
	assert.Equal(t, "OK", report.Status)
	assert.Equal(t, ModeGemini, report.Mode)
	assert.Equal(t, "gemini-2.0-flash", report.Model)
	assert.Equal(t, "development", report.Environment)

	info := checker.Info()
	assert.Equal(t, "Google Gemini", info.Provider)
	assert.Equal(t, "active", info.Status)
	assert.Equal(t, "v1beta", info.APIVersion)
}

func TestChecker_Simulator(t *testing.T) {
	checker := NewChecker(testConfig(""))

	assert.Equal(t, ModeSimulator, checker.Check().Mode)
	assert.Equal(t, "simulated", checker.Info().Status)
}

func TestChecker_Idempotent(t *testing.T) {
	checker := NewChecker(testConfig("key"))

	assert.Equal(t, checker.Check(), checker.Check())
	assert.Equal(t, checker.Info(), checker.Info())
}
