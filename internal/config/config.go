package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPort       = 3000
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultAPIVersion = "v1beta"
	DefaultModel      = "gemini-2.0-flash"
	DefaultTimeout    = 30 * time.Second

	EnvProduction = "production"
)

type Config struct {
	Server struct {
		Port            int
		Environment     string
		RedirectUnknown bool
	}
	Gemini struct {
		APIKey     string
		BaseURL    string
		APIVersion string
		Model      string
		Timeout    time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads config.yaml from the working directory if present and applies
// environment overrides on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.redirect_unknown", true)
	v.SetDefault("gemini.base_url", DefaultBaseURL)
	v.SetDefault("gemini.api_version", DefaultAPIVersion)
	v.SetDefault("gemini.model", DefaultModel)
	v.SetDefault("gemini.timeout", DefaultTimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	bindings := map[string][]string{
		"server.port":             {"PORT"},
		"server.environment":      {"APP_ENV", "NODE_ENV"},
		"server.redirect_unknown": {"SERVER_REDIRECT_UNKNOWN"},
		"gemini.api_key":          {"GEMINI_API_KEY"},
		"gemini.base_url":         {"GEMINI_BASE_URL"},
		"gemini.api_version":      {"GEMINI_API_VERSION"},
		"gemini.model":            {"GEMINI_MODEL"},
		"gemini.timeout":          {"GEMINI_TIMEOUT"},
		"log.level":               {"LOG_LEVEL"},
		"log.format":              {"LOG_FORMAT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	config.Server.Port = v.GetInt("server.port")
	config.Server.Environment = strings.ToLower(strings.TrimSpace(v.GetString("server.environment")))
	config.Server.RedirectUnknown = v.GetBool("server.redirect_unknown")
	config.Gemini.APIKey = strings.TrimSpace(v.GetString("gemini.api_key"))
	config.Gemini.BaseURL = strings.TrimRight(v.GetString("gemini.base_url"), "/")
	config.Gemini.APIVersion = v.GetString("gemini.api_version")
	config.Gemini.Model = v.GetString("gemini.model")
	config.Gemini.Timeout = v.GetDuration("gemini.timeout")
	config.Log.Level = strings.ToLower(v.GetString("log.level"))
	config.Log.Format = strings.ToLower(v.GetString("log.format"))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid TCP port, got %d", c.Server.Port)
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", c.Gemini.Timeout)
	}
	if c.Gemini.BaseURL == "" {
		return fmt.Errorf("gemini.base_url must not be empty")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model must not be empty")
	}
	return nil
}

// HasAPIKey reports whether real upstream calls are enabled. Without a key
// the relay answers from its simulated set.
func (c *Config) HasAPIKey() bool {
	return c.Gemini.APIKey != ""
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
