package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	UpstreamBaseURL string   `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamAPIKey  string   `mapstructure:"UPSTREAM_API_KEY"`
	UpstreamOrgID   string   `mapstructure:"UPSTREAM_ORG_ID"`
	UpstreamUserID  string   `mapstructure:"UPSTREAM_USER_ID"`
	UpstreamTimeout int      `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`
	UpstreamRetries int      `mapstructure:"UPSTREAM_RETRIES"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("UPSTREAM_ORG_ID", "614")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	v.SetDefault("UPSTREAM_RETRIES", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("UPSTREAM_BASE_URL")
	v.BindEnv("UPSTREAM_API_KEY")
	v.BindEnv("UPSTREAM_ORG_ID")
	v.BindEnv("UPSTREAM_USER_ID")
	v.BindEnv("UPSTREAM_TIMEOUT_SECONDS")
	v.BindEnv("UPSTREAM_RETRIES")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. The service is a
// pass-through to the remote medical API, so the upstream endpoint and its
// API key are mandatory.
func (c *Config) Validate() error {
	if c.UpstreamBaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.UpstreamAPIKey == "" {
		return fmt.Errorf("UPSTREAM_API_KEY is required")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive, got %d", c.UpstreamTimeout)
	}
	if c.UpstreamRetries < 0 {
		return fmt.Errorf("UPSTREAM_RETRIES must not be negative, got %d", c.UpstreamRetries)
	}
	return nil
}

// Timeout returns the upstream request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.UpstreamTimeout) * time.Second
}
