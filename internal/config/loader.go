package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, applies defaults, overlays secrets from
// the environment, and validates the result. An empty path yields a pure
// defaults-plus-environment config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyDefaults(cfg)
	cfg.Secrets = secretsFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = DefaultName
	}
	if cfg.Service.LogLevel == "" {
		cfg.Service.LogLevel = DefaultLogLevel
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.State.Path == "" {
		cfg.State.Path = DefaultStatePath
	}
	if cfg.Front.BaseURL == "" {
		cfg.Front.BaseURL = DefaultFrontBaseURL
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultLLMModel
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = DefaultLLMBaseURL
	}
}

func secretsFromEnv() Secrets {
	return Secrets{
		FrontAPIKey:    os.Getenv(EnvFrontAPIKey),
		FrontAppSecret: os.Getenv(EnvFrontAppSecret),
		GeminiAPIKey:   os.Getenv(EnvGeminiAPIKey),
	}
}

// Validate checks the loaded configuration. Missing secrets are fatal at
// startup rather than surfacing as auth failures mid-request.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address is empty")
	}
	if c.State.Path == "" {
		return fmt.Errorf("config: state.path is empty")
	}
	if c.Secrets.FrontAPIKey == "" {
		return fmt.Errorf("config: %s is not set", EnvFrontAPIKey)
	}
	if c.Secrets.FrontAppSecret == "" {
		return fmt.Errorf("config: %s is not set", EnvFrontAppSecret)
	}
	if c.Secrets.GeminiAPIKey == "" {
		return fmt.Errorf("config: %s is not set", EnvGeminiAPIKey)
	}
	return nil
}
