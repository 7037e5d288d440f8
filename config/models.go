package config

import "time"

// ProviderConfig describes the upstream Messages API the relay forwards to.
type ProviderConfig struct {
	URL        string        `mapstructure:"url"`
	APIKey     string        `mapstructure:"api_key"`
	APIVersion string        `mapstructure:"api_version"`
	Model      string        `mapstructure:"model"`
	MaxTokens  int           `mapstructure:"max_tokens"`
	Timeout    time.Duration `mapstructure:"timeout"` // 0 means no timeout
}

// Config holds the application configuration.
type Config struct {
	ListenAddress string         `mapstructure:"listen_address"`
	MaxBodyBytes  int64          `mapstructure:"max_body_bytes"`
	Provider      ProviderConfig `mapstructure:"provider"`
}
