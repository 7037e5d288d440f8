package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "RELAY"

// LoadConfig builds the configuration from defaults, the optional config file
// and the environment, in increasing order of precedence.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_address", "0.0.0.0:3000")
	v.SetDefault("max_body_bytes", 100*1024)
	v.SetDefault("provider.url", "https://api.anthropic.com/v1/messages")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.api_version", "2023-06-01")
	v.SetDefault("provider.model", "claude-3-sonnet-20240229")
	v.SetDefault("provider.max_tokens", 1024)
	v.SetDefault("provider.timeout", "0s")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("provider.api_key", envPrefix+"_PROVIDER_API_KEY", "ANTHROPIC_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.ListenAddress == "" {
		return errors.New("listen_address is required")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}
	if c.Provider.URL == "" {
		return errors.New("provider.url is required")
	}
	if c.Provider.APIKey == "" {
		return errors.New("provider.api_key is required (set RELAY_PROVIDER_API_KEY or ANTHROPIC_API_KEY)")
	}
	if c.Provider.APIVersion == "" {
		return errors.New("provider.api_version is required")
	}
	if c.Provider.Model == "" {
		return errors.New("provider.model is required")
	}
	if c.Provider.MaxTokens <= 0 {
		return errors.New("provider.max_tokens must be positive")
	}
	if c.Provider.Timeout < 0 {
		return errors.New("provider.timeout must not be negative")
	}
	return nil
}
