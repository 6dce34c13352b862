// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level CLI configuration.
type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Cache CacheConfig `mapstructure:"cache"`
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
}

// CacheConfig configures the assessment result store.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		App:   AppConfig{Name: "scro", LogLevel: "info"},
		Cache: CacheConfig{TTL: time.Hour},
	}
}

// Load reads a YAML configuration file, filling unset keys from the
// defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("app.name", defaults.App.Name)
	v.SetDefault("app.log_level", defaults.App.LogLevel)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for settings the CLI cannot run without.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug, info, warn, error")
	}
	return nil
}
