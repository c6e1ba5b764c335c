// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Remote  RemoteConfig  `mapstructure:"remote"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
}

// StorageConfig points at the on-device databases.
type StorageConfig struct {
	// Path is the local replica database. Created on first use.
	Path string `mapstructure:"path" validate:"required"`
	// VocabularyPath is the bundled read-only vocabulary database.
	VocabularyPath string `mapstructure:"vocabulary_path" validate:"omitempty,file"`
}

// RemoteConfig describes the remote authority service and the user's
// session. An empty UserID or AccessToken means no session: remote
// operations become no-ops and the app runs fully local.
type RemoteConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey         string `mapstructure:"api_key"`
	UserID         string `mapstructure:"user_id"`
	AccessToken    string `mapstructure:"access_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Timeout returns the per-request bound for remote calls.
func (c RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashleaf")
	}

	v.SetDefault("storage.path", filepath.Join("data", "flashleaf.db"))
	v.SetDefault("storage.vocabulary_path", filepath.Join("data", "vocabulary.db"))
	v.SetDefault("remote.timeout_seconds", 15)
	v.SetDefault("gemini.model", "gemini-2.0-flash-lite")

	// Secrets come from the environment only, never the config file.
	if err := v.BindEnv("remote.api_key", "FLASHLEAF_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHLEAF_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("remote.user_id", "FLASHLEAF_USER_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHLEAF_USER_ID environment variable: %w", err)
	}
	if err := v.BindEnv("remote.access_token", "FLASHLEAF_ACCESS_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHLEAF_ACCESS_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.model", "GEMINI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
