package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the matcher
type Config struct {
	Matching MatchingConfig
}

// MatchingConfig holds the matcher's decision thresholds. The values are
// tuned heuristics; the defaults reproduce production behavior.
type MatchingConfig struct {
	Threshold           float64 `mapstructure:"threshold"`
	AutoAcceptThreshold float64 `mapstructure:"auto_accept_threshold"`
	NearTieGap          float64 `mapstructure:"near_tie_gap"`
	MaxAlternatives     int     `mapstructure:"max_alternatives"`
	EnableDebugLogging  bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stocchef/")

	// Environment variable settings
	v.SetEnvPrefix("STOCCHEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("matching.threshold", 0.75)
	v.SetDefault("matching.auto_accept_threshold", 0.9)
	v.SetDefault("matching.near_tie_gap", 0.1)
	v.SetDefault("matching.max_alternatives", 3)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	m := config.Matching

	if m.Threshold <= 0 || m.Threshold > 1 {
		return fmt.Errorf("matching threshold must be in (0, 1], got: %v", m.Threshold)
	}

	if m.AutoAcceptThreshold < m.Threshold || m.AutoAcceptThreshold > 1 {
		return fmt.Errorf("auto-accept threshold must be in [threshold, 1], got: %v", m.AutoAcceptThreshold)
	}

	if m.NearTieGap < 0 || m.NearTieGap > 1 {
		return fmt.Errorf("near-tie gap must be in [0, 1], got: %v", m.NearTieGap)
	}

	if m.MaxAlternatives < 1 {
		return fmt.Errorf("max alternatives must be at least 1, got: %d", m.MaxAlternatives)
	}

	return nil
}
