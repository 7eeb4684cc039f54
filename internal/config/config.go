package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig represents diagnostic logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`  // Rotated log file; empty logs to stderr
	Level string `mapstructure:"level"` // debug, info, warn or error
}

// OutputConfig represents output configuration
type OutputConfig struct {
	TeeFile string `mapstructure:"tee_file"` // Mirror headings to this file; empty disables
}

const defaultLogLevel = "warn"

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

// Load loads configuration from file.
// An empty path returns Default without touching the filesystem or environment.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("output.tee_file", "")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got '%s'", c.Logging.Level)
	}
	return nil
}
