// Package config loads and saves the htmldiff CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the config file
	ConfigFileName = "config.yaml"

	// DefaultConfigDir is the default directory for htmldiff configuration,
	// relative to the user's home directory
	DefaultConfigDir = ".config/htmldiff"
)

// Config holds the CLI defaults. Command-line flags override individual
// fields per invocation.
type Config struct {
	// MaxDepth is the comparison recursion limit
	MaxDepth int `yaml:"max_depth,omitempty" validate:"gte=0"`

	// Minify runs inputs through the HTML minifier before comparing
	Minify bool `yaml:"minify,omitempty"`

	// HistoryPath is the SQLite file recording comparison runs; empty
	// disables recording
	HistoryPath string `yaml:"history_path,omitempty"`

	// ServeAddr is the listen address for the live serve mode
	ServeAddr string `yaml:"serve_addr,omitempty" validate:"omitempty,hostname_port"`

	// PollInterval is how often serve mode checks the watched files,
	// as a Go duration string
	PollInterval string `yaml:"poll_interval,omitempty"`

	// Version tracks the config file version for future migrations
	Version string `yaml:"version,omitempty"`
}

// Default returns a new Config with default values
func Default() *Config {
	return &Config{
		MaxDepth:     512,
		ServeAddr:    "localhost:8475",
		PollInterval: "500ms",
		Version:      "1.0",
	}
}

var validate = validator.New()

// Validate checks the config for out-of-range values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return translateValidationError(err)
	}
	if c.PollInterval != "" {
		if _, err := time.ParseDuration(c.PollInterval); err != nil {
			return fmt.Errorf("poll_interval is not a valid duration: %w", err)
		}
	}
	return nil
}

// Interval returns the parsed poll interval, falling back to the default
// when unset.
func (c *Config) Interval() time.Duration {
	if c.PollInterval == "" {
		return 500 * time.Millisecond
	}
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// translateValidationError converts go-playground/validator errors into a
// single readable error
func translateValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "hostname_port":
			msgs = append(msgs, fmt.Sprintf("%s must be a host:port address", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultConfigDir, ConfigFileName), nil
}

// Load loads the configuration from the default config path. A missing file
// yields the defaults, not an error.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile loads the configuration from an explicit path. A missing file
// yields the defaults, not an error.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveFile writes the configuration to an explicit path, creating the
// directory if needed.
func SaveFile(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Save writes the configuration to the default config path.
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(config, configPath)
}
