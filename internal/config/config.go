// Package config loads and validates dnshdr configuration.
//
// Configuration is an optional YAML file. Every setting has a default, so the
// CLI runs without one; the HTTP service reads its listen address, API key and
// logging setup from here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jroosing/dnsheader/internal/logging"
)

// EnvConfigPath names the environment variable consulted when no --config flag is given.
const EnvConfigPath = "DNSHDR_CONFIG"

const (
	DefaultAPIHost      = "127.0.0.1"
	DefaultAPIPort      = 8053
	DefaultMaxBodyBytes = 4096
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// Validate on an empty config only fills in defaults.
	_ = cfg.Validate()
	return cfg
}

// ResolveConfigPath picks the config file path: the flag value wins, then
// DNSHDR_CONFIG. An empty result means "use defaults".
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads the YAML file at path, applies defaults and validates the result.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	if !logging.ValidLevel(cfg.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of DEBUG, INFO, WARN, ERROR", cfg.Logging.Level)
	}
	cfg.Logging.Level = strings.ToUpper(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	cfg.Logging.StructuredFormat = strings.ToLower(cfg.Logging.StructuredFormat)
	if cfg.Logging.StructuredFormat != "json" && cfg.Logging.StructuredFormat != "text" {
		return errors.New("logging.structured_format must be json or text")
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize API
	if cfg.API.Host == "" {
		cfg.API.Host = DefaultAPIHost
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = DefaultAPIPort
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}
	if cfg.API.MaxBodyBytes == 0 {
		cfg.API.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.API.MaxBodyBytes < 0 {
		return errors.New("api.max_body_bytes must be positive")
	}

	return nil
}

// LoggingOptions converts the logging section for logging.Configure.
func (cfg *Config) LoggingOptions() logging.Config {
	return logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	}
}
