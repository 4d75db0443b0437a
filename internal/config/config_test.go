package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		envValue string
		want     string
	}{
		{"flag takes precedence", "/path/from/flag", "/path/from/env", "/path/from/flag"},
		{"env when no flag", "", "/path/from/env", "/path/from/env"},
		{"empty when neither", "", "", ""},
		{"whitespace flag", "  ", "/path/from/env", "/path/from/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigPath, tt.envValue)
			assert.Equal(t, tt.want, ResolveConfigPath(tt.flag))
		})
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.StructuredFormat)
	assert.NotNil(t, cfg.Logging.ExtraFields)
	assert.Equal(t, DefaultAPIHost, cfg.API.Host)
	assert.Equal(t, DefaultAPIPort, cfg.API.Port)
	assert.EqualValues(t, DefaultMaxBodyBytes, cfg.API.MaxBodyBytes)
	assert.Empty(t, cfg.API.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	content := `
logging:
  level: "debug"
  structured: true
  structured_format: "TEXT"
  include_pid: true
  extra_fields:
    app: dnshdr

api:
  host: "0.0.0.0"
  port: 9053
  api_key: "s3cret"
  max_body_bytes: 1024
`
	path := filepath.Join(t.TempDir(), "dnshdr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Structured)
	assert.Equal(t, "text", cfg.Logging.StructuredFormat)
	assert.True(t, cfg.Logging.IncludePID)
	assert.Equal(t, map[string]string{"app": "dnshdr"}, cfg.Logging.ExtraFields)
	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, 9053, cfg.API.Port)
	assert.Equal(t, "s3cret", cfg.API.APIKey)
	assert.EqualValues(t, 1024, cfg.API.MaxBodyBytes)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("api: [unterminated"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("api:\n  port: 70000\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "api.port")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown level", func(c *Config) { c.Logging.Level = "TRACE" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.StructuredFormat = "xml" }, "structured_format"},
		{"negative port", func(c *Config) { c.API.Port = -1 }, "api.port"},
		{"port too large", func(c *Config) { c.API.Port = 65536 }, "api.port"},
		{"negative body", func(c *Config) { c.API.MaxBodyBytes = -5 }, "max_body_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoggingOptions(t *testing.T) {
	cfg := Default()
	cfg.Logging.IncludePID = true

	opts := cfg.LoggingOptions()
	assert.Equal(t, "INFO", opts.Level)
	assert.Equal(t, "json", opts.StructuredFormat)
	assert.True(t, opts.IncludePID)
	assert.Nil(t, opts.Output)
}
