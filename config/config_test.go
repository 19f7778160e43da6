package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/mefrp-go/mefrp"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, mefrp.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, mefrp.DefaultTimeout, cfg.API.Timeout)
	assert.Empty(t, cfg.API.UserAgent)
	assert.Empty(t, cfg.API.Token)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.NotEmpty(t, cfg.Credentials.Path)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
api:
  base_url: https://example.test/api/
  token: file-token
  timeout: 30s
  bypass_system_proxy: true
credentials:
  path: /tmp/creds.json
logging:
  level: debug
  format: json
output:
  format: yaml
filter:
  presets:
    offline: "not online"
    tcp: 'proxyType == "tcp"'
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/api/", cfg.API.BaseURL)
	assert.Equal(t, "file-token", cfg.API.Token)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.API.BypassSystemProxy)
	assert.Equal(t, "/tmp/creds.json", cfg.Credentials.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, map[string]string{
		"offline": "not online",
		"tcp":     `proxyType == "tcp"`,
	}, cfg.Filter.Presets)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[api]
token = "toml-token"
timeout = "5s"

[output]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toml-token", cfg.API.Token)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "config.yaml", "api:\n  token: file-token\n")
	t.Setenv("MEFRP_API_TOKEN", "env-token")
	t.Setenv("MEFRP_LOGGING_LEVEL", "warn")
	t.Setenv("MEFRP_API_TIMEOUT", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API: APIConfig{
				BaseURL: mefrp.DefaultBaseURL,
				Timeout: time.Second,
			},
			Logging: LoggingConfig{Level: "info", Format: "console"},
			Output:  OutputConfig{Format: "table"},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "relative url", mutate: func(c *Config) { c.API.BaseURL = "/api" }, errContains: "api.base_url"},
		{name: "ftp url", mutate: func(c *Config) { c.API.BaseURL = "ftp://example.test" }, errContains: "api.base_url"},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, errContains: "api.timeout"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, errContains: "logging level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, errContains: "logging format"},
		{name: "bad output", mutate: func(c *Config) { c.Output.Format = "csv" }, errContains: "output format"},
		{
			name:        "empty preset",
			mutate:      func(c *Config) { c.Filter.Presets = map[string]string{"blank": " "} },
			errContains: "blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
