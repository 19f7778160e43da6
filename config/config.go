package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/mefrp-go/credentials"
	"github.com/s0up4200/mefrp-go/mefrp"
)

// EnvPrefix is prepended to every environment override, e.g. MEFRP_API_TOKEN
const EnvPrefix = "MEFRP"

// Output formats understood by the CLI
var OutputFormats = []string{"table", "json", "yaml", "toml"}

// Load loads the configuration from file and environment. A missing config
// file is not an error when searching the default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")

		// Check current directory first
		v.AddConfigPath(".")

		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "mefrp"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Credentials.Path == "" {
		cfg.Credentials.Path = credentials.DefaultPath()
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default
// for environment overrides to reach Unmarshal.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", mefrp.DefaultBaseURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.user_agent", "")
	v.SetDefault("api.timeout", mefrp.DefaultTimeout)
	v.SetDefault("api.bypass_system_proxy", false)

	v.SetDefault("credentials.path", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("output.format", "table")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL: %q", cfg.API.BaseURL)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive: %s", cfg.API.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if err := ValidateOutputFormat(cfg.Output.Format); err != nil {
		return err
	}

	for name, expr := range cfg.Filter.Presets {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	return nil
}

// ValidateOutputFormat reports whether format is one of OutputFormats
func ValidateOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be one of %s)", format, strings.Join(OutputFormats, ", "))
}
