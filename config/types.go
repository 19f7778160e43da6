package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Output      OutputConfig      `mapstructure:"output"`
	Filter      FilterConfig      `mapstructure:"filter"`
}

// APIConfig holds MEFrp API connection details
type APIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Token             string        `mapstructure:"token"`
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	BypassSystemProxy bool          `mapstructure:"bypass_system_proxy"`
}

// CredentialsConfig points at the saved login token
type CredentialsConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig contains named proxy filter presets
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}
