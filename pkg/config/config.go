package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings read from a pagelens config file.
// Everything has a working default; a missing config file is not an error.
type Config struct {
	// UserAgent is sent with page requests.
	UserAgent string `mapstructure:"user_agent"`

	// Timeout bounds a single page load.
	Timeout time.Duration `mapstructure:"timeout"`

	// JSFrameworks / CSSFrameworks select the default detection families.
	JSFrameworks  bool `mapstructure:"js_frameworks"`
	CSSFrameworks bool `mapstructure:"css_frameworks"`

	// Debug traces fired signals to stderr.
	Debug bool `mapstructure:"debug"`

	// Concurrency is the batch-scan worker count.
	Concurrency int `mapstructure:"concurrency"`

	// CatalogOverrides replaces the detection threshold for the named
	// frameworks, e.g. "Vue.js": 6 to demand stronger evidence. Names are
	// matched case-insensitively; keys arrive lowercased from the file.
	CatalogOverrides map[string]int `mapstructure:"catalog_overrides"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UserAgent:     "",
		Timeout:       15 * time.Second,
		JSFrameworks:  true,
		CSSFrameworks: true,
		Concurrency:   4,
	}
}

// Load reads configuration from path, or, when path is empty, from the first
// of .pagelens.yaml / pagelens.yaml in the working directory or
// $HOME/.pagelens/config.yaml. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	// Framework names like "Vue.js" contain dots; with viper's default key
	// delimiter they would decode as nested maps.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("user_agent", cfg.UserAgent)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("js_frameworks", cfg.JSFrameworks)
	v.SetDefault("css_frameworks", cfg.CSSFrameworks)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("concurrency", cfg.Concurrency)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".pagelens")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pagelens")
	}

	if err := v.ReadInConfig(); err != nil {
		if path == "" {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return cfg, nil
			}
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = Default().Concurrency
	}
	return cfg, nil
}
