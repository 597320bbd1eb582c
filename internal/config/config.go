// Package config loads the plugval configuration: defaults, then an rc file,
// then environment variables, then command-line flags bound through viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the plugval configuration.
type Config struct {
	Root        string `mapstructure:"root"`
	PluginsDir  string `mapstructure:"pluginsDir"`
	Marketplace string `mapstructure:"marketplace"`
	Strict      bool   `mapstructure:"strict"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Quiet       bool   `mapstructure:"quiet"`
	Verbose     bool   `mapstructure:"verbose"`
	Parallel    bool   `mapstructure:"parallel"`
	Concurrency int    `mapstructure:"concurrency"`
}

// Load builds the configuration from all sources. rootPath overrides the
// configured root when non-empty.
func Load(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("pluginsDir", "plugins")
	viper.SetDefault("marketplace", ".claude-plugin/marketplace.json")
	viper.SetDefault("strict", false)
	viper.SetDefault("format", "text")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("parallel", true)
	viper.SetDefault("concurrency", 4)

	viper.SetEnvPrefix("PLUGVAL")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		cfg.Root = rootPath
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations the rest of the program cannot honor.
func Validate(cfg *Config) error {
	if cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("invalid format: %s. Must be 'text' or 'json'", cfg.Format)
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	return nil
}
