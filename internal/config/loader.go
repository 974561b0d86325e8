package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing config file: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a configuration with only defaults applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset values.
func ApplyDefaults(cfg *Config) {
	if cfg.Templates == "" {
		cfg.Templates = "."
	}
	if cfg.Manifest == "" {
		cfg.Manifest = "ui.yaml"
	}
	if cfg.Extension == "" {
		cfg.Extension = "tpl"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Data == nil {
		cfg.Data = map[string]any{}
	}
}
