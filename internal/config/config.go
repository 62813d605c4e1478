package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the flags say otherwise.
const (
	DefaultEndpoint = "http://localhost:4566"
	DefaultPort     = 8080
)

// Config holds optional defaults loaded from ~/.config/tfdash/config.yaml.
type Config struct {
	Endpoint string `yaml:"endpoint"`
	Port     int    `yaml:"port"`
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}

	path := filepath.Join(home, ".config", "tfdash", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config
// defaults, which take precedence over the built-in defaults.
func (c *Config) Merge(endpoint string, port int) (string, int) {
	e := c.Endpoint
	if endpoint != "" {
		e = endpoint
	}
	if e == "" {
		e = DefaultEndpoint
	}

	p := c.Port
	if port != 0 {
		p = port
	}
	if p == 0 {
		p = DefaultPort
	}
	return e, p
}
