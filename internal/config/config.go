// internal/config/config.go

// Package config reads the optional ebony.yaml settings file. Flags
// override config values; config values override built-in defaults.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds defaults the CLI falls back to when flags are unset.
type Config struct {
	Model   string  `yaml:"model"`
	DB      string  `yaml:"db"`
	MinFreq float64 `yaml:"min_freq"`
	Threads int     `yaml:"threads"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Model:   "ebony_model.json",
		DB:      "genome.db",
		MinFreq: 0,
		Threads: 0,
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if c.MinFreq < 0 || c.MinFreq > 1 {
		return nil, errors.Errorf("config %s: min_freq %v outside [0,1]", path, c.MinFreq)
	}
	return c, nil
}
