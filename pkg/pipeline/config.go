package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/renderguard/pkg/errors"
)

// Config is the file representation of dispatcher settings. Hosts that
// toggle the guard per deployment (enabled in preview, disabled in
// delivery) keep a small TOML file per environment:
//
//	[guard]
//	enabled = true
//	max_depth = 64
//	verbose = false
type Config struct {
	Guard GuardConfig `toml:"guard"`
}

// GuardConfig holds the guard section of the config file.
type GuardConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxDepth int  `toml:"max_depth"`
	Verbose  bool `toml:"verbose"`
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig parses TOML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if cfg.Guard.MaxDepth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "max_depth cannot be negative")
	}
	return &cfg, nil
}

// Options converts the file config into dispatcher options.
func (c *Config) Options() Options {
	return Options{
		Enabled:  c.Guard.Enabled,
		MaxDepth: c.Guard.MaxDepth,
	}
}
