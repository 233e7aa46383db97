package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/wippyai/mp-runtime/errors"
)

// Config is the runtime configuration loaded from a TOML file.
type Config struct {
	// Locales is the number of memory partitions to simulate.
	Locales int `toml:"locales"`
	// TrustCasts disables range checking on scalar conversions.
	TrustCasts bool `toml:"trust_casts"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Locales:  1,
		LogLevel: "info",
	}
}

// Load reads and validates a TOML configuration file.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("read "+path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Config("parse "+path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Locales < 1 {
		return errors.New(errors.PhaseConfig, errors.KindOutOfRange).
			Detail("locales must be at least 1, got %d", c.Locales).
			Value(c.Locales).
			Build()
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Detail("unknown log level %q", c.LogLevel).
			Value(c.LogLevel).
			Build()
	}
	return nil
}

// BuildLogger constructs a zap logger at the configured level.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Config("log level", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Config("build logger", err)
	}
	return logger, nil
}
