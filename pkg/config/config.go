package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/linestream/pkg/reader"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// overrides applied, for runs without a config file.
func FromEnvironment(_ context.Context) (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating environment: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills in defaults.
func Validate(cfg *Config) error {
	for i, s := range cfg.Sources {
		if s == "" {
			return fmt.Errorf("sources[%d]: empty path", i)
		}
	}

	if err := validateReader(&cfg.Reader); err != nil {
		return fmt.Errorf("reader: %w", err)
	}

	return nil
}

func validateReader(rc *ReaderConfig) error {
	rc.parsedMode = nil
	if rc.Mode != "" {
		mode, err := reader.ParseMode(rc.Mode)
		if err != nil {
			return fmt.Errorf("mode: %w", err)
		}
		rc.parsedMode = &mode
	}

	if rc.BufferSize < 0 {
		return errors.New("buffer_size must be >= 0")
	}
	if rc.BufferSize == 0 {
		rc.BufferSize = reader.DefaultBufferSize
	}

	if rc.QueueCapacity < 0 {
		return errors.New("queue_capacity must be >= 0")
	}
	if rc.QueueCapacity == 0 {
		rc.QueueCapacity = reader.DefaultQueueCapacity
	}

	if rc.ShutdownTimeout < 0 {
		return errors.New("shutdown_timeout must be >= 0")
	}
	if rc.ShutdownTimeout == 0 {
		rc.ShutdownTimeout = reader.DefaultShutdownTimeout
	}

	return nil
}
