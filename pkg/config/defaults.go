package config

import (
	"os"
	"strings"

	"github.com/ccollicutt/linestream/pkg/reader"
)

// Environment variable names.
const (
	EnvReaderMode = "LINESTREAM_READER_MODE"
	EnvSources    = "LINESTREAM_SOURCES"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources: []string{},
		Reader: ReaderConfig{
			BufferSize:      reader.DefaultBufferSize,
			QueueCapacity:   reader.DefaultQueueCapacity,
			ShutdownTimeout: reader.DefaultShutdownTimeout,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if mode := os.Getenv(EnvReaderMode); mode != "" {
		c.Reader.Mode = mode
	}

	if sources := os.Getenv(EnvSources); sources != "" {
		c.Sources = c.Sources[:0]
		for _, s := range strings.Split(sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Sources = append(c.Sources, s)
			}
		}
	}
}
