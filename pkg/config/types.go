// Package config provides configuration loading and validation for linestream.
package config

import (
	"time"

	"github.com/ccollicutt/linestream/pkg/reader"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists file paths or glob patterns to read when none are
	// given on the command line.
	Sources []string `yaml:"sources,omitempty"`

	Reader ReaderConfig `yaml:"reader"`
}

// ReaderConfig controls how line readers are constructed.
type ReaderConfig struct {
	// Mode is "sync" or "async". Empty defers to the process-wide
	// preference (see reader.UseAsyncIO).
	Mode string `yaml:"mode,omitempty"`

	// BufferSize is the initial read buffer size in bytes.
	BufferSize int `yaml:"buffer_size,omitempty"`

	// QueueCapacity is the number of lines an async reader may prefetch.
	QueueCapacity int `yaml:"queue_capacity,omitempty"`

	// ShutdownTimeout bounds how long closing an async reader waits.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`

	// parsedMode is populated during validation when Mode is set.
	parsedMode *reader.Mode
}

// ResolvedMode returns the configured mode, or the process default when
// Mode is empty. The default is looked up on every call.
func (r *ReaderConfig) ResolvedMode() reader.Mode {
	if r.parsedMode != nil {
		return *r.parsedMode
	}
	return reader.DefaultMode()
}

// Options returns reader options for the configured sizes and timeouts.
func (r *ReaderConfig) Options() []reader.Option {
	return []reader.Option{
		reader.WithBufferSize(r.BufferSize),
		reader.WithQueueCapacity(r.QueueCapacity),
		reader.WithShutdownTimeout(r.ShutdownTimeout),
	}
}
