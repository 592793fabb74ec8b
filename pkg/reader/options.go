package reader

import "time"

// Default values for reader construction.
const (
	DefaultBufferSize      = 8192
	DefaultQueueCapacity   = 128
	DefaultShutdownTimeout = 5 * time.Second

	// minBufferSize matches the smallest buffer bufio will allocate.
	minBufferSize = 16
)

type options struct {
	bufferSize      int
	queueCapacity   int
	shutdownTimeout time.Duration
	onCloseError    CloseErrorHandler
}

func defaultOptions() options {
	return options{
		bufferSize:      DefaultBufferSize,
		queueCapacity:   DefaultQueueCapacity,
		shutdownTimeout: DefaultShutdownTimeout,
		onCloseError:    logCloseError,
	}
}

// Option configures a line reader.
type Option func(*options)

// WithBufferSize sets the initial read buffer size in bytes.
// Lines longer than the buffer are still returned whole.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = max(n, minBufferSize)
		}
	}
}

// WithQueueCapacity sets how many lines an AsyncReader may prefetch.
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueCapacity = n
		}
	}
}

// WithShutdownTimeout bounds how long Close waits for the background
// producer of an AsyncReader to exit.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithCloseErrorHandler replaces the default handler, which logs.
// A nil handler discards close errors silently.
func WithCloseErrorHandler(h CloseErrorHandler) Option {
	return func(o *options) {
		o.onCloseError = h
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
