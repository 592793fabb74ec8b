package reader

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// Mode selects a LineReader implementation.
type Mode int

const (
	Synchronous Mode = iota
	Asynchronous
)

// EnvUseAsyncIO sets the initial process-wide async preference.
const EnvUseAsyncIO = "LINESTREAM_USE_ASYNC_IO"

var useAsyncIO atomic.Bool

func init() {
	if v, ok := os.LookupEnv(EnvUseAsyncIO); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			useAsyncIO.Store(b)
		}
	}
}

// UseAsyncIO reports the process-wide preference consulted by NewDefault.
func UseAsyncIO() bool {
	return useAsyncIO.Load()
}

// SetUseAsyncIO changes the process-wide preference. Readers that already
// exist are not affected.
func SetUseAsyncIO(v bool) {
	useAsyncIO.Store(v)
}

// DefaultMode returns the mode NewDefault would pick right now.
func DefaultMode() Mode {
	if UseAsyncIO() {
		return Asynchronous
	}
	return Synchronous
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case Synchronous:
		return "sync"
	case Asynchronous:
		return "async"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "sync", "synchronous", "async" or "asynchronous".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sync", "synchronous":
		return Synchronous, nil
	case "async", "asynchronous":
		return Asynchronous, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be sync or async)", ErrUnrecognizedMode, s)
	}
}

// New creates a LineReader of the given mode that owns src.
func New(src io.Reader, mode Mode, opts ...Option) (LineReader, error) {
	switch mode {
	case Synchronous:
		return NewSyncReader(src, opts...), nil
	case Asynchronous:
		return NewAsyncReader(src, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedMode, mode)
	}
}

// NewDefault creates a LineReader whose mode follows UseAsyncIO.
func NewDefault(src io.Reader, opts ...Option) LineReader {
	if UseAsyncIO() {
		return NewAsyncReader(src, opts...)
	}
	return NewSyncReader(src, opts...)
}
