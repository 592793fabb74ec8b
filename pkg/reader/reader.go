// Package reader provides line readers over byte streams.
//
// Two strategies satisfy the same LineReader interface: SyncReader pulls
// lines from the source on demand, AsyncReader prefetches them on a
// background goroutine into a bounded queue. Iterator adapts either one into
// a lookahead-based sequence for downstream parsers.
package reader

import (
	"errors"
	"io"
	"log"
)

// LineReader reads newline-delimited text one line at a time.
// Implementations are not safe for concurrent use by multiple callers.
type LineReader interface {
	// ReadLine returns the next line without its terminator.
	// Returns io.EOF when the source is exhausted; every later call
	// returns io.EOF as well. Source failures wrap ErrSourceRead.
	ReadLine() (string, error)

	// Close releases the reader and its source. It is idempotent and
	// never fails; release errors go to the close-error handler.
	Close()
}

// Error kinds returned by readers and iterators. Match with errors.Is.
var (
	// ErrSourceRead wraps a failure reading the underlying stream.
	ErrSourceRead = errors.New("reading line source")

	// ErrConstruction is returned when an iterator cannot read its first line.
	ErrConstruction = errors.New("failed to read first line")

	// ErrExhausted is returned by Iterator.Next when no lines remain.
	ErrExhausted = errors.New("no more lines")

	// ErrUnsupported is returned for operations iterators do not support.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUnrecognizedMode is returned by New for an unknown Mode.
	ErrUnrecognizedMode = errors.New("unrecognized line reader mode")
)

// CloseErrorHandler receives errors that occur while releasing a reader.
type CloseErrorHandler func(err error)

func logCloseError(err error) {
	log.Printf("linestream: closing line source: %v", err)
}

// closeSource closes src if it is an io.Closer, reporting failures to onErr.
func closeSource(src io.Reader, onErr CloseErrorHandler) {
	c, ok := src.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil && onErr != nil {
		onErr(err)
	}
}
