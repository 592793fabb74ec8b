package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
)

// SyncReader reads lines directly from its source on each call.
type SyncReader struct {
	src io.Reader
	buf *bufio.Reader

	// line accumulates chunks of lines longer than buf.
	line []byte
	err  error

	closeOnce    sync.Once
	onCloseError CloseErrorHandler
}

// NewSyncReader creates a SyncReader that owns src.
func NewSyncReader(src io.Reader, opts ...Option) *SyncReader {
	o := buildOptions(opts)
	return newSyncReader(src, o)
}

func newSyncReader(src io.Reader, o options) *SyncReader {
	return &SyncReader{
		src:          src,
		buf:          bufio.NewReaderSize(src, o.bufferSize),
		onCloseError: o.onCloseError,
	}
}

// ReadLine returns the next line with "\n" or "\r\n" stripped.
func (r *SyncReader) ReadLine() (string, error) {
	if r.err != nil {
		return "", r.err
	}

	line, err := r.readLine()
	if err != nil {
		r.err = err
		return "", err
	}
	return line, nil
}

func (r *SyncReader) readLine() (string, error) {
	r.line = r.line[:0]
	for {
		chunk, err := r.buf.ReadSlice('\n')
		switch {
		case err == nil:
			if len(r.line) == 0 {
				return string(trimTerminator(chunk)), nil
			}
			r.line = append(r.line, chunk...)
			return string(trimTerminator(r.line)), nil

		case errors.Is(err, bufio.ErrBufferFull):
			// ReadSlice's result is only valid until the next read.
			r.line = append(r.line, chunk...)

		case errors.Is(err, io.EOF):
			r.line = append(r.line, chunk...)
			if len(r.line) == 0 {
				return "", io.EOF
			}
			// Final line without a terminator.
			return string(r.line), nil

		default:
			return "", fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
	}
}

// Close closes the source if it implements io.Closer.
func (r *SyncReader) Close() {
	r.closeOnce.Do(func() {
		if r.err == nil {
			r.err = io.EOF
		}
		closeSource(r.src, r.onCloseError)
	})
}

// trimTerminator strips a trailing "\n" and a "\r" immediately before it.
func trimTerminator(b []byte) []byte {
	n := len(b)
	if n > 0 && b[n-1] == '\n' {
		n--
		if n > 0 && b[n-1] == '\r' {
			n--
		}
	}
	return b[:n]
}
