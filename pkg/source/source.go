package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ccollicutt/linestream/pkg/reader"
)

// FileSource yields numbered lines from a single stream.
// It is safe for sequential access only.
type FileSource struct {
	name    string
	it      *reader.Iterator
	lineNum int
}

// Open opens path (or Stdin) and reads it with a reader of the given mode.
func Open(path string, mode reader.Mode, opts ...reader.Option) (*FileSource, error) {
	if path == Stdin {
		// The process keeps ownership of os.Stdin.
		return New(Stdin, io.NopCloser(os.Stdin), mode, opts...)
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return New(path, f, mode, opts...)
}

// New creates a FileSource named name that takes ownership of r.
// The first line is read immediately; on failure r is closed.
func New(name string, r io.Reader, mode reader.Mode, opts ...reader.Option) (*FileSource, error) {
	lr, err := reader.New(r, mode, opts...)
	if err != nil {
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, err
	}

	it, err := reader.NewIterator(lr)
	if err != nil {
		lr.Close()
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return &FileSource{name: name, it: it}, nil
}

// Name returns the path the source was opened with.
func (s *FileSource) Name() string {
	return s.name
}

// Next returns the next line.
// Returns io.EOF when the source is exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.it.HasNext() {
		return nil, io.EOF
	}

	content, err := s.it.Next()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.name, err)
	}

	s.lineNum++
	return &Line{
		Content: content,
		Source:  s.name,
		LineNum: s.lineNum,
	}, nil
}

// Close releases the underlying reader and file.
func (s *FileSource) Close() error {
	s.it.Close()
	return nil
}
