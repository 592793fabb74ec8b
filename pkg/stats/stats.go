// Package stats computes per-source line statistics by draining a source.
package stats

import (
	"context"
	"io"
	"time"

	"github.com/ccollicutt/linestream/pkg/source"
)

// LineSource is the subset of source.FileSource that Collect consumes.
type LineSource interface {
	Name() string
	Next(ctx context.Context) (*source.Line, error)
}

// FileStats summarizes the lines read from one source.
type FileStats struct {
	// Source is the path the lines were read from.
	Source string

	// Lines is the number of lines read, including empty ones.
	Lines int

	// EmptyLines counts lines with no content.
	EmptyLines int

	// Bytes is the total content size, terminators excluded.
	Bytes int64

	// LongestLine is the length in bytes of the longest line.
	LongestLine int

	// LongestLineNum is the 1-based number of the longest line.
	LongestLineNum int

	// Duration is how long reading took.
	Duration time.Duration

	// Error holds the read failure that stopped collection, if any.
	Error string `json:",omitempty"`
}

// Collect reads src to the end and returns its statistics.
// A read failure is recorded in the result and also returned; the
// statistics gathered up to that point stay valid.
func Collect(ctx context.Context, src LineSource) (*FileStats, error) {
	fs := &FileStats{Source: src.Name()}
	start := time.Now()
	defer func() { fs.Duration = time.Since(start) }()

	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			return fs, nil
		}
		if err != nil {
			fs.Error = err.Error()
			return fs, err
		}
		fs.add(line)
	}
}

func (fs *FileStats) add(line *source.Line) {
	n := len(line.Content)
	fs.Lines++
	fs.Bytes += int64(n)
	if n == 0 {
		fs.EmptyLines++
	}
	if n > fs.LongestLine {
		fs.LongestLine = n
		fs.LongestLineNum = line.LineNum
	}
}
