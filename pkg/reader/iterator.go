package reader

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Iterator adapts a LineReader into a single-pass sequence with one line
// of lookahead, so HasNext can answer without consuming.
type Iterator struct {
	reader LineReader

	// lookahead is valid only while hasValue is true.
	lookahead string
	hasValue  bool
}

// NewIterator wraps r and reads the first line immediately.
// A read failure is returned wrapped in ErrConstruction; r is left open
// and remains owned by the caller in that case.
func NewIterator(r LineReader) (*Iterator, error) {
	it := &Iterator{reader: r}
	if err := it.advance(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	return it, nil
}

// advance reads the next lookahead line. On io.EOF the iterator becomes
// exhausted without an error.
func (it *Iterator) advance() error {
	line, err := it.reader.ReadLine()
	if errors.Is(err, io.EOF) {
		it.lookahead, it.hasValue = "", false
		return nil
	}
	if err != nil {
		it.lookahead, it.hasValue = "", false
		return err
	}
	it.lookahead, it.hasValue = line, true
	return nil
}

// HasNext reports whether Next will return a line.
func (it *Iterator) HasNext() bool {
	return it.hasValue
}

// Next returns the current line and reads the one after it.
// Returns ErrExhausted when HasNext is false. If reading the following
// line fails, that error is returned and the iterator is exhausted.
func (it *Iterator) Next() (string, error) {
	if !it.hasValue {
		return "", ErrExhausted
	}

	line := it.lookahead
	if err := it.advance(); err != nil {
		return "", err
	}
	return line, nil
}

// Remove always fails; lines cannot be removed from the source.
func (it *Iterator) Remove() error {
	return fmt.Errorf("%w: remove", ErrUnsupported)
}

// All returns the remaining lines as a sequence. Iteration stops after
// the first error, which is yielded with an empty line.
func (it *Iterator) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for it.HasNext() {
			line, err := it.Next()
			if !yield(line, err) || err != nil {
				return
			}
		}
	}
}

// Close closes the underlying reader. A lookahead line that was already
// read stays cached.
func (it *Iterator) Close() {
	it.reader.Close()
}
