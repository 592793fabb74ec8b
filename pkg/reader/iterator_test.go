package reader

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// scriptedReader returns lines, then err (io.EOF if nil) forever.
type scriptedReader struct {
	lines  []string
	err    error
	closed int
}

func (s *scriptedReader) ReadLine() (string, error) {
	if len(s.lines) > 0 {
		line := s.lines[0]
		s.lines = s.lines[1:]
		return line, nil
	}
	if s.err != nil {
		return "", s.err
	}
	return "", io.EOF
}

func (s *scriptedReader) Close() { s.closed++ }

func TestIterator_Scenario(t *testing.T) {
	modes(t, func(t *testing.T, mode Mode) {
		it, err := NewIterator(newReader(t, strings.NewReader("a\nbb\r\ncc"), mode))
		if err != nil {
			t.Fatalf("NewIterator() error = %v", err)
		}
		defer it.Close()

		for _, want := range []string{"a", "bb", "cc"} {
			if !it.HasNext() {
				t.Fatalf("HasNext() = false before %q", want)
			}
			got, err := it.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if got != want {
				t.Errorf("Next() = %q, want %q", got, want)
			}
		}

		if it.HasNext() {
			t.Error("HasNext() = true after the last line")
		}
		if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
			t.Errorf("Next() error = %v, want ErrExhausted", err)
		}
	})
}

func TestIterator_EmptyInput(t *testing.T) {
	it, err := NewIterator(NewSyncReader(strings.NewReader("")))
	if err != nil {
		t.Fatalf("NewIterator() error = %v", err)
	}
	defer it.Close()

	if it.HasNext() {
		t.Error("HasNext() = true on empty input")
	}
	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() error = %v, want ErrExhausted", err)
	}
}

func TestIterator_BlankLinesAreValues(t *testing.T) {
	it, err := NewIterator(NewSyncReader(strings.NewReader("\n\n")))
	if err != nil {
		t.Fatalf("NewIterator() error = %v", err)
	}
	defer it.Close()

	count := 0
	for it.HasNext() {
		line, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if line != "" {
			t.Errorf("Next() = %q, want empty line", line)
		}
		count++
	}
	if count != 2 {
		t.Errorf("Got %d lines, want 2", count)
	}
}

func TestIterator_ConstructionFailure(t *testing.T) {
	boom := errors.New("disk gone")
	r := &scriptedReader{err: boom}

	it, err := NewIterator(r)
	if it != nil {
		t.Error("NewIterator() returned an iterator on failure")
	}
	if !errors.Is(err, ErrConstruction) {
		t.Errorf("error = %v, want ErrConstruction", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want it to wrap %v", err, boom)
	}
	if r.closed != 0 {
		t.Errorf("reader closed %d times, want 0", r.closed)
	}
}

func TestIterator_ReadFailureAfterFirstLine(t *testing.T) {
	boom := errors.New("timeout")
	it, err := NewIterator(&scriptedReader{lines: []string{"one", "two"}, err: boom})
	if err != nil {
		t.Fatalf("NewIterator() error = %v", err)
	}

	if got, err := it.Next(); err != nil || got != "one" {
		t.Fatalf("Next() = %q, %v; want %q, nil", got, err, "one")
	}

	if _, err := it.Next(); !errors.Is(err, boom) {
		t.Errorf("Next() error = %v, want %v", err, boom)
	}
	if it.HasNext() {
		t.Error("HasNext() = true after a read failure")
	}
	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() error = %v, want ErrExhausted", err)
	}
}

func TestIterator_Remove(t *testing.T) {
	it, err := NewIterator(&scriptedReader{lines: []string{"x"}})
	if err != nil {
		t.Fatalf("NewIterator() error = %v", err)
	}
	if err := it.Remove(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Remove() error = %v, want ErrUnsupported", err)
	}
	if !it.HasNext() {
		t.Error("Remove() changed the lookahead")
	}
}

func TestIterator_CloseKeepsLookahead(t *testing.T) {
	r := &scriptedReader{lines: []string{"kept", "unread"}}
	it, err := NewIterator(r)
	if err != nil {
		t.Fatalf("NewIterator() error = %v", err)
	}

	it.Close()
	it.Close()

	if r.closed != 2 {
		t.Errorf("reader Close called %d times, want 2", r.closed)
	}
	if !it.HasNext() {
		t.Error("HasNext() = false after Close, want cached lookahead")
	}
}

func TestIterator_CloseAfterExhaustion(t *testing.T) {
	modes(t, func(t *testing.T, mode Mode) {
		it, err := NewIterator(newReader(t, strings.NewReader("x"), mode))
		if err != nil {
			t.Fatalf("NewIterator() error = %v", err)
		}
		if _, err := it.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		it.Close()
		it.Close()
	})
}

func TestIterator_All(t *testing.T) {
	modes(t, func(t *testing.T, mode Mode) {
		it, err := NewIterator(newReader(t, strings.NewReader("a\nb\nc\n"), mode))
		if err != nil {
			t.Fatalf("NewIterator() error = %v", err)
		}
		defer it.Close()

		var got []string
		for line, err := range it.All() {
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			got = append(got, line)
			if line == "b" {
				break
			}
		}
		if !equalLines(got, []string{"a", "b"}) {
			t.Errorf("All() = %q, want [a b]", got)
		}

		// Breaking out leaves the rest of the sequence available.
		line, err := it.Next()
		if err != nil || line != "c" {
			t.Errorf("Next() = %q, %v; want %q, nil", line, err, "c")
		}
	})
}

func TestIterator_AllStopsOnError(t *testing.T) {
	boom := errors.New("broken pipe")
	it, err := NewIterator(&scriptedReader{lines: []string{"a", "b"}, err: boom})
	if err != nil {
		t.Fatalf("NewIterator() error = %v", err)
	}

	var lines []string
	var errs []error
	for line, err := range it.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}

	if !equalLines(lines, []string{"a"}) {
		t.Errorf("lines = %q, want [a]", lines)
	}
	if len(errs) != 1 || !errors.Is(errs[0], boom) {
		t.Errorf("errors = %v, want [%v]", errs, boom)
	}
}
