package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// lockedBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, buf *lockedBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %q, output:\n%s", want, buf.String())
}

func TestRunWatch_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.log", "one\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := NewWatchCommand()
	buf := &lockedBuffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--mode", "async", "--debounce", "20ms", path})

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	waitFor(t, buf, "linestream: 1 files, 1 lines, 3 bytes")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("two\nthree\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	waitFor(t, buf, "linestream: 1 files, 3 lines, 11 bytes")

	// Changes to other files in the directory are ignored.
	before := strings.Count(buf.String(), "\n")
	writeFile(t, dir, "other.log", "noise\n")
	time.Sleep(100 * time.Millisecond)
	if after := strings.Count(buf.String(), "\n"); after != before {
		t.Errorf("Unrelated file triggered %d extra report line(s)", after-before)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestRunWatch_RequiresSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", "a\n")
	writeFile(t, dir, "b.log", "b\n")

	cmd := NewWatchCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(dir, "*.log")})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error when the pattern matches several files")
	}
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	fw := &fileWatcher{
		path:     "/nonexistent/dir/app.log",
		onChange: func(context.Context) error { return nil },
	}
	if err := fw.Run(context.Background()); err == nil {
		t.Error("Expected error for missing directory")
	}
}
