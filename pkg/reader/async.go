package reader

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// item is one unit handed from the producer to the consumer: a line, or
// the terminal error (io.EOF included) that ends the stream.
type item struct {
	line string
	err  error
}

// AsyncReader prefetches lines on a background goroutine.
//
// The producer decodes lines exactly like SyncReader and sends them on a
// bounded channel. When the channel is full the producer blocks until
// ReadLine drains it, so memory use is bounded by the queue capacity.
type AsyncReader struct {
	src   io.Reader
	items chan item
	err   error

	cancel context.CancelFunc
	group  *errgroup.Group

	closed          atomic.Bool
	closeOnce       sync.Once
	shutdownTimeout time.Duration
	onCloseError    CloseErrorHandler
}

// NewAsyncReader creates an AsyncReader that owns src and starts its
// producer goroutine immediately.
func NewAsyncReader(src io.Reader, opts ...Option) *AsyncReader {
	o := buildOptions(opts)

	ctx, cancel := context.WithCancel(context.Background())
	r := &AsyncReader{
		src:             src,
		items:           make(chan item, o.queueCapacity),
		cancel:          cancel,
		group:           new(errgroup.Group),
		shutdownTimeout: o.shutdownTimeout,
		onCloseError:    o.onCloseError,
	}

	lines := newSyncReader(src, o)
	r.group.Go(func() error {
		return r.produce(ctx, lines)
	})

	return r
}

// produce runs on the background goroutine until the source ends, fails,
// or ctx is cancelled.
func (r *AsyncReader) produce(ctx context.Context, lines *SyncReader) error {
	defer close(r.items)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := lines.ReadLine()
		select {
		case r.items <- item{line: line, err: err}:
		case <-ctx.Done():
			return ctx.Err()
		}

		if err != nil {
			return nil
		}
	}
}

// ReadLine blocks until the producer has a line, reached the end of the
// source, or failed. A producer failure is returned here and on every
// later call.
func (r *AsyncReader) ReadLine() (string, error) {
	if r.closed.Load() {
		return "", io.EOF
	}
	if r.err != nil {
		return "", r.err
	}

	it, ok := <-r.items
	if !ok || r.closed.Load() {
		r.err = io.EOF
		return "", io.EOF
	}
	if it.err != nil {
		r.err = it.err
		return "", it.err
	}
	return it.line, nil
}

// Close stops the producer, closes the source and waits for the producer
// to exit for at most the shutdown timeout.
func (r *AsyncReader) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		r.cancel()

		// Closing the source abandons a read the producer is blocked in.
		closeSource(r.src, r.onCloseError)

		done := make(chan struct{})
		go func() {
			_ = r.group.Wait()
			close(done)
		}()

		timer := time.NewTimer(r.shutdownTimeout)
		defer timer.Stop()

		select {
		case <-done:
		case <-timer.C:
			if r.onCloseError != nil {
				r.onCloseError(fmt.Errorf("line producer still running after %s", r.shutdownTimeout))
			}
		}
	})
}
