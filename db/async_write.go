package db

import (
	"context"
	"sync"
	"time"
)

// DefaultChannelCapacity is the default buffer size for the async write
// channel.
const DefaultChannelCapacity = 100

// DefaultDrainTimeout is the maximum time to wait for pending writes
// during shutdown.
const DefaultDrainTimeout = 30 * time.Second

// WriteOp is one deferred history write, usually a closure over a
// repository call.
type WriteOp func() error

// AsyncWriter records history writes off the hot path. The render and
// post pipeline queues its bookkeeping here so a slow disk never delays
// an upload, and Stop drains the queue before shutdown.
type AsyncWriter struct {
	writeChan chan WriteOp
	onError   func(error)
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	started   bool
	mu        sync.Mutex
}

// NewAsyncWriter creates an async writer. onError receives failures
// from processed operations; nil discards them.
func NewAsyncWriter(capacity int, onError func(error)) *AsyncWriter {
	if capacity <= 0 {
		capacity = DefaultChannelCapacity
	}
	if onError == nil {
		onError = func(error) {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AsyncWriter{
		writeChan: make(chan WriteOp, capacity),
		onError:   onError,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins background processing. Must be called before queued
// operations are executed.
func (w *AsyncWriter) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}
	w.started = true
	w.wg.Add(1)
	go w.processWrites()
}

func (w *AsyncWriter) processWrites() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			w.drain()
			return
		case op, ok := <-w.writeChan:
			if !ok {
				return
			}
			if err := op(); err != nil {
				w.onError(err)
			}
		}
	}
}

// drain processes any remaining operations in the buffer.
func (w *AsyncWriter) drain() {
	for {
		select {
		case op, ok := <-w.writeChan:
			if !ok {
				return
			}
			if err := op(); err != nil {
				w.onError(err)
			}
		default:
			return
		}
	}
}

// Write queues an operation. Returns false if the buffer is full; the
// caller decides whether to drop or write synchronously.
func (w *AsyncWriter) Write(op WriteOp) bool {
	select {
	case w.writeChan <- op:
		return true
	default:
		return false
	}
}

// Pending returns the number of queued operations.
func (w *AsyncWriter) Pending() int {
	return len(w.writeChan)
}

// Stop signals the processor to stop and waits for the queue to drain.
func (w *AsyncWriter) Stop() {
	w.cancel()
	w.wg.Wait()
}

// StopWithTimeout stops the writer with a maximum wait time. Returns
// true if it stopped gracefully, false on timeout.
func (w *AsyncWriter) StopWithTimeout(timeout time.Duration) bool {
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// IsStarted reports whether the background processor is running.
func (w *AsyncWriter) IsStarted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started
}
