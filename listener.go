package signals

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultListenBuffer = 16

type listenConfig struct {
	buffer int
}

// ListenOption configures a Listener.
type ListenOption func(*listenConfig)

// WithBuffer sets the listener's channel buffer size. A minimum of 1 is
// enforced; an unbuffered channel would make every delivery block the
// emitting goroutine and defeat the non-blocking design.
func WithBuffer(n int) ListenOption {
	return func(c *listenConfig) {
		c.buffer = n
	}
}

// Listener delivers a broadcaster's emissions on a channel, for callers
// that prefer pull-style consumption over callbacks.
//
// Delivery is non-blocking: when the buffer is full the value is dropped
// for this listener rather than stalling the dispatch round. Dropped
// counts how many values were discarded that way.
type Listener[T any] struct {
	ch      chan T
	sub     *Subscription[T]
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// Listen subscribes a channel-backed consumer to the broadcaster. The
// listener is closed automatically when ctx is cancelled, or explicitly
// via Close.
func (b *Broadcaster[T]) Listen(ctx context.Context, opts ...ListenOption) *Listener[T] {
	cfg := listenConfig{buffer: defaultListenBuffer}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Listener[T]{
		ch: make(chan T, max(cfg.buffer, 1)),
	}
	l.sub = Subscribe(b, l.send)

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			_ = l.Close()
		}()
	}
	return l
}

// send runs on the emitting goroutine as part of a dispatch round, so it
// must never block: a full buffer drops the value.
func (l *Listener[T]) send(v T) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return
	}
	select {
	case l.ch <- v:
	default:
		l.dropped.Add(1)
	}
}

// C returns the delivery channel. It is closed when the listener is
// closed.
func (l *Listener[T]) C() <-chan T {
	return l.ch
}

// Dropped reports how many values were discarded because the buffer was
// full.
func (l *Listener[T]) Dropped() uint64 {
	return l.dropped.Load()
}

// Close disconnects from the broadcaster and closes the delivery
// channel. Values already buffered remain readable. Safe to call
// multiple times. An emission snapshotted before Close may still reach
// send afterwards; the closed flag makes that a silent drop instead of a
// send on a closed channel.
func (l *Listener[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	l.sub.Disconnect()
	close(l.ch)
	return nil
}
