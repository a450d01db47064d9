package signals

import (
	"cmp"
	"math"
	"slices"
	"sync"
)

// entry pairs a registration identifier with its callback. Identifiers
// come from a monotonically increasing counter, so appending new entries
// keeps the registry sorted by identifier without ever reordering it.
type entry[T any] struct {
	id uint64
	fn func(T)
}

// Broadcaster fans a value of type T out to every registered callback.
// The zero value is ready to use.
//
// Connect and Disconnect are safe for concurrent use with each other and
// with an in-flight Emit. Emit itself must not be called concurrently on
// one instance; the snapshot buffer is reused across rounds and owned by
// the single emitter. Identifiers are never reused, so a stale handle
// can never disconnect a later, unrelated registration.
type Broadcaster[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry[T]

	// buf is the reusable dispatch snapshot. Only the in-flight Emit
	// touches it, and never while holding mu around callback calls.
	buf []func(T)
}

// Connect registers fn and returns the bound handle for the new
// registration. fn will be invoked, on the emitting goroutine, for every
// subsequent emission round whose snapshot it makes it into.
func (b *Broadcaster[T]) Connect(fn func(T)) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.nextID == math.MaxUint64 {
		panic("signals: broadcaster identifier space exhausted")
	}
	id := b.nextID
	b.nextID++
	b.entries = append(b.entries, entry[T]{id: id, fn: fn})
	return newHandle(id)
}

// Disconnect removes the registration named by h and leaves h empty.
//
// A nil or empty handle, or one whose registration was already removed,
// is a no-op. Disconnect is idempotent and safe to call from inside a
// callback running as part of an emission on this broadcaster, including
// for the very registration whose callback is executing.
func (b *Broadcaster[T]) Disconnect(h *Handle) {
	if h == nil || !h.valid {
		return
	}
	id := h.take().id

	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := slices.BinarySearchFunc(b.entries, id, func(e entry[T], id uint64) int {
		return cmp.Compare(e.id, id)
	})
	if !ok {
		return
	}
	b.entries = slices.Delete(b.entries, i, i+1)
}

// Emit invokes every currently registered callback with v, in connection
// order. The subscriber set is snapshotted under the lock and callbacks
// run after the lock is released, so callbacks and other goroutines may
// connect or disconnect freely during the round: registrations added
// after the snapshot are not called this round, registrations removed
// after the snapshot still complete this round.
//
// Emit must not be called concurrently with itself on one broadcaster.
// A panicking callback propagates to the caller and skips the remaining
// callbacks of the round.
func (b *Broadcaster[T]) Emit(v T) {
	b.buf = b.buf[:0]
	b.mu.Lock()
	for _, e := range b.entries {
		b.buf = append(b.buf, e.fn)
	}
	b.mu.Unlock()

	for _, fn := range b.buf {
		fn(v)
	}
}

// Len returns the number of current registrations.
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
