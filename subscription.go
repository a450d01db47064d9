package signals

// Subscription ties a Handle to the Broadcaster it came from and
// disconnects the registration when the subscription is disposed of.
//
// Go has no destructors, so disposal is explicit: callers typically
// write
//
//	sub := signals.Subscribe(&b, fn)
//	defer sub.Disconnect()
//
// The two fields move in lockstep: either both are set (the subscription
// is active) or both are empty (it is inert). A Subscription is a
// single-goroutine value; guard it externally if shared.
type Subscription[T any] struct {
	handle Handle
	b      *Broadcaster[T]
}

// NewSubscription wraps an existing registration. It takes ownership of
// *h, leaving the caller's handle empty. A nil or empty handle yields an
// inert subscription. Prefer Subscribe, which never exposes an unguarded
// handle in the first place.
func NewSubscription[T any](b *Broadcaster[T], h *Handle) *Subscription[T] {
	s := &Subscription[T]{}
	if b != nil && h != nil && h.valid {
		s.handle = h.take()
		s.b = b
	}
	return s
}

// Subscribe connects fn to b and immediately wraps the new registration
// in a Subscription, so there is no window in which the registration
// exists without an owner responsible for disconnecting it.
func Subscribe[T any](b *Broadcaster[T], fn func(T)) *Subscription[T] {
	h := b.Connect(fn)
	return NewSubscription(b, &h)
}

// Active reports whether the subscription currently guards a
// registration.
func (s *Subscription[T]) Active() bool {
	return s.b != nil
}

// Disconnect removes the guarded registration, if any, and leaves the
// subscription inert. Idempotent.
func (s *Subscription[T]) Disconnect() {
	if s.b == nil {
		return
	}
	s.b.Disconnect(&s.handle)
	s.b = nil
}

// Release clears the subscription without disconnecting. The
// registration stays live; responsibility for removing it passes to
// whoever else can reach it, or it persists for the broadcaster's
// lifetime.
func (s *Subscription[T]) Release() {
	s.handle = Handle{}
	s.b = nil
}

// Swap exchanges the guarded registrations of s and o.
func (s *Subscription[T]) Swap(o *Subscription[T]) {
	s.handle, o.handle = o.handle, s.handle
	s.b, o.b = o.b, s.b
}

// Take transfers src's registration into s, disconnecting whatever s
// guarded before. src is left inert. Taking from itself is a no-op.
func (s *Subscription[T]) Take(src *Subscription[T]) {
	if s == src {
		return
	}
	s.Disconnect()
	s.handle, s.b = src.handle, src.b
	src.handle, src.b = Handle{}, nil
}
