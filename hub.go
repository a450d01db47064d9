package signals

import "sync"

// Hub groups independent broadcasters under string topics, creating each
// topic's broadcaster on first use. All methods are safe for concurrent
// use; the per-broadcaster rule that emissions on one topic must be
// serialized by the caller still applies.
type Hub[T any] struct {
	mu     sync.RWMutex
	topics map[string]*Broadcaster[T]
	closed bool
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		topics: make(map[string]*Broadcaster[T]),
	}
}

// Broadcaster returns the broadcaster for topic, creating it on first
// use. Repeated calls with the same topic return the same instance.
func (h *Hub[T]) Broadcaster(topic string) (*Broadcaster[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed{}
	}
	b, ok := h.topics[topic]
	if !ok {
		b = &Broadcaster[T]{}
		h.topics[topic] = b
	}
	return b, nil
}

// Subscribe connects fn to the topic's broadcaster, creating the topic
// if needed, and returns the guarded subscription.
func (h *Hub[T]) Subscribe(topic string, fn func(T)) (*Subscription[T], error) {
	b, err := h.Broadcaster(topic)
	if err != nil {
		return nil, err
	}
	return Subscribe(b, fn), nil
}

// Emit fans v out on the named topic. A topic nobody ever subscribed to
// is a silent no-op, not an error.
func (h *Hub[T]) Emit(topic string, v T) error {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrHubClosed{}
	}
	b := h.topics[topic]
	h.mu.RUnlock()

	if b == nil {
		return nil
	}
	b.Emit(v)
	return nil
}

// Topics returns the names of all topics created so far, in no
// particular order.
func (h *Hub[T]) Topics() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	topics := make([]string, 0, len(h.topics))
	for name := range h.topics {
		topics = append(topics, name)
	}
	return topics
}

// SubscriberCount returns the number of registrations on a topic. An
// unknown topic counts as zero.
func (h *Hub[T]) SubscriberCount(topic string) int {
	h.mu.RLock()
	b := h.topics[topic]
	h.mu.RUnlock()

	if b == nil {
		return 0
	}
	return b.Len()
}

// Close drops all topics and marks the hub closed. Subsequent Subscribe,
// Broadcaster, and Emit calls return ErrHubClosed. Subscriptions handed
// out earlier keep their own broadcaster pointer and remain safe to
// disconnect. Close is idempotent.
func (h *Hub[T]) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	clear(h.topics)
	return nil
}
