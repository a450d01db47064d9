package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals"
)

func TestNewSubscription(t *testing.T) {
	t.Parallel()

	t.Run("takes ownership of a bound handle", func(t *testing.T) {
		t.Parallel()

		var sig signals.Broadcaster[int]
		h := sig.Connect(func(int) {})
		require.True(t, h.Valid())

		sub := signals.NewSubscription(&sig, &h)
		assert.True(t, sub.Active())
		assert.Equal(t, signals.Handle{}, h, "caller's handle must be emptied")
	})

	t.Run("empty handle yields inert subscription", func(t *testing.T) {
		t.Parallel()

		var sig signals.Broadcaster[int]
		var h signals.Handle

		sub := signals.NewSubscription(&sig, &h)
		assert.False(t, sub.Active())
	})

	t.Run("nil handle yields inert subscription", func(t *testing.T) {
		t.Parallel()

		var sig signals.Broadcaster[int]
		sub := signals.NewSubscription(&sig, nil)
		assert.False(t, sub.Active())
	})
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest := 0

	sub := signals.Subscribe(&sig, func(v int) { dest = v })
	require.True(t, sub.Active())

	sig.Emit(10)
	assert.Equal(t, 10, dest)

	sub.Disconnect()
	sig.Emit(20)
	assert.Equal(t, 10, dest)
}

func TestSubscription_DisconnectOnScopeExit(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest := 0

	func() {
		sub := signals.Subscribe(&sig, func(v int) { dest = v })
		defer sub.Disconnect()

		sig.Emit(10)
		require.Equal(t, 10, dest)
	}()

	sig.Emit(20)
	assert.Equal(t, 10, dest)
	assert.Equal(t, 0, sig.Len())
}

func TestSubscription_DisconnectIdempotent(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	sub := signals.Subscribe(&sig, func(int) {})

	sub.Disconnect()
	assert.False(t, sub.Active())

	assert.NotPanics(t, func() { sub.Disconnect() })
	assert.False(t, sub.Active())
}

func TestSubscription_Release(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest := 0

	sub := signals.Subscribe(&sig, func(v int) { dest = v })
	sub.Release()
	assert.False(t, sub.Active())

	// The registration outlives the released guard.
	sub.Disconnect()
	sig.Emit(10)
	assert.Equal(t, 10, dest)
	assert.Equal(t, 1, sig.Len())
}

func TestSubscription_Swap(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest1, dest2 := 0, 0

	sub1 := signals.Subscribe(&sig, func(v int) { dest1 = v })
	sub2 := signals.Subscribe(&sig, func(v int) { dest2 = v })

	sub1.Swap(sub2)

	// sub1 now guards the second registration.
	sub1.Disconnect()
	sig.Emit(10)
	assert.Equal(t, 10, dest1)
	assert.Equal(t, 0, dest2)

	sub2.Disconnect()
	sig.Emit(20)
	assert.Equal(t, 10, dest1)
	assert.Equal(t, 0, dest2)
}

func TestSubscription_SwapWithInert(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest := 0

	sub := signals.Subscribe(&sig, func(v int) { dest = v })
	empty := &signals.Subscription[int]{}

	sub.Swap(empty)
	assert.False(t, sub.Active())
	assert.True(t, empty.Active())

	empty.Disconnect()
	sig.Emit(10)
	assert.Equal(t, 0, dest)
}

func TestSubscription_Take(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest1, dest2 := 0, 0

	sub1 := signals.Subscribe(&sig, func(v int) { dest1 = v })
	sub2 := signals.Subscribe(&sig, func(v int) { dest2 = v })

	// Taking disconnects sub1's own registration first.
	sub1.Take(sub2)
	assert.True(t, sub1.Active())
	assert.False(t, sub2.Active())

	sig.Emit(10)
	assert.Equal(t, 0, dest1)
	assert.Equal(t, 10, dest2)

	// The source is inert; disconnecting it must not touch the moved
	// registration.
	sub2.Disconnect()
	sig.Emit(20)
	assert.Equal(t, 20, dest2)

	sub1.Disconnect()
	sig.Emit(30)
	assert.Equal(t, 20, dest2)
	assert.Equal(t, 0, sig.Len())
}

func TestSubscription_TakeSelf(t *testing.T) {
	t.Parallel()

	var sig signals.Broadcaster[int]
	dest := 0

	sub := signals.Subscribe(&sig, func(v int) { dest = v })
	sub.Take(sub)

	assert.True(t, sub.Active())
	sig.Emit(10)
	assert.Equal(t, 10, dest)
}

func TestSubscription_ZeroValue(t *testing.T) {
	t.Parallel()

	var sub signals.Subscription[int]
	assert.False(t, sub.Active())
	assert.NotPanics(t, func() { sub.Disconnect() })
	assert.NotPanics(t, func() { sub.Release() })
}
