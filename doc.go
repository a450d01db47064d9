// Package signals provides a typed in-process broadcast primitive with
// explicit subscriber lifetime management.
//
// A Broadcaster fans a value out to every registered callback without
// knowing who the callbacks belong to; subscribers connect and disconnect
// independently of emission, from any goroutine, including from inside a
// running dispatch. Go generics keep the whole surface strongly typed.
//
// Basic usage:
//
//	var clicks signals.Broadcaster[int]
//
//	sub := signals.Subscribe(&clicks, func(n int) {
//		fmt.Println("clicked", n)
//	})
//	defer sub.Disconnect()
//
//	clicks.Emit(1)
//	clicks.Emit(2)
//
// Emission is synchronous: Emit snapshots the current subscribers under
// the broadcaster's lock, releases the lock, and then invokes each
// callback on the calling goroutine in connection order. Because no lock
// is held while callbacks run, a callback may connect or disconnect
// subscribers on the same broadcaster, including removing itself.
//
// Connect and Disconnect are safe for concurrent use. Emit is not safe
// to call concurrently with itself on one broadcaster; serializing
// emissions is the caller's responsibility. A Broadcaster must outlive
// every Handle and Subscription derived from it.
//
// For pull-style consumption, Listen bridges a broadcaster into a
// buffered channel, dropping values for slow consumers rather than
// blocking a dispatch round. Hub groups independent broadcasters under
// string topics.
package signals
