package signals

// Handle identifies a single registration on a Broadcaster.
//
// The zero value is the empty sentinel: it identifies nothing, compares
// equal to Handle{}, and disconnecting it is a no-op. Bound handles are
// minted only by Broadcaster.Connect, so a handle can never name a
// registration it did not come from.
//
// A Handle is a single-owner token. Operations that consume one take a
// pointer and zero it, so after a disconnect (or after wrapping it in a
// Subscription) the caller's value is empty again. Copying a bound
// handle sidesteps that discipline and is a caller bug: exactly one copy
// should ever be live.
type Handle struct {
	id    uint64
	valid bool
}

func newHandle(id uint64) Handle {
	return Handle{id: id, valid: true}
}

// Valid reports whether the handle is bound to a registration.
func (h Handle) Valid() bool {
	return h.valid
}

// ID returns the registration identifier. The result is unspecified for
// an empty handle. Intended for debugging and tests.
func (h Handle) ID() uint64 {
	return h.id
}

// take moves the bound state out of h, leaving it empty.
func (h *Handle) take() Handle {
	out := *h
	*h = Handle{}
	return out
}
