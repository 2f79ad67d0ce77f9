package highlight

import "sync/atomic"

// Flag is the cooperative cancellation token shared by every task of one
// request. It only ever transitions from unset to set, so a reader that
// observes it set can trust it stays set for the rest of the request.
type Flag struct {
	v atomic.Uint32
}

// Set marks the flag. Safe to call from multiple observers.
func (f *Flag) Set() {
	f.v.Store(1)
}

// IsSet reports whether any observer has set the flag. A nil flag is never
// set.
func (f *Flag) IsSet() bool {
	return f != nil && f.v.Load() != 0
}
