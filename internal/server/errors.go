package server

import (
	"errors"
	"fmt"
)

// Fatal errors fail the whole request with a non-200 status; no per-file
// outcomes are produced.

// ErrDecode reports a malformed request envelope.
var ErrDecode = errors.New("decoding request failed")

// TimeoutTooLargeError reports a requested per-file timeout above the
// configured maximum.
type TimeoutTooLargeError struct {
	MaxMs uint64
}

func (e *TimeoutTooLargeError) Error() string {
	return fmt.Sprintf("timeout too large (max supported: %dms)", e.MaxMs)
}
