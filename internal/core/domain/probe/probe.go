package probe

import "errors"

// ErrInsufficientBuffer is returned by a Convention B query whose
// destination buffer is too small to hold the value and its terminator.
var ErrInsufficientBuffer = errors.New("buffer too small for value")

// ErrNotFound is the probe result when the queried value does not exist,
// the query never succeeds, or its answer cannot be trusted.
var ErrNotFound = errors.New("value not found")

// ErrInconsistentSize indicates a Convention A query reported one size
// during the sizing call and a different one during the fill call. The
// backing environment can mutate between the two calls, so a mismatch
// means the answer is stale and must be discarded.
var ErrInconsistentSize = errors.New("sizing and fill calls disagree")

// String converts a NUL-terminated probe buffer to a Go string.
func String(buf []rune) string {
	for i, r := range buf {
		if r == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
