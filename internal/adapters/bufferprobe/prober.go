/*
Package bufferprobe retrieves variable-length strings from query functions
that only report their required buffer size after a failed call. Two
probing strategies cover the two observed environment conventions; both
return a freshly owned, NUL-terminated buffer sized exactly to the content
plus its terminator.
*/
package bufferprobe

import (
	"errors"
	"fmt"

	"scriptshim/internal/core/domain/probe"
	"scriptshim/internal/core/ports"
)

/*
DirectSizeProber handles Convention A queries: a call with an empty
destination returns the exact number of characters required, terminator
included. The prober allocates exactly that, fills, and verifies the fill
call agrees with the sizing call. The backing environment can mutate
between the two calls, so any disagreement means the answer is stale; the
buffer is discarded and the value reported as not found. No retry.
*/
type DirectSizeProber struct{}

// NewDirectSizeProber creates a prober for Convention A queries.
func NewDirectSizeProber() ports.StringProber {
	return &DirectSizeProber{}
}

// Probe retrieves the queried value with one sizing call and one fill call.
func (p *DirectSizeProber) Probe(q ports.BufferQuery) ([]rune, error) {
	required, err := q.Query(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: sizing call failed: %v", probe.ErrNotFound, err)
	}
	if required <= 0 {
		return nil, probe.ErrNotFound
	}

	buf := make([]rune, required)
	written, err := q.Query(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: fill call failed: %v", probe.ErrNotFound, err)
	}
	if written+1 != required {
		return nil, fmt.Errorf("%w: %w: sized %d, filled %d",
			probe.ErrNotFound, probe.ErrInconsistentSize, required, written)
	}
	buf[written] = 0
	return buf, nil
}

// growthInitialCapacity is the first buffer size a GrowthProber tries
// when none is configured.
const growthInitialCapacity = 64

/*
GrowthProber handles Convention B queries: the query only signals that the
destination is too small, never how large it must be. The prober doubles
the buffer until the query stops reporting insufficiency, then copies the
content into an exactly-sized result so no over-allocation survives.
*/
type GrowthProber struct {
	initial int
}

// NewGrowthProber creates a prober for Convention B queries. initial is
// the first capacity tried; values below 1 fall back to a default.
func NewGrowthProber(initial int) ports.StringProber {
	if initial < 1 {
		initial = growthInitialCapacity
	}
	return &GrowthProber{initial: initial}
}

// Probe grows the buffer geometrically until the query succeeds. The loop
// is unbounded in principle; it ends as soon as the query reports success
// or any error other than insufficiency.
func (p *GrowthProber) Probe(q ports.BufferQuery) ([]rune, error) {
	size := p.initial
	for {
		buf := make([]rune, size)
		written, err := q.Query(buf)
		if errors.Is(err, probe.ErrInsufficientBuffer) {
			size *= 2
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", probe.ErrNotFound, err)
		}
		if written < 0 || written >= size {
			return nil, fmt.Errorf("%w: query reported %d characters in a %d buffer",
				probe.ErrNotFound, written, size)
		}
		out := make([]rune, written+1)
		copy(out, buf[:written])
		out[written] = 0
		return out, nil
	}
}
