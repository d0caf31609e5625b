/*
Package envquery exposes the launcher's three environment lookups through
the measure-or-fill query shape, so every value travels through the buffer
probe and is sized exactly.
*/
package envquery

import (
	"fmt"
	"path/filepath"

	"scriptshim/internal/core/domain/probe"
)

/*
envVarQuery reads a named environment variable under Convention A: the
sizing call returns the value's length plus terminator, the fill call
returns the length written. An unset variable sizes to zero. The variable
is re-read on every call, so the two probe calls can legitimately observe
different values; the prober's consistency check catches that.
*/
type envVarQuery struct {
	lookup func(string) (string, bool)
	name   string
}

func (q envVarQuery) Query(dst []rune) (int, error) {
	value, ok := q.lookup(q.name)
	if !ok {
		return 0, nil
	}
	return fillDirect(dst, []rune(value))
}

// absPathQuery canonicalizes a path under Convention A, like the
// environment's own full-path query.
type absPathQuery struct {
	path string
}

func (q absPathQuery) Query(dst []rune) (int, error) {
	abs, err := filepath.Abs(q.path)
	if err != nil {
		return 0, fmt.Errorf("canonicalizing %q: %w", q.path, err)
	}
	return fillDirect(dst, []rune(abs))
}

// fillDirect implements the Convention A return contract for a known
// value: required size (terminator included) on an empty destination,
// characters written on a sufficient one.
func fillDirect(dst, value []rune) (int, error) {
	if len(dst) == 0 {
		return len(value) + 1, nil
	}
	if len(dst) < len(value)+1 {
		return 0, fmt.Errorf("destination holds %d of %d characters", len(dst), len(value)+1)
	}
	copy(dst, value)
	dst[len(value)] = 0
	return len(value), nil
}

/*
executablePathQuery reports the running executable's path under
Convention B: it cannot say how large the destination must be, only that
the current one does not fit.
*/
type executablePathQuery struct {
	path func() (string, error)
}

func (q executablePathQuery) Query(dst []rune) (int, error) {
	p, err := q.path()
	if err != nil {
		return 0, fmt.Errorf("resolving executable path: %w", err)
	}
	value := []rune(p)
	if len(dst) < len(value)+1 {
		return 0, probe.ErrInsufficientBuffer
	}
	copy(dst, value)
	dst[len(value)] = 0
	return len(value), nil
}
