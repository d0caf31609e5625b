package bufferprobe

import (
	"errors"
	"testing"

	"scriptshim/internal/core/domain/probe"
	"scriptshim/internal/core/testutil"
)

// directQuery answers like a Convention A environment holding value,
// optionally reporting a different size during the sizing call to
// simulate the environment mutating between the two calls.
func directQuery(value []rune, sizeSkew int) *testutil.MockBufferQuery {
	return &testutil.MockBufferQuery{
		QueryFunc: func(dst []rune) (int, error) {
			if len(dst) == 0 {
				return len(value) + 1 + sizeSkew, nil
			}
			copy(dst, value)
			return len(value), nil
		},
	}
}

func TestDirectSizeProber_Probe(t *testing.T) {
	prober := NewDirectSizeProber()

	t.Run("success sizes the buffer exactly", func(t *testing.T) {
		q := directQuery([]rune("EMSDK_PYTHON value"), 0)

		buf, err := prober.Probe(q)
		if err != nil {
			t.Fatalf("Probe() unexpected error = %v", err)
		}
		if len(buf) != len("EMSDK_PYTHON value")+1 {
			t.Errorf("Probe() buffer length = %d, want %d", len(buf), len("EMSDK_PYTHON value")+1)
		}
		if got := probe.String(buf); got != "EMSDK_PYTHON value" {
			t.Errorf("Probe() = %q, want %q", got, "EMSDK_PYTHON value")
		}
		if len(q.Calls) != 2 || q.Calls[0] != 0 {
			t.Errorf("Probe() calls = %v, want a sizing call then a fill call", q.Calls)
		}
	})

	t.Run("zero required size reports not found", func(t *testing.T) {
		q := directQuery(nil, 0)
		q.QueryFunc = func(dst []rune) (int, error) { return 0, nil }

		if _, err := prober.Probe(q); !errors.Is(err, probe.ErrNotFound) {
			t.Errorf("Probe() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("sizing failure reports not found", func(t *testing.T) {
		q := &testutil.MockBufferQuery{
			QueryFunc: func(dst []rune) (int, error) { return 0, errors.New("invalid context") },
		}

		if _, err := prober.Probe(q); !errors.Is(err, probe.ErrNotFound) {
			t.Errorf("Probe() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("size mismatch is discarded as a stale answer", func(t *testing.T) {
		q := directQuery([]rune("value"), 3)

		_, err := prober.Probe(q)
		if !errors.Is(err, probe.ErrNotFound) {
			t.Errorf("Probe() error = %v, want ErrNotFound", err)
		}
		if !errors.Is(err, probe.ErrInconsistentSize) {
			t.Errorf("Probe() error = %v, want it to wrap ErrInconsistentSize", err)
		}
		if len(q.Calls) != 2 {
			t.Errorf("Probe() made %d calls, want 2 (no retry on mismatch)", len(q.Calls))
		}
	})
}

func TestGrowthProber_Probe(t *testing.T) {
	t.Run("grows geometrically and shrinks to fit", func(t *testing.T) {
		content := make([]rune, 200)
		for i := range content {
			content[i] = 'x'
		}
		q := &testutil.MockBufferQuery{
			QueryFunc: func(dst []rune) (int, error) {
				if len(dst) < len(content)+1 {
					return 0, probe.ErrInsufficientBuffer
				}
				copy(dst, content)
				return len(content), nil
			},
		}

		buf, err := NewGrowthProber(64).Probe(q)
		if err != nil {
			t.Fatalf("Probe() unexpected error = %v", err)
		}
		if len(buf) != 201 {
			t.Errorf("Probe() buffer length = %d, want 201 (content + terminator)", len(buf))
		}
		if got, want := q.Calls, []int{64, 128, 256}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("Probe() tried capacities %v, want %v", got, want)
		}
		if got := probe.String(buf); got != string(content) {
			t.Errorf("Probe() content length = %d, want 200", len(got))
		}
	})

	t.Run("non-insufficiency error ends the loop as not found", func(t *testing.T) {
		calls := 0
		q := &testutil.MockBufferQuery{
			QueryFunc: func(dst []rune) (int, error) {
				calls++
				if calls == 1 {
					return 0, probe.ErrInsufficientBuffer
				}
				return 0, errors.New("module handle went away")
			},
		}

		if _, err := NewGrowthProber(8).Probe(q); !errors.Is(err, probe.ErrNotFound) {
			t.Errorf("Probe() error = %v, want ErrNotFound", err)
		}
		if calls != 2 {
			t.Errorf("Probe() made %d calls, want 2", calls)
		}
	})

	t.Run("first capacity can already fit", func(t *testing.T) {
		q := &testutil.MockBufferQuery{
			QueryFunc: func(dst []rune) (int, error) {
				copy(dst, []rune("ok"))
				return 2, nil
			},
		}

		buf, err := NewGrowthProber(16).Probe(q)
		if err != nil {
			t.Fatalf("Probe() unexpected error = %v", err)
		}
		if len(buf) != 3 {
			t.Errorf("Probe() buffer length = %d, want 3", len(buf))
		}
	})

	t.Run("reported length past capacity is rejected", func(t *testing.T) {
		q := &testutil.MockBufferQuery{
			QueryFunc: func(dst []rune) (int, error) { return len(dst), nil },
		}

		if _, err := NewGrowthProber(8).Probe(q); !errors.Is(err, probe.ErrNotFound) {
			t.Errorf("Probe() error = %v, want ErrNotFound", err)
		}
	})
}
