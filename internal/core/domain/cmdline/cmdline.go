package cmdline

// Counts holds the result of a measuring pass over a raw command line.
type Counts struct {
	// Args is the number of argument slots, including argument 0 (the
	// program name) and the trailing nil-sentinel slot. Always >= 2.
	Args int
	// Chars is the number of characters needed to store all argument
	// text contiguously, including one NUL terminator per argument.
	Chars int
}

// Argc returns the number of real arguments, excluding the sentinel slot.
func (c Counts) Argc() int {
	return c.Args - 1
}

/*
Vector is an argument vector in the shape a process entry point consumes:
every argument's characters live in one contiguous backing blob, NUL
terminated, and a separate offsets table records where each argument
starts. The last offsets entry is the nil sentinel.

Both buffers are sized exactly from a measuring pass and are never resized
afterwards; resizing would invalidate every recorded offset.
*/
type Vector struct {
	blob    []rune
	offsets []int
}

// sentinelOffset marks the terminator slot at the end of the offsets table.
const sentinelOffset = -1

// Argc returns the number of arguments in the vector, including argument 0.
func (v Vector) Argc() int {
	if len(v.offsets) == 0 {
		return 0
	}
	return len(v.offsets) - 1
}

// Arg returns argument i as a string, without its NUL terminator.
func (v Vector) Arg(i int) string {
	start := v.offsets[i]
	end := start
	for end < len(v.blob) && v.blob[end] != 0 {
		end++
	}
	return string(v.blob[start:end])
}

// Strings returns all arguments as a freshly allocated slice.
func (v Vector) Strings() []string {
	out := make([]string, v.Argc())
	for i := range out {
		out[i] = v.Arg(i)
	}
	return out
}

// Counts reports the exact sizes of the vector's two buffers.
func (v Vector) Counts() Counts {
	return Counts{Args: len(v.offsets), Chars: len(v.blob)}
}
