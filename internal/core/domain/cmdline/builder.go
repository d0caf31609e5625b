package cmdline

import "fmt"

// ErrVectorOverflow indicates a filling pass tried to write more argument
// slots or characters than the measuring pass accounted for.
var ErrVectorOverflow = fmt.Errorf("command line vector overflow")

/*
Builder fills a Vector whose buffers were sized up front from a Counts.
It never grows either buffer: a write past the measured sizes records a
sticky error instead, and Vector() refuses to hand out the result. The
measuring and filling passes share one stepping routine, so the error is
unreachable unless that identity is broken.
*/
type Builder struct {
	blob    []rune
	offsets []int
	pos     int
	slot    int
	err     error
}

// NewBuilder allocates the two exactly-sized buffers for a vector.
func NewBuilder(c Counts) *Builder {
	return &Builder{
		blob:    make([]rune, c.Chars),
		offsets: make([]int, c.Args),
	}
}

// BeginArg records the start offset of the next argument.
func (b *Builder) BeginArg() {
	if b.err != nil {
		return
	}
	// The last offsets slot is reserved for the sentinel.
	if b.slot >= len(b.offsets)-1 {
		b.err = fmt.Errorf("%w: argument slot %d of %d", ErrVectorOverflow, b.slot, len(b.offsets)-1)
		return
	}
	b.offsets[b.slot] = b.pos
	b.slot++
}

// WriteChar appends one character to the current argument.
func (b *Builder) WriteChar(r rune) {
	if b.err != nil {
		return
	}
	if b.pos >= len(b.blob) {
		b.err = fmt.Errorf("%w: character %d of %d", ErrVectorOverflow, b.pos, len(b.blob))
		return
	}
	b.blob[b.pos] = r
	b.pos++
}

// EndArg terminates the current argument with a NUL character.
func (b *Builder) EndArg() {
	b.WriteChar(0)
}

// Vector returns the finished vector. It fails if any write overflowed the
// measured sizes, or if the buffers were not filled completely: a partially
// built vector must never reach the process launcher.
func (b *Builder) Vector() (Vector, error) {
	if b.err != nil {
		return Vector{}, b.err
	}
	if b.slot != len(b.offsets)-1 || b.pos != len(b.blob) {
		return Vector{}, fmt.Errorf("vector incomplete: %d/%d argument slots, %d/%d characters",
			b.slot, len(b.offsets)-1, b.pos, len(b.blob))
	}
	b.offsets[b.slot] = sentinelOffset
	return Vector{blob: b.blob, offsets: b.offsets}, nil
}
