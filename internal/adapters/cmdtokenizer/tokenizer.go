/*
Package cmdtokenizer splits a raw command line into an argument vector
with the exact quoting and escaping rules of the Windows C runtime's
startup parser (the 2N / 2N+1 backslash rule), and joins argument lists
back into command lines those rules will round-trip.
*/
package cmdtokenizer

import (
	"scriptshim/internal/core/domain/cmdline"
	"scriptshim/internal/core/ports"
)

// Splitter implements the CommandLineTokenizer port.
type Splitter struct{}

// NewSplitter creates a new Splitter.
func NewSplitter() ports.CommandLineTokenizer {
	return &Splitter{}
}

/*
sink receives the parse events of one pass over a raw command line. The
counting sink sizes the vector, the filling sink populates it; both are
driven by the same scan routine, so the two passes cannot disagree on how
many arguments or characters the input produces.
*/
type sink interface {
	beginArg()
	writeChar(r rune)
	endArg()
}

// countingSink tallies argument slots and characters without writing.
type countingSink struct {
	args  int
	chars int
}

func (c *countingSink) beginArg()        { c.args++ }
func (c *countingSink) writeChar(r rune) { c.chars++ }
func (c *countingSink) endArg()          { c.chars++ }

// fillingSink forwards parse events into a pre-sized vector builder.
type fillingSink struct {
	b *cmdline.Builder
}

func (f fillingSink) beginArg()        { f.b.BeginArg() }
func (f fillingSink) writeChar(r rune) { f.b.WriteChar(r) }
func (f fillingSink) endArg()          { f.b.EndArg() }

// Measure performs the pure counting pass over raw. The reported Args
// includes argument 0 and the trailing nil-sentinel slot; Chars includes
// one NUL terminator per argument.
func (s *Splitter) Measure(raw string) cmdline.Counts {
	var c countingSink
	scan([]rune(raw), &c)
	return cmdline.Counts{Args: c.args + 1, Chars: c.chars}
}

// Split measures raw, allocates the vector's two buffers to exactly the
// measured sizes, and fills them with a second, identical pass.
func (s *Splitter) Split(raw string) (cmdline.Vector, error) {
	input := []rune(raw)

	var c countingSink
	scan(input, &c)

	b := cmdline.NewBuilder(cmdline.Counts{Args: c.args + 1, Chars: c.chars})
	scan(input, fillingSink{b})
	return b.Vector()
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

/*
scan drives one pass over the raw command line, announcing every argument
boundary and character to the sink.

Argument 0 is the program name and follows simpler rules than the rest: a
double quote toggles the in-quotes flag without being emitted, backslashes
have no special meaning, and the argument ends at the first unquoted blank
or at end of input. It is always announced, even when empty.

Every later argument applies the backslash rule: a run of N backslashes
followed by a double quote collapses to N/2 literal backslashes, with the
quote toggling the in-quotes flag when N is even and becoming a literal
character when N is odd. Inside quotes, a doubled quote is an escaped
literal quote rather than a close-then-reopen. Backslashes not followed by
a quote are literal. A trailing unmatched quote is not an error; the
argument simply ends with the input.
*/
func scan(raw []rune, s sink) {
	i := 0
	n := len(raw)

	s.beginArg()
	inQuotes := false
	for i < n {
		r := raw[i]
		if r == '"' {
			inQuotes = !inQuotes
			i++
			continue
		}
		if !inQuotes && isBlank(r) {
			break
		}
		s.writeChar(r)
		i++
	}
	s.endArg()

	for {
		for i < n && isBlank(raw[i]) {
			i++
		}
		if i >= n {
			return
		}

		s.beginArg()
		inQuotes = false
		for i < n {
			slashes := 0
			for i < n && raw[i] == '\\' {
				slashes++
				i++
			}

			if i < n && raw[i] == '"' {
				for k := 0; k < slashes/2; k++ {
					s.writeChar('\\')
				}
				if slashes%2 == 1 {
					// Odd run: the quote is escaped.
					s.writeChar('"')
					i++
				} else if inQuotes && i+1 < n && raw[i+1] == '"' {
					// Doubled quote inside quotes is a literal quote.
					s.writeChar('"')
					i += 2
				} else {
					inQuotes = !inQuotes
					i++
				}
				continue
			}

			// No quote follows, so the run is literal.
			for k := 0; k < slashes; k++ {
				s.writeChar('\\')
			}
			if i >= n {
				break
			}
			r := raw[i]
			if !inQuotes && isBlank(r) {
				break
			}
			s.writeChar(r)
			i++
		}
		s.endArg()
	}
}
