package ports

import "scriptshim/internal/core/domain/cmdline"

/*
CommandLineTokenizer splits a raw command line into an argument vector
using the Windows C-runtime startup quoting rules, and joins an argument
list back into a raw command line those same rules will round-trip.

Measure and Split are the two passes of the sizing contract: Measure is a
pure counting pass, Split allocates exactly from those counts and fills.
*/
type CommandLineTokenizer interface {
	Measure(raw string) cmdline.Counts
	Split(raw string) (cmdline.Vector, error)
	Join(args []string) string
}
