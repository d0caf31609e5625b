/*
Package rawcmdline supplies the full invocation string, program name
included, with quoting the tokenizer can split back into the original
arguments.
*/
package rawcmdline

import (
	"os"

	"scriptshim/internal/core/ports"
)

// OSArgsSource reconstructs the raw command line from the argument list
// the runtime already split, re-quoting each element so a re-tokenization
// reproduces the list exactly.
type OSArgsSource struct {
	tok  ports.CommandLineTokenizer
	args func() []string
}

// NewOSArgsSource creates a source backed by the process argument list.
func NewOSArgsSource(tok ports.CommandLineTokenizer) ports.RawCommandLineSource {
	return &OSArgsSource{tok: tok, args: func() []string { return os.Args }}
}

// CommandLine returns the reconstructed invocation string.
func (s *OSArgsSource) CommandLine() (string, error) {
	return s.tok.Join(s.args()), nil
}
