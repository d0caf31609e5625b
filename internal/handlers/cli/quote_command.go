package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptshim/internal/core/ports"
)

// NewQuoteCommand creates the 'quote' subcommand.
func NewQuoteCommand(tokenizer ports.CommandLineTokenizer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [argument...]",
		Short: "Re-quote an argument list into a single raw command line.",
		Long: `Joins an argument list into one raw command line, quoting and
escaping each element so that splitting it again reproduces the list
element for element.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuoteCmd(cmd, args, tokenizer)
		},
	}
	return cmd
}

// runQuoteCmd contains the core logic for the 'quote' command.
func runQuoteCmd(
	_ *cobra.Command,
	args []string,
	tokenizer ports.CommandLineTokenizer,
) error {
	fmt.Println(tokenizer.Join(args))
	return nil
}
