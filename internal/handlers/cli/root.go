package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptshim/internal/core/ports"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	launchService ports.LaunchService,
	tokenizer ports.CommandLineTokenizer,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "scriptshim",
		Short: "scriptshim launches the companion script sharing this binary's name.",
		Long: `scriptshim is a launcher shim: it finds the script next to its own
executable, resolves the interpreter runtime, and re-tokenizes the raw
command line with exact Windows C-runtime quoting rules before invoking it.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if launchService == nil && cmd.Name() == "run" {
				return fmt.Errorf("launch service not initialized for command %s", cmd.Name())
			}
			if tokenizer == nil && (cmd.Name() == "split" || cmd.Name() == "quote") {
				return fmt.Errorf("tokenizer not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewRunCommand(launchService))
	rootCmd.AddCommand(NewSplitCommand(tokenizer))
	rootCmd.AddCommand(NewQuoteCommand(tokenizer))

	return rootCmd
}
