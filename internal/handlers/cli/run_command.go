package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptshim/internal/core/ports"
	"scriptshim/internal/handlers/ui"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(launchService ports.LaunchService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the companion script through its interpreter.",
		Long: `Performs the full shim launch: derives the script path from this
executable, resolves the interpreter, rebuilds the argument vector, and
runs the interpreter, exiting with the child's exit status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, launchService)
		},
	}
	return cmd
}

// runRunCmd contains the core logic for the 'run' command.
func runRunCmd(
	_ *cobra.Command,
	_ []string,
	launchService ports.LaunchService,
) error {
	code, err := launchService.Run()
	if err != nil {
		return fmt.Errorf("launch failed: %w", err)
	}
	if code != 0 {
		fmt.Fprintln(os.Stderr, ui.DetailColor(fmt.Sprintf("child exited with status %d", code)))
		os.Exit(code)
	}
	return nil
}
