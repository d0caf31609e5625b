package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"scriptshim/internal/core/ports"
	"scriptshim/internal/handlers/ui"
)

// NewSplitCommand creates the 'split' subcommand.
func NewSplitCommand(tokenizer ports.CommandLineTokenizer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [raw command line]",
		Short: "Tokenize a raw command line and show the argument vector.",
		Long: `Splits a raw command line with the exact Windows C-runtime quoting
rules (the 2N/2N+1 backslash rule) and prints the resulting argument
vector together with the measuring-pass counts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplitCmd(cmd, args, tokenizer)
		},
	}
	return cmd
}

// runSplitCmd contains the core logic for the 'split' command.
func runSplitCmd(
	_ *cobra.Command,
	args []string,
	tokenizer ports.CommandLineTokenizer,
) error {
	raw := strings.Join(args, " ")

	counts := tokenizer.Measure(raw)
	vector, err := tokenizer.Split(raw)
	if err != nil {
		return fmt.Errorf("could not split command line: %w", err)
	}

	fmt.Println(ui.HeaderColor("Argument vector:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Argument"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, arg := range vector.Strings() {
		table.Append([]string{strconv.Itoa(i), arg})
	}
	table.Render()

	fmt.Println(ui.DetailColor(fmt.Sprintf(
		"argument slots: %d (program name + %d arguments + sentinel), characters: %d (terminators included)",
		counts.Args, vector.Argc()-1, counts.Chars)))
	return nil
}
