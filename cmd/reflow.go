// Package cmd: reflow command.
// Joins soft-wrapped lines of a plain text file into paragraphs.
package cmd

import (
	"fmt"
	"os"

	"github.com/greyhillman/IncrementalReadingConverter/core/output"
	"github.com/greyhillman/IncrementalReadingConverter/core/reflow"
	"github.com/spf13/cobra"
)

var flagReflowStdout bool

var reflowCmd = &cobra.Command{
	Use:   "reflow <file>",
	Short: "Join soft-wrapped lines of a text file",
	Long: `Reflow joins the lines of each paragraph of a text file with single spaces,
rejoins words hyphenated across lines, and separates paragraphs with one
blank line. The result is written to <file>.out.`,
	Args: cobra.ExactArgs(1),
	RunE: runReflow,
}

func init() {
	rootCmd.AddCommand(reflowCmd)
	reflowCmd.Flags().BoolVar(&flagReflowStdout, "stdout", false, "Write the result to stdout instead of <file>.out")
}

func runReflow(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text := reflow.Reflow(string(data))
	if flagReflowStdout {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}

	out, err := output.WriteBeside(path, ".out", []byte(text))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", out)
	return nil
}
