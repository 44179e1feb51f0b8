// Package cmd implements the CLI commands for irconvert using Cobra.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var flagVerbose bool

// logger is configured before any command runs.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "irconvert",
	Short: "irconvert: turn web pages into incremental reading flashcards",
	Long: `irconvert converts an HTML page into flashcard text for Anki: it reduces the
page to its content, builds a typed document and renders lists, tables and
code in the card markup.

Usage:
  irconvert convert <file-or-url> [flags]
  irconvert crawl <url> [flags]
  irconvert reflow <file>`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log conversion details to stderr")
}

// Execute runs the root command. An interrupt cancels the running
// conversion.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
