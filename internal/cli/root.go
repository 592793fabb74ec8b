// Package cli provides the command-line interface for linestream.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestream/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linestream",
		Short: "Read newline-delimited text with sync or async line readers",
		Long: `linestream reads newline-delimited text from files and standard input.

Two reader strategies are available:
  - sync:  lines are read from the source on demand
  - async: a background reader prefetches lines into a bounded queue

The strategy comes from --mode, the config file, or the process default
set by LINESTREAM_USE_ASYNC_IO.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewCatCommand())
	rootCmd.AddCommand(commands.NewStatCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
