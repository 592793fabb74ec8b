package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CatOptions holds command-line options for the cat command.
type CatOptions struct {
	ReaderOptions
	Number bool
}

// NewCatCommand creates the cat command.
func NewCatCommand() *cobra.Command {
	opts := &CatOptions{}

	cmd := &cobra.Command{
		Use:   "cat [file...]",
		Short: "Print lines from files",
		Long: `Read files line by line and print each line with a normalized "\n" terminator.

CRLF line endings are converted to LF. Use "-" to read standard input.
When no files are given, the sources from the configuration are used.

Example:
  linestream cat --mode async /var/log/app.log
  linestream cat -n 'logs/*.log'
  journalctl | linestream cat -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, args, opts)
		},
	}

	addReaderFlags(cmd, &opts.ReaderOptions)
	cmd.Flags().BoolVarP(&opts.Number, "number", "n", false, "Prefix each line with its line number")

	return cmd
}

func runCat(cmd *cobra.Command, args []string, opts *CatOptions) error {
	ctx := commandContext(cmd)

	setup, err := resolveReader(ctx, &opts.ReaderOptions, args)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()

	for _, path := range setup.paths {
		src, err := setup.open(path)
		if err != nil {
			return err
		}

		for {
			line, err := src.Next(ctx)
			if err == io.EOF {
				break
			}
			if err != nil {
				_ = src.Close()
				return err
			}

			if opts.Number {
				fmt.Fprintf(w, "%6d\t%s\n", line.LineNum, line.Content)
			} else {
				fmt.Fprintln(w, line.Content)
			}
		}
		_ = src.Close()
	}

	return w.Flush()
}
