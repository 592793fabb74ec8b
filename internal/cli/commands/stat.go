package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestream/pkg/output"
	"github.com/ccollicutt/linestream/pkg/stats"
)

// StatOptions holds command-line options for the stat command.
type StatOptions struct {
	ReaderOptions
	Output  string
	Verbose bool
	Quiet   bool
}

// NewStatCommand creates the stat command.
func NewStatCommand() *cobra.Command {
	opts := &StatOptions{}

	cmd := &cobra.Command{
		Use:   "stat [file...]",
		Short: "Report line statistics for files",
		Long: `Read files to the end and report line counts, sizes and the longest line.

Files that fail partway through are reported with the statistics gathered
before the failure.

Exit codes:
  0 - All files read completely
  1 - At least one file failed while reading
  2 - Configuration or runtime error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, args, opts)
		},
	}

	addReaderFlags(cmd, &opts.ReaderOptions)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show reader and timing details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runStat(cmd *cobra.Command, args []string, opts *StatOptions) error {
	ctx := commandContext(cmd)

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	setup, err := resolveReader(ctx, &opts.ReaderOptions, args)
	if err != nil {
		return err
	}

	report, err := collectReport(ctx, setup, opts.ConfigFile)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasErrors() {
		ExitCode = 1
	}

	return nil
}

// collectReport reads every path in setup. Files that cannot be opened
// abort the run; read failures are recorded in the report.
func collectReport(ctx context.Context, setup *readerSetup, configFile string) (*output.Report, error) {
	start := time.Now()
	files := make([]*stats.FileStats, 0, len(setup.paths))

	for _, path := range setup.paths {
		fs, err := collectFile(ctx, setup, path)
		if err != nil {
			return nil, err
		}
		files = append(files, fs)
	}

	end := time.Now()
	return output.NewReport(files, output.Metadata{
		ConfigFile: configFile,
		Mode:       setup.mode.String(),
		ReadAt:     end,
		Duration:   end.Sub(start),
	}), nil
}

func collectFile(ctx context.Context, setup *readerSetup, path string) (*stats.FileStats, error) {
	src, err := setup.open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fs, err := stats.Collect(ctx, src)
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return fs, nil
}
