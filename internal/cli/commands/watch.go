package commands

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestream/pkg/output"
)

// DefaultWatchDebounce coalesces bursts of writes into one report.
const DefaultWatchDebounce = 250 * time.Millisecond

// WatchOptions holds command-line options for the watch command.
type WatchOptions struct {
	ReaderOptions
	Output   string
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-report line statistics whenever a file changes",
		Long: `Watch a file and print its line statistics each time it is written,
created or replaced. Runs until interrupted.

Example:
  linestream watch --mode async -o json /var/log/app.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	addReaderFlags(cmd, &opts.ReaderOptions)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", DefaultWatchDebounce, "Quiet period before re-reading after a change")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *WatchOptions) error {
	ctx := commandContext(cmd)

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{Quiet: opts.Output == "text"})
	if err != nil {
		return err
	}

	setup, err := resolveReader(ctx, &opts.ReaderOptions, args)
	if err != nil {
		return err
	}
	if len(setup.paths) != 1 {
		return fmt.Errorf("watch needs exactly one file, %q matched %d", args[0], len(setup.paths))
	}

	fw := &fileWatcher{
		path:     setup.paths[0],
		debounce: opts.Debounce,
		onChange: func(ctx context.Context) error {
			report, err := collectReport(ctx, setup, opts.ConfigFile)
			if err != nil {
				return err
			}
			return formatter.Format(ctx, report, cmd.OutOrStdout())
		},
	}

	return fw.Run(ctx)
}

// fileWatcher calls onChange once at start and again after each burst of
// changes to path settles for debounce.
type fileWatcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context) error
}

// Run blocks until ctx is done or onChange fails.
func (w *fileWatcher) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so replaced files (rename over) are still seen.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", w.path, err)
	}

	if err := w.onChange(ctx); err != nil {
		return err
	}

	debounce := w.debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name == absPath && isContentChange(event) {
				pending = time.After(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("File watcher error: %v", err)

		case <-pending:
			pending = nil
			if err := w.onChange(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// The file may be mid-replacement; report and keep watching.
				log.Printf("Re-reading %s: %v", w.path, err)
			}
		}
	}
}

func isContentChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
