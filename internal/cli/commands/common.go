package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestream/pkg/config"
	"github.com/ccollicutt/linestream/pkg/reader"
	"github.com/ccollicutt/linestream/pkg/source"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ReaderOptions holds the flags shared by commands that read sources.
type ReaderOptions struct {
	ConfigFile string
	Mode       string
}

func addReaderFlags(cmd *cobra.Command, opts *ReaderOptions) {
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Reader mode (sync|async); overrides config")
}

// readerSetup is the resolved configuration for one command run.
type readerSetup struct {
	cfg   *config.Config
	mode  reader.Mode
	paths []string
}

// resolveReader loads configuration, applies flag overrides and expands
// the paths to read. Command-line paths take precedence over config sources.
func resolveReader(ctx context.Context, opts *ReaderOptions, args []string) (*readerSetup, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.Load(ctx, opts.ConfigFile)
	} else {
		cfg, err = config.FromEnvironment(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mode := cfg.Reader.ResolvedMode()
	if opts.Mode != "" {
		mode, err = reader.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Sources
	}
	if len(patterns) == 0 {
		return nil, errors.New("no sources given (pass paths or set sources in the config)")
	}

	paths, err := source.ExpandPaths(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding sources: %w", err)
	}

	return &readerSetup{cfg: cfg, mode: mode, paths: paths}, nil
}

func (s *readerSetup) open(path string) (*source.FileSource, error) {
	return source.Open(path, s.mode, s.cfg.Reader.Options()...)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
