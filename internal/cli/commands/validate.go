package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/linestream/pkg/config"
	"github.com/ccollicutt/linestream/pkg/reader"
	"github.com/ccollicutt/linestream/pkg/source"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a linestream configuration file without reading any sources.

Checks:
  - YAML syntax
  - Reader mode is sync, async or empty
  - Buffer, queue and timeout values are not negative
  - Source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	mode := cfg.Reader.ResolvedMode().String()
	if cfg.Reader.Mode == "" {
		mode += fmt.Sprintf(" (process default, %s=%t)", reader.EnvUseAsyncIO, reader.UseAsyncIO())
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Reader mode:      %s\n", mode)
	fmt.Fprintf(out, "  Buffer size:      %d bytes\n", cfg.Reader.BufferSize)
	fmt.Fprintf(out, "  Queue capacity:   %d lines\n", cfg.Reader.QueueCapacity)
	fmt.Fprintf(out, "  Shutdown timeout: %s\n", cfg.Reader.ShutdownTimeout)
	fmt.Fprintf(out, "  Sources:          %d pattern(s)\n", len(cfg.Sources))

	if len(cfg.Sources) == 0 {
		return nil
	}

	files, err := source.ExpandPaths(cfg.Sources)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: Error expanding source patterns: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "\nSources matched: %d\n", len(files))
	for _, f := range files {
		fmt.Fprintf(out, "  - %s\n", f)
	}

	return nil
}
