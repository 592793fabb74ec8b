package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/linestream/pkg/stats"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "linestream: %d files, %d lines, %d bytes\n",
		report.Summary.Files,
		report.Summary.Lines,
		report.Summary.Bytes)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Line Statistics ===")
	fmt.Fprintln(w)

	for _, fs := range report.Files {
		f.formatFile(fs, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d files, %d lines (%d empty), %d bytes, longest line %d\n",
		report.Summary.Files,
		report.Summary.Lines,
		report.Summary.EmptyLines,
		report.Summary.Bytes,
		report.Summary.LongestLine)

	if report.Summary.FilesWithErrors > 0 {
		fmt.Fprintf(w, "Errors: %d file(s) could not be read completely\n", report.Summary.FilesWithErrors)
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Reader: %s\n", report.Metadata.Mode)
		if report.Metadata.ConfigFile != "" {
			fmt.Fprintf(w, "Config: %s\n", report.Metadata.ConfigFile)
		}
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatFile(fs *stats.FileStats, w io.Writer) {
	fmt.Fprintf(w, "[FILE] %s\n", fs.Source)
	fmt.Fprintf(w, "  Lines: %d (%d empty)\n", fs.Lines, fs.EmptyLines)
	fmt.Fprintf(w, "  Bytes: %d\n", fs.Bytes)
	if fs.Lines > 0 {
		fmt.Fprintf(w, "  Longest: %d bytes (line %d)\n", fs.LongestLine, fs.LongestLineNum)
	}
	if fs.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", fs.Error)
	}
	if f.opts.Verbose {
		fmt.Fprintf(w, "  Read in: %s\n", fs.Duration.Round(1e3))
	}
	fmt.Fprintln(w)
}
