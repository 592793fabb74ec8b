// Package output provides formatting for line statistics reports.
package output

import (
	"time"

	"github.com/ccollicutt/linestream/pkg/stats"
)

// Report is the complete output of a stat run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Files contains statistics for each source, in read order.
	Files []*stats.FileStats

	// Metadata provides context about the run.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	// Files is the number of sources read.
	Files int

	// FilesWithErrors is the number of sources that failed mid-read.
	FilesWithErrors int

	// Lines is the total number of lines across all sources.
	Lines int

	// EmptyLines is the total number of empty lines.
	EmptyLines int

	// Bytes is the total content size, terminators excluded.
	Bytes int64

	// LongestLine is the longest line length across all sources.
	LongestLine int
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the path to the configuration file used, if any.
	ConfigFile string

	// Mode is the reader strategy used (sync or async).
	Mode string

	// ReadAt is when reading finished.
	ReadAt time.Time

	// Duration is how long reading all sources took.
	Duration time.Duration
}

// NewReport aggregates per-file statistics into a Report.
func NewReport(files []*stats.FileStats, meta Metadata) *Report {
	report := &Report{
		Files:    files,
		Metadata: meta,
	}

	for _, fs := range files {
		report.Summary.Files++
		if fs.Error != "" {
			report.Summary.FilesWithErrors++
		}
		report.Summary.Lines += fs.Lines
		report.Summary.EmptyLines += fs.EmptyLines
		report.Summary.Bytes += fs.Bytes
		report.Summary.LongestLine = max(report.Summary.LongestLine, fs.LongestLine)
	}

	return report
}

// HasErrors returns true if any source failed while reading.
func (r *Report) HasErrors() bool {
	return r.Summary.FilesWithErrors > 0
}
