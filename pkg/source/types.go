// Package source opens files and streams as line sources for the reader
// package and numbers the lines it yields.
package source

// Line is a single line read from a source.
type Line struct {
	// Content is the line text without its terminator.
	Content string

	// Source is the file path (or "-" for stdin) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}
