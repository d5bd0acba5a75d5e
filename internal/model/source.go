// Package model defines the data structures shared by the coverage core, the replay engine and the UI.
package model

import "strings"

// Path represents a file system path.
type Path string

// Source is one unit of code under observation.
// Implementations are used as map keys and must keep a stable identity for their
// whole lifetime, which in practice means pointer types.
type Source interface {
	// Path is the display path of the source.
	Path() Path
	// LineCount returns the total number of lines.
	LineCount() int
	// Line returns the literal text of line n (1-indexed), or "" when n is out of range.
	Line(n int) string
	// Internal reports whether the source belongs to code the host does not measure
	// (vendored or out-of-module files).
	Internal() bool
}

// File is a Source backed by in-memory file content.
type File struct {
	path     Path
	lines    []string
	internal bool
}

// NewFile splits content into lines and wraps it as a Source.
func NewFile(path Path, content []byte, internal bool) *File {
	return &File{
		path:     path,
		lines:    splitLines(string(content)),
		internal: internal,
	}
}

// Path returns the display path.
func (f *File) Path() Path {
	return f.path
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lines)
}

// Line returns the text of line n without its line terminator.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}

	return f.lines[n-1]
}

// Internal reports whether the file is excluded from measurement by default.
func (f *File) Internal() bool {
	return f.internal
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Excerpt is a Source that knows only some lines of a file, such as the uncovered
// lines kept in a saved report. Unknown lines read as "".
type Excerpt struct {
	path      Path
	lineCount int
	lines     map[int]string
}

// NewExcerpt wraps the known lines of a file with lineCount lines.
func NewExcerpt(path Path, lineCount int, lines map[int]string) *Excerpt {
	return &Excerpt{path: path, lineCount: lineCount, lines: lines}
}

// Path returns the display path.
func (e *Excerpt) Path() Path {
	return e.path
}

// LineCount returns the line count of the whole file.
func (e *Excerpt) LineCount() int {
	return e.lineCount
}

// Line returns the text of line n when the excerpt holds it.
func (e *Excerpt) Line(n int) string {
	if n < 1 || n > e.lineCount {
		return ""
	}

	return e.lines[n]
}

// Internal is always false; excerpts only exist for measured files.
func (e *Excerpt) Internal() bool {
	return false
}
