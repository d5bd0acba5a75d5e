package model

import "fmt"

// Region is a contiguous span of lines within one source.
// Lines are 1-indexed and inclusive. Two regions with the same span are the same region.
type Region struct {
	StartLine int
	EndLine   int
}

// Valid reports whether the region describes a non-empty span of real lines.
func (r Region) Valid() bool {
	return r.StartLine >= 1 && r.EndLine >= r.StartLine
}

// Lines returns every line number covered by the region.
func (r Region) Lines() []int {
	if !r.Valid() {
		return nil
	}

	lines := make([]int, 0, r.EndLine-r.StartLine+1)
	for line := r.StartLine; line <= r.EndLine; line++ {
		lines = append(lines, line)
	}

	return lines
}

func (r Region) String() string {
	return fmt.Sprintf("%d-%d", r.StartLine, r.EndLine)
}

// Block is a region as reported by an execution trace.
type Block struct {
	Region     Region
	Statements int // number of statements in the block
	Count      int // number of times the block executed
}

// FileProfile holds the trace blocks recorded for one file.
type FileProfile struct {
	FileName string // file name as written in the trace, usually <import path>/<file>
	Mode     string
	Blocks   []Block
}
