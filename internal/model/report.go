package model

// FileCoverage is the line-level coverage result for a single source.
type FileCoverage struct {
	Path           Path    `json:"path" yaml:"path"`
	TotalLines     int     `json:"total_lines" yaml:"total_lines"`
	UncoveredLines []int   `json:"uncovered_lines" yaml:"uncovered_lines,flow"`
	Percentage     float64 `json:"percentage" yaml:"percentage"`

	// Source is the measured source, kept for views that print line text.
	Source Source `json:"-" yaml:"-"`
}

// UncoveredCount returns the number of uncovered lines that exist in the source.
// Lines past TotalLines come from a stale source; they are listed but never counted.
func (c FileCoverage) UncoveredCount() int {
	count := 0

	for _, n := range c.UncoveredLines {
		if n >= 1 && n <= c.TotalLines {
			count++
		}
	}

	return count
}

// CoveredLines returns the number of lines not touched by any uncovered region.
func (c FileCoverage) CoveredLines() int {
	return c.TotalLines - c.UncoveredCount()
}

// LineText returns the text of line n, or "" when the source is unknown.
func (c FileCoverage) LineText(n int) string {
	if c.Source == nil {
		return ""
	}

	return c.Source.Line(n)
}
