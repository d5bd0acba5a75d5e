// Package controller provides output adapters for displaying coverage results.
package controller

import (
	"sort"

	m "github.com/mouse-blink/linecov/internal/model"
)

// UI defines the interface for displaying coverage results.
// Implementations can use different output methods (table, JSON, TUI).
type UI interface {
	// DisplayCoverage shows the per-file coverage computed after a replay.
	DisplayCoverage(coverages []m.FileCoverage) error
	// DisplayTestOutput shows the output of the test run that produced the trace.
	DisplayTestOutput(output string)
}

func sortedByPath(coverages []m.FileCoverage) []m.FileCoverage {
	out := make([]m.FileCoverage, len(coverages))
	copy(out, coverages)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// totals sums line counts over coverages. Uncovered lines past the end of a file
// are not counted, matching the per-file percentage.
func totals(coverages []m.FileCoverage) (lines, uncovered int, percentage float64) {
	for _, c := range coverages {
		lines += c.TotalLines
		uncovered += c.UncoveredCount()
	}

	if lines == 0 {
		return 0, 0, 100
	}

	return lines, uncovered, 100 * float64(lines-uncovered) / float64(lines)
}
